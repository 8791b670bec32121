package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mousa-mostafa/capitone-Furniture/internal/currency"
	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	cartsvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/cart"
)

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c)
		cart := svc.Get(c.Request.Context(), sess.Token)
		c.JSON(http.StatusOK, toCartResponse(cart, displayRate(c)))
	}
}

func addCartLineHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddLineInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess := sessionFromContext(c)
		cart, err := svc.AddLine(c.Request.Context(), sess.Token, in)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, toCartResponse(cart, displayRate(c)))
	}
}

func removeCartLineHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
			return
		}
		sess := sessionFromContext(c)
		cart := svc.RemoveLine(c.Request.Context(), sess.Token, index)
		c.JSON(http.StatusOK, toCartResponse(cart, displayRate(c)))
	}
}

func setShippingHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Method string `json:"method"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess := sessionFromContext(c)
		cart, err := svc.SetShipping(c.Request.Context(), sess.Token, domain.ShippingMethod(in.Method))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, displayRate(c)))
	}
}

func setPaymentHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Method string `json:"method"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess := sessionFromContext(c)
		cart, err := svc.SetPayment(c.Request.Context(), sess.Token, domain.PaymentMethod(in.Method))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, displayRate(c)))
	}
}

type checkoutResponse struct {
	Message  string       `json:"message"`
	Shipping methodOption `json:"shipping"`
	Payment  methodOption `json:"payment"`
	TotalEGP int64        `json:"totalEGP"`
	Total    float64      `json:"total"`
	Currency currencyInfo `json:"currency"`
}

func checkoutHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c)
		conf, err := svc.Checkout(c.Request.Context(), sess.Token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rate := displayRate(c)
		c.JSON(http.StatusOK, checkoutResponse{
			Message:  conf.Message,
			Shipping: shippingOption(conf.Shipping),
			Payment:  paymentOption(conf.Payment),
			TotalEGP: conf.TotalEGP,
			Total:    currency.Round2(currency.Convert(conf.TotalEGP, rate)),
			Currency: toCurrencyInfo(rate),
		})
	}
}
