package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/mousa-mostafa/capitone-Furniture/internal/currency"
	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

type currencyInfo struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

func toCurrencyInfo(r currency.Rate) currencyInfo {
	return currencyInfo{Code: r.Code, Symbol: r.Symbol, Rate: r.Rate}
}

// displayRate resolves the session's display currency. Anonymous callers see
// base prices.
func displayRate(c *gin.Context) currency.Rate {
	sess := sessionFromContext(c)
	if sess == nil {
		return currency.Base
	}
	return currency.ForUser(sess.User)
}

type productResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceEGP    int64    `json:"priceEGP"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	Colors      []string `json:"colors"`
	WoodPaints  []string `json:"woodPaints"`
	PiecesCount int      `json:"piecesCount"`
}

func toProductResponse(p domain.Product, r currency.Rate) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceEGP:    p.PriceEGP,
		Price:       currency.Round2(currency.Convert(p.PriceEGP, r)),
		Rating:      p.Rating,
		Images:      p.Images,
		Features:    p.Features,
		Colors:      p.Colors,
		WoodPaints:  p.WoodPaints,
		PiecesCount: p.PiecesCount,
	}
}

type productListResponse struct {
	Results  []productResponse `json:"results"`
	Total    int               `json:"total"`
	Currency currencyInfo      `json:"currency"`
}

type productDetailResponse struct {
	productResponse
	// Installment quotes are display material for the product page; the cart
	// total never includes the surcharge.
	Installments []currency.InstallmentQuote `json:"installments"`
	Currency     currencyInfo                `json:"currency"`
}

func toProductDetailResponse(p domain.Product, r currency.Rate) productDetailResponse {
	return productDetailResponse{
		productResponse: toProductResponse(p, r),
		Installments: []currency.InstallmentQuote{
			currency.QuoteInstallment(p.PriceEGP, domain.InstallmentThreeMonths, r),
			currency.QuoteInstallment(p.PriceEGP, domain.InstallmentSixMonths, r),
		},
		Currency: toCurrencyInfo(r),
	}
}

type cartLineResponse struct {
	Index       int     `json:"index"`
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Image       string  `json:"image,omitempty"`
	PriceEGP    int64   `json:"priceEGP"`
	Price       float64 `json:"price"`
	Fabric      string  `json:"fabric,omitempty"`
	Paint       string  `json:"paint,omitempty"`
	Installment int     `json:"installment"`
}

type methodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

type cartResponse struct {
	Lines    []cartLineResponse `json:"lines"`
	Shipping methodOption       `json:"shipping"`
	Payment  methodOption       `json:"payment"`
	TotalEGP int64              `json:"totalEGP"`
	Total    float64            `json:"total"`
	Currency currencyInfo       `json:"currency"`
}

func toCartResponse(cart domain.Cart, r currency.Rate) cartResponse {
	lines := make([]cartLineResponse, 0, len(cart.Lines))
	for i, line := range cart.Lines {
		image := ""
		if len(line.Product.Images) > 0 {
			image = line.Product.Images[0]
		}
		lines = append(lines, cartLineResponse{
			Index:       i,
			ProductID:   line.Product.ID,
			Name:        line.Product.Name,
			Image:       image,
			PriceEGP:    line.Product.PriceEGP,
			Price:       currency.Round2(currency.Convert(line.Product.PriceEGP, r)),
			Fabric:      line.Fabric,
			Paint:       string(line.Paint),
			Installment: line.Installment.Months(),
		})
	}
	return cartResponse{
		Lines:    lines,
		Shipping: shippingOption(cart.Shipping),
		Payment:  paymentOption(cart.Payment),
		TotalEGP: cart.TotalEGP(),
		// Sum in base units first, convert once, round once.
		Total:    currency.Round2(currency.Convert(cart.TotalEGP(), r)),
		Currency: toCurrencyInfo(r),
	}
}

func shippingOption(m domain.ShippingMethod) methodOption {
	return methodOption{Value: string(m), Label: m.Label(), Note: m.Note()}
}

func paymentOption(m domain.PaymentMethod) methodOption {
	return methodOption{Value: string(m), Label: m.Label()}
}
