package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mousa-mostafa/capitone-Furniture/internal/currency"
	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	customersvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/customer"
)

type userResponse struct {
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Country     string       `json:"country"`
	Governorate string       `json:"governorate,omitempty"`
	IsAdmin     bool         `json:"isAdmin"`
	Currency    currencyInfo `json:"currency"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Phone:       u.Phone,
		Country:     string(u.Country),
		Governorate: u.Governorate,
		IsAdmin:     u.IsAdmin,
		Currency:    toCurrencyInfo(currency.ForUser(u)),
	}
}

type sessionResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user,omitempty"`
}

func anonymousHandler(svc customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := svc.Anonymous(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
			return
		}
		c.JSON(http.StatusCreated, sessionResponse{Token: token})
	}
}

func registerHandler(svc customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customersvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		user, token, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		resp := toUserResponse(user)
		c.JSON(http.StatusCreated, sessionResponse{Token: token, User: &resp})
	}
}

func loginHandler(svc customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customersvc.LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		user, token, err := svc.Login(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		resp := toUserResponse(user)
		c.JSON(http.StatusOK, sessionResponse{Token: token, User: &resp})
	}
}

// logoutHandler destroys the session and the cart held under it.
func logoutHandler(customers customerService, carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c)
		if err := customers.Logout(c.Request.Context(), sess.Token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
			return
		}
		carts.Drop(sess.Token)
		c.JSON(http.StatusOK, gin.H{"status": "logged out"})
	}
}

func meHandler(c *gin.Context) {
	sess := sessionFromContext(c)
	if sess.User == nil {
		c.JSON(http.StatusOK, gin.H{"anonymous": true, "currency": toCurrencyInfo(currency.Base)})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(sess.User))
}
