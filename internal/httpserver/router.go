package httpserver

import (
	"context"
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mousa-mostafa/capitone-Furniture/internal/availability"
	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	sessionrepo "github.com/mousa-mostafa/capitone-Furniture/internal/repository/session"
	cartsvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/cart"
	catalogsvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/catalog"
	customersvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/customer"
	logx "github.com/mousa-mostafa/capitone-Furniture/pkg/logger"
)

type catalogService interface {
	List(ctx context.Context, f catalogsvc.Filter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type cartService interface {
	Get(ctx context.Context, token string) domain.Cart
	AddLine(ctx context.Context, token string, in cartsvc.AddLineInput) (domain.Cart, error)
	RemoveLine(ctx context.Context, token string, index int) domain.Cart
	SetShipping(ctx context.Context, token string, m domain.ShippingMethod) (domain.Cart, error)
	SetPayment(ctx context.Context, token string, m domain.PaymentMethod) (domain.Cart, error)
	Checkout(ctx context.Context, token string) (cartsvc.Confirmation, error)
	Drop(token string)
}

type customerService interface {
	Anonymous(ctx context.Context) (string, error)
	Register(ctx context.Context, in customersvc.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, in customersvc.LoginInput) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	LookupByToken(ctx context.Context, token string) (*sessionrepo.Session, error)
}

type availabilityChecker interface {
	Check(ctx context.Context, req availability.Request) (availability.Result, error)
}

// Deps carries the services the router wires handlers to.
type Deps struct {
	CatalogSvc   catalogService
	CartSvc      cartService
	CustomerSvc  customerService
	Availability availabilityChecker
}

// buildRouter wires routes for the storefront API.
func buildRouter(db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.CatalogSvc == nil || deps.CartSvc == nil || deps.CustomerSvc == nil || deps.Availability == nil {
		return nil, errors.New("httpserver: all dependencies must be set")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logx.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.Use(sessionMiddleware(deps.CustomerSvc))

	auth := api.Group("/auth")
	auth.POST("/anonymous", anonymousHandler(deps.CustomerSvc))
	auth.POST("/register", registerHandler(deps.CustomerSvc))
	auth.POST("/login", loginHandler(deps.CustomerSvc))
	auth.POST("/logout", requireSession(), logoutHandler(deps.CustomerSvc, deps.CartSvc))

	api.GET("/me", requireSession(), meHandler)

	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/products/:id", getProductHandler(deps.CatalogSvc))

	api.POST("/availability", availabilityHandler(deps.CatalogSvc, deps.Availability))

	cart := api.Group("/cart", requireSession())
	cart.GET("", getCartHandler(deps.CartSvc))
	cart.POST("/lines", addCartLineHandler(deps.CartSvc))
	cart.DELETE("/lines/:index", removeCartLineHandler(deps.CartSvc))
	cart.PUT("/shipping", setShippingHandler(deps.CartSvc))
	cart.PUT("/payment", setPaymentHandler(deps.CartSvc))
	cart.POST("/checkout", checkoutHandler(deps.CartSvc))

	api.GET("/shipping-methods", shippingMethodsHandler)
	api.GET("/payment-methods", paymentMethodsHandler)
	api.GET("/wood-paints", woodPaintsHandler)
	api.GET("/countries", countriesHandler)

	return router, nil
}
