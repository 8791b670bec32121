package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mousa-mostafa/capitone-Furniture/internal/currency"
	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

func shippingMethodsHandler(c *gin.Context) {
	methods := domain.ShippingMethods()
	options := make([]methodOption, 0, len(methods))
	for _, m := range methods {
		options = append(options, shippingOption(m))
	}
	c.JSON(http.StatusOK, gin.H{"methods": options, "default": string(domain.DefaultShipping)})
}

func paymentMethodsHandler(c *gin.Context) {
	methods := domain.PaymentMethods()
	options := make([]methodOption, 0, len(methods))
	for _, m := range methods {
		options = append(options, paymentOption(m))
	}
	c.JSON(http.StatusOK, gin.H{"methods": options, "default": string(domain.DefaultPayment)})
}

// countriesHandler lists the registration form's country choices together
// with the currency each one prices in.
func countriesHandler(c *gin.Context) {
	countries := domain.Countries()
	out := make([]gin.H, 0, len(countries))
	for _, country := range countries {
		out = append(out, gin.H{
			"name":     string(country),
			"currency": toCurrencyInfo(currency.ForCountry(country)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"countries": out})
}

func woodPaintsHandler(c *gin.Context) {
	paints := domain.WoodPaints()
	names := make([]string, 0, len(paints))
	for _, p := range paints {
		names = append(names, string(p))
	}
	c.JSON(http.StatusOK, gin.H{"paints": names})
}
