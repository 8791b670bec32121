package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mousa-mostafa/capitone-Furniture/internal/availability"
	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

type availabilityRequest struct {
	ProductID string `json:"productId"`
	Fabric    string `json:"fabric"`
	Paint     string `json:"paint"`
}

// availabilityHandler asks the workshop assistant whether a fabric and paint
// combination can be produced for a product. The checker itself never fails
// the request; only bad input does.
func availabilityHandler(catalog catalogService, checker availabilityChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in availabilityRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if in.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		paint := domain.WoodPaint(in.Paint)
		if paint != "" && !paint.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown wood paint"})
			return
		}

		product, err := catalog.Get(c.Request.Context(), in.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}

		result, err := checker.Check(c.Request.Context(), availability.Request{
			ProductName: product.Name,
			Fabric:      in.Fabric,
			Paint:       paint,
		})
		if err != nil {
			if errors.Is(err, availability.ErrFabricRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "fabric required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "availability check failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
