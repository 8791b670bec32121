package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	catalogsvc "github.com/mousa-mostafa/capitone-Furniture/internal/service/catalog"
)

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalogsvc.Filter{Query: c.Query("q")}

		if raw := c.Query("maxPrice"); raw != "" {
			maxPrice, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || maxPrice < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be a non-negative integer"})
				return
			}
			// Zero is a real ceiling, not "unset": it matches nothing.
			filter.MaxPrice = &maxPrice
		}
		if raw := c.Query("pieces"); raw != "" {
			pieces, err := strconv.Atoi(raw)
			if err != nil || pieces < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "pieces must be a non-negative integer"})
				return
			}
			filter.Pieces = &pieces
		}

		products, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}

		rate := displayRate(c)
		results := make([]productResponse, 0, len(products))
		for _, p := range products {
			results = append(results, toProductResponse(p, rate))
		}
		c.JSON(http.StatusOK, productListResponse{
			Results:  results,
			Total:    len(results),
			Currency: toCurrencyInfo(rate),
		})
	}
}

func getProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		c.JSON(http.StatusOK, toProductDetailResponse(*product, displayRate(c)))
	}
}
