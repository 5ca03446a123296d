package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"kamenpro-backend/internal/delivery/http/response"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/apperror"
	"kamenpro-backend/pkg/schemaorg"

	"github.com/gin-gonic/gin"
)

const (
	MsgProductNotFound    = "Proizvod nije pronađen."
	MsgProductUnavailable = "Podaci o proizvodima trenutno nisu dostupni."

	productLookupTimeout = 10 * time.Second
)

type ProductHandler struct {
	products domain.ProductSource
	baseURL  string
}

// NewProductHandler registers the structured data route for product pages
func NewProductHandler(api *gin.RouterGroup, products domain.ProductSource, baseURL string) {
	if baseURL == "" {
		baseURL = schemaorg.DefaultBaseURL
	}
	handler := &ProductHandler{
		products: products,
		baseURL:  baseURL,
	}

	api.GET("/products/:id/schema", handler.GetSchema)
}

// GetSchema godoc
// @Summary      Product structured data
// @Description  Returns the schema.org Product JSON-LD of one product page.
// @Tags         structured-data
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  schemaorg.ProductLD
// @Failure      404  {object}  response.ErrorResponse
// @Failure      503  {object}  response.ErrorResponse
// @Router       /products/{id}/schema [get]
func (h *ProductHandler) GetSchema(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), productLookupTimeout)
	defer cancel()

	pages, err := h.products.ListProductPages(ctx)
	if err != nil {
		_ = c.Error(apperror.New(http.StatusServiceUnavailable, MsgProductUnavailable,
			fmt.Errorf("product source %s: %w", h.products.Name(), err)))
		return
	}

	id := c.Param("id")
	for _, p := range pages {
		if p.ID == id {
			c.Header("Cache-Control", "public, max-age=3600")
			response.JSONLD(c, schemaorg.Product(h.baseURL, schemaorg.ProductInfoFromPage(p)))
			return
		}
	}
	_ = c.Error(apperror.NotFound(MsgProductNotFound))
}
