package v1

import (
	"kamenpro-backend/internal/delivery/http/response"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/apperror"
	"kamenpro-backend/pkg/schemaorg"

	"github.com/gin-gonic/gin"
)

const MsgLocationNotFound = "Lokacija nije pronađena."

type LocationHandler struct {
	locations domain.LocationCatalog
	baseURL   string
}

// NewLocationHandler registers the structured data routes for location pages
func NewLocationHandler(api *gin.RouterGroup, locations domain.LocationCatalog, baseURL string) {
	if baseURL == "" {
		baseURL = schemaorg.DefaultBaseURL
	}
	handler := &LocationHandler{
		locations: locations,
		baseURL:   baseURL,
	}

	api.GET("/locations/:slug/schema", handler.GetSchema)
	api.GET("/locations/:slug/breadcrumbs", handler.GetBreadcrumbs)
}

// GetSchema godoc
// @Summary      Location structured data
// @Description  Returns the schema.org LocalBusiness JSON-LD of one location page.
// @Tags         structured-data
// @Produce      json
// @Param        slug  path      string  true  "Location slug"
// @Success      200   {object}  schemaorg.LocalBusinessLD
// @Failure      404   {object}  response.ErrorResponse
// @Router       /locations/{slug}/schema [get]
func (h *LocationHandler) GetSchema(c *gin.Context) {
	loc, ok := h.locations.BySlug(c.Param("slug"))
	if !ok {
		_ = c.Error(apperror.NotFound(MsgLocationNotFound))
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	response.JSONLD(c, schemaorg.LocalBusiness(h.baseURL, loc))
}

// GetBreadcrumbs godoc
// @Summary      Location breadcrumbs
// @Description  Returns the schema.org BreadcrumbList JSON-LD of one location page.
// @Tags         structured-data
// @Produce      json
// @Param        slug  path      string  true  "Location slug"
// @Success      200   {object}  schemaorg.BreadcrumbListLD
// @Failure      404   {object}  response.ErrorResponse
// @Router       /locations/{slug}/breadcrumbs [get]
func (h *LocationHandler) GetBreadcrumbs(c *gin.Context) {
	loc, ok := h.locations.BySlug(c.Param("slug"))
	if !ok {
		_ = c.Error(apperror.NotFound(MsgLocationNotFound))
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	response.JSONLD(c, schemaorg.LocationBreadcrumbs(h.baseURL, loc))
}
