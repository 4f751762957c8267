package handler

import (
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the aggregated project snapshot.
type CatalogHandler struct {
	catalog ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /api/v1/catalog. Pass ?refresh=true to bypass the
// cached snapshot.
func (h *CatalogHandler) List(c *gin.Context) {
	refresh := c.Query("refresh")
	forceRefresh := refresh == "true" || refresh == "1"

	snapshot, err := h.catalog.ListWithDerivedData(c.Request.Context(), forceRefresh)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snapshot)
}
