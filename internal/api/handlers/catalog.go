package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"econlab/internal/scenario"
)

// CatalogHandler serves the module/operation catalog.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListModules handles GET /api/v1/catalog
func (h *CatalogHandler) ListModules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": scenario.Catalog()})
}
