package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"craftdeck/internal/catalog"
	"craftdeck/internal/editor"
)

// CatalogHandler serves the read-only template catalog.
type CatalogHandler struct {
	provider *catalog.Provider
}

func NewCatalogHandler(provider *catalog.Provider) *CatalogHandler {
	return &CatalogHandler{provider: provider}
}

// ListTemplates returns the catalog, optionally filtered by category.
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	category := c.Query("category")

	items, err := h.provider.List(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, editor.ErrUnknownCategory) {
			BadRequest(c, "unknown category")
			return
		}
		Internal(c, "failed to list templates")
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": items})
}

// GetTemplate returns one catalog entry.
func (h *CatalogHandler) GetTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "invalid template id")
		return
	}

	item, err := h.provider.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrTemplateNotFound) {
			NotFound(c, "template not found")
			return
		}
		Internal(c, "failed to load template")
		return
	}

	c.JSON(http.StatusOK, item)
}
