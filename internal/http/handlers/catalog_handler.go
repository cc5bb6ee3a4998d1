// README: Reference-data handlers: add-ons, packages, policies.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gari/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) ListAddOns(c *gin.Context) {
	addOns, err := h.catalog.ListAddOns(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"add_ons": addOns})
}

func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.catalog.ListPackages(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"packages": packages})
}

func (h *CatalogHandler) ListPolicies(c *gin.Context) {
	policies, err := h.catalog.ListPolicies(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"policies": policies})
}
