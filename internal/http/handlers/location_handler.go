// README: Location handlers: listing and distance-from-user.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gari/internal/modules/location"
	"gari/internal/types"
)

type LocationHandler struct {
	locations *location.Service
}

func NewLocationHandler(svc *location.Service) *LocationHandler {
	return &LocationHandler{locations: svc}
}

func (h *LocationHandler) List(c *gin.Context) {
	locs, err := h.locations.List(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"locations": locs})
}

// Distance reports the great-circle distance from the caller's coordinates.
// A location without coordinates answers with a null distance.
func (h *LocationHandler) Distance(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeError(c, http.StatusBadRequest, "lat and lng are required numbers")
		return
	}
	d, err := h.locations.Distance(c.Request.Context(), types.ID(c.Param("id")), lat, lng)
	if errors.Is(err, location.ErrNotFound) {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"distance_km": d})
}
