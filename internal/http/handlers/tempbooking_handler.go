// README: Temp-booking handlers: unauthenticated draft create/fetch.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gari/internal/modules/tempbooking"
	"gari/internal/types"
)

type TempBookingHandler struct {
	drafts *tempbooking.Service
}

func NewTempBookingHandler(svc *tempbooking.Service) *TempBookingHandler {
	return &TempBookingHandler{drafts: svc}
}

type createDraftReq struct {
	PickupLocation      string     `json:"pickup_location"`
	DestinationLocation string     `json:"destination_location"`
	StartAt             time.Time  `json:"start_at"`
	EndAt               *time.Time `json:"end_at"`
	Package             string     `json:"package"`
	DriverRequired      bool       `json:"driver_required"`
	NumDays             int        `json:"num_days"`
}

func (h *TempBookingHandler) Create(c *gin.Context) {
	var req createDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	d, err := h.drafts.Create(c.Request.Context(), tempbooking.CreateCommand{
		PickupLocation:      req.PickupLocation,
		DestinationLocation: req.DestinationLocation,
		StartAt:             req.StartAt,
		EndAt:               req.EndAt,
		Package:             req.Package,
		DriverRequired:      req.DriverRequired,
		NumDays:             req.NumDays,
	})
	if errors.Is(err, tempbooking.ErrBadRequest) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusCreated, d)
}

func (h *TempBookingHandler) Get(c *gin.Context) {
	d, err := h.drafts.Get(c.Request.Context(), types.ID(c.Param("id")))
	if errors.Is(err, tempbooking.ErrNotFound) {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, d)
}
