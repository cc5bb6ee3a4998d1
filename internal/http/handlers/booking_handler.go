// README: Booking handlers for create/list/get/status transitions.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gari/internal/http/middleware"
	"gari/internal/modules/booking"
	"gari/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

type createBookingReq struct {
	CarID    string `json:"car_id"`
	TripType string `json:"trip_type"`

	PickupLocation      string   `json:"pickup_location"`
	PickupLat           *float64 `json:"pickup_lat"`
	PickupLng           *float64 `json:"pickup_lng"`
	DropLocation        string   `json:"drop_location"`
	DropLat             *float64 `json:"drop_lat"`
	DropLng             *float64 `json:"drop_lng"`
	DestinationLocation string   `json:"destination_location"`

	DistanceKm     float64    `json:"distance_km"`
	StartAt        time.Time  `json:"start_at"`
	EndAt          *time.Time `json:"end_at"`
	DurationHours  *int       `json:"duration_hours"`
	NumPassengers  *int       `json:"num_passengers"`
	LuggageCount   *int       `json:"luggage_count"`
	DriverRequired bool       `json:"driver_required"`

	AddOnCodes []string `json:"add_ons"`
	PromoCode  string   `json:"promo_code"`
}

func pointFrom(lat, lng *float64) *types.Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &types.Point{Lat: *lat, Lng: *lng}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.bookings.Create(c.Request.Context(), middleware.Caller(c), booking.CreateCommand{
		CarID:               types.ID(req.CarID),
		TripType:            req.TripType,
		PickupLocation:      req.PickupLocation,
		PickupPoint:         pointFrom(req.PickupLat, req.PickupLng),
		DropLocation:        req.DropLocation,
		DropPoint:           pointFrom(req.DropLat, req.DropLng),
		DestinationLocation: req.DestinationLocation,
		DistanceKm:          req.DistanceKm,
		StartAt:             req.StartAt,
		EndAt:               req.EndAt,
		DurationHours:       req.DurationHours,
		NumPassengers:       req.NumPassengers,
		LuggageCount:        req.LuggageCount,
		DriverRequired:      req.DriverRequired,
		AddOnCodes:          req.AddOnCodes,
		PromoCode:           req.PromoCode,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	bs, err := h.bookings.List(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": bs})
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookings.Get(c.Request.Context(), middleware.Caller(c), types.ID(c.Param("id")))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	to := booking.Status(req.Status)
	if to != booking.StatusConfirmed && to != booking.StatusCancelled {
		writeError(c, http.StatusBadRequest, "status must be confirmed or cancelled")
		return
	}
	b, err := h.bookings.UpdateStatus(c.Request.Context(), middleware.Caller(c), types.ID(c.Param("id")), to)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}
