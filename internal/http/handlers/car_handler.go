// README: Car handlers: catalog reads, availability search, reviews.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gari/internal/http/middleware"
	"gari/internal/modules/booking"
	"gari/internal/modules/catalog"
	"gari/internal/types"
)

type CarHandler struct {
	catalog  *catalog.Service
	bookings *booking.Service
}

func NewCarHandler(cat *catalog.Service, bookings *booking.Service) *CarHandler {
	return &CarHandler{catalog: cat, bookings: bookings}
}

func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.catalog.ListCars(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *CarHandler) Get(c *gin.Context) {
	car, err := h.catalog.GetCar(c.Request.Context(), types.ID(c.Param("id")))
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, car)
}

// Search answers availability queries. start is required (RFC 3339); a
// missing end means an open-ended rental.
func (h *CarHandler) Search(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "start must be RFC 3339")
		return
	}
	var end *time.Time
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, "end must be RFC 3339")
			return
		}
		end = &t
	}
	numCars := 0
	if raw := c.Query("num_cars"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, http.StatusBadRequest, "num_cars must be a positive integer")
			return
		}
		numCars = n
	}

	cars, err := h.bookings.Search(c.Request.Context(), booking.SearchQuery{
		TripType:       c.Query("trip_type"),
		PickupLocation: c.Query("pickup_location"),
		Start:          start,
		End:            end,
		NumCars:        numCars,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *CarHandler) ListReviews(c *gin.Context) {
	reviews, err := h.catalog.ListReviews(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"reviews": reviews})
}

type createReviewReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *CarHandler) CreateReview(c *gin.Context) {
	var req createReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	caller := middleware.Caller(c)
	r, err := h.catalog.CreateReview(c.Request.Context(), caller, types.ID(c.Param("id")), req.Rating, req.Comment)
	switch {
	case errors.Is(err, catalog.ErrInvalidReview):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case err != nil:
		writeError(c, http.StatusInternalServerError, "internal error")
	default:
		writeJSON(c, http.StatusCreated, r)
	}
}
