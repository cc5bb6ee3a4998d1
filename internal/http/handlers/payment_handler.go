// README: Payment handlers: record and list payments.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gari/internal/http/middleware"
	"gari/internal/modules/payment"
	"gari/internal/types"
)

type PaymentHandler struct {
	payments *payment.Service
}

func NewPaymentHandler(svc *payment.Service) *PaymentHandler {
	return &PaymentHandler{payments: svc}
}

type createPaymentReq struct {
	BookingID string `json:"booking_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Method    string `json:"method"`
	Status    string `json:"status"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req createPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.payments.Create(c.Request.Context(), middleware.Caller(c), payment.CreateCommand{
		BookingID: types.ID(req.BookingID),
		Amount:    types.Money{Amount: req.Amount, Currency: req.Currency},
		Method:    req.Method,
		Status:    payment.Status(req.Status),
	})
	if errors.Is(err, payment.ErrBadRequest) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		// Booking lookup errors surface with booking semantics (404/403).
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, p)
}

func (h *PaymentHandler) List(c *gin.Context) {
	ps, err := h.payments.ListMine(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"payments": ps})
}
