// README: Promotion validation and offer listing handlers.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gari/internal/modules/promotion"
)

type PromotionHandler struct {
	promotions *promotion.Service
}

func NewPromotionHandler(svc *promotion.Service) *PromotionHandler {
	return &PromotionHandler{promotions: svc}
}

type validatePromoReq struct {
	Code string `json:"code"`
}

// Validate answers {valid, promotion?} or {valid, reason}. Rejections share
// one reason string regardless of cause.
func (h *PromotionHandler) Validate(c *gin.Context) {
	var req validatePromoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.promotions.Validate(c.Request.Context(), req.Code, time.Now())
	if errors.Is(err, promotion.ErrInvalidCode) {
		writeJSON(c, http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"valid": true, "promotion": p})
}

func (h *PromotionHandler) ListOffers(c *gin.Context) {
	offers, err := h.promotions.ActiveOffers(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"offers": offers})
}
