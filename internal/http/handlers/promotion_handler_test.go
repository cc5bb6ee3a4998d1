// README: Handler tests for promotion validation responses.
package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"gari/internal/http/handlers"
	"gari/internal/modules/promotion"
)

// memPromoSource is a test double for promotion.Source.
type memPromoSource struct {
	promos map[string]promotion.Promotion
}

func (m *memPromoSource) PromotionByCode(_ context.Context, code string) (*promotion.Promotion, error) {
	p, ok := m.promos[code]
	if !ok {
		return nil, promotion.ErrNotFound
	}
	return &p, nil
}

func (m *memPromoSource) ListActiveOffers(_ context.Context) ([]promotion.Offer, error) {
	return nil, nil
}

func buildPromoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	src := &memPromoSource{promos: map[string]promotion.Promotion{
		"SAVE10": {
			ID:             "p1",
			Code:           "SAVE10",
			DiscountAmount: 10,
			IsActive:       true,
			ValidFrom:      time.Now().Add(-24 * time.Hour),
			ValidUntil:     time.Now().Add(24 * time.Hour),
		},
	}}
	r := gin.New()
	h := handlers.NewPromotionHandler(promotion.NewService(src))
	r.POST("/api/promotions/validate", h.Validate)
	return r
}

func TestValidatePromotion_Valid(t *testing.T) {
	r := buildPromoRouter()
	w := doRequest(r, http.MethodPost, "/api/promotions/validate", map[string]any{"code": "save10"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"valid":true`) {
		t.Errorf("expected valid:true, got %s", body)
	}
	if !strings.Contains(body, "SAVE10") {
		t.Errorf("expected promotion payload, got %s", body)
	}
}

func TestValidatePromotion_UnknownCode(t *testing.T) {
	r := buildPromoRouter()
	w := doRequest(r, http.MethodPost, "/api/promotions/validate", map[string]any{"code": "NOPE"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"valid":false`) {
		t.Errorf("expected valid:false, got %s", body)
	}
	if !strings.Contains(body, "invalid or inactive code") {
		t.Errorf("expected opaque rejection reason, got %s", body)
	}
}
