// README: Handler tests for booking routes: auth gating and request validation.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gari/internal/http/handlers"
	httpmiddleware "gari/internal/http/middleware"
	"gari/internal/infra"
	"gari/internal/modules/booking"
)

// stubTokenVerifier is a test double for infra.TokenVerifier.
type stubTokenVerifier struct {
	token *infra.Token
	err   error
}

func (s *stubTokenVerifier) VerifyToken(_ context.Context, _ string) (*infra.Token, error) {
	return s.token, s.err
}

// buildTestRouter wires a minimal Gin engine with the auth middleware and the
// booking handler. booking.NewService with nil deps is safe here because
// every assertion hits a path that fails before any store call.
func buildTestRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := booking.NewService(nil, nil, nil, nil, nil, nil)
	r := gin.New()
	r.Use(httpmiddleware.Auth(verifier))
	h := handlers.NewBookingHandler(svc)
	r.POST("/api/bookings", h.Create)
	r.POST("/api/bookings/:id/status", h.UpdateStatus)
	return r
}

func makeVerifier(uid, role string) *stubTokenVerifier {
	return &stubTokenVerifier{token: &infra.Token{UID: uid, Role: role}}
}

func doRequest(r *gin.Engine, method, path string, body any, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreate_Unauthenticated(t *testing.T) {
	r := buildTestRouter(&stubTokenVerifier{err: errors.New("no token")})
	w := doRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"car_id":    "car1",
		"trip_type": "Hourly Rental",
	}, "Bearer badtoken")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCreate_InvalidJSON(t *testing.T) {
	r := buildTestRouter(makeVerifier("user1", ""))
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer sometoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	r := buildTestRouter(makeVerifier("user1", ""))
	// No car_id, no start — rejected before any availability check.
	w := doRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"trip_type": "Hourly Rental",
	}, "Bearer sometoken")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreate_EndBeforeStart(t *testing.T) {
	r := buildTestRouter(makeVerifier("user1", ""))
	w := doRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"car_id":          "car1",
		"trip_type":       "Hourly Rental",
		"pickup_location": "MG Road",
		"start_at":        "2026-09-01T12:00:00Z",
		"end_at":          "2026-09-01T10:00:00Z",
	}, "Bearer sometoken")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	r := buildTestRouter(makeVerifier("user1", ""))
	w := doRequest(r, http.MethodPost, "/api/bookings/abc123/status", map[string]any{
		"status": "pending",
	}, "Bearer sometoken")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateStatus_Unauthenticated(t *testing.T) {
	r := buildTestRouter(&stubTokenVerifier{err: errors.New("expired")})
	w := doRequest(r, http.MethodPost, "/api/bookings/abc123/status", map[string]any{
		"status": "confirmed",
	}, "Bearer expiredtoken")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
