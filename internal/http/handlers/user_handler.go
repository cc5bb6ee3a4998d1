// README: User handlers: self profile and admin listing.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gari/internal/http/middleware"
	"gari/internal/modules/account"
)

type UserHandler struct {
	accounts *account.Service
}

func NewUserHandler(svc *account.Service) *UserHandler {
	return &UserHandler{accounts: svc}
}

func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.accounts.Me(c.Request.Context(), middleware.Caller(c))
	if errors.Is(err, account.ErrNotFound) {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, u)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.accounts.List(c.Request.Context(), middleware.Caller(c))
	if errors.Is(err, account.ErrForbidden) {
		writeError(c, http.StatusForbidden, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"users": users})
}
