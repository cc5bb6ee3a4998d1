// README: Notification handlers: inbox listing and read acknowledgement.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gari/internal/http/middleware"
	"gari/internal/modules/notification"
	"gari/internal/types"
)

type NotificationHandler struct {
	notifications *notification.Service
}

func NewNotificationHandler(svc *notification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	caller := middleware.Caller(c)
	ns, err := h.notifications.List(c.Request.Context(), caller, caller.UserID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"notifications": ns})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.notifications.MarkRead(c.Request.Context(), middleware.Caller(c), types.ID(c.Param("id")))
	if errors.Is(err, notification.ErrNotFound) {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"read": true})
}
