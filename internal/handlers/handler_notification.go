package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/wisnuad/internship_mgmt_app/internal/core/ports/services"
	"github.com/wisnuad/internship_mgmt_app/internal/dto"
	"github.com/wisnuad/internship_mgmt_app/internal/middleware"
)

// notificationHandler serves the recipient-facing notification inbox.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(notificationService portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

// listNotifications godoc
// @Summary List notifications
// @Description Retrieves the caller's notification inbox, newest first
// @Tags notifications
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListNotificationsResponse "Notification inbox"
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listNotifications", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.notificationService.ListNotifications(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// markNotificationRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Param   notificationID path string true "Notification ID"
// @Success 204 "Notification marked read"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{notificationID}/read [post]
func (h *notificationHandler) markNotificationRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("notificationID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), notificationID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to mark notification read")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerNotificationRoutes registers the notification inbox routes
func registerNotificationRoutes(group *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := group.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:notificationID/read", h.markNotificationRead)
	}
}
