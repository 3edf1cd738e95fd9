// Package inbox provides HTTP handlers for the notification inbox.
package inbox

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/notification"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/utilities"
)

// InboxController handles notification inbox endpoints
type InboxController struct {
	Store *notification.Store
}

// NewInboxController creates a new instance of InboxController
func NewInboxController(store *notification.Store) *InboxController {
	return &InboxController{Store: store}
}

// ListHandler returns the caller's notifications, newest first.
// @Summary List my notifications
// @Tags Inbox
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Notification "The caller's notifications"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notification [get]
func (ic *InboxController) ListHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	notifications, err := ic.Store.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch notifications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCountHandler returns the caller's unread notification count.
// @Summary Count my unread notifications
// @Tags Inbox
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} map[string]int64 "Unread count"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notification/unread-count [get]
func (ic *InboxController) UnreadCountHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	count, err := ic.Store.UnreadCount(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to count notifications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

type markReadInfo struct {
	IDs []uint `json:"ids"`
	All bool   `json:"all"`
}

// MarkReadHandler marks the given notifications as read. IDs that belong to
// other users are silently ignored.
// @Summary Mark notifications as read
// @Tags Inbox
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param body body markReadInfo true "IDs to mark, or all=true"
// @Success 200 {object} utilities.MessageResponse "Notifications marked as read"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notification/read [patch]
func (ic *InboxController) MarkReadHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info markReadInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if err := ic.Store.MarkRead(c.Request.Context(), user.ID, info.IDs, info.All); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to mark notifications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Notifications marked as read"})
}
