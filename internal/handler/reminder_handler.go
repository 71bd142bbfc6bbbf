package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk/internal/domain"
	"staffdesk/internal/middleware"
	"staffdesk/internal/service"
)

// ReminderHandler handles personal reminder endpoints.
type ReminderHandler struct {
	reminderService service.ReminderService
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// Create handles POST /api/v1/reminders
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body CreateReminderRequest true "Reminder details"
// @Success 201 {object} Response{data=domain.Reminder} "Reminder created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.UserID = userID

	rem, err := h.reminderService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, rem)
}

// List handles GET /api/v1/reminders
// @Summary List own reminders
// @Tags reminders
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Reminder,meta=PagMeta} "Reminders"
// @Security BearerAuth
// @Router /reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)

	rems, total, err := h.reminderService.ListByUser(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, rems, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/reminders/:id
// @Summary Update a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID (UUID)"
// @Param request body UpdateReminderRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Reminder} "Updated reminder"
// @Failure 403 {object} ErrorResponseBody "Not the owner"
// @Failure 404 {object} ErrorResponseBody "Reminder not found"
// @Security BearerAuth
// @Router /reminders/{id} [put]
func (h *ReminderHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	remID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid reminder ID")
		return
	}

	if !h.ownsReminder(c, remID, userID) {
		return
	}

	var input service.UpdateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rem, err := h.reminderService.Update(c.Request.Context(), remID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rem)
}

// Delete handles DELETE /api/v1/reminders/:id
// @Summary Delete a reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID (UUID)"
// @Success 200 {object} Response "Reminder deleted"
// @Failure 403 {object} ErrorResponseBody "Not the owner"
// @Failure 404 {object} ErrorResponseBody "Reminder not found"
// @Security BearerAuth
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	remID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid reminder ID")
		return
	}

	if !h.ownsReminder(c, remID, userID) {
		return
	}

	if err := h.reminderService.Delete(c.Request.Context(), remID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// ownsReminder rejects access to reminders belonging to another user, unless
// the caller is an admin. Writes the error response itself on failure.
func (h *ReminderHandler) ownsReminder(c *gin.Context, remID, userID uuid.UUID) bool {
	rem, err := h.reminderService.GetByID(c.Request.Context(), remID)
	if err != nil {
		HandleError(c, err)
		return false
	}
	if rem.UserID != userID && domain.UserRole(middleware.GetRole(c)) != domain.RoleAdmin {
		RespondError(c, http.StatusForbidden, "FORBIDDEN", "reminder belongs to another user")
		return false
	}
	return true
}
