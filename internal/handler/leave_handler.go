package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk/internal/service"
)

// LeaveHandler handles leave request endpoints.
type LeaveHandler struct {
	leaveService service.LeaveService
}

// NewLeaveHandler creates a new LeaveHandler.
func NewLeaveHandler(leaveService service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// Request handles POST /api/v1/leave
// @Summary Request leave
// @Tags leave
// @Accept json
// @Produce json
// @Param request body RequestLeaveRequest true "Leave request"
// @Success 201 {object} Response{data=domain.LeaveRequest} "Leave requested"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Security BearerAuth
// @Router /leave [post]
func (h *LeaveHandler) Request(c *gin.Context) {
	var input service.RequestLeaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	req, err := h.leaveService.Request(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, req)
}

// Decide handles POST /api/v1/leave/:id/decide
// @Summary Decide a leave request
// @Description Approve or reject a pending leave request (admin only)
// @Tags leave
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID (UUID)"
// @Param request body DecideLeaveRequest true "Decision"
// @Success 200 {object} Response{data=domain.LeaveRequest} "Decision recorded"
// @Failure 409 {object} ErrorResponseBody "Already decided"
// @Security BearerAuth
// @Router /leave/{id}/decide [post]
func (h *LeaveHandler) Decide(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	leaveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid leave request ID")
		return
	}

	var input service.DecideLeaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.DecidedBy = userID

	req, err := h.leaveService.Decide(c.Request.Context(), leaveID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, req)
}

// ListByEmployee handles GET /api/v1/leave/employee/:employee_id
// @Summary List an employee's leave requests
// @Tags leave
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.LeaveRequest,meta=PagMeta} "Leave requests"
// @Security BearerAuth
// @Router /leave/employee/{employee_id} [get]
func (h *LeaveHandler) ListByEmployee(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	offset, limit := pagination(c)

	reqs, total, err := h.leaveService.ListByEmployee(c.Request.Context(), empID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, reqs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListPending handles GET /api/v1/leave/pending
// @Summary List pending leave requests
// @Description List leave requests awaiting a decision (admin only)
// @Tags leave
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.LeaveRequest,meta=PagMeta} "Pending requests"
// @Security BearerAuth
// @Router /leave/pending [get]
func (h *LeaveHandler) ListPending(c *gin.Context) {
	offset, limit := pagination(c)

	reqs, total, err := h.leaveService.ListPending(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, reqs, PagMeta{Total: total, Offset: offset, Limit: limit})
}
