package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk/internal/service"
)

// AttendanceHandler handles attendance tracking endpoints.
type AttendanceHandler struct {
	attService service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attService: attService}
}

// CheckIn handles POST /api/v1/attendance/:employee_id/check-in
// @Summary Check in
// @Description Record today's check-in for an employee
// @Tags attendance
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Success 201 {object} Response{data=domain.Attendance} "Attendance recorded"
// @Failure 409 {object} ErrorResponseBody "Already checked in"
// @Security BearerAuth
// @Router /attendance/{employee_id}/check-in [post]
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	att, err := h.attService.CheckIn(c.Request.Context(), empID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, att)
}

// CheckOut handles POST /api/v1/attendance/:employee_id/check-out
// @Summary Check out
// @Description Record today's check-out for an employee
// @Tags attendance
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Success 200 {object} Response{data=domain.Attendance} "Attendance updated"
// @Failure 409 {object} ErrorResponseBody "Not checked in"
// @Security BearerAuth
// @Router /attendance/{employee_id}/check-out [post]
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	att, err := h.attService.CheckOut(c.Request.Context(), empID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, att)
}

// Mark handles POST /api/v1/attendance/mark
// @Summary Mark attendance
// @Description Manually set an employee's status for a day (admin only)
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body MarkAttendanceRequest true "Attendance entry"
// @Success 200 {object} Response{data=domain.Attendance} "Attendance marked"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Security BearerAuth
// @Router /attendance/mark [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var input service.MarkAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	att, err := h.attService.Mark(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, att)
}

// Month handles GET /api/v1/attendance/:employee_id
// @Summary Monthly attendance
// @Description List an employee's attendance records for a month
// @Tags attendance
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Param year query int true "Year" example(2025)
// @Param month query int true "Month (1-12)" example(3)
// @Success 200 {object} Response{data=[]domain.Attendance} "Attendance records"
// @Security BearerAuth
// @Router /attendance/{employee_id} [get]
func (h *AttendanceHandler) Month(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	records, err := h.attService.ListByEmployeeMonth(c.Request.Context(), empID, year, month)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, records)
}

// ExportMonth handles GET /api/v1/attendance/:employee_id/export
// @Summary Export monthly attendance
// @Description Download an employee's month of attendance as an XLSX workbook
// @Tags attendance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param employee_id path string true "Employee ID (UUID)"
// @Param year query int true "Year" example(2025)
// @Param month query int true "Month (1-12)" example(3)
// @Success 200 {file} binary "XLSX workbook"
// @Security BearerAuth
// @Router /attendance/{employee_id}/export [get]
func (h *AttendanceHandler) ExportMonth(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	data, err := h.attService.ExportMonthXLSX(c.Request.Context(), empID, year, month)
	if err != nil {
		HandleError(c, err)
		return
	}

	fileName := fmt.Sprintf("attendance_%s_%d-%02d.xlsx", empID, year, int(month))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Day handles GET /api/v1/attendance
// @Summary Daily attendance
// @Description List all attendance records for a day (admin only)
// @Tags attendance
// @Produce json
// @Param day query string true "Day (YYYY-MM-DD)" example(2025-03-14)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Attendance,meta=PagMeta} "Attendance records"
// @Security BearerAuth
// @Router /attendance [get]
func (h *AttendanceHandler) Day(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("day"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DAY", "day must be YYYY-MM-DD")
		return
	}

	offset, limit := pagination(c)

	records, total, err := h.attService.ListByDay(c.Request.Context(), day, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// yearMonth parses required year/month query params, writing a 400 on failure.
func yearMonth(c *gin.Context) (int, time.Month, bool) {
	year := atoiDefault(c.Query("year"), 0)
	month := atoiDefault(c.Query("month"), 0)
	if year < 2000 || month < 1 || month > 12 {
		RespondError(c, http.StatusBadRequest, "INVALID_PERIOD", "year and month query params are required")
		return 0, 0, false
	}
	return year, time.Month(month), true
}
