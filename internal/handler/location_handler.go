package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk/internal/service"
)

// LocationHandler handles field-staff location tracking endpoints.
type LocationHandler struct {
	locService service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locService service.LocationService) *LocationHandler {
	return &LocationHandler{locService: locService}
}

// RecordPing handles POST /api/v1/locations
// @Summary Record a location ping
// @Description Persist a GPS ping and broadcast it to dashboard clients
// @Tags locations
// @Accept json
// @Produce json
// @Param request body RecordPingRequest true "Location ping"
// @Success 201 {object} Response{data=domain.LocationPing} "Ping recorded"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Employee inactive"
// @Security BearerAuth
// @Router /locations [post]
func (h *LocationHandler) RecordPing(c *gin.Context) {
	var input service.RecordPingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ping, err := h.locService.RecordPing(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, ping)
}

// History handles GET /api/v1/locations/:employee_id
// @Summary Location history
// @Description List an employee's pings within a time window
// @Tags locations
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Param from query string true "Window start (RFC 3339)" example(2025-03-14T00:00:00Z)
// @Param to query string true "Window end (RFC 3339)" example(2025-03-14T23:59:59Z)
// @Success 200 {object} Response{data=[]domain.LocationPing} "Location pings"
// @Security BearerAuth
// @Router /locations/{employee_id} [get]
func (h *LocationHandler) History(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	from, to, ok := timeWindow(c)
	if !ok {
		return
	}

	pings, err := h.locService.History(c.Request.Context(), empID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pings)
}

// Latest handles GET /api/v1/locations
// @Summary Latest positions
// @Description Most recent ping per employee, for the live dashboard map
// @Tags locations
// @Produce json
// @Success 200 {object} Response{data=[]domain.LocationPing} "Latest pings"
// @Security BearerAuth
// @Router /locations [get]
func (h *LocationHandler) Latest(c *gin.Context) {
	pings, err := h.locService.Latest(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pings)
}

// Export handles GET /api/v1/locations/:employee_id/export
// @Summary Export location history
// @Description Download an employee's pings for a window as an XLSX workbook
// @Tags locations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param employee_id path string true "Employee ID (UUID)"
// @Param from query string true "Window start (RFC 3339)" example(2025-03-14T00:00:00Z)
// @Param to query string true "Window end (RFC 3339)" example(2025-03-14T23:59:59Z)
// @Success 200 {file} binary "XLSX workbook"
// @Security BearerAuth
// @Router /locations/{employee_id}/export [get]
func (h *LocationHandler) Export(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	from, to, ok := timeWindow(c)
	if !ok {
		return
	}

	data, err := h.locService.ExportXLSX(c.Request.Context(), empID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	fileName := fmt.Sprintf("locations_%s_%s.xlsx", empID, from.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// timeWindow parses required from/to query params, writing a 400 on failure.
func timeWindow(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_WINDOW", "from must be RFC 3339")
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_WINDOW", "to must be RFC 3339")
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		RespondError(c, http.StatusBadRequest, "INVALID_WINDOW", "to precedes from")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
