package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk/internal/service"
)

// SalaryHandler handles salary structure and payslip endpoints.
type SalaryHandler struct {
	salaryService service.SalaryService
}

// NewSalaryHandler creates a new SalaryHandler.
func NewSalaryHandler(salaryService service.SalaryService) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService}
}

// SetStructure handles PUT /api/v1/salary/:employee_id/structure
// @Summary Set salary structure
// @Description Create or replace an employee's CTC breakdown (admin only)
// @Tags salary
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Param request body SetStructureRequest true "Salary structure"
// @Success 200 {object} Response{data=domain.SalaryStructure} "Structure saved"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /salary/{employee_id}/structure [put]
func (h *SalaryHandler) SetStructure(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	var input service.SetStructureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	structure, err := h.salaryService.SetStructure(c.Request.Context(), empID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, structure)
}

// GetStructure handles GET /api/v1/salary/:employee_id/structure
// @Summary Get salary structure
// @Tags salary
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Success 200 {object} Response{data=domain.SalaryStructure} "Salary structure"
// @Failure 404 {object} ErrorResponseBody "No structure defined"
// @Security BearerAuth
// @Router /salary/{employee_id}/structure [get]
func (h *SalaryHandler) GetStructure(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	structure, err := h.salaryService.GetStructure(c.Request.Context(), empID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, structure)
}

// GenerateSlip handles POST /api/v1/salary/slips
// @Summary Generate a payslip
// @Description Compute a month's payslip, render the PDF and upload it (admin only)
// @Tags salary
// @Accept json
// @Produce json
// @Param request body GenerateSlipRequest true "Slip parameters"
// @Success 201 {object} Response{data=service.SlipResult} "Slip generated with download URL"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "No salary structure"
// @Failure 409 {object} ErrorResponseBody "Slip already generated"
// @Security BearerAuth
// @Router /salary/slips [post]
func (h *SalaryHandler) GenerateSlip(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.GenerateSlipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.GeneratedBy = userID

	result, err := h.salaryService.GenerateSlip(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// ListSlips handles GET /api/v1/salary/:employee_id/slips
// @Summary List payslips
// @Tags salary
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.SalarySlip,meta=PagMeta} "Payslips"
// @Security BearerAuth
// @Router /salary/{employee_id}/slips [get]
func (h *SalaryHandler) ListSlips(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	offset, limit := pagination(c)

	slips, total, err := h.salaryService.ListSlips(c.Request.Context(), empID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, slips, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// SlipURL handles GET /api/v1/salary/:employee_id/slips/url
// @Summary Payslip download URL
// @Description Presigned URL for a generated payslip PDF
// @Tags salary
// @Produce json
// @Param employee_id path string true "Employee ID (UUID)"
// @Param year query int true "Year" example(2025)
// @Param month query int true "Month (1-12)" example(3)
// @Success 200 {object} Response{data=DownloadURLResponse} "Download URL"
// @Failure 404 {object} ErrorResponseBody "Slip not found"
// @Security BearerAuth
// @Router /salary/{employee_id}/slips/url [get]
func (h *SalaryHandler) SlipURL(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	url, err := h.salaryService.GetSlipURL(c.Request.Context(), empID, year, month)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}
