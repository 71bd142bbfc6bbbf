package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk/internal/service"
)

// EmployeeHandler handles employee management endpoints.
type EmployeeHandler struct {
	empService service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(empService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empService: empService}
}

// Create handles POST /api/v1/employees
// @Summary Create an employee
// @Description Register a new employee record (admin only)
// @Tags employees
// @Accept json
// @Produce json
// @Param request body CreateEmployeeRequest true "Employee details"
// @Success 201 {object} Response{data=domain.Employee} "Employee created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Employee code or email already exists"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var input service.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	emp, err := h.empService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, emp)
}

// List handles GET /api/v1/employees
// @Summary List employees
// @Description List employee records, optionally active only
// @Tags employees
// @Produce json
// @Param active query bool false "Only active employees" default(false)
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Employee,meta=PagMeta} "List of employees"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	activeOnly := c.Query("active") == "true"

	emps, total, err := h.empService.List(c.Request.Context(), activeOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, emps, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/employees/:id
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} Response{data=domain.Employee} "Employee details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	emp, err := h.empService.GetByID(c.Request.Context(), empID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, emp)
}

// Update handles PUT /api/v1/employees/:id
// @Summary Update an employee
// @Description Update employee details (admin only)
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param request body UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Employee} "Updated employee"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	var input service.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	emp, err := h.empService.Update(c.Request.Context(), empID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, emp)
}

// Deactivate handles DELETE /api/v1/employees/:id
// @Summary Deactivate an employee
// @Description Mark an employee as no longer active (admin only)
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} Response "Employee deactivated"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	empID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
		return
	}

	if err := h.empService.Deactivate(c.Request.Context(), empID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deactivated": true})
}
