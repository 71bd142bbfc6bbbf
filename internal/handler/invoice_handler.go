package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staffdesk/internal/csvexport"
	"staffdesk/internal/domain"
	"staffdesk/internal/service"
)

// InvoiceHandler handles payment extraction and invoice generation endpoints.
type InvoiceHandler struct {
	invService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invService: invService}
}

// Extract handles POST /api/v1/invoices/extract
// @Summary Extract payment details
// @Description Pull amount, payee handle and bank from a raw UPI or QR payment string
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Raw payment string"
// @Success 200 {object} Response{data=upi.PaymentInfo} "Extracted payment info"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Nothing extractable"
// @Security BearerAuth
// @Router /invoices/extract [post]
func (h *InvoiceHandler) Extract(c *gin.Context) {
	var input service.ExtractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	info, err := h.invService.Extract(c.Request.Context(), input.Raw)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, info)
}

// Generate handles POST /api/v1/invoices
// @Summary Generate an invoice
// @Description Compose a single-page invoice PDF, upload it and persist the record
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body GenerateInvoiceRequest true "Invoice draft"
// @Success 201 {object} Response{data=service.InvoiceResult} "Invoice generated with download URL"
// @Failure 400 {object} ErrorResponseBody "Validation error or no line items"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Generate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.GenerateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	input.CreatedBy = userID

	result, err := h.invService.Generate(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param employee_id query string false "Filter by employee ID (UUID)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Invoice,meta=PagMeta} "Invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	if raw := c.Query("employee_id"); raw != "" {
		empID, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid employee ID")
			return
		}
		invs, total, err := h.invService.ListByEmployee(c.Request.Context(), empID, offset, limit)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondPaginated(c, invs, PagMeta{Total: total, Offset: offset, Limit: limit})
		return
	}

	invs, total, err := h.invService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportCSV handles GET /api/v1/invoices/export
// @Summary Export invoice register
// @Description Download the full invoice register as CSV (admin only)
// @Tags invoices
// @Produce text/csv
// @Success 200 {file} binary "CSV file"
// @Security BearerAuth
// @Router /invoices/export [get]
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	fileName := csvexport.BuildFilename("invoice_register")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if err := h.invService.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers are already sent; log and abort the stream.
		log.Printf("invoice export failed: %v", err)
		c.Abort()
	}
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=domain.Invoice} "Invoice record"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	invID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, err := h.invService.GetByID(c.Request.Context(), invID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// PDF handles GET /api/v1/invoices/:id/pdf
// @Summary Invoice download URL
// @Description Presigned URL for the generated invoice PDF
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=DownloadURLResponse} "Download URL"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *gin.Context) {
	invID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	url, err := h.invService.GetDownloadURL(c.Request.Context(), invID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// UpdateStatus handles PATCH /api/v1/invoices/:id/status
// @Summary Update invoice status
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param request body UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} Response "Status updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security BearerAuth
// @Router /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	invID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	var body struct {
		Status domain.InvoiceStatus `json:"status" binding:"required,oneof=draft generated paid cancelled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.invService.UpdateStatus(c.Request.Context(), invID, body.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"status": body.Status})
}
