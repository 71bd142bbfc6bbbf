package handler

import (
	"time"

	"github.com/google/uuid"

	"staffdesk/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@staffdesk.in"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"jane.doe@staffdesk.in"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" binding:"required" example:"Jane Doe"`
	Role     domain.UserRole `json:"role" binding:"required" example:"member"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    *string          `json:"email" example:"jane.smith@staffdesk.in"`
	FullName *string          `json:"full_name" example:"Jane Smith"`
	Role     *domain.UserRole `json:"role" example:"admin"`
	IsActive *bool            `json:"is_active" example:"true"`
}

// CreateEmployeeRequest represents the create employee request body.
type CreateEmployeeRequest struct {
	EmpCode     string    `json:"emp_code" binding:"required" example:"EMP042"`
	FullName    string    `json:"full_name" binding:"required" example:"Ravi Kumar"`
	Email       string    `json:"email" binding:"required" example:"ravi.kumar@staffdesk.in"`
	Phone       string    `json:"phone" example:"+919876543210"`
	Designation string    `json:"designation" example:"Field Executive"`
	Department  string    `json:"department" example:"Sales"`
	JoinedOn    time.Time `json:"joined_on" binding:"required" example:"2024-06-01T00:00:00Z"`
	UPIHandle   string    `json:"upi_handle" example:"ravi.kumar@okhdfcbank"`
}

// UpdateEmployeeRequest represents the update employee request body.
type UpdateEmployeeRequest struct {
	FullName    *string `json:"full_name" example:"Ravi K Kumar"`
	Email       *string `json:"email" example:"ravi.k@staffdesk.in"`
	Phone       *string `json:"phone" example:"+919876543211"`
	Designation *string `json:"designation" example:"Senior Field Executive"`
	Department  *string `json:"department" example:"Operations"`
	UPIHandle   *string `json:"upi_handle" example:"ravi.k@ybl"`
}

// MarkAttendanceRequest represents the manual attendance marking request body.
type MarkAttendanceRequest struct {
	EmployeeID uuid.UUID               `json:"employee_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Day        time.Time               `json:"day" binding:"required" example:"2025-03-14T00:00:00Z"`
	Status     domain.AttendanceStatus `json:"status" binding:"required" example:"present"`
}

// SetStructureRequest represents the salary structure request body.
type SetStructureRequest struct {
	AnnualCTC       float64 `json:"annual_ctc" binding:"required" example:"600000"`
	BasicPercent    float64 `json:"basic_percent" binding:"required" example:"40"`
	HRAPercent      float64 `json:"hra_percent" example:"20"`
	DAPercent       float64 `json:"da_percent" example:"10"`
	PFPercent       float64 `json:"pf_percent" example:"12"`
	ESIPercent      float64 `json:"esi_percent" example:"0.75"`
	ProfessionalTax float64 `json:"professional_tax" example:"200"`
}

// GenerateSlipRequest represents the payslip generation request body.
type GenerateSlipRequest struct {
	EmployeeID  uuid.UUID `json:"employee_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Year        int       `json:"year" binding:"required" example:"2025"`
	Month       int       `json:"month" binding:"required" example:"3"`
	WorkingDays int       `json:"working_days" binding:"required" example:"22"`
}

// ExtractRequest represents the payment extraction request body.
type ExtractRequest struct {
	Raw string `json:"raw" binding:"required" example:"upi://pay?pa=ravi.kumar@okhdfcbank&pn=Ravi%20Kumar&am=2500.00"`
}

// InvoiceLineRequest represents a single line item on an invoice request.
type InvoiceLineRequest struct {
	Name       string  `json:"name" binding:"required" example:"Consulting services"`
	Quantity   float64 `json:"quantity" binding:"required" example:"10"`
	UnitPrice  float64 `json:"unit_price" binding:"required" example:"2500.00"`
	Discount   float64 `json:"discount" example:"5"`
	TaxPercent float64 `json:"tax_percent" example:"18"`
	Shipping   float64 `json:"shipping" example:"0"`
}

// GenerateInvoiceRequest represents the invoice generation request body.
type GenerateInvoiceRequest struct {
	EmployeeID    uuid.UUID            `json:"employee_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Number        string               `json:"number" example:"INV-2025-0042"`
	InvoiceDate   *time.Time           `json:"invoice_date" example:"2025-03-14T00:00:00Z"`
	DueDate       *time.Time           `json:"due_date" example:"2025-04-13T00:00:00Z"`
	CustomerName  string               `json:"customer_name" binding:"required" example:"Acme Traders"`
	CustomerAddr  string               `json:"customer_address" example:"14 MG Road, Bengaluru"`
	CustomerEmail string               `json:"customer_email" example:"accounts@acmetraders.in"`
	CustomerGSTIN string               `json:"customer_gstin" example:"29AABCU9603R1ZM"`
	Items         []InvoiceLineRequest `json:"items"`
	TotalAmount   string               `json:"total_amount" example:"29500.00"`
	UID           string               `json:"uid" example:"ravi.kumar@okhdfcbank"`
	Terms         []string             `json:"terms" example:"Payment due within 30 days"`
	Notes         string               `json:"notes" example:"Thank you for your business"`
}

// UpdateInvoiceStatusRequest represents the invoice status update request body.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required" example:"paid"`
}

// CreateProductRequest represents the create product request body.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required" example:"Annual maintenance contract"`
	Description string  `json:"description" example:"12-month on-site support"`
	UnitPrice   float64 `json:"unit_price" binding:"required" example:"15000.00"`
	TaxPercent  float64 `json:"tax_percent" example:"18"`
	SKU         string  `json:"sku" binding:"required" example:"AMC-STD-12"`
}

// UpdateProductRequest represents the update product request body.
type UpdateProductRequest struct {
	Name        *string  `json:"name" example:"Annual maintenance contract - Plus"`
	Description *string  `json:"description" example:"12-month support with priority SLA"`
	UnitPrice   *float64 `json:"unit_price" example:"18000.00"`
	TaxPercent  *float64 `json:"tax_percent" example:"18"`
	IsActive    *bool    `json:"is_active" example:"true"`
}

// RequestLeaveRequest represents the leave request body.
type RequestLeaveRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	FromDate   time.Time `json:"from_date" binding:"required" example:"2025-03-20T00:00:00Z"`
	ToDate     time.Time `json:"to_date" binding:"required" example:"2025-03-22T00:00:00Z"`
	Reason     string    `json:"reason" binding:"required" example:"Family function"`
}

// DecideLeaveRequest represents the leave decision request body.
type DecideLeaveRequest struct {
	Approve bool `json:"approve" example:"true"`
}

// CreateReminderRequest represents the create reminder request body.
type CreateReminderRequest struct {
	Title string    `json:"title" binding:"required" example:"Submit GST filing"`
	Body  string    `json:"body" example:"GSTR-3B for February is due"`
	DueAt time.Time `json:"due_at" binding:"required" example:"2025-03-20T09:00:00Z"`
}

// UpdateReminderRequest represents the update reminder request body.
type UpdateReminderRequest struct {
	Title *string    `json:"title" example:"Submit GST filing (revised)"`
	Body  *string    `json:"body" example:"GSTR-3B for February, revised figures"`
	DueAt *time.Time `json:"due_at" example:"2025-03-21T09:00:00Z"`
}

// RecordPingRequest represents the location ping request body.
type RecordPingRequest struct {
	EmployeeID uuid.UUID  `json:"employee_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Latitude   float64    `json:"latitude" binding:"required" example:"12.9716"`
	Longitude  float64    `json:"longitude" binding:"required" example:"77.5946"`
	Accuracy   float64    `json:"accuracy" example:"8.5"`
	RecordedAt *time.Time `json:"recorded_at" example:"2025-03-14T10:32:00Z"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-03-14T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// DownloadURLResponse represents a presigned download URL response.
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url" example:"https://s3.ap-south-1.amazonaws.com/staffdesk-files/...?X-Amz-Signature=..."`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
