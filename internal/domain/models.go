package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated dashboard user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Employee represents a staff record managed through the dashboard.
type Employee struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	EmpCode     string     `db:"emp_code" json:"emp_code"`
	FullName    string     `db:"full_name" json:"full_name"`
	Email       string     `db:"email" json:"email"`
	Phone       string     `db:"phone" json:"phone"`
	Designation string     `db:"designation" json:"designation"`
	Department  string     `db:"department" json:"department"`
	JoinedOn    time.Time  `db:"joined_on" json:"joined_on"`
	UPIHandle   string     `db:"upi_handle" json:"upi_handle"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	LeftOn      *time.Time `db:"left_on" json:"left_on"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Attendance records a single working day for an employee.
type Attendance struct {
	ID         uuid.UUID        `db:"id" json:"id"`
	EmployeeID uuid.UUID        `db:"employee_id" json:"employee_id"`
	Day        time.Time        `db:"day" json:"day"`
	CheckIn    *time.Time       `db:"check_in" json:"check_in"`
	CheckOut   *time.Time       `db:"check_out" json:"check_out"`
	Status     AttendanceStatus `db:"status" json:"status"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updated_at"`
}

// SalaryStructure holds the percentage-based CTC breakdown for an employee.
// Component percentages are fractions of the annual CTC.
type SalaryStructure struct {
	ID              uuid.UUID `db:"id" json:"id"`
	EmployeeID      uuid.UUID `db:"employee_id" json:"employee_id"`
	AnnualCTC       float64   `db:"annual_ctc" json:"annual_ctc"`
	BasicPercent    float64   `db:"basic_percent" json:"basic_percent"`
	HRAPercent      float64   `db:"hra_percent" json:"hra_percent"`
	DAPercent       float64   `db:"da_percent" json:"da_percent"`
	PFPercent       float64   `db:"pf_percent" json:"pf_percent"`
	ESIPercent      float64   `db:"esi_percent" json:"esi_percent"`
	ProfessionalTax float64   `db:"professional_tax" json:"professional_tax"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// SalarySlip is a generated monthly payslip record.
type SalarySlip struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EmployeeID  uuid.UUID `db:"employee_id" json:"employee_id"`
	Month       int       `db:"month" json:"month"`
	Year        int       `db:"year" json:"year"`
	GrossPay    float64   `db:"gross_pay" json:"gross_pay"`
	Deductions  float64   `db:"deductions" json:"deductions"`
	NetPay      float64   `db:"net_pay" json:"net_pay"`
	S3Key       string    `db:"s3_key" json:"s3_key"`
	GeneratedBy uuid.UUID `db:"generated_by" json:"generated_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Invoice is a persisted invoice record. The submitted draft is kept as JSON;
// the generated PDF lives in object storage.
type Invoice struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	EmployeeID  uuid.UUID       `db:"employee_id" json:"employee_id"`
	Number      string          `db:"number" json:"number"`
	Customer    string          `db:"customer" json:"customer"`
	TotalAmount float64         `db:"total_amount" json:"total_amount"`
	Draft       json.RawMessage `db:"draft" json:"draft"`
	S3Key       string          `db:"s3_key" json:"s3_key"`
	Status      InvoiceStatus   `db:"status" json:"status"`
	CreatedBy   uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// Product is a catalog entry offered on invoices.
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	TaxPercent  float64   `db:"tax_percent" json:"tax_percent"`
	SKU         string    `db:"sku" json:"sku"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// LeaveRequest is an employee's request for leave between two dates.
type LeaveRequest struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	EmployeeID uuid.UUID   `db:"employee_id" json:"employee_id"`
	FromDate   time.Time   `db:"from_date" json:"from_date"`
	ToDate     time.Time   `db:"to_date" json:"to_date"`
	Reason     string      `db:"reason" json:"reason"`
	Status     LeaveStatus `db:"status" json:"status"`
	DecidedBy  *uuid.UUID  `db:"decided_by" json:"decided_by"`
	DecidedAt  *time.Time  `db:"decided_at" json:"decided_at"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
}

// Reminder is a scheduled note delivered by email when due.
type Reminder struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Title     string     `db:"title" json:"title"`
	Body      string     `db:"body" json:"body"`
	DueAt     time.Time  `db:"due_at" json:"due_at"`
	SentAt    *time.Time `db:"sent_at" json:"sent_at"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// LocationPing is a reported employee position.
type LocationPing struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EmployeeID uuid.UUID `db:"employee_id" json:"employee_id"`
	Latitude   float64   `db:"latitude" json:"latitude"`
	Longitude  float64   `db:"longitude" json:"longitude"`
	Accuracy   float64   `db:"accuracy" json:"accuracy"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ResumeMeta stores metadata about an uploaded resume file.
type ResumeMeta struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UploadedBy   uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	FileName     string    `db:"file_name" json:"file_name"`
	OriginalName string    `db:"original_name" json:"original_name"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	S3Bucket     string    `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string    `db:"s3_key" json:"s3_key"`
	ContentType  string    `db:"content_type" json:"content_type"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
