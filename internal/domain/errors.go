package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrEmployeeInactive     = errors.New("employee is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateEmpCode     = errors.New("employee code already exists")
	ErrDuplicateSKU         = errors.New("product sku already exists")
	ErrAlreadyCheckedIn     = errors.New("employee already checked in for the day")
	ErrNotCheckedIn         = errors.New("employee has not checked in for the day")
	ErrNoSalaryStructure    = errors.New("no salary structure configured for employee")
	ErrSlipAlreadyGenerated = errors.New("salary slip already generated for this month")
	ErrLeaveAlreadyDecided  = errors.New("leave request has already been decided")
	ErrInvalidLeaveRange    = errors.New("leave end date precedes start date")
	ErrNoLineItems          = errors.New("invoice has no line items and no quick entry")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("file upload to storage failed")
)
