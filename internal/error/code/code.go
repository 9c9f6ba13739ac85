package code

// HTTP status codes used by the error code maps.
const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusInternalServerError = 500
	StatusTooManyRequests     = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown server error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: missing, invalid or expired token.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: authenticated but role not allowed.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: rate limited.
	ErrTooManyRequests
)

// User error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: email already registered.
	ErrUserAlreadyExist
	// ErrPasswordIncorrect - 401: invalid email or password.
	ErrPasswordIncorrect
	// ErrUserProtected - 400: account cannot be deleted.
	ErrUserProtected
)

// Tenant error codes (102xxx).
const (
	// ErrTenantNotFound - 404: tenant does not exist.
	ErrTenantNotFound int = iota + 102000
	// ErrTenantNameRequired - 400: tenant name is required.
	ErrTenantNameRequired
)

// Payment error codes (103xxx).
const (
	// ErrPaymentNotFound - 404: payment does not exist.
	ErrPaymentNotFound int = iota + 103000
	// ErrPaymentAmountInvalid - 400: payment amount must be positive.
	ErrPaymentAmountInvalid
	// ErrPaymentMethodInvalid - 400: payment method not in the allowed set.
	ErrPaymentMethodInvalid
)

// Maintenance error codes (104xxx).
const (
	// ErrMaintenanceNotFound - 404: maintenance request does not exist.
	ErrMaintenanceNotFound int = iota + 104000
	// ErrMaintenanceFieldInvalid - 400: priority/status/category not in the allowed set.
	ErrMaintenanceFieldInvalid
)

// Messaging error codes (105xxx).
const (
	// ErrMessageNotFound - 404: message record does not exist.
	ErrMessageNotFound int = iota + 105000
	// ErrTenantPhoneMissing - 400: tenant has no phone number on file.
	ErrTenantPhoneMissing
	// ErrNotificationNotFound - 404: notification does not exist.
	ErrNotificationNotFound
)

// Property error codes (106xxx).
const (
	// ErrPropertyNotFound - 404: property does not exist.
	ErrPropertyNotFound int = iota + 106000
)

// Database error codes (107xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)

// Import error codes (108xxx).
const (
	// ErrImportFileMissing - 400: no CSV file attached to the upload.
	ErrImportFileMissing int = iota + 108000
	// ErrImportFileInvalid - 400: the uploaded file could not be parsed.
	ErrImportFileInvalid
)
