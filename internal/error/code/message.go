package code

// Error code to message mapping.
var codeMessageMap = map[int]string{
	ErrSuccess:          "success",
	ErrUnknown:          "internal server error",
	ErrBind:             "invalid request body",
	ErrValidation:       "request validation failed",
	ErrTokenInvalid:     "invalid or expired token",
	ErrPermissionDenied: "insufficient permissions",
	ErrTooManyRequests:  "too many requests",

	ErrUserNotFound:      "user not found",
	ErrUserAlreadyExist:  "a user with this email already exists",
	ErrPasswordIncorrect: "invalid email or password",
	ErrUserProtected:     "this account cannot be deleted",

	ErrTenantNotFound:     "tenant not found",
	ErrTenantNameRequired: "tenant name is required",

	ErrPaymentNotFound:      "payment not found",
	ErrPaymentAmountInvalid: "payment amount must be greater than zero",
	ErrPaymentMethodInvalid: "invalid payment method",

	ErrMaintenanceNotFound:     "maintenance request not found",
	ErrMaintenanceFieldInvalid: "invalid maintenance field value",

	ErrMessageNotFound:      "message not found",
	ErrTenantPhoneMissing:   "tenant has no phone number",
	ErrNotificationNotFound: "notification not found",

	ErrPropertyNotFound: "property not found",

	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",

	ErrImportFileMissing: "no file uploaded",
	ErrImportFileInvalid: "could not parse uploaded file",
}

// Error code to HTTP status mapping.
var codeStatusMap = map[int]int{
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	ErrUserNotFound:      StatusNotFound,
	ErrUserAlreadyExist:  StatusBadRequest,
	ErrPasswordIncorrect: StatusUnauthorized,
	ErrUserProtected:     StatusBadRequest,

	ErrTenantNotFound:     StatusNotFound,
	ErrTenantNameRequired: StatusBadRequest,

	ErrPaymentNotFound:      StatusNotFound,
	ErrPaymentAmountInvalid: StatusBadRequest,
	ErrPaymentMethodInvalid: StatusBadRequest,

	ErrMaintenanceNotFound:     StatusNotFound,
	ErrMaintenanceFieldInvalid: StatusBadRequest,

	ErrMessageNotFound:      StatusNotFound,
	ErrTenantPhoneMissing:   StatusBadRequest,
	ErrNotificationNotFound: StatusNotFound,

	ErrPropertyNotFound: StatusNotFound,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	ErrImportFileMissing: StatusBadRequest,
	ErrImportFileInvalid: StatusBadRequest,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "internal server error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
