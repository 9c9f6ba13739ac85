package code

// Error is a service-level error carrying one of the numbered codes.
// Controllers map it to an HTTP response via the code maps.
type Error struct {
	Code    int
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the default message for the code
func New(c int) *Error {
	return &Error{Code: c, Message: GetMessage(c)}
}

// NewWithMessage creates an Error with a custom message
func NewWithMessage(c int, message string) *Error {
	return &Error{Code: c, Message: message}
}
