package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/code"
)

// Response is the uniform success envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody is the uniform failure envelope. Every failure carries an
// "error" string field.
type ErrorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// Success writes a 200 success envelope
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail writes a failure envelope using the default message for the code
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), ErrorBody{
		Code:  errorCode,
		Error: code.GetMessage(errorCode),
	})
}

// FailWithMessage writes a failure envelope with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorBody{
		Code:  errorCode,
		Error: message,
	})
}

// HandleError maps a service error to a failure response. Typed *code.Error
// values keep their code; anything else is surfaced as an unknown error with
// the underlying message.
func HandleError(c *gin.Context, err error) {
	var appErr *code.Error
	if errors.As(err, &appErr) {
		FailWithMessage(c, appErr.Code, appErr.Message)
		return
	}
	FailWithMessage(c, code.ErrUnknown, err.Error())
}

// BindError writes a 400 for request body binding failures
func BindError(c *gin.Context, err error) {
	FailWithMessage(c, code.ErrBind, err.Error())
}

// Unauthorized writes a 401 token failure
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrTokenInvalid)
	}
	FailWithMessage(c, code.ErrTokenInvalid, message)
}

// Forbidden writes a 403 role failure
func Forbidden(c *gin.Context) {
	Fail(c, code.ErrPermissionDenied)
}
