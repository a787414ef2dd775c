package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond maps a business error to its HTTP status. Anything that is not a
// BusinessError becomes a 500 with the message suppressed unless devMode.
func Respond(c *gin.Context, err error, devMode bool) {
	var be BusinessError
	if errors.As(err, &be) {
		switch be.Kind {
		case KindNotFound:
			NotFound(c, be.Code, be.Message)
		case KindConflict:
			Conflict(c, be.Code, be.Message)
		case KindAuth:
			Unauthorized(c, be.Code, be.Message)
		default: // validation, capacity
			BadRequest(c, be.Code, be.Message)
		}
		return
	}

	msg := "Something went wrong."
	if devMode {
		msg = err.Error()
	}
	Internal(c, "internal_error", msg)
}
