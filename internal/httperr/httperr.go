package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the failure half of the response envelope.
type HTTPError struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Error:   message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context) {
	Write(c, http.StatusUnauthorized, "Unauthorized")
}

// Respond maps a use case error onto the envelope. notFound is the message
// used for ErrNotFound, duplicate the one used for ErrDuplicate.
func Respond(c *gin.Context, err error, notFound, duplicate string) {
	var ve *ValidationError
	var be BusinessError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, HTTPError{Error: ve.Error(), Fields: ve.Fields})
	case errors.Is(err, ErrNotFound):
		NotFound(c, notFound)
	case errors.Is(err, ErrDuplicate):
		BadRequest(c, duplicate)
	case errors.As(err, &be):
		BadRequest(c, be.Error())
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		Internal(c, err.Error())
	}
}
