package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"repair-tracker/internal/apperr"
)

// Err writes {"error": msg} with the given status.
func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortErr aborts the request with {"error": msg}.
func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// Fail maps an error to its wire shape. *apperr.Error carries its own status;
// anything else is an internal error and the message is not exposed.
func Fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Status >= http.StatusInternalServerError {
			_ = c.Error(err)
			Err(c, ae.Status, "internal server error")
			return
		}
		Err(c, ae.Status, ae.Message)
		return
	}
	_ = c.Error(err)
	Err(c, http.StatusInternalServerError, "internal server error")
}
