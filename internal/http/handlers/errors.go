package handlers

import (
	"net/http"

	"shiptrack/internal/domain"
	"shiptrack/internal/http/middleware"
	"shiptrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// RenderError maps a domain error onto an HTML error page. Validation and
// format problems are the caller's fault (400), a missing id is 404, and
// anything else is a storage/internal failure (500) that is fatal to the
// request but not to the process.
func RenderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "something went wrong, please try again"

	switch {
	case domain.IsValidation(err), domain.IsFormat(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domain.IsNotFound(err):
		status = http.StatusNotFound
		message = err.Error()
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
	}

	c.HTML(status, "error.html", gin.H{
		"status":     status,
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	})
}
