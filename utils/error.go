package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandler catches panics and returns a structured 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	JSONErrorWithCode(c, status, message, details, "")
}

// JSONErrorWithCode is JSONError with a machine-readable code.
func JSONErrorWithCode(c *gin.Context, status int, message, details, code string) {
	Logger := GetLogger()
	if status >= http.StatusInternalServerError {
		Logger.Error(message, zap.String("details", details), zap.String("path", c.Request.URL.Path))
	} else {
		Logger.Warn(message, zap.String("details", details), zap.String("path", c.Request.URL.Path))
	}
	c.JSON(status, ErrorResponse{Message: message, Details: details, Code: code})
}
