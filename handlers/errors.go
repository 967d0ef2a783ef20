package handlers

import (
	"errors"
	"net/http"

	"palmcove/database/repository"
	"palmcove/services/booking"
	"palmcove/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var verr *utils.ValidationError
	var rejected *booking.CancellationRejectedError

	switch {
	case errors.As(err, &verr):
		utils.JSONErrorWithCode(c, http.StatusBadRequest, verr.Message, "", "validation_error")
	case errors.As(err, &rejected):
		utils.JSONErrorWithCode(c, http.StatusConflict, rejected.Message, "", rejected.Code)
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONErrorWithCode(c, http.StatusNotFound, notFoundMsg, "", "not_found")
	default:
		getLogger(c).Error("Request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred. Please try again later.")
	}
}

func bindError(c *gin.Context, err error) {
	utils.JSONErrorWithCode(c, http.StatusBadRequest, "Invalid request payload", err.Error(), "invalid_payload")
}
