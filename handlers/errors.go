package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"task-tracker/apperr"
)

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// ErrorResponse wraps the payload as {"error": {...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// writeError is the single place that maps internal failures to HTTP
// statuses and error codes. Nothing below the handlers emits HTTP concepts.
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		dateErr       *apperr.DateFormatError
		validationErr *apperr.ValidationError
		notFoundErr   *apperr.NotFoundError
		internalErr   *apperr.InternalError
	)

	switch {
	case errors.As(err, &dateErr):
		writeErrorBody(c, http.StatusBadRequest, apperr.CodeValidation, dateErr.Error())
	case errors.As(err, &validationErr):
		writeErrorBody(c, http.StatusBadRequest, apperr.CodeValidation, validationErr.Error())
	case errors.As(err, &notFoundErr):
		writeErrorBody(c, http.StatusNotFound, apperr.CodeNotFound, notFoundErr.Error())
	case errors.As(err, &internalErr):
		// The wrapped cause stays in the logs, not the payload.
		log.WithError(internalErr.Unwrap()).Error(internalErr.Message)
		writeErrorBody(c, http.StatusInternalServerError, apperr.CodeInternal, internalErr.Message)
	default:
		log.WithError(err).Error("unhandled error")
		writeErrorBody(c, http.StatusInternalServerError, apperr.CodeInternal, "internal server error")
	}
}

func writeErrorBody(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: ErrorBody{ErrorCode: code, Message: message}})
}
