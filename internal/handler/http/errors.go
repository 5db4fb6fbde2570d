package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ilumaty/greendog-backend/internal/service"
)

// HandleServiceError is the single translation point from business errors
// to the HTTP taxonomy: VALIDATION 400, AUTH 401, FORBIDDEN 403,
// NOT_FOUND 404, CONFLICT 400, INTERNAL 500.
func HandleServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		if len(validationErr.Fields) == 1 {
			ErrorResponse(c, http.StatusBadRequest, validationErr.Fields[0].Message)
			return
		}
		messages := make([]string, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			messages = append(messages, f.Message)
		}
		ValidationFailed(c, messages)
	case errors.Is(err, service.ErrAuthenticationFailed), errors.Is(err, service.ErrWrongPassword):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBreedNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrBreedNameTaken):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
