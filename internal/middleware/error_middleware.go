package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the HTTP envelope. Every handler
// funnels its failures through here, so status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		status = http.StatusBadRequest
		if len(verrs) > 0 {
			c.JSON(status, dto.NewErrorResponse(bindingMessage(verrs[0]), fieldName(verrs[0])))
			return
		}
		message = "invalid request body"
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		message = "internal server error"
	}

	c.JSON(status, dto.NewErrorResponse(message, apperrors.FieldOf(err)))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrAssignmentNotFound),
		errors.Is(err, apperrors.ErrMaterialNotFound),
		errors.Is(err, apperrors.ErrPlacementNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrNoticeNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrRollNumberExists),
		errors.Is(err, apperrors.ErrTeacherIDExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrPlacementInactive),
		errors.Is(err, apperrors.ErrDeadlinePassed):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// fieldName lowercases the first letter of a struct field so the wire name
// matches the JSON casing of the request body.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return ""
	}
	return string(name[0]|0x20) + name[1:]
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fieldName(fe) + " is required"
	case "email":
		return fieldName(fe) + " must be a valid email address"
	case "min":
		return fieldName(fe) + " is too short"
	case "max":
		return fieldName(fe) + " is too long"
	case "oneof":
		return fieldName(fe) + " must be one of: " + fe.Param()
	}
	return fieldName(fe) + " is invalid"
}
