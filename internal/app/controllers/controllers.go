package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name + " must be a positive integer").WithField(name)
	}
	return id, nil
}

// queryID parses a positive int64 query parameter.
func queryID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name + " must be a positive integer").WithField(name)
	}
	return id, nil
}

// principal returns the authenticated principal or an unauthenticated error.
func principal(c *gin.Context) (*models.Principal, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return p, nil
}
