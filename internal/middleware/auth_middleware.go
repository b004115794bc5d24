package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

// principalKey is the gin context key holding the authenticated principal.
const principalKey = "principal"

// Authenticate validates the bearer token and stores the principal in the
// request context. There is no non-token path: every request on a protected
// route carries a valid signed token or is rejected.
func Authenticate(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
			} else {
				HandleAPIError(c, apperrors.ErrTokenInvalid)
			}
			c.Abort()
			return
		}

		c.Set(principalKey, &models.Principal{
			ID:    claims.UserID,
			Role:  claims.Role,
			Name:  claims.Name,
			Email: claims.Email,
		})
		c.Next()
	}
}

// RequireRole rejects requests whose principal is not one of the given
// roles. Must run after Authenticate.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		HandleAPIError(c, apperrors.NewForbiddenError("insufficient role for this operation"))
		c.Abort()
	}
}

// GetPrincipal returns the authenticated principal stored by Authenticate.
func GetPrincipal(c *gin.Context) (*models.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*models.Principal)
	return principal, ok
}
