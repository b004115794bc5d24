package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/config"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/logger"
)

// EnsureAdmin creates the configured admin account if it does not exist.
// The admin logs in through the regular login endpoint like everyone else;
// there is no other way to obtain the admin role on a fresh database.
func EnsureAdmin(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:     cfg.Admin.Name,
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent boot may have won the race; that is fine.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Str("email", email).Msg("Admin account seeded")
	return nil
}
