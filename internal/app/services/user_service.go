package services

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// UserService handles admin-side user management.
type UserService struct {
	userRepo        *repositories.UserRepository
	courseRepo      *repositories.CourseRepository
	applicationRepo *repositories.ApplicationRepository
	authService     *AuthService
	database        *db.PostgresDB
	logger          zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo *repositories.UserRepository,
	courseRepo *repositories.CourseRepository,
	applicationRepo *repositories.ApplicationRepository,
	authService *AuthService,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		applicationRepo: applicationRepo,
		authService:     authService,
		database:        database,
		logger:          logger,
	}
}

// List returns users filtered by role and free-text search over name and
// email.
func (s *UserService) List(ctx context.Context, role models.Role, search string, offset, limit int) ([]*models.User, int64, error) {
	if role != "" && !role.Valid() {
		return nil, 0, apperrors.NewValidationError("role must be one of student, teacher, admin").WithField("role")
	}
	return s.userRepo.List(ctx, role, search, offset, limit)
}

// Get returns one user by ID.
func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Create provisions a user of any role, including further admins. Shares
// the identifier rules with self-registration.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if err := validateRoleIdentifier(req.Role, req.RollNumber, req.TeacherID); err != nil {
		return nil, err
	}
	if err := s.authService.checkIdentifierCollisions(ctx, req.RollNumber, req.TeacherID); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	user, err := buildUser(req.Name, req.Email, req.Password, req.Role, req.Department, req.RollNumber, req.TeacherID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User created by admin")
	return user, nil
}

// Delete removes a user. For students, enrollments and placement
// applications go in the same transaction, so no run can leave the
// student's rows behind.
func (s *UserService) Delete(ctx context.Context, principal *models.Principal, userID int64) error {
	if principal.ID == userID {
		return apperrors.NewValidationError("you cannot delete your own account")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if user.Role == models.RoleStudent {
			if txErr := s.courseRepo.RemoveStudentEnrollmentsTx(ctx, tx, userID); txErr != nil {
				return txErr
			}
			if _, txErr := s.applicationRepo.DeleteByStudentTx(ctx, tx, userID); txErr != nil {
				return txErr
			}
		}
		return s.userRepo.DeleteTx(ctx, tx, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Str("role", string(user.Role)).Msg("User deleted")
	return nil
}

// SweepOrphanApplications deletes applications whose student or placement
// no longer exists. The applications table carries no foreign keys, so a
// cascade missed by an older build shows up here.
func (s *UserService) SweepOrphanApplications(ctx context.Context) (int64, error) {
	removed, err := s.applicationRepo.DeleteOrphans(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Warn().Int64("removed", removed).Msg("Orphan applications swept")
	}
	return removed, nil
}
