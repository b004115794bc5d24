package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	pkgAuth "github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/validation"
)

// AuthService handles registration, login and profile operations.
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *pkgAuth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *pkgAuth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateRoleIdentifier enforces the role/identifier invariant: a student
// carries exactly a roll number, a teacher exactly a teacher ID. The
// cross-field collision check runs separately because the uniqueness
// indexes are per-field.
func validateRoleIdentifier(role models.Role, rollNumber, teacherID string) error {
	switch role {
	case models.RoleStudent:
		if rollNumber == "" {
			return apperrors.NewValidationError("roll number is required for students").WithField("rollNumber")
		}
		if teacherID != "" {
			return apperrors.NewValidationError("a student cannot carry a teacher ID").WithField("teacherId")
		}
		if !validation.ValidRollNumber(rollNumber) {
			return apperrors.NewValidationError("roll number must be 3-20 alphanumeric characters").WithField("rollNumber")
		}
	case models.RoleTeacher:
		if teacherID == "" {
			return apperrors.NewValidationError("teacher ID is required for teachers").WithField("teacherId")
		}
		if rollNumber != "" {
			return apperrors.NewValidationError("a teacher cannot carry a roll number").WithField("rollNumber")
		}
		if !validation.ValidTeacherID(teacherID) {
			return apperrors.NewValidationError("teacher ID must be 3-20 alphanumeric characters").WithField("teacherId")
		}
	case models.RoleAdmin:
		if rollNumber != "" || teacherID != "" {
			return apperrors.NewValidationError("an admin carries neither roll number nor teacher ID")
		}
	default:
		return apperrors.NewValidationError("unknown role").WithField("role")
	}
	return nil
}

// checkIdentifierCollisions rejects identifiers already taken in either ID
// space: a new roll number must not equal an existing teacher ID and vice
// versa.
func (s *AuthService) checkIdentifierCollisions(ctx context.Context, rollNumber, teacherID string) error {
	if rollNumber != "" {
		exists, err := s.userRepo.RollNumberExists(ctx, rollNumber)
		if err != nil {
			return fmt.Errorf("error checking roll number: %w", err)
		}
		if exists {
			return apperrors.ErrRollNumberExists
		}
		exists, err = s.userRepo.TeacherIDExists(ctx, rollNumber)
		if err != nil {
			return fmt.Errorf("error checking teacher ID space: %w", err)
		}
		if exists {
			return apperrors.NewConflictError("roll number collides with an existing teacher ID").WithField("rollNumber")
		}
	}
	if teacherID != "" {
		exists, err := s.userRepo.TeacherIDExists(ctx, teacherID)
		if err != nil {
			return fmt.Errorf("error checking teacher ID: %w", err)
		}
		if exists {
			return apperrors.ErrTeacherIDExists
		}
		exists, err = s.userRepo.RollNumberExists(ctx, teacherID)
		if err != nil {
			return fmt.Errorf("error checking roll number space: %w", err)
		}
		if exists {
			return apperrors.NewConflictError("teacher ID collides with an existing roll number").WithField("teacherId")
		}
	}
	return nil
}

// buildUser assembles a User from registration input, hashing the password.
func buildUser(name, email, password string, role models.Role, department, rollNumber, teacherID string) (*models.User, error) {
	hash, err := pkgAuth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:       strings.TrimSpace(name),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Password:   hash,
		Role:       role,
		Department: strings.TrimSpace(department),
	}
	// NULL, not empty string, so the partial unique indexes never collide
	if rollNumber != "" {
		user.RollNumber = &rollNumber
	}
	if teacherID != "" {
		user.TeacherID = &teacherID
	}
	return user, nil
}

// Register creates a user and returns a signed token with the public profile.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validateRoleIdentifier(req.Role, req.RollNumber, req.TeacherID); err != nil {
		return nil, err
	}
	if err := s.checkIdentifierCollisions(ctx, req.RollNumber, req.TeacherID); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
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

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// Login checks credentials and returns the same token contract as Register.
// Missing user and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pkgAuth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// CheckExists is the public existence probe used by client-side forms.
func (s *AuthService) CheckExists(ctx context.Context, field, value string) (bool, error) {
	switch field {
	case "email":
		return s.userRepo.EmailExists(ctx, strings.ToLower(strings.TrimSpace(value)))
	case "rollNumber":
		return s.userRepo.RollNumberExists(ctx, value)
	case "teacherId":
		return s.userRepo.TeacherIDExists(ctx, value)
	}
	return false, apperrors.NewValidationError("type must be one of email, rollNumber, teacherId").WithField("type")
}

// GetProfile returns the stored profile of the principal.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial profile patch to the principal's own
// record. An email change re-checks uniqueness.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			exists, err := s.userRepo.EmailExists(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("error checking email: %w", err)
			}
			if exists {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if req.Department != nil {
		user.Department = strings.TrimSpace(*req.Department)
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ResumeLink != nil {
		user.ResumeLink = req.ResumeLink
	}
	if req.LinkedIn != nil {
		user.LinkedIn = req.LinkedIn
	}
	if req.GitHub != nil {
		user.GitHub = req.GitHub
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
