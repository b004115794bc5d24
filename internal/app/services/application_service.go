package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// ApplicationService handles placement applications.
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	placementRepo   *repositories.PlacementRepository
	userRepo        *repositories.UserRepository
	logger          zerolog.Logger
	now             func() time.Time
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	placementRepo *repositories.PlacementRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		placementRepo:   placementRepo,
		userRepo:        userRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// Apply creates an application for the calling student. The drive must be
// active and inside its deadline, and a student gets one application per
// drive.
func (s *ApplicationService) Apply(ctx context.Context, principal *models.Principal, req *dto.CreateApplicationRequest) (*models.Application, error) {
	placement, err := s.placementRepo.GetByID(ctx, req.PlacementID)
	if err != nil {
		return nil, err
	}
	if !placement.Active {
		return nil, apperrors.ErrPlacementInactive
	}
	if !ApplicationWindowOpen(placement, s.now()) {
		return nil, apperrors.ErrDeadlinePassed
	}

	resumeLink := strings.TrimSpace(req.ResumeLink)
	if resumeLink == "" {
		// fall back to the resume stored on the profile
		student, err := s.userRepo.GetByID(ctx, principal.ID)
		if err != nil {
			return nil, err
		}
		if student.ResumeLink != nil {
			resumeLink = *student.ResumeLink
		}
	}

	application := &models.Application{
		StudentID:   principal.ID,
		PlacementID: req.PlacementID,
		Status:      models.ApplicationApplied,
		CoverLetter: strings.TrimSpace(req.CoverLetter),
		ResumeLink:  resumeLink,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	application.Placement = placement

	s.logger.Info().
		Int64("applicationID", application.ID).
		Int64("placementID", application.PlacementID).
		Int64("studentID", application.StudentID).
		Msg("Application submitted")
	return application, nil
}

// ListMine returns the calling student's applications with their placements.
func (s *ApplicationService) ListMine(ctx context.Context, principal *models.Principal) ([]*models.Application, error) {
	return s.applicationRepo.ListByStudent(ctx, principal.ID)
}

// Get returns one application. Students may only read their own.
func (s *ApplicationService) Get(ctx context.Context, principal *models.Principal, applicationID int64) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if principal.Role != models.RoleAdmin && application.StudentID != principal.ID {
		return nil, apperrors.NewForbiddenError("you may only view your own application")
	}
	return application, nil
}

// ListByPlacement returns every application against one drive with the
// applicants resolved.
func (s *ApplicationService) ListByPlacement(ctx context.Context, placementID int64) ([]*models.Application, error) {
	if _, err := s.placementRepo.GetByID(ctx, placementID); err != nil {
		return nil, err
	}
	return s.applicationRepo.ListByPlacement(ctx, placementID)
}

// UpdateStatus moves an application between review statuses.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if !models.ValidApplicationStatus(req.Status) {
		return nil, apperrors.NewValidationError("unknown application status").WithField("status")
	}
	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, req.Status); err != nil {
		return nil, err
	}
	return s.applicationRepo.GetByID(ctx, applicationID)
}

// Withdraw deletes an application. A student may only withdraw their own,
// and only before the drive's deadline; whether the drive is still active
// does not matter. Admins may delete anything.
func (s *ApplicationService) Withdraw(ctx context.Context, principal *models.Principal, applicationID int64) error {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if principal.Role != models.RoleAdmin {
		if application.StudentID != principal.ID {
			return apperrors.NewForbiddenError("you may only withdraw your own application")
		}
		placement, err := s.placementRepo.GetByID(ctx, application.PlacementID)
		if err == nil && DeadlinePassed(placement, s.now()) {
			return apperrors.ErrDeadlinePassed
		}
	}

	if err := s.applicationRepo.Delete(ctx, applicationID); err != nil {
		return err
	}
	s.logger.Info().Int64("applicationID", applicationID).Msg("Application withdrawn")
	return nil
}
