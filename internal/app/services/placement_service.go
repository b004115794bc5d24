package services

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

const defaultSalary = "Not disclosed"

// PlacementService handles placement drive operations.
type PlacementService struct {
	placementRepo   *repositories.PlacementRepository
	applicationRepo *repositories.ApplicationRepository
	database        *db.PostgresDB
	logger          zerolog.Logger
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(
	placementRepo *repositories.PlacementRepository,
	applicationRepo *repositories.ApplicationRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *PlacementService {
	return &PlacementService{
		placementRepo:   placementRepo,
		applicationRepo: applicationRepo,
		database:        database,
		logger:          logger,
	}
}

// Create registers a new placement drive. New drives start active.
func (s *PlacementService) Create(ctx context.Context, principal *models.Principal, req *dto.CreatePlacementRequest) (*models.Placement, error) {
	deadline, err := helpers.ParseDate(req.Deadline)
	if err != nil {
		return nil, apperrors.NewValidationError("deadline must be RFC 3339 or YYYY-MM-DD").WithField("deadline")
	}

	salary := strings.TrimSpace(req.Salary)
	if salary == "" {
		salary = defaultSalary
	}

	placement := &models.Placement{
		Title:        strings.TrimSpace(req.Title),
		Company:      strings.TrimSpace(req.Company),
		Description:  strings.TrimSpace(req.Description),
		Location:     strings.TrimSpace(req.Location),
		Salary:       salary,
		Type:         req.Type,
		Requirements: strings.TrimSpace(req.Requirements),
		Deadline:     deadline,
		Active:       true,
		CreatedBy:    principal.ID,
	}
	if err := s.placementRepo.Create(ctx, placement); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("placementID", placement.ID).Str("company", placement.Company).Msg("Placement created")
	return placement, nil
}

// List returns placements. Students only ever see active drives; staff see
// everything unless they ask for active only.
func (s *PlacementService) List(ctx context.Context, principal *models.Principal, activeOnly bool, search string, offset, limit int) ([]*models.Placement, int64, error) {
	if principal.Role == models.RoleStudent {
		activeOnly = true
	}
	return s.placementRepo.List(ctx, activeOnly, search, offset, limit)
}

// Get returns one placement. Inactive drives are hidden from students.
func (s *PlacementService) Get(ctx context.Context, principal *models.Principal, placementID int64) (*models.Placement, error) {
	placement, err := s.placementRepo.GetByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if principal.Role == models.RoleStudent && !placement.Active {
		return nil, apperrors.ErrPlacementNotFound
	}
	return placement, nil
}

// Update applies a partial patch to a placement.
func (s *PlacementService) Update(ctx context.Context, placementID int64, req *dto.UpdatePlacementRequest) (*models.Placement, error) {
	placement, err := s.placementRepo.GetByID(ctx, placementID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		placement.Title = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil {
		placement.Company = strings.TrimSpace(*req.Company)
	}
	if req.Description != nil {
		placement.Description = strings.TrimSpace(*req.Description)
	}
	if req.Location != nil {
		placement.Location = strings.TrimSpace(*req.Location)
	}
	if req.Salary != nil && strings.TrimSpace(*req.Salary) != "" {
		placement.Salary = strings.TrimSpace(*req.Salary)
	}
	if req.Type != nil {
		placement.Type = *req.Type
	}
	if req.Requirements != nil {
		placement.Requirements = strings.TrimSpace(*req.Requirements)
	}
	if req.Deadline != nil {
		deadline, err := helpers.ParseDate(*req.Deadline)
		if err != nil {
			return nil, apperrors.NewValidationError("deadline must be RFC 3339 or YYYY-MM-DD").WithField("deadline")
		}
		placement.Deadline = deadline
	}

	if err := s.placementRepo.Update(ctx, placement); err != nil {
		return nil, err
	}
	return placement, nil
}

// ToggleActive flips the visibility flag without touching anything else.
func (s *PlacementService) ToggleActive(ctx context.Context, placementID int64) (*models.Placement, error) {
	placement, err := s.placementRepo.GetByID(ctx, placementID)
	if err != nil {
		return nil, err
	}
	if err := s.placementRepo.SetActive(ctx, placementID, !placement.Active); err != nil {
		return nil, err
	}
	placement.Active = !placement.Active
	return placement, nil
}

// Delete removes a placement and all applications against it in one
// transaction, so a crash cannot leave half the cascade applied.
func (s *PlacementService) Delete(ctx context.Context, placementID int64) error {
	if _, err := s.placementRepo.GetByID(ctx, placementID); err != nil {
		return err
	}

	var removed int64
	err := s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var txErr error
		removed, txErr = s.applicationRepo.DeleteByPlacementTx(ctx, tx, placementID)
		if txErr != nil {
			return txErr
		}
		return s.placementRepo.DeleteTx(ctx, tx, placementID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("placementID", placementID).Int64("applicationsRemoved", removed).Msg("Placement deleted")
	return nil
}

// ApplicationWindowOpen reports whether a drive still accepts applications.
// The deadline day itself counts; the drive closes at the end of it.
func ApplicationWindowOpen(p *models.Placement, now time.Time) bool {
	return p.Active && !DeadlinePassed(p, now)
}

// DeadlinePassed reports whether a drive's deadline day is over. Unlike
// ApplicationWindowOpen it ignores the active flag: deactivating a drive
// stops new applications but does not shorten the withdrawal window.
func DeadlinePassed(p *models.Placement, now time.Time) bool {
	cutoff := helpers.NormalizeDate(p.Deadline).Add(24 * time.Hour)
	return !now.Before(cutoff)
}
