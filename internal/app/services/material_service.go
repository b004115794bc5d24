package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

const defaultMaterialType = "text"

// MaterialService handles course material operations.
type MaterialService struct {
	materialRepo *repositories.MaterialRepository
	courseRepo   *repositories.CourseRepository
	authz        *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewMaterialService creates a new material service instance
func NewMaterialService(
	materialRepo *repositories.MaterialRepository,
	courseRepo *repositories.CourseRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		courseRepo:   courseRepo,
		authz:        authz,
		logger:       logger,
	}
}

// Create adds a material to a course owned by the principal.
func (s *MaterialService) Create(ctx context.Context, principal *models.Principal, req *dto.CreateMaterialRequest) (*models.Material, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !auth.IsOwner(principal, course.TeacherID) {
		return nil, apperrors.NewForbiddenError("only the course teacher may create materials")
	}

	materialType := strings.TrimSpace(req.Type)
	if materialType == "" {
		materialType = defaultMaterialType
	}

	material := &models.Material{
		CourseID:  req.CourseID,
		CreatedBy: principal.ID,
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Type:      materialType,
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("materialID", material.ID).Int64("courseID", material.CourseID).Msg("Material created")
	return material, nil
}

// ListByCourse returns the materials of a course the principal belongs to.
func (s *MaterialService) ListByCourse(ctx context.Context, principal *models.Principal, courseID int64) ([]*models.Material, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	member, err := s.authz.IsCourseMember(ctx, principal, course)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.NewForbiddenError("you are not a member of this course")
	}
	return s.materialRepo.ListByCourse(ctx, courseID)
}

// Get returns one material; any member of its course may read.
func (s *MaterialService) Get(ctx context.Context, principal *models.Principal, materialID int64) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetByID(ctx, material.CourseID)
	if err != nil {
		return nil, err
	}
	member, err := s.authz.IsCourseMember(ctx, principal, course)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.NewForbiddenError("you are not a member of this course")
	}
	return material, nil
}

func (s *MaterialService) requireCreator(ctx context.Context, principal *models.Principal, materialID int64) (*models.Material, error) {
	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if !auth.IsOwner(principal, material.CreatedBy) {
		return nil, apperrors.NewForbiddenError("only the creating teacher may modify this material")
	}
	return material, nil
}

// Update applies a partial patch to a material.
func (s *MaterialService) Update(ctx context.Context, principal *models.Principal, materialID int64, req *dto.UpdateMaterialRequest) (*models.Material, error) {
	material, err := s.requireCreator(ctx, principal, materialID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		material.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		material.Content = *req.Content
	}
	if req.Type != nil && strings.TrimSpace(*req.Type) != "" {
		material.Type = strings.TrimSpace(*req.Type)
	}

	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

// Delete removes a material created by the principal.
func (s *MaterialService) Delete(ctx context.Context, principal *models.Principal, materialID int64) error {
	if _, err := s.requireCreator(ctx, principal, materialID); err != nil {
		return err
	}
	return s.materialRepo.Delete(ctx, materialID)
}
