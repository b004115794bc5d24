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
	"github.com/campushub/backend/internal/pkg/helpers"
)

// AssignmentService handles course assignment operations.
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	courseRepo     *repositories.CourseRepository
	authz          *auth.AuthorizationService
	logger         zerolog.Logger
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	courseRepo *repositories.CourseRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		authz:          authz,
		logger:         logger,
	}
}

// Create adds an assignment to a course owned by the principal.
func (s *AssignmentService) Create(ctx context.Context, principal *models.Principal, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !auth.IsOwner(principal, course.TeacherID) {
		return nil, apperrors.NewForbiddenError("only the course teacher may create assignments")
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("dueDate must be RFC 3339 or YYYY-MM-DD").WithField("dueDate")
	}

	assignment := &models.Assignment{
		CourseID:    req.CourseID,
		CreatedBy:   principal.ID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		DueDate:     dueDate,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("assignmentID", assignment.ID).Int64("courseID", assignment.CourseID).Msg("Assignment created")
	return assignment, nil
}

// ListByCourse returns the assignments of a course the principal belongs to.
func (s *AssignmentService) ListByCourse(ctx context.Context, principal *models.Principal, courseID int64) ([]*models.Assignment, error) {
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
	return s.assignmentRepo.ListByCourse(ctx, courseID)
}

// Get returns one assignment; any member of its course may read.
func (s *AssignmentService) Get(ctx context.Context, principal *models.Principal, assignmentID int64) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetByID(ctx, assignment.CourseID)
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
	return assignment, nil
}

// requireCreator loads an assignment and checks write access.
func (s *AssignmentService) requireCreator(ctx context.Context, principal *models.Principal, assignmentID int64) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if !auth.IsOwner(principal, assignment.CreatedBy) {
		return nil, apperrors.NewForbiddenError("only the creating teacher may modify this assignment")
	}
	return assignment, nil
}

// Update applies a partial patch to an assignment.
func (s *AssignmentService) Update(ctx context.Context, principal *models.Principal, assignmentID int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.requireCreator(ctx, principal, assignmentID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		assignment.Description = strings.TrimSpace(*req.Description)
	}
	if req.DueDate != nil {
		dueDate, err := helpers.ParseDate(*req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("dueDate must be RFC 3339 or YYYY-MM-DD").WithField("dueDate")
		}
		assignment.DueDate = dueDate
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// Delete removes an assignment created by the principal.
func (s *AssignmentService) Delete(ctx context.Context, principal *models.Principal, assignmentID int64) error {
	if _, err := s.requireCreator(ctx, principal, assignmentID); err != nil {
		return err
	}
	return s.assignmentRepo.Delete(ctx, assignmentID)
}
