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

// CourseService handles course and enrollment operations.
type CourseService struct {
	courseRepo *repositories.CourseRepository
	userRepo   *repositories.UserRepository
	authz      *auth.AuthorizationService
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	userRepo *repositories.UserRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		authz:      authz,
		logger:     logger,
	}
}

// Create registers a new course owned by the calling teacher. Admins may
// create on behalf of themselves as well.
func (s *CourseService) Create(ctx context.Context, principal *models.Principal, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		TeacherID:   principal.ID,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("courseID", course.ID).Int64("teacherID", course.TeacherID).Msg("Course created")
	return course, nil
}

// List returns courses scoped by role: admins see everything, teachers their
// own courses, students the courses they are enrolled in.
func (s *CourseService) List(ctx context.Context, principal *models.Principal, search string, offset, limit int) ([]*models.Course, int64, error) {
	switch principal.Role {
	case models.RoleAdmin:
		return s.courseRepo.ListAll(ctx, search, offset, limit)
	case models.RoleTeacher:
		return s.courseRepo.ListByTeacher(ctx, principal.ID, search, offset, limit)
	case models.RoleStudent:
		return s.courseRepo.ListByStudent(ctx, principal.ID, search, offset, limit)
	}
	return nil, 0, apperrors.ErrForbidden
}

// Get returns one course with its teacher and roster. Only members may read.
func (s *CourseService) Get(ctx context.Context, principal *models.Principal, courseID int64) (*models.Course, error) {
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

	teacher, err := s.userRepo.GetByID(ctx, course.TeacherID)
	if err == nil {
		course.Teacher = teacher
	}

	students, err := s.courseRepo.GetStudents(ctx, courseID)
	if err != nil {
		return nil, err
	}
	course.Students = students
	return course, nil
}

// requireOwner loads a course and checks write access for the principal.
func (s *CourseService) requireOwner(ctx context.Context, principal *models.Principal, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !auth.IsOwner(principal, course.TeacherID) {
		return nil, apperrors.NewForbiddenError("only the course teacher may modify this course")
	}
	return course, nil
}

// Update modifies name and description of an owned course.
func (s *CourseService) Update(ctx context.Context, principal *models.Principal, courseID int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.requireOwner(ctx, principal, courseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		course.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course; enrollments, assignments, materials and
// attendance go with it.
func (s *CourseService) Delete(ctx context.Context, principal *models.Principal, courseID int64) error {
	if _, err := s.requireOwner(ctx, principal, courseID); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return err
	}
	s.logger.Info().Int64("courseID", courseID).Msg("Course deleted")
	return nil
}

// Enroll adds a student, looked up by roll number, to an owned course.
func (s *CourseService) Enroll(ctx context.Context, principal *models.Principal, courseID int64, req *dto.EnrollStudentRequest) error {
	if _, err := s.requireOwner(ctx, principal, courseID); err != nil {
		return err
	}

	student, err := s.userRepo.GetByRollNumber(ctx, req.RollNumber)
	if err != nil {
		return err
	}
	if student.Role != models.RoleStudent {
		return apperrors.NewValidationError("roll number does not belong to a student").WithField("rollNumber")
	}

	if err := s.courseRepo.EnrollStudent(ctx, courseID, student.ID); err != nil {
		return err
	}
	s.logger.Info().Int64("courseID", courseID).Int64("studentID", student.ID).Msg("Student enrolled")
	return nil
}

// Unenroll removes a student from an owned course.
func (s *CourseService) Unenroll(ctx context.Context, principal *models.Principal, courseID, studentID int64) error {
	if _, err := s.requireOwner(ctx, principal, courseID); err != nil {
		return err
	}

	return s.courseRepo.UnenrollStudent(ctx, courseID, studentID)
}

// Students returns the roster of a course the principal can read.
func (s *CourseService) Students(ctx context.Context, principal *models.Principal, courseID int64) ([]models.EnrolledStudent, error) {
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
	return s.courseRepo.GetStudents(ctx, courseID)
}
