package auth

import (
	"context"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
)

// AuthorizationService centralizes the ownership and membership checks
// that gate resource mutation, instead of inline ID comparisons scattered
// per handler.
type AuthorizationService struct {
	courseRepo *repositories.CourseRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courseRepo *repositories.CourseRepository) *AuthorizationService {
	return &AuthorizationService{courseRepo: courseRepo}
}

// IsOwner reports whether the principal created the resource. Ownership is
// never implied by role; an admin is not an owner.
func IsOwner(principal *models.Principal, creatorID int64) bool {
	return principal.ID == creatorID
}

// IsAdmin reports whether the principal carries the admin role.
func IsAdmin(principal *models.Principal) bool {
	return principal.Role == models.RoleAdmin
}

// IsCourseMember reports whether the principal may read course-scoped
// resources: the owning teacher, an enrolled student, or an admin.
func (s *AuthorizationService) IsCourseMember(ctx context.Context, principal *models.Principal, course *models.Course) (bool, error) {
	if IsAdmin(principal) || IsOwner(principal, course.TeacherID) {
		return true, nil
	}
	if principal.Role != models.RoleStudent {
		return false, nil
	}
	return s.courseRepo.IsStudentEnrolled(ctx, course.ID, principal.ID)
}
