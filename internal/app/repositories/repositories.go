package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind one constructor.
type Repositories struct {
	UserRepository        *UserRepository
	CourseRepository      *CourseRepository
	AssignmentRepository  *AssignmentRepository
	MaterialRepository    *MaterialRepository
	AttendanceRepository  *AttendanceRepository
	PlacementRepository   *PlacementRepository
	ApplicationRepository *ApplicationRepository
	NoticeRepository      *NoticeRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CourseRepository:      NewCourseRepository(db),
		AssignmentRepository:  NewAssignmentRepository(db),
		MaterialRepository:    NewMaterialRepository(db),
		AttendanceRepository:  NewAttendanceRepository(db),
		PlacementRepository:   NewPlacementRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		NoticeRepository:      NewNoticeRepository(db),
	}
}
