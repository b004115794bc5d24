package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// AttendanceService handles attendance marking and statistics.
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	courseRepo     *repositories.CourseRepository
	authz          *auth.AuthorizationService
	logger         zerolog.Logger
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	courseRepo *repositories.CourseRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		courseRepo:     courseRepo,
		authz:          authz,
		logger:         logger,
	}
}

// Mark records attendance for one course and calendar day. The date is
// normalized to midnight UTC before storage, so two calls on the same day
// hit the same row and the second overwrites the first.
func (s *AttendanceService) Mark(ctx context.Context, principal *models.Principal, req *dto.MarkAttendanceRequest) (*models.Attendance, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !auth.IsOwner(principal, course.TeacherID) {
		return nil, apperrors.NewForbiddenError("only the course teacher may mark attendance")
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be RFC 3339 or YYYY-MM-DD").WithField("date")
	}

	roster, err := s.courseRepo.GetStudents(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	enrolled := make(map[int64]struct{}, len(roster))
	for _, st := range roster {
		enrolled[st.ID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(req.Records))
	entries := make([]models.AttendanceEntry, 0, len(req.Records))
	for _, rec := range req.Records {
		if !models.ValidAttendanceStatus(rec.Status) {
			return nil, apperrors.NewValidationError("status must be one of present, absent, late, excused").WithField("status")
		}
		if _, ok := enrolled[rec.StudentID]; !ok {
			return nil, apperrors.NewValidationError("record refers to a student not enrolled in this course").WithField("studentId")
		}
		if _, dup := seen[rec.StudentID]; dup {
			return nil, apperrors.NewValidationError("duplicate record for one student").WithField("studentId")
		}
		seen[rec.StudentID] = struct{}{}
		entries = append(entries, models.AttendanceEntry{
			StudentID: rec.StudentID,
			Status:    rec.Status,
		})
	}

	attendance := &models.Attendance{
		CourseID:  req.CourseID,
		ClassDate: helpers.NormalizeDate(date),
		MarkedBy:  principal.ID,
		Entries:   entries,
	}
	if err := s.attendanceRepo.Upsert(ctx, attendance); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("courseID", attendance.CourseID).
		Time("classDate", attendance.ClassDate).
		Int("records", len(entries)).
		Msg("Attendance marked")
	return attendance, nil
}

// requireMember loads the course and checks read access for the principal.
func (s *AttendanceService) requireMember(ctx context.Context, principal *models.Principal, courseID int64) (*models.Course, error) {
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
	return course, nil
}

// ListByCourse returns every attendance record of a course with names and
// roll numbers resolved from the current roster.
func (s *AttendanceService) ListByCourse(ctx context.Context, principal *models.Principal, courseID int64) ([]*models.Attendance, error) {
	if _, err := s.requireMember(ctx, principal, courseID); err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.decorateEntries(ctx, courseID, records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByDate returns the record of one course day, if one was ever marked.
func (s *AttendanceService) GetByDate(ctx context.Context, principal *models.Principal, courseID int64, rawDate string) (*models.Attendance, error) {
	if _, err := s.requireMember(ctx, principal, courseID); err != nil {
		return nil, err
	}
	date, err := helpers.ParseDate(rawDate)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be RFC 3339 or YYYY-MM-DD").WithField("date")
	}
	record, err := s.attendanceRepo.GetByCourseAndDate(ctx, courseID, helpers.NormalizeDate(date))
	if err != nil {
		return nil, err
	}
	if err := s.decorateEntries(ctx, courseID, []*models.Attendance{record}); err != nil {
		return nil, err
	}
	return record, nil
}

// decorateEntries fills student names and roll numbers into raw entries.
func (s *AttendanceService) decorateEntries(ctx context.Context, courseID int64, records []*models.Attendance) error {
	roster, err := s.courseRepo.GetStudents(ctx, courseID)
	if err != nil {
		return err
	}
	byID := make(map[int64]models.EnrolledStudent, len(roster))
	for _, st := range roster {
		byID[st.ID] = st
	}
	for _, rec := range records {
		for i := range rec.Entries {
			if st, ok := byID[rec.Entries[i].StudentID]; ok {
				rec.Entries[i].Name = st.Name
				rec.Entries[i].RollNumber = st.RollNumber
			}
		}
	}
	return nil
}

// canViewCourseAttendance reports whether a principal may read attendance
// figures for a course it does not attend: the owning teacher and admins.
func canViewCourseAttendance(principal *models.Principal, teacherID int64) bool {
	return auth.IsOwner(principal, teacherID) || auth.IsAdmin(principal)
}

// StudentStatistics computes one student's attendance figures for a course.
// Students may only query themselves; the course teacher and admins may
// query anyone on the roster.
func (s *AttendanceService) StudentStatistics(ctx context.Context, principal *models.Principal, courseID, studentID int64) (*models.AttendanceStatistics, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if principal.Role == models.RoleStudent {
		if principal.ID != studentID {
			return nil, apperrors.NewForbiddenError("students may only view their own attendance")
		}
		enrolled, err := s.courseRepo.IsStudentEnrolled(ctx, courseID, studentID)
		if err != nil {
			return nil, err
		}
		if !enrolled {
			return nil, apperrors.NewForbiddenError("you are not a member of this course")
		}
	} else if !canViewCourseAttendance(principal, course.TeacherID) {
		return nil, apperrors.NewForbiddenError("only the course teacher may view student attendance")
	}

	records, err := s.attendanceRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	stats := ComputeStatistics(records, studentID)
	return &stats, nil
}

// CourseSummary computes per-student figures for the whole roster.
func (s *AttendanceService) CourseSummary(ctx context.Context, principal *models.Principal, courseID int64) ([]models.StudentAttendanceSummary, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !canViewCourseAttendance(principal, course.TeacherID) {
		return nil, apperrors.NewForbiddenError("only the course teacher may view the attendance summary")
	}

	roster, err := s.courseRepo.GetStudents(ctx, courseID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.StudentAttendanceSummary, 0, len(roster))
	for _, st := range roster {
		summaries = append(summaries, models.StudentAttendanceSummary{
			Name:       st.Name,
			RollNumber: st.RollNumber,
			Stats:      ComputeStatistics(records, st.ID),
		})
	}
	return summaries, nil
}

// ComputeStatistics folds a course's attendance records into one student's
// counters. Every marked class counts toward the total; a class with no
// entry for the student, or an entry with an unrecognized status, counts
// as absent. The percentage treats present, late and excused as attended
// and is rounded to two decimals; zero classes yield 0.0, not NaN.
func ComputeStatistics(records []*models.Attendance, studentID int64) models.AttendanceStatistics {
	stats := models.AttendanceStatistics{StudentID: studentID}
	for _, rec := range records {
		stats.TotalClasses++
		status := models.AttendanceAbsent
		for _, entry := range rec.Entries {
			if entry.StudentID == studentID {
				if models.ValidAttendanceStatus(entry.Status) {
					status = entry.Status
				}
				break
			}
		}
		switch status {
		case models.AttendancePresent:
			stats.Present++
		case models.AttendanceLate:
			stats.Late++
		case models.AttendanceExcused:
			stats.Excused++
		default:
			stats.Absent++
		}
	}
	if stats.TotalClasses > 0 {
		attended := stats.Present + stats.Late + stats.Excused
		stats.Percentage = helpers.Round2(float64(attended) / float64(stats.TotalClasses) * 100)
	}
	return stats
}
