package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses and enrollments
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, description, teacher_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, course.Name, course.Description, course.TeacherID).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, description, teacher_id, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var c models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &c, nil
}

// listWhere is shared by the scoped list variants.
func (r *CourseRepository) list(ctx context.Context, where string, args []interface{}, offset, limit int) ([]*models.Course, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses c `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	query := `
		SELECT c.id, c.name, c.description, c.teacher_id, c.created_at, c.updated_at
		FROM courses c ` + where + `
		ORDER BY c.created_at DESC
		OFFSET $` + fmt.Sprint(len(args)+1) + ` LIMIT $` + fmt.Sprint(len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, offset, limit)...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// ListAll retrieves every course matching the search term, paginated.
func (r *CourseRepository) ListAll(ctx context.Context, search string, offset, limit int) ([]*models.Course, int64, error) {
	where := `WHERE ($1 = '' OR c.name ILIKE '%' || $1 || '%' OR c.description ILIKE '%' || $1 || '%')`
	return r.list(ctx, where, []interface{}{search}, offset, limit)
}

// ListByTeacher retrieves the courses owned by a teacher.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int64, search string, offset, limit int) ([]*models.Course, int64, error) {
	where := `WHERE c.teacher_id = $1
		AND ($2 = '' OR c.name ILIKE '%' || $2 || '%' OR c.description ILIKE '%' || $2 || '%')`
	return r.list(ctx, where, []interface{}{teacherID, search}, offset, limit)
}

// ListByStudent retrieves the courses a student is enrolled in.
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID int64, search string, offset, limit int) ([]*models.Course, int64, error) {
	where := `JOIN course_students cs ON cs.course_id = c.id
		WHERE cs.student_id = $1
		AND ($2 = '' OR c.name ILIKE '%' || $2 || '%' OR c.description ILIKE '%' || $2 || '%')`
	return r.list(ctx, where, []interface{}{studentID, search}, offset, limit)
}

// Update updates name and description of an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, course.Name, course.Description, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course. Enrollments, assignments, materials and
// attendance rows go with it via ON DELETE CASCADE.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// EnrollStudent adds a student to a course
func (r *CourseRepository) EnrollStudent(ctx context.Context, courseID, studentID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO course_students (course_id, student_id) VALUES ($1, $2)`,
		courseID, studentID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error enrolling student: %w", err)
	}
	return nil
}

// UnenrollStudent removes a student from a course
func (r *CourseRepository) UnenrollStudent(ctx context.Context, courseID, studentID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM course_students WHERE course_id = $1 AND student_id = $2`,
		courseID, studentID)
	if err != nil {
		return fmt.Errorf("error unenrolling student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("student is not enrolled in this course")
	}
	return nil
}

// RemoveStudentEnrollmentsTx clears a student's enrollments inside a
// transaction, as part of the student-deletion cascade.
func (r *CourseRepository) RemoveStudentEnrollmentsTx(ctx context.Context, tx pgx.Tx, studentID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM course_students WHERE student_id = $1`, studentID); err != nil {
		return fmt.Errorf("error removing enrollments: %w", err)
	}
	return nil
}

// IsStudentEnrolled checks membership of a student in a course
func (r *CourseRepository) IsStudentEnrolled(ctx context.Context, courseID, studentID int64) (bool, error) {
	var enrolled bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course_students WHERE course_id = $1 AND student_id = $2)`,
		courseID, studentID).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return enrolled, nil
}

// GetStudents retrieves the enrolled students of a course with their roll
// numbers derived by join.
func (r *CourseRepository) GetStudents(ctx context.Context, courseID int64) ([]models.EnrolledStudent, error) {
	query := `
		SELECT u.id, u.name, COALESCE(u.roll_number, ''), u.email
		FROM course_students cs
		JOIN users u ON u.id = cs.student_id
		WHERE cs.course_id = $1
		ORDER BY u.roll_number
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course students: %w", err)
	}
	defer rows.Close()

	var students []models.EnrolledStudent
	for rows.Next() {
		var s models.EnrolledStudent
		if err := rows.Scan(&s.ID, &s.Name, &s.RollNumber, &s.Email); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}
