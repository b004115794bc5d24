package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// AttendanceRepository handles database operations for attendance records.
// Entries are stored as a jsonb column; the unique index on
// (course_id, class_date) is the one-record-per-day contract.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert inserts the record, or replaces the entry list and marker in
// place when one already exists for (course, date). ClassDate must already
// be normalized to midnight UTC by the service.
func (r *AttendanceRepository) Upsert(ctx context.Context, a *models.Attendance) error {
	entries, err := json.Marshal(a.Entries)
	if err != nil {
		return fmt.Errorf("error encoding attendance entries: %w", err)
	}

	query := `
		INSERT INTO attendance (course_id, class_date, marked_by, entries)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (course_id, class_date)
		DO UPDATE SET entries = EXCLUDED.entries, marked_by = EXCLUDED.marked_by, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRow(ctx, query, a.CourseID, a.ClassDate, a.MarkedBy, entries).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting attendance: %w", err)
	}
	return nil
}

func scanAttendance(rows pgx.Rows) (*models.Attendance, error) {
	var a models.Attendance
	var entries []byte
	if err := rows.Scan(&a.ID, &a.CourseID, &a.ClassDate, &a.MarkedBy, &entries,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(entries, &a.Entries); err != nil {
		return nil, fmt.Errorf("error decoding attendance entries: %w", err)
	}
	return &a, nil
}

// ListByCourse retrieves every attendance record of a course ordered by date.
func (r *AttendanceRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Attendance, error) {
	query := `
		SELECT id, course_id, class_date, marked_by, entries, created_at, updated_at
		FROM attendance
		WHERE course_id = $1
		ORDER BY class_date
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByCourseAndDate retrieves the one record for a course on a calendar
// day. Date must be normalized to midnight UTC.
func (r *AttendanceRepository) GetByCourseAndDate(ctx context.Context, courseID int64, date time.Time) (*models.Attendance, error) {
	query := `
		SELECT id, course_id, class_date, marked_by, entries, created_at, updated_at
		FROM attendance
		WHERE course_id = $1 AND class_date = $2
	`

	rows, err := r.db.Query(ctx, query, courseID, date)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, apperrors.NewNotFoundError("no attendance recorded for this date")
	}
	return scanAttendance(rows)
}
