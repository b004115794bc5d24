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

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. The (student, placement) unique index
// enforces the one-application rule.
func (r *ApplicationRepository) Create(ctx context.Context, a *models.Application) error {
	query := `
		INSERT INTO applications (student_id, placement_id, status, cover_letter, resume_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, applied_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		a.StudentID, a.PlacementID, a.Status, a.CoverLetter, a.ResumeLink,
	).Scan(&a.ID, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT id, student_id, placement_id, status, cover_letter, resume_link, applied_at, updated_at
		FROM applications
		WHERE id = $1
	`

	var a models.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StudentID, &a.PlacementID, &a.Status, &a.CoverLetter, &a.ResumeLink,
		&a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return &a, nil
}

// ListByStudent retrieves a student's applications with their placements attached.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.placement_id, a.status, a.cover_letter, a.resume_link,
			a.applied_at, a.updated_at,
			p.id, p.title, p.company, p.description, p.location, p.salary, p.type,
			p.requirements, p.deadline, p.active, p.created_by, p.created_at, p.updated_at
		FROM applications a
		JOIN placements p ON p.id = a.placement_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var a models.Application
		var p models.Placement
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.PlacementID, &a.Status, &a.CoverLetter, &a.ResumeLink,
			&a.AppliedAt, &a.UpdatedAt,
			&p.ID, &p.Title, &p.Company, &p.Description, &p.Location, &p.Salary, &p.Type,
			&p.Requirements, &p.Deadline, &p.Active, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Placement = &p
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}

// ListByPlacement retrieves every application to a placement with the
// applying students attached.
func (r *ApplicationRepository) ListByPlacement(ctx context.Context, placementID int64) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.placement_id, a.status, a.cover_letter, a.resume_link,
			a.applied_at, a.updated_at,
			u.id, u.name, u.email, COALESCE(u.roll_number, ''), u.department
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.placement_id = $1
		ORDER BY a.applied_at
	`

	rows, err := r.db.Query(ctx, query, placementID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		var a models.Application
		var u models.User
		var rollNumber string
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.PlacementID, &a.Status, &a.CoverLetter, &a.ResumeLink,
			&a.AppliedAt, &a.UpdatedAt,
			&u.ID, &u.Name, &u.Email, &rollNumber, &u.Department,
		); err != nil {
			return nil, err
		}
		u.Role = models.RoleStudent
		if rollNumber != "" {
			u.RollNumber = &rollNumber
		}
		a.Student = &u
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateStatus moves an application to a new status.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// Delete removes a single application.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// DeleteByPlacementTx removes every application to a placement inside a
// transaction, as part of the placement-deletion cascade.
func (r *ApplicationRepository) DeleteByPlacementTx(ctx context.Context, tx pgx.Tx, placementID int64) (int64, error) {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM applications WHERE placement_id = $1`, placementID)
	if err != nil {
		return 0, fmt.Errorf("error deleting applications by placement: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteByStudentTx removes every application of a student inside a
// transaction, as part of the user-deletion cascade.
func (r *ApplicationRepository) DeleteByStudentTx(ctx context.Context, tx pgx.Tx, studentID int64) (int64, error) {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM applications WHERE student_id = $1`, studentID)
	if err != nil {
		return 0, fmt.Errorf("error deleting applications by student: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// CountByStatus aggregates application counts for the dashboard.
func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting applications: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// DeleteOrphans removes applications whose student or placement no longer
// exists. Kept as an explicit maintenance sweep for data imported from
// systems without transactional cascades.
func (r *ApplicationRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM applications a
		WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.id = a.student_id)
		   OR NOT EXISTS (SELECT 1 FROM placements p WHERE p.id = a.placement_id)
	`)
	if err != nil {
		return 0, fmt.Errorf("error sweeping orphaned applications: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
