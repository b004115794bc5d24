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

const userColumns = `id, name, email, password, role, roll_number, teacher_id, department,
	phone, resume_link, linkedin, github, created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.RollNumber, &u.TeacherID,
		&u.Department, &u.Phone, &u.ResumeLink, &u.LinkedIn, &u.GitHub,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and fills in the generated ID. Unique
// violations are translated to the matching conflict sentinel.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role, roll_number, teacher_id, department,
			phone, resume_link, linkedin, github)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Role, user.RollNumber, user.TeacherID,
		user.Department, user.Phone, user.ResumeLink, user.LinkedIn, user.GitHub,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		switch dberrors.ConstraintName(err) {
		case "users_email_key":
			return apperrors.ErrEmailAlreadyExists
		case "users_roll_number_key":
			return apperrors.ErrRollNumberExists
		case "users_teacher_id_key":
			return apperrors.ErrTeacherIDExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// GetByRollNumber retrieves a student by roll number
func (r *UserRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE roll_number = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, rollNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by roll number: %w", err)
	}
	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// RollNumberExists checks if a roll number is already registered
func (r *UserRepository) RollNumberExists(ctx context.Context, rollNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE roll_number = $1)`, rollNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking roll number existence: %w", err)
	}
	return exists, nil
}

// TeacherIDExists checks if a teacher ID is already registered
func (r *UserRepository) TeacherIDExists(ctx context.Context, teacherID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE teacher_id = $1)`, teacherID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher ID existence: %w", err)
	}
	return exists, nil
}

// List retrieves users filtered by role and free-text search over name and
// email, paginated. Returns the page and the total match count.
func (r *UserRepository) List(ctx context.Context, role models.Role, search string, offset, limit int) ([]*models.User, int64, error) {
	where := `WHERE ($1 = '' OR role = $1)
		AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, string(role), search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ` + where + `
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4`

	rows, err := r.db.Query(ctx, query, string(role), search, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateProfile updates a user's mutable profile fields
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, department = $3, phone = $4, resume_link = $5,
			linkedin = $6, github = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Name, user.Email, user.Department, user.Phone, user.ResumeLink,
		user.LinkedIn, user.GitHub, user.ID)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteTx deletes a user inside a transaction. Dependent rows (the
// student's applications and enrollments) are removed by the caller in the
// same transaction.
func (r *UserRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CountByRole aggregates user counts per role for the dashboard.
func (r *UserRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("error counting users by role: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var role string
		var count int64
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts[role] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
