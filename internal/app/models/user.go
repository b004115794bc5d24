package models

import (
	"time"
)

// Role is the role a user carries.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table.
// Exactly one of RollNumber/TeacherID is set for students/teachers; the
// absent one stays NULL so the partial unique indexes never collide.
type User struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role       Role      `json:"role" db:"role"`
	RollNumber *string   `json:"rollNumber,omitempty" db:"roll_number"`
	TeacherID  *string   `json:"teacherId,omitempty" db:"teacher_id"`
	Department string    `json:"department,omitempty" db:"department"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	ResumeLink *string   `json:"resumeLink,omitempty" db:"resume_link"`
	LinkedIn   *string   `json:"linkedin,omitempty" db:"linkedin"`
	GitHub     *string   `json:"github,omitempty" db:"github"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// Principal is the authenticated identity attached to a request after the
// auth gate succeeds.
type Principal struct {
	ID    int64  `json:"id"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
