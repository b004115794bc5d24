package models

import "time"

// Course defines the course model based on the 'courses' table.
// Enrollment lives in the 'course_students' join table; roll numbers are
// derived on read via join, never stored on the course row.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	TeacherID   int64     `json:"teacherId" db:"teacher_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Teacher  *User           `json:"teacher,omitempty"`
	Students []EnrolledStudent `json:"students,omitempty"`
}

// EnrolledStudent is the read-side projection of a course enrollment.
type EnrolledStudent struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	RollNumber string `json:"rollNumber" db:"roll_number"`
	Email      string `json:"email" db:"email"`
}
