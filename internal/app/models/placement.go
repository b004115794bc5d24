package models

import "time"

// Placement types.
const (
	PlacementFullTime   = "Full-time"
	PlacementPartTime   = "Part-time"
	PlacementInternship = "Internship"
	PlacementContract   = "Contract"
)

// ValidPlacementType reports whether t is one of the known placement types.
func ValidPlacementType(t string) bool {
	switch t {
	case PlacementFullTime, PlacementPartTime, PlacementInternship, PlacementContract:
		return true
	}
	return false
}

// Placement defines the placement model based on the 'placements' table.
// CreatedBy is a required user reference; the active flag gates student
// visibility and application creation.
type Placement struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Company      string    `json:"company" db:"company"`
	Description  string    `json:"description" db:"description"`
	Location     string    `json:"location" db:"location"`
	Salary       string    `json:"salary" db:"salary"` // free text, default "Not disclosed"
	Type         string    `json:"type" db:"type"`
	Requirements string    `json:"requirements" db:"requirements"`
	Deadline     time.Time `json:"deadline" db:"deadline"`
	Active       bool      `json:"active" db:"active"`
	CreatedBy    int64     `json:"createdBy" db:"created_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Application statuses.
const (
	ApplicationApplied     = "Applied"
	ApplicationUnderReview = "Under Review"
	ApplicationSelected    = "Selected"
	ApplicationRejected    = "Rejected"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationApplied, ApplicationUnderReview, ApplicationSelected, ApplicationRejected:
		return true
	}
	return false
}

// Application links one student to one placement. At most one row per
// (student, placement) pair, enforced by a unique index.
type Application struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	PlacementID int64     `json:"placementId" db:"placement_id"`
	Status      string    `json:"status" db:"status"`
	CoverLetter string    `json:"coverLetter" db:"cover_letter"`
	ResumeLink  string    `json:"resumeLink" db:"resume_link"`
	AppliedAt   time.Time `json:"appliedAt" db:"applied_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student   *User      `json:"student,omitempty"`
	Placement *Placement `json:"placement,omitempty"`
}
