package models

import "time"

// Notice defines the notice model based on the 'notices' table.
// Notices carry a free-text poster label, not a user reference.
type Notice struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	EventDate   *time.Time `json:"eventDate,omitempty" db:"event_date"`
	PostedBy    string     `json:"postedBy" db:"posted_by"` // default "Admin"
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// DashboardStats aggregates read-side counts for the admin dashboard.
type DashboardStats struct {
	UsersByRole          map[string]int64 `json:"usersByRole"`
	PlacementsByActive   map[string]int64 `json:"placementsByActive"`
	ApplicationsByStatus map[string]int64 `json:"applicationsByStatus"`
}
