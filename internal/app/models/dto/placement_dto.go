package dto

// CreatePlacementRequest represents placement creation data.
type CreatePlacementRequest struct {
	Title        string `json:"title" binding:"required,min=2,max=200"`
	Company      string `json:"company" binding:"required,min=1,max=200"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Salary       string `json:"salary"` // defaults to "Not disclosed"
	Type         string `json:"type" binding:"required,oneof=Full-time Part-time Internship Contract"`
	Requirements string `json:"requirements"`
	Deadline     string `json:"deadline" binding:"required"` // RFC 3339 or YYYY-MM-DD
}

// UpdatePlacementRequest represents a placement patch.
type UpdatePlacementRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=2,max=200"`
	Company      *string `json:"company" binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	Salary       *string `json:"salary"`
	Type         *string `json:"type" binding:"omitempty,oneof=Full-time Part-time Internship Contract"`
	Requirements *string `json:"requirements"`
	Deadline     *string `json:"deadline"`
}

// CreateApplicationRequest represents an application to a placement.
type CreateApplicationRequest struct {
	PlacementID int64  `json:"placementId" binding:"required,min=1"`
	CoverLetter string `json:"coverLetter" binding:"max=2000"`
	ResumeLink  string `json:"resumeLink"`
}

// UpdateApplicationStatusRequest moves an application between statuses.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Applied 'Under Review' Selected Rejected"`
}

// CreateNoticeRequest represents notice creation data.
type CreateNoticeRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"required"`
	EventDate   string `json:"eventDate"` // optional, RFC 3339 or YYYY-MM-DD
	PostedBy    string `json:"postedBy"`  // defaults to "Admin"
}

// UpdateNoticeRequest represents a notice patch.
type UpdateNoticeRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description"`
	EventDate   *string `json:"eventDate"`
	PostedBy    *string `json:"postedBy"`
}
