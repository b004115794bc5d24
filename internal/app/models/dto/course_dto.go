package dto

// CreateCourseRequest represents course creation data.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description"`
}

// UpdateCourseRequest represents a course patch.
type UpdateCourseRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=150"`
	Description *string `json:"description"`
}

// EnrollStudentRequest enrolls a student into a course by roll number.
type EnrollStudentRequest struct {
	RollNumber string `json:"rollNumber" binding:"required"`
}

// CreateAssignmentRequest represents assignment creation data.
type CreateAssignmentRequest struct {
	CourseID    int64  `json:"courseId" binding:"required,min=1"`
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required"` // RFC 3339 or YYYY-MM-DD
}

// UpdateAssignmentRequest represents an assignment patch.
type UpdateAssignmentRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
}

// CreateMaterialRequest represents material creation data.
type CreateMaterialRequest struct {
	CourseID int64  `json:"courseId" binding:"required,min=1"`
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type"` // defaults to "text"
}

// UpdateMaterialRequest represents a material patch.
type UpdateMaterialRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=2,max=200"`
	Content *string `json:"content"`
	Type    *string `json:"type"`
}
