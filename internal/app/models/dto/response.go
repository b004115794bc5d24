package dto

// APIResponse is the uniform JSON envelope returned by every endpoint.
type APIResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data,omitempty"`
	Message     string      `json:"message,omitempty"`
	Count       *int        `json:"count,omitempty"`
	Total       *int64      `json:"total,omitempty"`
	TotalPages  *int        `json:"totalPages,omitempty"`
	CurrentPage *int        `json:"currentPage,omitempty"`
}

// ErrorResponse is the failure envelope. Field names the offending input
// field for validation and conflict errors.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewMessageResponse wraps a bare message in a success envelope.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// NewListResponse wraps a page of results with pagination metadata.
func NewListResponse(data interface{}, count int, total int64, totalPages, currentPage int) APIResponse {
	return APIResponse{
		Success:     true,
		Data:        data,
		Count:       &count,
		Total:       &total,
		TotalPages:  &totalPages,
		CurrentPage: &currentPage,
	}
}

// NewErrorResponse builds a failure envelope.
func NewErrorResponse(message, field string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Field: field}
}
