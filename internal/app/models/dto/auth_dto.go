package dto

import "github.com/campushub/backend/internal/app/models"

// RegisterRequest represents a user registration request.
// RollNumber and TeacherID are mutually exclusive and must match the role.
type RegisterRequest struct {
	Name       string      `json:"name" binding:"required,min=2,max=100"`
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=6"`
	Role       models.Role `json:"role" binding:"required,oneof=student teacher"`
	Department string      `json:"department" binding:"required"`
	RollNumber string      `json:"rollNumber"`
	TeacherID  string      `json:"teacherId"`
}

// LoginRequest represents login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful authentication response.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UpdateProfileRequest represents profile update data. Nil pointers leave
// the stored value untouched.
type UpdateProfileRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	ResumeLink *string `json:"resumeLink"`
	LinkedIn   *string `json:"linkedin"`
	GitHub     *string `json:"github"`
}

// CreateUserRequest is the admin user-creation request; unlike register it
// also allows the admin role.
type CreateUserRequest struct {
	Name       string      `json:"name" binding:"required,min=2,max=100"`
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=6"`
	Role       models.Role `json:"role" binding:"required,oneof=student teacher admin"`
	Department string      `json:"department"`
	RollNumber string      `json:"rollNumber"`
	TeacherID  string      `json:"teacherId"`
}
