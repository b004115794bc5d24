package services

import (
	"errors"
	"testing"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func TestValidateRoleIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		rollNumber string
		teacherID  string
		wantErr    bool
		wantField  string
	}{
		{"student with roll number", models.RoleStudent, "CS2021001", "", false, ""},
		{"student missing roll number", models.RoleStudent, "", "", true, "rollNumber"},
		{"student with teacher ID", models.RoleStudent, "CS2021001", "T100", true, "teacherId"},
		{"student bad roll number", models.RoleStudent, "a!", "", true, "rollNumber"},
		{"teacher with ID", models.RoleTeacher, "", "T100", false, ""},
		{"teacher missing ID", models.RoleTeacher, "", "", true, "teacherId"},
		{"teacher with roll number", models.RoleTeacher, "CS2021001", "T100", true, "rollNumber"},
		{"admin clean", models.RoleAdmin, "", "", false, ""},
		{"admin with roll number", models.RoleAdmin, "CS2021001", "", true, ""},
		{"unknown role", models.Role("dean"), "", "", true, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRoleIdentifier(tt.role, tt.rollNumber, tt.teacherID)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
			if got := apperrors.FieldOf(err); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestBuildUser(t *testing.T) {
	user, err := buildUser("  Asha Verma ", " Asha@Example.EDU ", "pass123", models.RoleStudent, " CSE ", "CS2021001", "")
	if err != nil {
		t.Fatalf("buildUser: %v", err)
	}

	if user.Name != "Asha Verma" {
		t.Errorf("Name = %q", user.Name)
	}
	if user.Email != "asha@example.edu" {
		t.Errorf("Email = %q, want lowercased and trimmed", user.Email)
	}
	if user.Department != "CSE" {
		t.Errorf("Department = %q", user.Department)
	}
	if user.Password == "pass123" {
		t.Error("password stored in plaintext")
	}
	if user.RollNumber == nil || *user.RollNumber != "CS2021001" {
		t.Errorf("RollNumber = %v", user.RollNumber)
	}
	if user.TeacherID != nil {
		t.Errorf("TeacherID = %v, want nil", user.TeacherID)
	}
}
