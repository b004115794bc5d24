package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewValidationError("name is too short")

	if !errors.Is(err, ErrValidation) {
		t.Error("validation error does not unwrap to ErrValidation")
	}
	if err.Error() != "name is too short" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCustomErrorThroughWrapping(t *testing.T) {
	inner := NewConflictError("duplicate roll number").WithField("rollNumber")
	wrapped := fmt.Errorf("creating user: %w", inner)

	if !errors.Is(wrapped, ErrConflict) {
		t.Error("wrapped error lost its taxonomy")
	}
	if FieldOf(wrapped) != "rollNumber" {
		t.Errorf("FieldOf(wrapped) = %q, want rollNumber", FieldOf(wrapped))
	}
}

func TestFieldOfPlainError(t *testing.T) {
	if got := FieldOf(errors.New("plain")); got != "" {
		t.Errorf("FieldOf(plain) = %q, want empty", got)
	}
	if got := FieldOf(ErrUserNotFound); got != "" {
		t.Errorf("FieldOf(sentinel) = %q, want empty", got)
	}
}

func TestErrorFallbacks(t *testing.T) {
	e := &CustomError{Err: ErrNotFound}
	if e.Error() != ErrNotFound.Error() {
		t.Errorf("Error() = %q, want sentinel text", e.Error())
	}

	empty := &CustomError{}
	if empty.Error() != "unknown error" {
		t.Errorf("Error() = %q, want unknown error", empty.Error())
	}
}
