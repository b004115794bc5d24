package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(uniqueViolation("users_email_key")) {
		t.Error("23505 not detected")
	}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", uniqueViolation("x"))) {
		t.Error("wrapped 23505 not detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("23503 misdetected as unique violation")
	}
	if IsUniqueViolation(errors.New("plain")) {
		t.Error("plain error misdetected")
	}
}

func TestIsUniqueViolationOn(t *testing.T) {
	err := uniqueViolation("users_roll_number_key")
	if !IsUniqueViolationOn(err, "users_roll_number_key") {
		t.Error("matching constraint not detected")
	}
	if IsUniqueViolationOn(err, "users_email_key") {
		t.Error("wrong constraint matched")
	}
}

func TestConstraintName(t *testing.T) {
	if got := ConstraintName(uniqueViolation("applications_student_placement_key")); got != "applications_student_placement_key" {
		t.Errorf("ConstraintName = %q", got)
	}
	if got := ConstraintName(errors.New("plain")); got != "" {
		t.Errorf("ConstraintName(plain) = %q, want empty", got)
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("23503 not detected")
	}
	if IsForeignKeyViolation(uniqueViolation("x")) {
		t.Error("23505 misdetected as FK violation")
	}
}
