package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern matches what the registration form accepts
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// RollNumberPattern - alphanumeric, 3 to 20 characters
	RollNumberPattern = `^[A-Za-z0-9\-]{3,20}$`

	// TeacherIDPattern - alphanumeric, 3 to 20 characters
	TeacherIDPattern = `^[A-Za-z0-9\-]{3,20}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 6

	// CoverLetterMaxLength bounds application cover letters
	CoverLetterMaxLength = 2000
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	RollNumber *regexp.Regexp
	TeacherID  *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	RollNumber: regexp.MustCompile(RollNumberPattern),
	TeacherID:  regexp.MustCompile(TeacherIDPattern),
}

// ValidEmail reports whether v looks like an email address.
func ValidEmail(v string) bool {
	return CompiledPatterns.Email.MatchString(v)
}

// ValidRollNumber reports whether v is an acceptable roll number.
func ValidRollNumber(v string) bool {
	return CompiledPatterns.RollNumber.MatchString(v)
}

// ValidTeacherID reports whether v is an acceptable teacher ID.
func ValidTeacherID(v string) bool {
	return CompiledPatterns.TeacherID.MatchString(v)
}
