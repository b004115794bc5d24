package validation

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "asha.verma+x@example.edu", "t_1@dept.uni.ac.in"}
	invalid := []string{"", "plain", "@example.com", "a@b", "a b@c.com"}

	for _, v := range valid {
		if !ValidEmail(v) {
			t.Errorf("ValidEmail(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if ValidEmail(v) {
			t.Errorf("ValidEmail(%q) = true, want false", v)
		}
	}
}

func TestValidRollNumber(t *testing.T) {
	valid := []string{"CS2021001", "21-BCS-042", "abc"}
	invalid := []string{"", "ab", "with space", "roll#1", "aaaaaaaaaaaaaaaaaaaaa"}

	for _, v := range valid {
		if !ValidRollNumber(v) {
			t.Errorf("ValidRollNumber(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if ValidRollNumber(v) {
			t.Errorf("ValidRollNumber(%q) = true, want false", v)
		}
	}
}

func TestValidTeacherID(t *testing.T) {
	if !ValidTeacherID("T-100") {
		t.Error("ValidTeacherID(T-100) = false")
	}
	if ValidTeacherID("t!") {
		t.Error("ValidTeacherID(t!) = true")
	}
}
