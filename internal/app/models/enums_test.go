package models

import "testing"

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleTeacher, RoleAdmin} {
		if !role.Valid() {
			t.Errorf("Role(%q).Valid() = false", role)
		}
	}
	for _, role := range []Role{"", "dean", "STUDENT"} {
		if role.Valid() {
			t.Errorf("Role(%q).Valid() = true", role)
		}
	}
}

func TestValidAttendanceStatus(t *testing.T) {
	for _, s := range []string{AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused} {
		if !ValidAttendanceStatus(s) {
			t.Errorf("ValidAttendanceStatus(%q) = false", s)
		}
	}
	if ValidAttendanceStatus("Present") || ValidAttendanceStatus("") {
		t.Error("invalid status accepted")
	}
}

func TestValidPlacementType(t *testing.T) {
	for _, p := range []string{PlacementFullTime, PlacementPartTime, PlacementInternship, PlacementContract} {
		if !ValidPlacementType(p) {
			t.Errorf("ValidPlacementType(%q) = false", p)
		}
	}
	if ValidPlacementType("full-time") || ValidPlacementType("") {
		t.Error("invalid placement type accepted")
	}
}

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []string{ApplicationApplied, ApplicationUnderReview, ApplicationSelected, ApplicationRejected} {
		if !ValidApplicationStatus(s) {
			t.Errorf("ValidApplicationStatus(%q) = false", s)
		}
	}
	if ValidApplicationStatus("applied") || ValidApplicationStatus("Waitlisted") {
		t.Error("invalid application status accepted")
	}
}
