package services

import (
	"testing"
	"time"

	"github.com/campushub/backend/internal/app/models"
)

func day(d int) time.Time {
	return time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
}

func record(d int, entries ...models.AttendanceEntry) *models.Attendance {
	return &models.Attendance{CourseID: 1, ClassDate: day(d), Entries: entries}
}

func TestComputeStatisticsCounts(t *testing.T) {
	records := []*models.Attendance{
		record(1, models.AttendanceEntry{StudentID: 7, Status: models.AttendancePresent}),
		record(2, models.AttendanceEntry{StudentID: 7, Status: models.AttendanceLate}),
		record(3, models.AttendanceEntry{StudentID: 7, Status: models.AttendanceExcused}),
		record(4, models.AttendanceEntry{StudentID: 7, Status: models.AttendanceAbsent}),
		record(5, models.AttendanceEntry{StudentID: 99, Status: models.AttendancePresent}), // student 7 missing
		record(6, models.AttendanceEntry{StudentID: 7, Status: "vacationing"}),             // unknown status
	}

	stats := ComputeStatistics(records, 7)

	if stats.TotalClasses != 6 {
		t.Errorf("TotalClasses = %d, want 6", stats.TotalClasses)
	}
	if stats.Present != 1 || stats.Late != 1 || stats.Excused != 1 {
		t.Errorf("present/late/excused = %d/%d/%d, want 1/1/1", stats.Present, stats.Late, stats.Excused)
	}
	// explicit absent + missing entry + unknown status
	if stats.Absent != 3 {
		t.Errorf("Absent = %d, want 3", stats.Absent)
	}
	// (1+1+1)/6 * 100 = 50
	if stats.Percentage != 50.0 {
		t.Errorf("Percentage = %v, want 50.0", stats.Percentage)
	}
}

func TestComputeStatisticsRounding(t *testing.T) {
	records := []*models.Attendance{
		record(1, models.AttendanceEntry{StudentID: 7, Status: models.AttendancePresent}),
		record(2, models.AttendanceEntry{StudentID: 7, Status: models.AttendancePresent}),
		record(3), // counts absent
	}

	stats := ComputeStatistics(records, 7)
	// 2/3*100 = 66.666... → 66.67
	if stats.Percentage != 66.67 {
		t.Errorf("Percentage = %v, want 66.67", stats.Percentage)
	}
}

func TestComputeStatisticsNoClasses(t *testing.T) {
	stats := ComputeStatistics(nil, 7)
	if stats.TotalClasses != 0 {
		t.Errorf("TotalClasses = %d, want 0", stats.TotalClasses)
	}
	if stats.Percentage != 0.0 {
		t.Errorf("Percentage = %v, want 0.0 for zero classes", stats.Percentage)
	}
}

func TestComputeStatisticsFullAttendance(t *testing.T) {
	records := []*models.Attendance{
		record(1, models.AttendanceEntry{StudentID: 7, Status: models.AttendancePresent}),
		record(2, models.AttendanceEntry{StudentID: 7, Status: models.AttendanceExcused}),
	}
	if got := ComputeStatistics(records, 7).Percentage; got != 100.0 {
		t.Errorf("Percentage = %v, want 100.0", got)
	}
}

func TestCanViewCourseAttendance(t *testing.T) {
	const teacherID = 42

	tests := []struct {
		name      string
		principal *models.Principal
		want      bool
	}{
		{"owning teacher", &models.Principal{ID: teacherID, Role: models.RoleTeacher}, true},
		{"other teacher", &models.Principal{ID: 7, Role: models.RoleTeacher}, false},
		{"admin", &models.Principal{ID: 1, Role: models.RoleAdmin}, true},
		{"student", &models.Principal{ID: 9, Role: models.RoleStudent}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canViewCourseAttendance(tt.principal, teacherID); got != tt.want {
				t.Errorf("canViewCourseAttendance(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
