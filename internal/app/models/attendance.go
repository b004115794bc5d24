package models

import "time"

// Attendance statuses. Anything else in stored data is counted as absent.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// ValidAttendanceStatus reports whether s is one of the known statuses.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceEntry is one student's status within an attendance record.
// The list is stored as jsonb on the attendance row.
type AttendanceEntry struct {
	StudentID  int64  `json:"studentId"`
	Status     string `json:"status"`
	RollNumber string `json:"rollNumber"`
	Name       string `json:"name"`
}

// Attendance is one record per (course, calendar date), enforced by a
// unique index on the pair. ClassDate is always midnight UTC.
type Attendance struct {
	ID        int64             `json:"id" db:"id"`
	CourseID  int64             `json:"courseId" db:"course_id"`
	ClassDate time.Time         `json:"date" db:"class_date"`
	MarkedBy  int64             `json:"markedBy" db:"marked_by"`
	Entries   []AttendanceEntry `json:"records" db:"entries"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`
}

// AttendanceStatistics is the per-student aggregate over a course.
type AttendanceStatistics struct {
	StudentID    int64   `json:"studentId"`
	TotalClasses int     `json:"totalClasses"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	Late         int     `json:"late"`
	Excused      int     `json:"excused"`
	Percentage   float64 `json:"percentage"`
}

// StudentAttendanceSummary is one row of a course-wide summary.
type StudentAttendanceSummary struct {
	Name       string               `json:"name"`
	RollNumber string               `json:"rollNumber"`
	Stats      AttendanceStatistics `json:"stats"`
}
