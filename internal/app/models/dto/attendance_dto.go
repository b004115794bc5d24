package dto

// AttendanceRecordRequest is one student's status in a mark-attendance call.
type AttendanceRecordRequest struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	Status    string `json:"status" binding:"required,oneof=present absent late excused"`
}

// MarkAttendanceRequest marks attendance for a course on one calendar date.
// Date accepts RFC 3339 or YYYY-MM-DD; time-of-day is stripped before the
// record is matched, so two calls on the same day hit the same row.
type MarkAttendanceRequest struct {
	CourseID int64                     `json:"courseId" binding:"required,min=1"`
	Date     string                    `json:"date" binding:"required"`
	Records  []AttendanceRecordRequest `json:"records" binding:"required,min=1,dive"`
}
