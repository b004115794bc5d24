package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// AttendanceController handles attendance endpoints.
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller instance
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Mark handles POST /attendance. Re-marking the same course and date
// replaces the earlier record.
func (ctrl *AttendanceController) Mark(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	attendance, err := ctrl.attendanceService.Mark(c.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(attendance))
}

// ListByCourse handles GET /attendance/course/:id.
func (ctrl *AttendanceController) ListByCourse(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	records, err := ctrl.attendanceService.ListByCourse(c.Request.Context(), p, courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	count := len(records)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: records, Count: &count})
}

// GetByDate handles GET /attendance/course/:id/date/:date.
func (ctrl *AttendanceController) GetByDate(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	record, err := ctrl.attendanceService.GetByDate(c.Request.Context(), p, courseID, c.Param("date"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// StudentStatistics handles GET /attendance/course/:id/student/:studentId/stats.
func (ctrl *AttendanceController) StudentStatistics(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	studentID, err := pathID(c, "studentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	stats, err := ctrl.attendanceService.StudentStatistics(c.Request.Context(), p, courseID, studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// CourseSummary handles GET /attendance/course/:id/summary.
func (ctrl *AttendanceController) CourseSummary(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	courseID, err := pathID(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	summary, err := ctrl.attendanceService.CourseSummary(c.Request.Context(), p, courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	count := len(summary)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: summary, Count: &count})
}
