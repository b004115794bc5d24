package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// CourseController handles course and enrollment endpoints.
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new course controller instance
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// Create handles POST /courses.
func (ctrl *CourseController) Create(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	course, err := ctrl.courseService.Create(c.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// List handles GET /courses with role-scoped visibility.
func (ctrl *CourseController) List(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	courses, total, err := ctrl.courseService.List(c.Request.Context(), p, c.Query("search"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(courses, len(courses), total, helpers.TotalPages(total, limit), page))
}

// Get handles GET /courses/:id.
func (ctrl *CourseController) Get(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	course, err := ctrl.courseService.Get(c.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// Update handles PUT /courses/:id.
func (ctrl *CourseController) Update(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	course, err := ctrl.courseService.Update(c.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// Delete handles DELETE /courses/:id.
func (ctrl *CourseController) Delete(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.courseService.Delete(c.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("course deleted"))
}

// Enroll handles POST /courses/:id/students.
func (ctrl *CourseController) Enroll(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.courseService.Enroll(c.Request.Context(), p, id, &req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("student enrolled"))
}

// Unenroll handles DELETE /courses/:id/students/:studentId.
func (ctrl *CourseController) Unenroll(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	studentID, err := pathID(c, "studentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.courseService.Unenroll(c.Request.Context(), p, id, studentID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("student removed from course"))
}

// Students handles GET /courses/:id/students.
func (ctrl *CourseController) Students(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	students, err := ctrl.courseService.Students(c.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	count := len(students)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: students, Count: &count})
}
