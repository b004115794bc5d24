package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// AssignmentController handles assignment endpoints.
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new assignment controller instance
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// Create handles POST /assignments.
func (ctrl *AssignmentController) Create(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	assignment, err := ctrl.assignmentService.Create(c.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment))
}

// List handles GET /assignments?courseId=.
func (ctrl *AssignmentController) List(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	courseID, err := queryID(c, "courseId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	assignments, err := ctrl.assignmentService.ListByCourse(c.Request.Context(), p, courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	count := len(assignments)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: assignments, Count: &count})
}

// Get handles GET /assignments/:id.
func (ctrl *AssignmentController) Get(c *gin.Context) {
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

	assignment, err := ctrl.assignmentService.Get(c.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// Update handles PUT /assignments/:id.
func (ctrl *AssignmentController) Update(c *gin.Context) {
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

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	assignment, err := ctrl.assignmentService.Update(c.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// Delete handles DELETE /assignments/:id.
func (ctrl *AssignmentController) Delete(c *gin.Context) {
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

	if err := ctrl.assignmentService.Delete(c.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("assignment deleted"))
}
