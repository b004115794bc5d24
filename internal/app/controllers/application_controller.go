package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// ApplicationController handles placement application endpoints.
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new application controller instance
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Apply handles POST /applications. Student only.
func (ctrl *ApplicationController) Apply(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	application, err := ctrl.applicationService.Apply(c.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}

// ListMine handles GET /applications/me. Student only.
func (ctrl *ApplicationController) ListMine(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	applications, err := ctrl.applicationService.ListMine(c.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	count := len(applications)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: applications, Count: &count})
}

// Get handles GET /applications/:id.
func (ctrl *ApplicationController) Get(c *gin.Context) {
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

	application, err := ctrl.applicationService.Get(c.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(application))
}

// UpdateStatus handles PUT /applications/:id/status. Admin only.
func (ctrl *ApplicationController) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	application, err := ctrl.applicationService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(application))
}

// Withdraw handles DELETE /applications/:id.
func (ctrl *ApplicationController) Withdraw(c *gin.Context) {
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

	if err := ctrl.applicationService.Withdraw(c.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("application withdrawn"))
}
