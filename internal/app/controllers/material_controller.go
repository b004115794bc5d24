package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// MaterialController handles course material endpoints.
type MaterialController struct {
	materialService *services.MaterialService
}

// NewMaterialController creates a new material controller instance
func NewMaterialController(materialService *services.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

// Create handles POST /materials.
func (ctrl *MaterialController) Create(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	material, err := ctrl.materialService.Create(c.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(material))
}

// List handles GET /materials?courseId=.
func (ctrl *MaterialController) List(c *gin.Context) {
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

	materials, err := ctrl.materialService.ListByCourse(c.Request.Context(), p, courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	count := len(materials)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: materials, Count: &count})
}

// Get handles GET /materials/:id.
func (ctrl *MaterialController) Get(c *gin.Context) {
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

	material, err := ctrl.materialService.Get(c.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(material))
}

// Update handles PUT /materials/:id.
func (ctrl *MaterialController) Update(c *gin.Context) {
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

	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	material, err := ctrl.materialService.Update(c.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(material))
}

// Delete handles DELETE /materials/:id.
func (ctrl *MaterialController) Delete(c *gin.Context) {
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

	if err := ctrl.materialService.Delete(c.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("material deleted"))
}
