package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// PlacementController handles placement drive endpoints.
type PlacementController struct {
	placementService   *services.PlacementService
	applicationService *services.ApplicationService
}

// NewPlacementController creates a new placement controller instance
func NewPlacementController(placementService *services.PlacementService, applicationService *services.ApplicationService) *PlacementController {
	return &PlacementController{
		placementService:   placementService,
		applicationService: applicationService,
	}
}

// Create handles POST /placements. Admin only.
func (ctrl *PlacementController) Create(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	placement, err := ctrl.placementService.Create(c.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(placement))
}

// List handles GET /placements. Students only see active drives.
func (ctrl *PlacementController) List(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	page, limit := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, limit)
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	placements, total, err := ctrl.placementService.List(c.Request.Context(), p, activeOnly, c.Query("search"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(placements, len(placements), total, helpers.TotalPages(total, limit), page))
}

// Get handles GET /placements/:id.
func (ctrl *PlacementController) Get(c *gin.Context) {
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

	placement, err := ctrl.placementService.Get(c.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(placement))
}

// Update handles PUT /placements/:id. Admin only.
func (ctrl *PlacementController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	placement, err := ctrl.placementService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(placement))
}

// ToggleActive handles PUT /placements/:id/toggle-active. Admin only.
func (ctrl *PlacementController) ToggleActive(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	placement, err := ctrl.placementService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(placement))
}

// Delete handles DELETE /placements/:id. Admin only; applications cascade.
func (ctrl *PlacementController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.placementService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("placement and its applications deleted"))
}

// Applications handles GET /placements/:id/applications. Admin only.
func (ctrl *PlacementController) Applications(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	applications, err := ctrl.applicationService.ListByPlacement(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	count := len(applications)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: applications, Count: &count})
}
