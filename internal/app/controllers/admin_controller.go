package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// AdminController handles user management, dashboard statistics and
// maintenance endpoints. Everything here sits behind the admin role.
type AdminController struct {
	userService  *services.UserService
	statsService *services.StatsService
}

// NewAdminController creates a new admin controller instance
func NewAdminController(userService *services.UserService, statsService *services.StatsService) *AdminController {
	return &AdminController{
		userService:  userService,
		statsService: statsService,
	}
}

// ListUsers handles GET /admin/users?role=student&search=x.
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)
	offset, limit := helpers.CalculateOffsetLimit(page, limit)
	role := models.Role(c.Query("role"))

	users, total, err := ctrl.userService.List(c.Request.Context(), role, c.Query("search"), offset, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(users, len(users), total, helpers.TotalPages(total, limit), page))
}

// GetUser handles GET /admin/users/:id.
func (ctrl *AdminController) GetUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user, err := ctrl.userService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// CreateUser handles POST /admin/users.
func (ctrl *AdminController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	user, err := ctrl.userService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// DeleteUser handles DELETE /admin/users/:id.
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
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

	if err := ctrl.userService.Delete(c.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("user deleted"))
}

// Dashboard handles GET /admin/stats.
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	stats, err := ctrl.statsService.Dashboard(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// SweepOrphans handles POST /admin/maintenance/orphan-sweep. Deletes
// applications whose student or placement row is gone.
func (ctrl *AdminController) SweepOrphans(c *gin.Context) {
	removed, err := ctrl.userService.SweepOrphanApplications(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"removed": removed}))
}
