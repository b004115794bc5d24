package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/services"
	"github.com/campushub/backend/internal/middleware"
)

// NoticeController handles campus notice endpoints. Reads are open to all
// authenticated users; writes are admin-gated in the router.
type NoticeController struct {
	noticeService *services.NoticeService
}

// NewNoticeController creates a new notice controller instance
func NewNoticeController(noticeService *services.NoticeService) *NoticeController {
	return &NoticeController{noticeService: noticeService}
}

// Create handles POST /notices.
func (ctrl *NoticeController) Create(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	notice, err := ctrl.noticeService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(notice))
}

// List handles GET /notices.
func (ctrl *NoticeController) List(c *gin.Context) {
	notices, err := ctrl.noticeService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	count := len(notices)
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: notices, Count: &count})
}

// Get handles GET /notices/:id.
func (ctrl *NoticeController) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	notice, err := ctrl.noticeService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(notice))
}

// Update handles PUT /notices/:id.
func (ctrl *NoticeController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	notice, err := ctrl.noticeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(notice))
}

// Delete handles DELETE /notices/:id.
func (ctrl *NoticeController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.noticeService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("notice deleted"))
}
