package controller

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// swagger:model UserStatusRequest
type UserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}

// GetStats godoc
// @Summary Admin dashboard aggregates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Failure 403 {object} util.Response
// @Router /api/admin/dashboard [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.DashboardService.GetStats()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *DashboardController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.DashboardService.ListUsers(page, limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// SetUserStatus godoc
// @Summary Suspend or reactivate a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param body body UserStatusRequest true "status"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id}/status [patch]
func (c *DashboardController) SetUserStatus(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req UserStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	if err := c.DashboardService.SetUserStatus(userID, model.UserStatus(req.Status)); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "user status updated")
}
