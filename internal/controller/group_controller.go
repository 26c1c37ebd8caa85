package controller

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	GroupService *service.GroupService
}

func NewGroupController(groupService *service.GroupService) *GroupController {
	return &GroupController{GroupService: groupService}
}

// swagger:model AddMemberRequest
type AddMemberRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"omitempty,oneof=admin member"`
}

// Create godoc
// @Summary Create a group
// @Description Creates a group with the caller as owner
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.GroupRequest true "group attributes"
// @Success 201 {object} util.Response{data=model.Group}
// @Router /api/groups [post]
func (c *GroupController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	group, err := c.GroupService.CreateGroup(user.UserID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, group)
}

// List godoc
// @Summary List public groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param mine query bool false "only groups the caller belongs to"
// @Success 200 {object} util.Response
// @Router /api/groups [get]
func (c *GroupController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if ctx.Query("mine") == "true" {
		groups, err := c.GroupService.ListMyGroups(user.UserID)
		if err != nil {
			util.RespondError(ctx, err)
			return
		}
		util.Success(ctx, groups)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	groups, total, err := c.GroupService.ListGroups(page, limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: groups, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Get a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Success 200 {object} util.Response{data=model.Group}
// @Failure 404 {object} util.Response
// @Router /api/groups/{id} [get]
func (c *GroupController) Get(ctx *gin.Context) {
	groupID := util.MustParseUint(ctx.Param("id"))
	if groupID == 0 {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	group, err := c.GroupService.GetGroup(groupID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// Update godoc
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Param body body service.GroupRequest true "group attributes"
// @Success 200 {object} util.Response{data=model.Group}
// @Failure 403 {object} util.Response
// @Router /api/groups/{id} [put]
func (c *GroupController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	groupID := util.MustParseUint(ctx.Param("id"))
	if groupID == 0 {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	var req service.GroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	group, err := c.GroupService.UpdateGroup(user.UserID, groupID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// Delete godoc
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/groups/{id} [delete]
func (c *GroupController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	groupID := util.MustParseUint(ctx.Param("id"))
	if groupID == 0 {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	if err := c.GroupService.DeleteGroup(user.UserID, groupID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "group deleted")
}

// ListMembers godoc
// @Summary List group members
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "private group, caller not a member"
// @Router /api/groups/{id}/members [get]
func (c *GroupController) ListMembers(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	groupID := util.MustParseUint(ctx.Param("id"))
	if groupID == 0 {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	members, err := c.GroupService.ListMembers(user.UserID, groupID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, members)
}

// AddMember godoc
// @Summary Add a member
// @Description Owner/admin only
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Param body body AddMemberRequest true "member"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 409 {object} util.Response "already a member"
// @Router /api/groups/{id}/members [post]
func (c *GroupController) AddMember(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	groupID := util.MustParseUint(ctx.Param("id"))
	if groupID == 0 {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	var req AddMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	if err := c.GroupService.AddMember(user.UserID, groupID, req.UserID, model.GroupRole(req.Role)); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"group_id": groupID, "user_id": req.UserID})
}

// RemoveMember godoc
// @Summary Remove a member
// @Description Owner/admin only, except members removing themselves
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/groups/{id}/members/{userId} [delete]
func (c *GroupController) RemoveMember(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	groupID := util.MustParseUint(ctx.Param("id"))
	userID := util.MustParseUint(ctx.Param("userId"))
	if groupID == 0 || userID == 0 {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.GroupService.RemoveMember(user.UserID, groupID, userID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "member removed")
}

// Join godoc
// @Summary Join a public group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response "group is private"
// @Failure 409 {object} util.Response "already a member"
// @Router /api/groups/{id}/join [post]
func (c *GroupController) Join(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	groupID := util.MustParseUint(ctx.Param("id"))
	if groupID == 0 {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	if err := c.GroupService.JoinGroup(user.UserID, groupID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"group_id": groupID})
}

// Leave godoc
// @Summary Leave a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "group id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "not a member"
// @Router /api/groups/{id}/leave [post]
func (c *GroupController) Leave(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	groupID := util.MustParseUint(ctx.Param("id"))
	if groupID == 0 {
		util.BadRequest(ctx, "invalid group id")
		return
	}

	if err := c.GroupService.LeaveGroup(user.UserID, groupID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "left group")
}
