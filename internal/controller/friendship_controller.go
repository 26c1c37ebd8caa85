package controller

import (
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FriendshipController struct {
	FriendshipService *service.FriendshipService
}

func NewFriendshipController(friendshipService *service.FriendshipService) *FriendshipController {
	return &FriendshipController{FriendshipService: friendshipService}
}

// swagger:model SendFriendRequestRequest
type SendFriendRequestRequest struct {
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	Message    string `json:"message" binding:"omitempty,max=255"`
}

// swagger:model CancelFriendRequestRequest
type CancelFriendRequestRequest struct {
	ReceiverID uint `json:"receiver_id" binding:"required"`
}

// swagger:model HandleFriendRequestRequest
type HandleFriendRequestRequest struct {
	RequestID string `json:"request_id" binding:"required,uuid"`
}

// SendRequest godoc
// @Summary Send a friend request
// @Description Creates a pending friend request to the given user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendFriendRequestRequest true "receiver"
// @Success 201 {object} util.Response{data=model.FriendRequest}
// @Failure 400 {object} util.Response "self request, already friends, or duplicate pending"
// @Failure 422 {object} util.Response "receiver missing or invalid"
// @Router /api/friend-requests [post]
func (c *FriendshipController) SendRequest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	request, err := c.FriendshipService.SendRequest(user.UserID, req.ReceiverID, req.Message)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, request)
}

// ListSent godoc
// @Summary List sent friend requests
// @Description Returns receiver ids of the caller's pending requests
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/friend-requests/sent [get]
func (c *FriendshipController) ListSent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ids, err := c.FriendshipService.ListSent(user.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, ids)
}

// ListReceived godoc
// @Summary List received friend requests
// @Description Returns pending requests addressed to the caller, with sender details
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/friend-requests/received [get]
func (c *FriendshipController) ListReceived(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	reqs, err := c.FriendshipService.ListReceived(user.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, reqs)
}

// Cancel godoc
// @Summary Cancel a sent friend request
// @Description Deletes the caller's pending request to the given user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CancelFriendRequestRequest true "receiver"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "no pending request in that direction"
// @Router /api/friend-requests/cancel [post]
func (c *FriendshipController) Cancel(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CancelFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	if err := c.FriendshipService.CancelRequest(user.UserID, req.ReceiverID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "request cancelled")
}

// Accept godoc
// @Summary Accept a friend request
// @Description Accepts a pending request addressed to the caller and creates the friendship
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body HandleFriendRequestRequest true "request id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "request missing or not addressed to caller"
// @Router /api/friend-requests/accept [post]
func (c *FriendshipController) Accept(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req HandleFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	if err := c.FriendshipService.AcceptRequest(user.UserID, req.RequestID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "request accepted")
}

// Reject godoc
// @Summary Reject a friend request
// @Description Rejects a pending request addressed to the caller
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body HandleFriendRequestRequest true "request id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/friend-requests/reject [post]
func (c *FriendshipController) Reject(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req HandleFriendRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	if err := c.FriendshipService.RejectRequest(user.UserID, req.RequestID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "request rejected")
}

// ListFriends godoc
// @Summary List friends
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/friends [get]
func (c *FriendshipController) ListFriends(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	friends, err := c.FriendshipService.ListFriends(user.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, friends)
}

// Unfriend godoc
// @Summary Remove a friend
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param friendId path int true "friend user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/friends/{friendId} [delete]
func (c *FriendshipController) Unfriend(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	friendID := util.MustParseUint(ctx.Param("friendId"))
	if friendID == 0 {
		util.BadRequest(ctx, "invalid friend id")
		return
	}

	if err := c.FriendshipService.Unfriend(user.UserID, friendID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "friend removed")
}
