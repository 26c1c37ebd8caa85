package controller

import (
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// CreateConversation godoc
// @Summary Start a conversation
// @Description Direct conversations are unique per pair; an existing one is returned
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ConversationRequest true "conversation"
// @Success 201 {object} util.Response{data=model.Conversation}
// @Failure 422 {object} util.Response
// @Router /api/conversations [post]
func (c *ChatController) CreateConversation(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ConversationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	conv, err := c.ChatService.CreateConversation(user.UserID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, conv)
}

// ListConversations godoc
// @Summary List the caller's conversations
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/conversations [get]
func (c *ChatController) ListConversations(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	convs, err := c.ChatService.ListConversations(user.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, convs)
}

// ListMessages godoc
// @Summary List messages in a conversation
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "conversation id"
// @Param limit query int false "page size" default(50)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "not a participant"
// @Router /api/conversations/{id}/messages [get]
func (c *ChatController) ListMessages(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	conversationID := ctx.Param("id")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	msgs, err := c.ChatService.ListMessages(user.UserID, conversationID, limit, offset)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, msgs)
}

// SendMessage godoc
// @Summary Send a message
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "conversation id"
// @Param body body service.MessageRequest true "message"
// @Success 201 {object} util.Response{data=model.Message}
// @Failure 403 {object} util.Response "not a participant"
// @Router /api/conversations/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.MessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	msg, err := c.ChatService.SendMessage(user.UserID, ctx.Param("id"), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, msg)
}

// MarkRead godoc
// @Summary Mark a conversation as read
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "conversation id"
// @Success 200 {object} util.Response
// @Router /api/conversations/{id}/read [post]
func (c *ChatController) MarkRead(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ChatService.MarkRead(user.UserID, ctx.Param("id")); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "conversation marked read")
}

// DeleteConversation godoc
// @Summary Delete a conversation
// @Description Creator only; cascades to participants and messages
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "conversation id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/conversations/{id} [delete]
func (c *ChatController) DeleteConversation(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ChatService.DeleteConversation(user.UserID, ctx.Param("id")); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "conversation deleted")
}
