package controller

import (
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// CreatePost godoc
// @Summary Create a post
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.PostRequest true "post"
// @Success 201 {object} util.Response{data=model.Post}
// @Router /api/posts [post]
func (c *ContentController) CreatePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	post, err := c.ContentService.CreatePost(user.UserID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// ListPosts godoc
// @Summary List posts
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/posts [get]
func (c *ContentController) ListPosts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	posts, total, err := c.ContentService.ListPosts(user.UserID, page, limit)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: posts, Total: total, Page: page, Limit: limit})
}

// GetPost godoc
// @Summary Get a post
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "post id"
// @Success 200 {object} util.Response{data=model.Post}
// @Failure 404 {object} util.Response
// @Router /api/posts/{id} [get]
func (c *ContentController) GetPost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postID := util.MustParseUint(ctx.Param("id"))
	if postID == 0 {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	post, err := c.ContentService.GetPost(user.UserID, postID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Author or admin
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "post id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/posts/{id} [delete]
func (c *ContentController) DeletePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postID := util.MustParseUint(ctx.Param("id"))
	if postID == 0 {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	if err := c.ContentService.DeletePost(user.UserID, user.Role, postID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "post deleted")
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "post id"
// @Param body body service.CommentRequest true "comment"
// @Success 201 {object} util.Response{data=model.Comment}
// @Failure 404 {object} util.Response
// @Router /api/posts/{id}/comments [post]
func (c *ContentController) CreateComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postID := util.MustParseUint(ctx.Param("id"))
	if postID == 0 {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	var req service.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	comment, err := c.ContentService.CreateComment(user.UserID, postID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}

// ListComments godoc
// @Summary List comments on a post
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "post id"
// @Success 200 {object} util.Response
// @Router /api/posts/{id}/comments [get]
func (c *ContentController) ListComments(ctx *gin.Context) {
	postID := util.MustParseUint(ctx.Param("id"))
	if postID == 0 {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	comments, err := c.ContentService.ListComments(postID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Author or admin
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "comment id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/comments/{id} [delete]
func (c *ContentController) DeleteComment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	commentID := util.MustParseUint(ctx.Param("id"))
	if commentID == 0 {
		util.BadRequest(ctx, "invalid comment id")
		return
	}

	if err := c.ContentService.DeleteComment(user.UserID, user.Role, commentID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "comment deleted")
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path int true "post id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/posts/{id}/like [post]
func (c *ContentController) ToggleLike(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postID := util.MustParseUint(ctx.Param("id"))
	if postID == 0 {
		util.BadRequest(ctx, "invalid post id")
		return
	}

	liked, err := c.ContentService.ToggleLike(user.UserID, postID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"liked": liked})
}
