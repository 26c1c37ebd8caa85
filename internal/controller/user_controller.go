package controller

import (
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"
	"io"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ProfileUpdateRequest true "profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	updated, err := c.UserService.UpdateProfile(user.UserID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "image file"
// @Success 200 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /api/users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"avatar": "file is required"})
		return
	}
	if fileHeader.Size > util.MaxAvatarSize {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"avatar": "file too large"})
		return
	}
	if !util.HasAllowedExtension(fileHeader.Filename, util.AllowedImageExtensions) {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"avatar": "unsupported file type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	defer file.Close()

	// a renamed file passes the extension check, sniff the real type
	mimeType, err := util.ValidateMimeType(file, util.AllowedImageMimeTypes)
	if err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"avatar": "unsupported file type"})
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		util.RespondError(ctx, err)
		return
	}

	url, err := c.UserService.UploadAvatar(ctx.Request.Context(), user.UserID, fileHeader.Filename, file, fileHeader.Size, mimeType)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"avatar_url": url})
}

// Search godoc
// @Summary Search users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string true "name, username or email fragment"
// @Success 200 {object} util.Response
// @Router /api/users/search [get]
func (c *UserController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"q": "query is required"})
		return
	}

	users, err := c.UserService.Search(query)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}
