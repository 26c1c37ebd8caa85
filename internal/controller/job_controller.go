package controller

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	JobService *service.JobService
}

func NewJobController(jobService *service.JobService) *JobController {
	return &JobController{JobService: jobService}
}

// swagger:model UpdatePostingRequest
type UpdatePostingRequest struct {
	service.PostingRequest
	Status string `json:"status" binding:"omitempty,oneof=open closed"`
}

// swagger:model ApplicationStatusRequest
type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed accepted rejected"`
}

// CreatePosting godoc
// @Summary Create a job posting
// @Description Company role only
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.PostingRequest true "posting"
// @Success 201 {object} util.Response{data=model.JobPosting}
// @Router /api/jobs [post]
func (c *JobController) CreatePosting(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PostingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	posting, err := c.JobService.CreatePosting(user.UserID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, posting)
}

// ListPostings godoc
// @Summary List job postings
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Param status query string false "open or closed"
// @Param q query string false "title/location filter"
// @Success 200 {object} util.Response
// @Router /api/jobs [get]
func (c *JobController) ListPostings(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	status := model.PostingStatus(ctx.Query("status"))
	query := ctx.Query("q")

	postings, total, err := c.JobService.ListPostings(page, limit, status, query)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: postings, Total: total, Page: page, Limit: limit})
}

// GetPosting godoc
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "posting id"
// @Success 200 {object} util.Response{data=model.JobPosting}
// @Failure 404 {object} util.Response
// @Router /api/jobs/{id} [get]
func (c *JobController) GetPosting(ctx *gin.Context) {
	postingID := util.MustParseUint(ctx.Param("id"))
	if postingID == 0 {
		util.BadRequest(ctx, "invalid posting id")
		return
	}

	posting, err := c.JobService.GetPosting(postingID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, posting)
}

// UpdatePosting godoc
// @Summary Update a job posting
// @Description Owning company only
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "posting id"
// @Param body body UpdatePostingRequest true "posting"
// @Success 200 {object} util.Response{data=model.JobPosting}
// @Failure 403 {object} util.Response
// @Router /api/jobs/{id} [put]
func (c *JobController) UpdatePosting(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postingID := util.MustParseUint(ctx.Param("id"))
	if postingID == 0 {
		util.BadRequest(ctx, "invalid posting id")
		return
	}

	var req UpdatePostingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	posting, err := c.JobService.UpdatePosting(user.UserID, postingID, req.PostingRequest, model.PostingStatus(req.Status))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, posting)
}

// DeletePosting godoc
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "posting id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/jobs/{id} [delete]
func (c *JobController) DeletePosting(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postingID := util.MustParseUint(ctx.Param("id"))
	if postingID == 0 {
		util.BadRequest(ctx, "invalid posting id")
		return
	}

	if err := c.JobService.DeletePosting(user.UserID, postingID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "posting deleted")
}

// Apply godoc
// @Summary Apply to a job posting
// @Description Student role only; multipart upload of resume and cover letter
// @Tags jobs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "posting id"
// @Param resume formData file true "resume (pdf/doc/docx)"
// @Param cover_letter formData file true "cover letter (pdf/doc/docx)"
// @Success 201 {object} util.Response{data=model.JobApplication}
// @Failure 409 {object} util.Response "already applied"
// @Failure 422 {object} util.Response
// @Router /api/jobs/{id}/applications [post]
func (c *JobController) Apply(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postingID := util.MustParseUint(ctx.Param("id"))
	if postingID == 0 {
		util.BadRequest(ctx, "invalid posting id")
		return
	}

	resume, resumeFile, err := openApplicationFile(ctx, "resume")
	if err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"resume": err.Error()})
		return
	}
	defer resumeFile.Close()

	cover, coverFile, err := openApplicationFile(ctx, "cover_letter")
	if err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"cover_letter": err.Error()})
		return
	}
	defer coverFile.Close()

	app, err := c.JobService.Apply(ctx.Request.Context(), user.UserID, postingID, resume, cover)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, app)
}

// ListApplications godoc
// @Summary List applications for a posting
// @Description Owning company only
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "posting id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/jobs/{id}/applications [get]
func (c *JobController) ListApplications(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postingID := util.MustParseUint(ctx.Param("id"))
	if postingID == 0 {
		util.BadRequest(ctx, "invalid posting id")
		return
	}

	apps, err := c.JobService.ListApplicationsForPosting(user.UserID, postingID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, apps)
}

// ListMyApplications godoc
// @Summary List the caller's applications
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/applications/mine [get]
func (c *JobController) ListMyApplications(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	apps, err := c.JobService.ListMyApplications(user.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, apps)
}

// UpdateApplicationStatus godoc
// @Summary Move an application through its lifecycle
// @Description Owning company only
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "application id"
// @Param body body ApplicationStatusRequest true "status"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/applications/{id}/status [patch]
func (c *JobController) UpdateApplicationStatus(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	applicationID := util.MustParseUint(ctx.Param("id"))
	if applicationID == 0 {
		util.BadRequest(ctx, "invalid application id")
		return
	}

	var req ApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, "validation failed", map[string]string{"body": err.Error()})
		return
	}

	if err := c.JobService.UpdateApplicationStatus(user.UserID, applicationID, model.ApplicationStatus(req.Status)); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "application updated")
}

// Withdraw godoc
// @Summary Withdraw an application
// @Description Deletes the application and its stored files
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "application id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/applications/{id} [delete]
func (c *JobController) Withdraw(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	applicationID := util.MustParseUint(ctx.Param("id"))
	if applicationID == 0 {
		util.BadRequest(ctx, "invalid application id")
		return
	}

	if err := c.JobService.WithdrawApplication(ctx.Request.Context(), user.UserID, applicationID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "application withdrawn")
}

var (
	errFieldRequired = errors.New("file is required")
	errFileTooLarge  = errors.New("file too large")
	errFileType      = errors.New("unsupported file type")
)

func openApplicationFile(ctx *gin.Context, field string) (service.ApplicationUpload, multipart.File, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return service.ApplicationUpload{}, nil, errFieldRequired
	}
	if fileHeader.Size > util.MaxResumeSize {
		return service.ApplicationUpload{}, nil, errFileTooLarge
	}
	if !util.HasAllowedExtension(fileHeader.Filename, util.AllowedResumeExtensions) {
		return service.ApplicationUpload{}, nil, errFileType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return service.ApplicationUpload{}, nil, err
	}
	// a renamed file passes the extension check, sniff the real type
	mimeType, err := util.ValidateMimeType(file, util.AllowedResumeMimeTypes)
	if err != nil {
		file.Close()
		return service.ApplicationUpload{}, nil, errFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return service.ApplicationUpload{}, nil, err
	}
	return service.ApplicationUpload{
		Filename:    fileHeader.Filename,
		Reader:      file,
		Size:        fileHeader.Size,
		ContentType: mimeType,
	}, file, nil
}
