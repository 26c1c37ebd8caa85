package controller

import (
	"net/http"
	"testing"

	"campus_link_backend/internal/config"
	"campus_link_backend/internal/mocks"
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupJobRouter(t *testing.T, userID uint) (*gin.Engine, *mocks.MockJobStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := &service.StorageService{
		Provider: &service.LocalStorageProvider{Config: &config.StorageConfig{LocalPath: t.TempDir()}},
	}
	jobRepo := new(mocks.MockJobStore)
	ctl := NewJobController(service.NewJobService(jobRepo, storage))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: userID, Role: model.Student})
	})
	router.POST("/api/jobs/:id/applications", ctl.Apply)

	return router, jobRepo
}

func TestApplyEndpointRejectsRenamedResume(t *testing.T) {
	router, jobRepo := setupJobRouter(t, 7)

	// pdf extension hiding a text payload must not get past the sniff
	w := doUpload(router, "/api/jobs/1/applications",
		map[string][]byte{"resume": []byte("plain text resume")},
		map[string]string{"resume": "resume.pdf"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "unsupported file type", resp.Errors["resume"])
	jobRepo.AssertNotCalled(t, "CreateApplication", mock.Anything)
}

func TestApplyEndpointAcceptsPDFUploads(t *testing.T) {
	router, jobRepo := setupJobRouter(t, 7)

	posting := &model.JobPosting{CompanyID: 3, Title: "Backend Intern", Status: model.PostingOpen}
	posting.ID = 1
	jobRepo.On("FindPosting", uint(1)).Return(posting, nil)
	jobRepo.On("HasApplied", uint(1), uint(7)).Return(false, nil)
	jobRepo.On("CreateApplication", mock.Anything).Return(nil)

	pdf := []byte("%PDF-1.4 content")
	w := doUpload(router, "/api/jobs/1/applications",
		map[string][]byte{"resume": pdf, "cover_letter": pdf},
		map[string]string{"resume": "resume.pdf", "cover_letter": "cover.pdf"})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
	jobRepo.AssertExpectations(t)
}
