package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"campus_link_backend/internal/config"
	"campus_link_backend/internal/mocks"
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupUserRouter(t *testing.T, userID uint) (*gin.Engine, *mocks.MockUserStore, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	storage := &service.StorageService{
		Provider: &service.LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}},
	}
	userRepo := new(mocks.MockUserStore)
	ctl := NewUserController(service.NewUserService(userRepo, storage))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: userID, Role: model.Student})
	})
	router.POST("/api/users/avatar", ctl.UploadAvatar)

	return router, userRepo, dir
}

func doUpload(router *gin.Engine, path string, files map[string][]byte, names map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, content := range files {
		part, _ := mw.CreateFormFile(field, names[field])
		part.Write(content)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)

func TestUploadAvatarRejectsRenamedFile(t *testing.T) {
	router, userRepo, _ := setupUserRouter(t, 1)

	// png extension hiding a text payload must not get past the sniff
	w := doUpload(router, "/api/users/avatar",
		map[string][]byte{"avatar": []byte("definitely not an image")},
		map[string]string{"avatar": "pic.png"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "unsupported file type", resp.Errors["avatar"])
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestUploadAvatarStoresPNG(t *testing.T) {
	router, userRepo, dir := setupUserRouter(t, 1)

	user := &model.User{Name: "Ann", Username: "ann", Email: "ann@example.com", Status: model.StatusActive}
	user.ID = 1
	userRepo.On("FindByID", uint(1)).Return(user, nil)
	userRepo.On("Update", mock.MatchedBy(func(u *model.User) bool {
		return u.Avatar != ""
	})).Return(nil)

	w := doUpload(router, "/api/users/avatar",
		map[string][]byte{"avatar": pngBytes},
		map[string]string{"avatar": "pic.png"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)

	entries, err := os.ReadDir(filepath.Join(dir, "avatars"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	userRepo.AssertExpectations(t)
}
