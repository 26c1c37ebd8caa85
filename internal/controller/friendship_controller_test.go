package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus_link_backend/internal/mocks"
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/service"
	"campus_link_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupFriendshipRouter(userID uint) (*gin.Engine, *mocks.MockFriendshipStore, *mocks.MockUserStore) {
	gin.SetMode(gin.TestMode)

	friendRepo := new(mocks.MockFriendshipStore)
	userRepo := new(mocks.MockUserStore)
	ctl := NewFriendshipController(service.NewFriendshipService(friendRepo, userRepo))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: userID, Role: model.Student})
	})
	router.POST("/api/friend-requests", ctl.SendRequest)
	router.GET("/api/friend-requests/sent", ctl.ListSent)
	router.POST("/api/friend-requests/cancel", ctl.Cancel)
	router.POST("/api/friend-requests/accept", ctl.Accept)
	router.POST("/api/friend-requests/reject", ctl.Reject)

	return router, friendRepo, userRepo
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) util.Response {
	t.Helper()
	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSendRequestEndpointCreated(t *testing.T) {
	router, friendRepo, userRepo := setupFriendshipRouter(1)

	receiver := &model.User{Name: "Bob", Username: "bob", Email: "bob@example.com", Status: model.StatusActive}
	receiver.ID = 2
	userRepo.On("FindByID", uint(2)).Return(receiver, nil)
	friendRepo.On("AreFriends", uint(1), uint(2)).Return(false, nil)
	friendRepo.On("CreatePendingRequest", mock.Anything).Return(nil)

	w := doJSON(router, http.MethodPost, "/api/friend-requests", gin.H{"receiver_id": 2, "message": "hi"})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestSendRequestEndpointSelf(t *testing.T) {
	router, _, _ := setupFriendshipRouter(1)

	w := doJSON(router, http.MethodPost, "/api/friend-requests", gin.H{"receiver_id": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "error", resp.Status)
}

func TestSendRequestEndpointUnknownReceiver(t *testing.T) {
	router, _, userRepo := setupFriendshipRouter(1)
	userRepo.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	w := doJSON(router, http.MethodPost, "/api/friend-requests", gin.H{"receiver_id": 99})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Errors, "receiver_id")
}

func TestSendRequestEndpointDuplicatePending(t *testing.T) {
	router, friendRepo, userRepo := setupFriendshipRouter(1)

	receiver := &model.User{Name: "Bob", Username: "bob", Email: "bob@example.com", Status: model.StatusActive}
	receiver.ID = 2
	userRepo.On("FindByID", uint(2)).Return(receiver, nil)
	friendRepo.On("AreFriends", uint(1), uint(2)).Return(false, nil)
	friendRepo.On("CreatePendingRequest", mock.Anything).Return(util.ErrDuplicatePending)

	w := doJSON(router, http.MethodPost, "/api/friend-requests", gin.H{"receiver_id": 2})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendRequestEndpointMissingBody(t *testing.T) {
	router, _, _ := setupFriendshipRouter(1)

	w := doJSON(router, http.MethodPost, "/api/friend-requests", gin.H{})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "error", resp.Status)
}

func TestCancelEndpointNotFound(t *testing.T) {
	router, friendRepo, _ := setupFriendshipRouter(1)
	friendRepo.On("DeletePending", uint(1), uint(2)).Return(int64(0), nil)

	w := doJSON(router, http.MethodPost, "/api/friend-requests/cancel", gin.H{"receiver_id": 2})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAcceptEndpoint(t *testing.T) {
	router, friendRepo, _ := setupFriendshipRouter(2)

	req := &model.FriendRequest{SenderID: 1, ReceiverID: 2, Status: model.RequestPending}
	req.ID = "5b2d9ef0-0a49-4a26-b1f1-6f1f0b0a9c77"
	friendRepo.On("GetPendingForReceiver", req.ID, uint(2)).Return(req, nil)
	friendRepo.On("Accept", req).Return(nil)

	w := doJSON(router, http.MethodPost, "/api/friend-requests/accept", gin.H{"request_id": req.ID})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
	friendRepo.AssertExpectations(t)
}

func TestAcceptEndpointInvalidRequestID(t *testing.T) {
	router, friendRepo, _ := setupFriendshipRouter(2)

	// not a uuid, rejected by binding before the service runs
	w := doJSON(router, http.MethodPost, "/api/friend-requests/accept", gin.H{"request_id": "42"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	friendRepo.AssertNotCalled(t, "GetPendingForReceiver", mock.Anything, mock.Anything)
}

func TestRejectEndpointNotAddressedToCaller(t *testing.T) {
	router, friendRepo, _ := setupFriendshipRouter(3)

	id := "5b2d9ef0-0a49-4a26-b1f1-6f1f0b0a9c77"
	friendRepo.On("GetPendingForReceiver", id, uint(3)).Return(nil, gorm.ErrRecordNotFound)

	w := doJSON(router, http.MethodPost, "/api/friend-requests/reject", gin.H{"request_id": id})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSentEndpoint(t *testing.T) {
	router, friendRepo, _ := setupFriendshipRouter(1)
	friendRepo.On("ListPendingSent", uint(1)).Return([]model.FriendRequest{
		{SenderID: 1, ReceiverID: 4},
	}, nil)

	w := doJSON(router, http.MethodGet, "/api/friend-requests/sent", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "success", resp.Status)
}
