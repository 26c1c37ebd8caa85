package service

import (
	"testing"

	"campus_link_backend/internal/mocks"
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFriendshipService() (*FriendshipService, *mocks.MockFriendshipStore, *mocks.MockUserStore) {
	friendRepo := new(mocks.MockFriendshipStore)
	userRepo := new(mocks.MockUserStore)
	return NewFriendshipService(friendRepo, userRepo), friendRepo, userRepo
}

func activeUser(id uint) *model.User {
	u := &model.User{
		Name:     "Test User",
		Username: "testuser",
		Email:    "test@example.com",
		Role:     model.Student,
		Status:   model.StatusActive,
	}
	u.ID = id
	return u
}

func TestSendRequestToSelf(t *testing.T) {
	svc, friendRepo, _ := newFriendshipService()

	_, err := svc.SendRequest(1, 1, "")
	assert.ErrorIs(t, err, util.ErrSelfRequest)
	friendRepo.AssertNotCalled(t, "CreatePendingRequest", mock.Anything)
}

func TestSendRequestReceiverMissing(t *testing.T) {
	svc, _, userRepo := newFriendshipService()
	userRepo.On("FindByID", uint(2)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.SendRequest(1, 2, "")
	require.Error(t, err)

	appErr, ok := util.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, util.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "receiver_id")
}

func TestSendRequestSuspendedReceiver(t *testing.T) {
	svc, _, userRepo := newFriendshipService()
	receiver := activeUser(2)
	receiver.Status = model.StatusSuspended
	userRepo.On("FindByID", uint(2)).Return(receiver, nil)

	_, err := svc.SendRequest(1, 2, "")
	require.Error(t, err)

	appErr, ok := util.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, util.KindValidation, appErr.Kind)
}

func TestSendRequestAlreadyFriends(t *testing.T) {
	svc, friendRepo, userRepo := newFriendshipService()
	userRepo.On("FindByID", uint(2)).Return(activeUser(2), nil)
	friendRepo.On("AreFriends", uint(1), uint(2)).Return(true, nil)

	_, err := svc.SendRequest(1, 2, "")
	assert.ErrorIs(t, err, util.ErrAlreadyFriends)
	friendRepo.AssertNotCalled(t, "CreatePendingRequest", mock.Anything)
}

func TestSendRequestDuplicatePending(t *testing.T) {
	svc, friendRepo, userRepo := newFriendshipService()
	userRepo.On("FindByID", uint(2)).Return(activeUser(2), nil)
	friendRepo.On("AreFriends", uint(1), uint(2)).Return(false, nil)
	// the repository reports duplicates in either direction
	friendRepo.On("CreatePendingRequest", mock.Anything).Return(util.ErrDuplicatePending)

	_, err := svc.SendRequest(1, 2, "hi")
	assert.ErrorIs(t, err, util.ErrDuplicatePending)
}

func TestSendRequestSucceeds(t *testing.T) {
	svc, friendRepo, userRepo := newFriendshipService()
	userRepo.On("FindByID", uint(2)).Return(activeUser(2), nil)
	friendRepo.On("AreFriends", uint(1), uint(2)).Return(false, nil)
	friendRepo.On("CreatePendingRequest", mock.MatchedBy(func(r *model.FriendRequest) bool {
		return r.SenderID == 1 && r.ReceiverID == 2 && r.Status == model.RequestPending
	})).Return(nil)

	req, err := svc.SendRequest(1, 2, "hello")
	require.NoError(t, err)
	assert.Equal(t, uint(1), req.SenderID)
	assert.Equal(t, uint(2), req.ReceiverID)
	assert.Equal(t, "hello", req.Message)
	friendRepo.AssertExpectations(t)
}

func TestCancelRequest(t *testing.T) {
	svc, friendRepo, _ := newFriendshipService()
	friendRepo.On("DeletePending", uint(1), uint(2)).Return(int64(1), nil).Once()
	friendRepo.On("DeletePending", uint(1), uint(2)).Return(int64(0), nil).Once()

	require.NoError(t, svc.CancelRequest(1, 2))
	// second cancel hits nothing
	assert.ErrorIs(t, svc.CancelRequest(1, 2), util.ErrRequestNotFound)
}

func TestAcceptRequestNotPending(t *testing.T) {
	svc, friendRepo, _ := newFriendshipService()
	friendRepo.On("GetPendingForReceiver", "req-1", uint(2)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.AcceptRequest(2, "req-1")
	assert.ErrorIs(t, err, util.ErrRequestNotFound)
}

func TestAcceptRequestRaceLost(t *testing.T) {
	// the request was pending when read but another transition won the
	// update; the repository surfaces that as a not-found
	svc, friendRepo, _ := newFriendshipService()
	req := &model.FriendRequest{SenderID: 1, ReceiverID: 2, Status: model.RequestPending}
	friendRepo.On("GetPendingForReceiver", "req-1", uint(2)).Return(req, nil)
	friendRepo.On("Accept", req).Return(gorm.ErrRecordNotFound)

	err := svc.AcceptRequest(2, "req-1")
	assert.ErrorIs(t, err, util.ErrRequestNotFound)
}

func TestAcceptRequestSucceeds(t *testing.T) {
	svc, friendRepo, _ := newFriendshipService()
	req := &model.FriendRequest{SenderID: 1, ReceiverID: 2, Status: model.RequestPending}
	friendRepo.On("GetPendingForReceiver", "req-1", uint(2)).Return(req, nil)
	friendRepo.On("Accept", req).Return(nil)

	require.NoError(t, svc.AcceptRequest(2, "req-1"))
	friendRepo.AssertExpectations(t)
}

func TestRejectRequestLeavesNoFriendship(t *testing.T) {
	svc, friendRepo, _ := newFriendshipService()
	req := &model.FriendRequest{SenderID: 1, ReceiverID: 2, Status: model.RequestPending}
	friendRepo.On("GetPendingForReceiver", "req-1", uint(2)).Return(req, nil)
	friendRepo.On("Reject", req).Return(nil)

	require.NoError(t, svc.RejectRequest(2, "req-1"))
	friendRepo.AssertNotCalled(t, "Accept", mock.Anything)
}

func TestListSentReturnsReceiverIDs(t *testing.T) {
	svc, friendRepo, _ := newFriendshipService()
	friendRepo.On("ListPendingSent", uint(1)).Return([]model.FriendRequest{
		{SenderID: 1, ReceiverID: 5},
		{SenderID: 1, ReceiverID: 9},
	}, nil)

	ids, err := svc.ListSent(1)
	require.NoError(t, err)
	assert.Equal(t, []uint{5, 9}, ids)
}

func TestListReceivedEnrichesSender(t *testing.T) {
	svc, friendRepo, _ := newFriendshipService()
	sender := activeUser(7)
	sender.Name = "Alice"
	sender.Email = "alice@example.com"
	sender.Avatar = "/uploads/avatars/7.png"
	req := model.FriendRequest{SenderID: 7, ReceiverID: 1, Sender: *sender, Message: "hi"}
	req.ID = "req-7"
	friendRepo.On("ListPendingReceived", uint(1)).Return([]model.FriendRequest{req}, nil)

	out, err := svc.ListReceived(1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "req-7", out[0].ID)
	assert.Equal(t, uint(7), out[0].SenderID)
	assert.Equal(t, "Alice", out[0].SenderName)
	assert.Equal(t, "alice@example.com", out[0].SenderEmail)
	assert.NotEmpty(t, out[0].CreatedAt)
}

func TestUnfriend(t *testing.T) {
	svc, friendRepo, _ := newFriendshipService()
	friendRepo.On("DeleteFriendship", uint(1), uint(2)).Return(int64(1), nil).Once()
	friendRepo.On("DeleteFriendship", uint(1), uint(2)).Return(int64(0), nil).Once()

	require.NoError(t, svc.Unfriend(1, 2))

	err := svc.Unfriend(1, 2)
	appErr, ok := util.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, util.KindNotFound, appErr.Kind)
}
