// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"campus_link_backend/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) FindByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) FindByIDs(ids []uint) ([]model.User, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) Search(query string, limit int) ([]model.User, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) UpdateStatus(id uint, status model.UserStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockUserStore) UpdateLastSeen(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserStore) List(page, limit int) ([]model.User, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserStore) CountByRole() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockFriendshipStore struct {
	mock.Mock
}

func (m *MockFriendshipStore) CreatePendingRequest(req *model.FriendRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockFriendshipStore) GetPendingForReceiver(requestID string, receiverID uint) (*model.FriendRequest, error) {
	args := m.Called(requestID, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FriendRequest), args.Error(1)
}

func (m *MockFriendshipStore) DeletePending(senderID, receiverID uint) (int64, error) {
	args := m.Called(senderID, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFriendshipStore) Accept(req *model.FriendRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockFriendshipStore) Reject(req *model.FriendRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockFriendshipStore) ListPendingSent(userID uint) ([]model.FriendRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FriendRequest), args.Error(1)
}

func (m *MockFriendshipStore) ListPendingReceived(userID uint) ([]model.FriendRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FriendRequest), args.Error(1)
}

func (m *MockFriendshipStore) AreFriends(a, b uint) (bool, error) {
	args := m.Called(a, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendshipStore) ListFriends(userID uint) ([]model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockFriendshipStore) DeleteFriendship(a, b uint) (int64, error) {
	args := m.Called(a, b)
	return args.Get(0).(int64), args.Error(1)
}

type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) CreateWithOwner(group *model.Group, ownerID uint) error {
	args := m.Called(group, ownerID)
	return args.Error(0)
}

func (m *MockGroupStore) FindByID(id uint) (*model.Group, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupStore) Update(group *model.Group) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockGroupStore) List(page, limit int, includePrivate bool) ([]model.Group, int64, error) {
	args := m.Called(page, limit, includePrivate)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Group), args.Get(1).(int64), args.Error(2)
}

func (m *MockGroupStore) ListForUser(userID uint) ([]model.Group, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Group), args.Error(1)
}

func (m *MockGroupStore) GetMembership(groupID, userID uint) (*model.Membership, error) {
	args := m.Called(groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Membership), args.Error(1)
}

func (m *MockGroupStore) AddMember(membership *model.Membership) error {
	args := m.Called(membership)
	return args.Error(0)
}

func (m *MockGroupStore) RemoveMember(groupID, userID uint) (int64, error) {
	args := m.Called(groupID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGroupStore) ListMembers(groupID uint) ([]model.Membership, error) {
	args := m.Called(groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Membership), args.Error(1)
}

func (m *MockGroupStore) CountMembers(groupID uint) (int64, error) {
	args := m.Called(groupID)
	return args.Get(0).(int64), args.Error(1)
}

type MockChatStore struct {
	mock.Mock
}

func (m *MockChatStore) CreateConversation(conv *model.Conversation, participantIDs []uint) error {
	args := m.Called(conv, participantIDs)
	return args.Error(0)
}

func (m *MockChatStore) FindConversation(id string) (*model.Conversation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockChatStore) FindDirectConversation(a, b uint) (*model.Conversation, error) {
	args := m.Called(a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockChatStore) ListConversations(userID uint) ([]model.Conversation, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conversation), args.Error(1)
}

func (m *MockChatStore) DeleteConversation(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockChatStore) IsParticipant(conversationID string, userID uint) (bool, error) {
	args := m.Called(conversationID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChatStore) CreateMessage(msg *model.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockChatStore) ListMessages(conversationID string, limit, offset int) ([]model.Message, error) {
	args := m.Called(conversationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockChatStore) MarkRead(conversationID string, userID uint) error {
	args := m.Called(conversationID, userID)
	return args.Error(0)
}

type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) CreatePosting(p *model.JobPosting) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockJobStore) FindPosting(id uint) (*model.JobPosting, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobPosting), args.Error(1)
}

func (m *MockJobStore) UpdatePosting(p *model.JobPosting) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockJobStore) DeletePosting(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockJobStore) ListPostings(page, limit int, status model.PostingStatus, query string) ([]model.JobPosting, int64, error) {
	args := m.Called(page, limit, status, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.JobPosting), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobStore) ListPostingsByCompany(companyID uint) ([]model.JobPosting, error) {
	args := m.Called(companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JobPosting), args.Error(1)
}

func (m *MockJobStore) CreateApplication(a *model.JobApplication) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockJobStore) FindApplication(id uint) (*model.JobApplication, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobApplication), args.Error(1)
}

func (m *MockJobStore) HasApplied(postingID, studentID uint) (bool, error) {
	args := m.Called(postingID, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobStore) ListApplicationsForPosting(postingID uint) ([]model.JobApplication, error) {
	args := m.Called(postingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JobApplication), args.Error(1)
}

func (m *MockJobStore) ListApplicationsByStudent(studentID uint) ([]model.JobApplication, error) {
	args := m.Called(studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JobApplication), args.Error(1)
}

func (m *MockJobStore) UpdateApplicationStatus(id uint, status model.ApplicationStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockJobStore) DeleteApplication(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockJobStore) CountOpenPostings() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobStore) CountApplications() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) CreatePost(p *model.Post) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockContentStore) FindPost(id uint) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockContentStore) DeletePost(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentStore) ListPosts(page, limit int) ([]model.Post, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentStore) CreateComment(c *model.Comment) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockContentStore) FindComment(id uint) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockContentStore) DeleteComment(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentStore) ListComments(postID uint) ([]model.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockContentStore) ToggleLike(postID, userID uint) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentStore) CountLikes(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentStore) HasLiked(postID, userID uint) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentStore) CountPosts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentStore) CountComments() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
