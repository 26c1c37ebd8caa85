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

func newGroupService() (*GroupService, *mocks.MockGroupStore, *mocks.MockUserStore) {
	groupRepo := new(mocks.MockGroupStore)
	userRepo := new(mocks.MockUserStore)
	return NewGroupService(groupRepo, userRepo), groupRepo, userRepo
}

func testGroup(id uint, private bool) *model.Group {
	g := &model.Group{Name: "Study Group", CreatedBy: 1, IsPrivate: private}
	g.ID = id
	return g
}

func TestCreateGroupMakesCreatorOwner(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("CreateWithOwner", mock.MatchedBy(func(g *model.Group) bool {
		return g.Name == "Gophers" && g.CreatedBy == 1
	}), uint(1)).Return(nil)

	group, err := svc.CreateGroup(1, GroupRequest{Name: "Gophers"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), group.CreatedBy)
	groupRepo.AssertExpectations(t)
}

func TestUpdateGroupRequiresManager(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, false), nil)
	groupRepo.On("GetMembership", uint(10), uint(3)).Return(&model.Membership{
		GroupID: 10, UserID: 3, Role: model.GroupMember,
	}, nil)

	_, err := svc.UpdateGroup(3, 10, GroupRequest{Name: "Renamed"})
	assert.ErrorIs(t, err, util.ErrNotGroupManager)
	groupRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateGroupAsAdmin(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, false), nil)
	groupRepo.On("GetMembership", uint(10), uint(2)).Return(&model.Membership{
		GroupID: 10, UserID: 2, Role: model.GroupAdmin,
	}, nil)
	groupRepo.On("Update", mock.Anything).Return(nil)

	group, err := svc.UpdateGroup(2, 10, GroupRequest{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", group.Name)
}

func TestDeleteGroupOwnerOnly(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("GetMembership", uint(10), uint(2)).Return(&model.Membership{
		GroupID: 10, UserID: 2, Role: model.GroupAdmin,
	}, nil)

	// group admins may edit but not delete
	err := svc.DeleteGroup(2, 10)
	assert.ErrorIs(t, err, util.ErrNotGroupManager)
	groupRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteGroupByOwner(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("GetMembership", uint(10), uint(1)).Return(&model.Membership{
		GroupID: 10, UserID: 1, Role: model.GroupOwner,
	}, nil)
	groupRepo.On("Delete", uint(10)).Return(nil)

	require.NoError(t, svc.DeleteGroup(1, 10))
	groupRepo.AssertExpectations(t)
}

func TestJoinPrivateGroupForbidden(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, true), nil)

	err := svc.JoinGroup(5, 10)
	assert.ErrorIs(t, err, util.ErrPrivateGroup)
	groupRepo.AssertNotCalled(t, "AddMember", mock.Anything)
}

func TestJoinGroupTwiceConflicts(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, false), nil)
	groupRepo.On("GetMembership", uint(10), uint(5)).Return(&model.Membership{
		GroupID: 10, UserID: 5, Role: model.GroupMember,
	}, nil)

	err := svc.JoinGroup(5, 10)
	assert.ErrorIs(t, err, util.ErrAlreadyMember)
}

func TestJoinGroupSucceeds(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, false), nil)
	groupRepo.On("GetMembership", uint(10), uint(5)).Return(nil, gorm.ErrRecordNotFound)
	groupRepo.On("AddMember", mock.MatchedBy(func(m *model.Membership) bool {
		return m.GroupID == 10 && m.UserID == 5 && m.Role == model.GroupMember
	})).Return(nil)

	require.NoError(t, svc.JoinGroup(5, 10))
	groupRepo.AssertExpectations(t)
}

func TestAddMemberNeverGrantsOwner(t *testing.T) {
	svc, groupRepo, userRepo := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, false), nil)
	groupRepo.On("GetMembership", uint(10), uint(1)).Return(&model.Membership{
		GroupID: 10, UserID: 1, Role: model.GroupOwner,
	}, nil)
	userRepo.On("FindByID", uint(5)).Return(activeUser(5), nil)
	groupRepo.On("GetMembership", uint(10), uint(5)).Return(nil, gorm.ErrRecordNotFound)
	groupRepo.On("AddMember", mock.MatchedBy(func(m *model.Membership) bool {
		return m.Role == model.GroupMember
	})).Return(nil)

	require.NoError(t, svc.AddMember(1, 10, 5, model.GroupOwner))
	groupRepo.AssertExpectations(t)
}

func TestRemoveMemberSelfRemovalAllowed(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, false), nil)
	groupRepo.On("RemoveMember", uint(10), uint(5)).Return(int64(1), nil)

	// no manager check for self-removal
	require.NoError(t, svc.RemoveMember(5, 10, 5))
	groupRepo.AssertNotCalled(t, "GetMembership", mock.Anything, mock.Anything)
}

func TestRemoveMemberRequiresManagerForOthers(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, false), nil)
	groupRepo.On("GetMembership", uint(10), uint(3)).Return(&model.Membership{
		GroupID: 10, UserID: 3, Role: model.GroupMember,
	}, nil)

	err := svc.RemoveMember(3, 10, 5)
	assert.ErrorIs(t, err, util.ErrNotGroupManager)
}

func TestRemoveMemberNotInGroup(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, false), nil)
	groupRepo.On("GetMembership", uint(10), uint(1)).Return(&model.Membership{
		GroupID: 10, UserID: 1, Role: model.GroupOwner,
	}, nil)
	groupRepo.On("RemoveMember", uint(10), uint(9)).Return(int64(0), nil)

	err := svc.RemoveMember(1, 10, 9)
	assert.ErrorIs(t, err, util.ErrNotMember)
}

func TestListMembersOfPrivateGroupRequiresMembership(t *testing.T) {
	svc, groupRepo, _ := newGroupService()
	groupRepo.On("FindByID", uint(10)).Return(testGroup(10, true), nil)
	groupRepo.On("GetMembership", uint(10), uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListMembers(9, 10)
	assert.ErrorIs(t, err, util.ErrPrivateGroup)
}
