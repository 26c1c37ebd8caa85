package service

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/repository"
	"campus_link_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type GroupService struct {
	GroupRepo repository.GroupStore
	UserRepo  repository.UserStore
}

func NewGroupService(groupRepo repository.GroupStore, userRepo repository.UserStore) *GroupService {
	return &GroupService{
		GroupRepo: groupRepo,
		UserRepo:  userRepo,
	}
}

type GroupRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
	Avatar      string `json:"avatar"`
}

// CreateGroup creates the group with the creator as owner; the repository
// runs both inserts in one transaction so the group is never ownerless at
// birth. An owner leaving later is not prevented (see removal rules).
func (s *GroupService) CreateGroup(creatorID uint, req GroupRequest) (*model.Group, error) {
	group := &model.Group{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   creatorID,
		IsPrivate:   req.IsPrivate,
		Avatar:      req.Avatar,
	}
	if err := s.GroupRepo.CreateWithOwner(group, creatorID); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(groupID uint) (*model.Group, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGroupNotFound
		}
		return nil, err
	}
	count, err := s.GroupRepo.CountMembers(groupID)
	if err != nil {
		return nil, err
	}
	group.MemberCount = count
	return group, nil
}

func (s *GroupService) UpdateGroup(actorID, groupID uint, req GroupRequest) (*model.Group, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGroupNotFound
		}
		return nil, err
	}

	if err := s.requireManager(groupID, actorID); err != nil {
		return nil, err
	}

	group.Name = req.Name
	group.Description = req.Description
	group.IsPrivate = req.IsPrivate
	if req.Avatar != "" {
		group.Avatar = req.Avatar
	}
	if err := s.GroupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup is owner-only.
func (s *GroupService) DeleteGroup(actorID, groupID uint) error {
	m, err := s.GroupRepo.GetMembership(groupID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotGroupManager
		}
		return err
	}
	if m.Role != model.GroupOwner {
		return util.ErrNotGroupManager
	}
	return s.GroupRepo.Delete(groupID)
}

func (s *GroupService) ListGroups(page, limit int) ([]model.Group, int64, error) {
	return s.GroupRepo.List(page, limit, false)
}

func (s *GroupService) ListMyGroups(userID uint) ([]model.Group, error) {
	return s.GroupRepo.ListForUser(userID)
}

func (s *GroupService) ListMembers(actorID, groupID uint) ([]model.Membership, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGroupNotFound
		}
		return nil, err
	}

	// member lists of private groups are members-only
	if group.IsPrivate {
		if _, err := s.GroupRepo.GetMembership(groupID, actorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrPrivateGroup
			}
			return nil, err
		}
	}
	return s.GroupRepo.ListMembers(groupID)
}

// AddMember requires the actor to hold owner or admin role in the group.
func (s *GroupService) AddMember(actorID, groupID, userID uint, role model.GroupRole) error {
	if _, err := s.GroupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}

	if err := s.requireManager(groupID, actorID); err != nil {
		return err
	}

	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}

	if _, err := s.GroupRepo.GetMembership(groupID, userID); err == nil {
		return util.ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if role == "" || role == model.GroupOwner {
		role = model.GroupMember
	}
	return s.GroupRepo.AddMember(&model.Membership{
		GroupID: groupID,
		UserID:  userID,
		Role:    role,
	})
}

// RemoveMember mirrors AddMember's authorization, except a member may always
// remove themselves. An owner removing themselves can leave the group
// ownerless; that is the documented source behavior, kept as-is.
func (s *GroupService) RemoveMember(actorID, groupID, userID uint) error {
	if _, err := s.GroupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}

	if actorID != userID {
		if err := s.requireManager(groupID, actorID); err != nil {
			return err
		}
	}

	removed, err := s.GroupRepo.RemoveMember(groupID, userID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return util.ErrNotMember
	}
	return nil
}

// JoinGroup is self-service for public groups only.
func (s *GroupService) JoinGroup(userID, groupID uint) error {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGroupNotFound
		}
		return err
	}
	if group.IsPrivate {
		return util.ErrPrivateGroup
	}

	if _, err := s.GroupRepo.GetMembership(groupID, userID); err == nil {
		return util.ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.GroupRepo.AddMember(&model.Membership{
		GroupID: groupID,
		UserID:  userID,
		Role:    model.GroupMember,
	})
}

func (s *GroupService) LeaveGroup(userID, groupID uint) error {
	return s.RemoveMember(userID, groupID, userID)
}

func (s *GroupService) requireManager(groupID, actorID uint) error {
	m, err := s.GroupRepo.GetMembership(groupID, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotGroupManager
		}
		return err
	}
	if !m.Role.CanManage() {
		return util.ErrNotGroupManager
	}
	return nil
}
