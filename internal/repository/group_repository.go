package repository

import (
	"campus_link_backend/internal/model"

	"gorm.io/gorm"
)

type GroupStore interface {
	CreateWithOwner(group *model.Group, ownerID uint) error
	FindByID(id uint) (*model.Group, error)
	Update(group *model.Group) error
	Delete(id uint) error
	List(page, limit int, includePrivate bool) ([]model.Group, int64, error)
	ListForUser(userID uint) ([]model.Group, error)
	GetMembership(groupID, userID uint) (*model.Membership, error)
	AddMember(m *model.Membership) error
	RemoveMember(groupID, userID uint) (int64, error)
	ListMembers(groupID uint) ([]model.Membership, error)
	CountMembers(groupID uint) (int64, error)
}

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

// CreateWithOwner inserts the group and its owner membership as one unit so a
// group can never come into existence ownerless.
func (r *GroupRepository) CreateWithOwner(group *model.Group, ownerID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		owner := &model.Membership{
			GroupID: group.ID,
			UserID:  ownerID,
			Role:    model.GroupOwner,
		}
		return tx.Create(owner).Error
	})
}

func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	err := r.DB.First(&group, id).Error
	return &group, err
}

func (r *GroupRepository) Update(group *model.Group) error {
	return r.DB.Save(group).Error
}

// Delete removes the group and its memberships together.
func (r *GroupRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, id).Error
	})
}

func (r *GroupRepository) List(page, limit int, includePrivate bool) ([]model.Group, int64, error) {
	var groups []model.Group
	var total int64

	db := r.DB.Model(&model.Group{})
	if !includePrivate {
		db = db.Where("is_private = ?", false)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&groups).Error
	return groups, total, err
}

func (r *GroupRepository) ListForUser(userID uint) ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("groups.created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) GetMembership(groupID, userID uint) (*model.Membership, error) {
	var m model.Membership
	err := r.DB.Where("group_id = ? AND user_id = ?", groupID, userID).First(&m).Error
	return &m, err
}

func (r *GroupRepository) AddMember(m *model.Membership) error {
	return r.DB.Create(m).Error
}

func (r *GroupRepository) RemoveMember(groupID, userID uint) (int64, error) {
	res := r.DB.Where("group_id = ? AND user_id = ?", groupID, userID).Delete(&model.Membership{})
	return res.RowsAffected, res.Error
}

func (r *GroupRepository) ListMembers(groupID uint) ([]model.Membership, error) {
	var members []model.Membership
	err := r.DB.Preload("User").
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (r *GroupRepository) CountMembers(groupID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Membership{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}
