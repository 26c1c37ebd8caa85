package model

import "time"

type GroupRole string

const (
	GroupOwner  GroupRole = "owner"
	GroupAdmin  GroupRole = "admin"
	GroupMember GroupRole = "member"
)

// swagger:model Group
type Group struct {
	BaseModel
	Name        string       `gorm:"size:100;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	CreatedBy   uint         `gorm:"index;not null" json:"createdBy"`
	IsPrivate   bool         `gorm:"default:false" json:"isPrivate"`
	Avatar      string       `gorm:"size:255" json:"avatar"`
	Members     []Membership `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	MemberCount int64        `gorm:"-" json:"memberCount,omitempty"`
}

func (Group) TableName() string {
	return "groups"
}

// Membership joins a user to a group with a per-member role. The composite
// primary key keeps a user to at most one membership row per group.
type Membership struct {
	GroupID  uint      `gorm:"primaryKey" json:"groupId"`
	UserID   uint      `gorm:"primaryKey;index" json:"userId"`
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role     GroupRole `gorm:"type:enum('owner','admin','member');default:'member'" json:"role"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

func (Membership) TableName() string {
	return "group_members"
}

// CanManage reports whether the role may add or remove other members.
func (r GroupRole) CanManage() bool {
	return r == GroupOwner || r == GroupAdmin
}
