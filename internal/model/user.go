package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Company UserRole = "company"
	Admin   UserRole = "admin"
)

type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string     `gorm:"size:100;not null" json:"name"`
	Username string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string     `gorm:"size:100;not null" json:"-"`
	Role     UserRole   `gorm:"type:enum('student','company','admin');default:'student'" json:"role"`
	Status   UserStatus `gorm:"type:enum('active','suspended');default:'active'" json:"status"`
	Avatar   string     `gorm:"size:255" json:"avatar"`
	Headline string     `gorm:"size:255" json:"headline"`
	LastSeen time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// PublicProfile strips everything not meant for other users.
type PublicProfile struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	Avatar   string   `json:"avatar"`
	Headline string   `json:"headline"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
		Avatar:   u.Avatar,
		Headline: u.Headline,
	}
}
