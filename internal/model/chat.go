package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationType string

const (
	ConversationDirect ConversationType = "direct"
	ConversationGroup  ConversationType = "group"
)

// Conversation holds a direct or group thread and its participant list.
type Conversation struct {
	UUIDBase
	Type          ConversationType `gorm:"type:enum('direct','group');default:'direct'" json:"type"`
	Name          string           `gorm:"size:100" json:"name"`
	CreatedBy     uint             `gorm:"index" json:"createdBy"`
	LastMessageAt *time.Time       `gorm:"index" json:"lastMessageAt"`
	Participants  []Participant    `gorm:"foreignKey:ConversationID" json:"participants,omitempty"`
	Messages      []Message        `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// Participant tracks per-member read position and mute flag.
type Participant struct {
	ConversationID string     `gorm:"primaryKey;type:varchar(36)" json:"conversationId"`
	UserID         uint       `gorm:"primaryKey;index" json:"userId"`
	User           User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	LastReadAt     *time.Time `json:"lastReadAt"`
	Muted          bool       `gorm:"default:false" json:"muted"`
	JoinedAt       time.Time  `gorm:"autoCreateTime" json:"joinedAt"`
}

func (Participant) TableName() string {
	return "conversation_participants"
}

type MessageType string

const (
	MessageText   MessageType = "text"
	MessageImage  MessageType = "image"
	MessageFile   MessageType = "file"
	MessageSystem MessageType = "system"
)

// Message is owned by its conversation; deleting the conversation cascades
// through the repository transaction. Fields are spelled out rather than
// embedding UUIDBase so CreatedAt maps to a single column and can carry the
// composite index tag.
type Message struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ConversationID string         `gorm:"index:idx_conv_created;type:varchar(36);not null" json:"conversationId"`
	CreatedAt      time.Time      `gorm:"index:idx_conv_created" json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	SenderID       *uint          `gorm:"index" json:"senderId"`
	Sender         User           `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReplyToID      *string        `gorm:"type:varchar(36);index" json:"replyToId"`
	Type           MessageType    `gorm:"type:enum('text','image','file','system');default:'text'" json:"type"`
	Content        string         `gorm:"type:text" json:"content"`
	Attachments    string         `gorm:"type:text" json:"attachments"` // JSON array of stored object names
	IsEdited       bool           `gorm:"default:false" json:"isEdited"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

func (Message) TableName() string {
	return "messages"
}
