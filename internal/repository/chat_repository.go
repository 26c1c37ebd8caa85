package repository

import (
	"campus_link_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ChatStore interface {
	CreateConversation(conv *model.Conversation, participantIDs []uint) error
	FindConversation(id string) (*model.Conversation, error)
	FindDirectConversation(a, b uint) (*model.Conversation, error)
	ListConversations(userID uint) ([]model.Conversation, error)
	DeleteConversation(id string) error
	IsParticipant(conversationID string, userID uint) (bool, error)
	CreateMessage(msg *model.Message) error
	ListMessages(conversationID string, limit, offset int) ([]model.Message, error)
	MarkRead(conversationID string, userID uint) error
}

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

// CreateConversation writes the conversation and all participant rows in one
// transaction.
func (r *ChatRepository) CreateConversation(conv *model.Conversation, participantIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conv).Error; err != nil {
			return err
		}
		for _, id := range participantIDs {
			p := &model.Participant{
				ConversationID: conv.ID,
				UserID:         id,
			}
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ChatRepository) FindConversation(id string) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.Preload("Participants.User").First(&conv, "id = ?", id).Error
	return &conv, err
}

// FindDirectConversation locates the existing direct thread between two users,
// if any, so direct conversations stay unique per pair.
func (r *ChatRepository) FindDirectConversation(a, b uint) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.
		Joins("JOIN conversation_participants p1 ON p1.conversation_id = conversations.id AND p1.user_id = ?", a).
		Joins("JOIN conversation_participants p2 ON p2.conversation_id = conversations.id AND p2.user_id = ?", b).
		Where("conversations.type = ?", model.ConversationDirect).
		First(&conv).Error
	return &conv, err
}

func (r *ChatRepository) ListConversations(userID uint) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := r.DB.Preload("Participants.User").
		Joins("JOIN conversation_participants ON conversation_participants.conversation_id = conversations.id").
		Where("conversation_participants.user_id = ?", userID).
		Order("conversations.last_message_at DESC").
		Find(&convs).Error
	return convs, err
}

// DeleteConversation cascades over participants and messages; the conversation
// exclusively owns both.
func (r *ChatRepository) DeleteConversation(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&model.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("conversation_id = ?", id).Delete(&model.Participant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Conversation{}, "id = ?", id).Error
	})
}

func (r *ChatRepository) IsParticipant(conversationID string, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateMessage appends the message and bumps the conversation's
// last_message_at inside the same transaction.
func (r *ChatRepository) CreateMessage(msg *model.Message) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&model.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("last_message_at", time.Now()).Error
	})
}

func (r *ChatRepository) ListMessages(conversationID string, limit, offset int) ([]model.Message, error) {
	var msgs []model.Message
	err := r.DB.Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) MarkRead(conversationID string, userID uint) error {
	return r.DB.Model(&model.Participant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Update("last_read_at", time.Now()).Error
}
