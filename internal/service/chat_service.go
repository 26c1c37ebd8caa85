package service

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/repository"
	"campus_link_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ChatService struct {
	ChatRepo repository.ChatStore
	UserRepo repository.UserStore
}

func NewChatService(chatRepo repository.ChatStore, userRepo repository.UserStore) *ChatService {
	return &ChatService{
		ChatRepo: chatRepo,
		UserRepo: userRepo,
	}
}

type ConversationRequest struct {
	Type           string `json:"type" binding:"required,oneof=direct group"`
	Name           string `json:"name" binding:"omitempty,max=100"`
	ParticipantIDs []uint `json:"participant_ids" binding:"required,min=1"`
}

type MessageRequest struct {
	Type        string  `json:"type" binding:"omitempty,oneof=text image file"`
	Content     string  `json:"content" binding:"required_without=Attachments"`
	ReplyToID   *string `json:"reply_to_id"`
	Attachments string  `json:"attachments"`
}

// CreateConversation starts a direct or group thread. Direct threads are
// unique per pair: an existing one is returned instead of creating a
// duplicate.
func (s *ChatService) CreateConversation(creatorID uint, req ConversationRequest) (*model.Conversation, error) {
	participants := append([]uint{creatorID}, req.ParticipantIDs...)
	seen := make(map[uint]struct{}, len(participants))
	unique := participants[:0]
	for _, id := range participants {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	convType := model.ConversationType(req.Type)
	if convType == model.ConversationDirect {
		if len(unique) != 2 {
			return nil, util.NewValidationError("validation failed", map[string]string{
				"participant_ids": "direct conversations need exactly one other participant",
			})
		}
		existing, err := s.ChatRepo.FindDirectConversation(unique[0], unique[1])
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	users, err := s.UserRepo.FindByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(users) != len(unique) {
		return nil, util.NewValidationError("validation failed", map[string]string{
			"participant_ids": "one or more participants do not exist",
		})
	}

	conv := &model.Conversation{
		Type:      convType,
		Name:      req.Name,
		CreatedBy: creatorID,
	}
	if err := s.ChatRepo.CreateConversation(conv, unique); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *ChatService) ListConversations(userID uint) ([]model.Conversation, error) {
	return s.ChatRepo.ListConversations(userID)
}

func (s *ChatService) SendMessage(senderID uint, conversationID string, req MessageRequest) (*model.Message, error) {
	if err := s.requireParticipant(conversationID, senderID); err != nil {
		return nil, err
	}

	msgType := model.MessageType(req.Type)
	if msgType == "" {
		msgType = model.MessageText
	}

	sender := senderID
	msg := &model.Message{
		ConversationID: conversationID,
		SenderID:       &sender,
		ReplyToID:      req.ReplyToID,
		Type:           msgType,
		Content:        req.Content,
		Attachments:    req.Attachments,
	}
	if err := s.ChatRepo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ChatService) ListMessages(userID uint, conversationID string, limit, offset int) ([]model.Message, error) {
	if err := s.requireParticipant(conversationID, userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.ChatRepo.ListMessages(conversationID, limit, offset)
}

func (s *ChatService) MarkRead(userID uint, conversationID string) error {
	if err := s.requireParticipant(conversationID, userID); err != nil {
		return err
	}
	return s.ChatRepo.MarkRead(conversationID, userID)
}

// DeleteConversation is creator-only and cascades to participants and
// messages.
func (s *ChatService) DeleteConversation(userID uint, conversationID string) error {
	conv, err := s.ChatRepo.FindConversation(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NewNotFoundError("conversation not found")
		}
		return err
	}
	if conv.CreatedBy != userID {
		return util.ErrConversationAccess
	}
	return s.ChatRepo.DeleteConversation(conversationID)
}

func (s *ChatService) requireParticipant(conversationID string, userID uint) error {
	ok, err := s.ChatRepo.IsParticipant(conversationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrConversationAccess
	}
	return nil
}
