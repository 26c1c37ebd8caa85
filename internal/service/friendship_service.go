package service

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/repository"
	"campus_link_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// FriendshipService owns the friend-request state machine:
// pending -> accepted | rejected | cancelled(deleted). Accepted and rejected
// are terminal; a new request may be sent again after rejection.
type FriendshipService struct {
	FriendRepo repository.FriendshipStore
	UserRepo   repository.UserStore
}

func NewFriendshipService(friendRepo repository.FriendshipStore, userRepo repository.UserStore) *FriendshipService {
	return &FriendshipService{
		FriendRepo: friendRepo,
		UserRepo:   userRepo,
	}
}

// ReceivedRequest is the enriched read model for the receiver's inbox.
type ReceivedRequest struct {
	ID           string `json:"id"`
	SenderID     uint   `json:"sender_id"`
	SenderName   string `json:"sender_name"`
	SenderEmail  string `json:"sender_email"`
	SenderAvatar string `json:"sender_avatar_url"`
	Message      string `json:"message,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// SendRequest validates the state-machine preconditions before any write; the
// repository re-checks them under lock, closing the race between overlapping
// sends.
func (s *FriendshipService) SendRequest(senderID, receiverID uint, message string) (*model.FriendRequest, error) {
	if senderID == receiverID {
		return nil, util.ErrSelfRequest
	}

	receiver, err := s.UserRepo.FindByID(receiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewValidationError("validation failed", map[string]string{
				"receiver_id": "no such user",
			})
		}
		return nil, err
	}
	if receiver.Status == model.StatusSuspended {
		return nil, util.NewValidationError("validation failed", map[string]string{
			"receiver_id": "user is not accepting requests",
		})
	}

	isFriend, err := s.FriendRepo.AreFriends(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if isFriend {
		return nil, util.ErrAlreadyFriends
	}

	req := &model.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    message,
		Status:     model.RequestPending,
	}
	if err := s.FriendRepo.CreatePendingRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// CancelRequest deletes the pending request with that exact direction. Only
// the original sender may cancel; a second cancel reports NotFound.
func (s *FriendshipService) CancelRequest(senderID, receiverID uint) error {
	deleted, err := s.FriendRepo.DeletePending(senderID, receiverID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return util.ErrRequestNotFound
	}
	return nil
}

// AcceptRequest transitions the request to accepted and derives the
// friendship edge; both happen in one repository transaction and retries are
// idempotent at the edge level.
func (s *FriendshipService) AcceptRequest(receiverID uint, requestID string) error {
	req, err := s.FriendRepo.GetPendingForReceiver(requestID, receiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRequestNotFound
		}
		return err
	}

	if err := s.FriendRepo.Accept(req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRequestNotFound
		}
		return err
	}
	return nil
}

// RejectRequest transitions the request to rejected. No friendship side
// effect.
func (s *FriendshipService) RejectRequest(receiverID uint, requestID string) error {
	req, err := s.FriendRepo.GetPendingForReceiver(requestID, receiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRequestNotFound
		}
		return err
	}

	if err := s.FriendRepo.Reject(req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRequestNotFound
		}
		return err
	}
	return nil
}

// ListSent returns the receiver ids of the caller's pending requests.
func (s *FriendshipService) ListSent(userID uint) ([]uint, error) {
	reqs, err := s.FriendRepo.ListPendingSent(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ReceiverID)
	}
	return ids, nil
}

// ListReceived returns pending requests addressed to the caller, enriched
// with sender details and a relative timestamp.
func (s *FriendshipService) ListReceived(userID uint) ([]ReceivedRequest, error) {
	reqs, err := s.FriendRepo.ListPendingReceived(userID)
	if err != nil {
		return nil, err
	}

	out := make([]ReceivedRequest, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, ReceivedRequest{
			ID:           r.ID,
			SenderID:     r.SenderID,
			SenderName:   r.Sender.Name,
			SenderEmail:  r.Sender.Email,
			SenderAvatar: r.Sender.Avatar,
			Message:      r.Message,
			CreatedAt:    util.RelativeTime(r.CreatedAt),
		})
	}
	return out, nil
}

// AreFriends is symmetric and false for a == b.
func (s *FriendshipService) AreFriends(a, b uint) (bool, error) {
	return s.FriendRepo.AreFriends(a, b)
}

func (s *FriendshipService) ListFriends(userID uint) ([]model.PublicProfile, error) {
	friends, err := s.FriendRepo.ListFriends(userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.PublicProfile, 0, len(friends))
	for i := range friends {
		out = append(out, friends[i].Public())
	}
	return out, nil
}

func (s *FriendshipService) Unfriend(userID, friendID uint) error {
	deleted, err := s.FriendRepo.DeleteFriendship(userID, friendID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return util.NewNotFoundError("friendship not found")
	}
	return nil
}
