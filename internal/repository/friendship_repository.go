package repository

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/util"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendshipStore covers both friend requests and the derived friendship
// edges, since the accept transition mutates the two together.
type FriendshipStore interface {
	CreatePendingRequest(req *model.FriendRequest) error
	GetPendingForReceiver(requestID string, receiverID uint) (*model.FriendRequest, error)
	DeletePending(senderID, receiverID uint) (int64, error)
	Accept(req *model.FriendRequest) error
	Reject(req *model.FriendRequest) error
	ListPendingSent(userID uint) ([]model.FriendRequest, error)
	ListPendingReceived(userID uint) ([]model.FriendRequest, error)
	AreFriends(a, b uint) (bool, error)
	ListFriends(userID uint) ([]model.User, error)
	DeleteFriendship(a, b uint) (int64, error)
}

type FriendshipRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewFriendshipRepository(db *gorm.DB, rdb *redis.Client) *FriendshipRepository {
	return &FriendshipRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

// CreatePendingRequest inserts the request only if no pending row exists for
// the pair in either direction and the users are not already friends. The
// whole check runs in one transaction with the candidate rows locked, so two
// overlapping sends cannot both pass the existence check.
func (r *FriendshipRepository) CreatePendingRequest(req *model.FriendRequest) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var pending int64
		err := tx.Model(&model.FriendRequest{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ?", model.RequestPending).
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				req.SenderID, req.ReceiverID, req.ReceiverID, req.SenderID).
			Count(&pending).Error
		if err != nil {
			return err
		}
		if pending > 0 {
			return util.ErrDuplicatePending
		}

		a, b := model.CanonicalPair(req.SenderID, req.ReceiverID)
		var edges int64
		if err := tx.Model(&model.Friend{}).
			Where("user_id = ? AND friend_id = ?", a, b).
			Count(&edges).Error; err != nil {
			return err
		}
		if edges > 0 {
			return util.ErrAlreadyFriends
		}

		req.Status = model.RequestPending
		return tx.Create(req).Error
	})
}

func (r *FriendshipRepository) GetPendingForReceiver(requestID string, receiverID uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.DB.
		Where("id = ? AND receiver_id = ? AND status = ?", requestID, receiverID, model.RequestPending).
		First(&req).Error
	return &req, err
}

// DeletePending removes the pending request with that exact direction and
// reports how many rows went away, so the caller can distinguish a no-op.
func (r *FriendshipRepository) DeletePending(senderID, receiverID uint) (int64, error) {
	res := r.DB.
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, model.RequestPending).
		Delete(&model.FriendRequest{})
	return res.RowsAffected, res.Error
}

// Accept flips the request to accepted and get-or-creates the canonical
// friendship edge as one transaction. FirstOrCreate against the unique
// (user_id, friend_id) index keeps retries idempotent.
func (r *FriendshipRepository) Accept(req *model.FriendRequest) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.FriendRequest{}).
			Where("id = ? AND status = ?", req.ID, model.RequestPending).
			Update("status", model.RequestAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		a, b := model.CanonicalPair(req.SenderID, req.ReceiverID)
		edge := model.Friend{UserID: a, FriendID: b}
		return tx.Where("user_id = ? AND friend_id = ?", a, b).
			FirstOrCreate(&edge).Error
	})

	if err == nil {
		r.invalidateFriendCache(req.SenderID, req.ReceiverID)
	}
	return err
}

func (r *FriendshipRepository) Reject(req *model.FriendRequest) error {
	res := r.DB.Model(&model.FriendRequest{}).
		Where("id = ? AND status = ?", req.ID, model.RequestPending).
		Update("status", model.RequestRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FriendshipRepository) ListPendingSent(userID uint) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.DB.
		Where("sender_id = ? AND status = ?", userID, model.RequestPending).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *FriendshipRepository) ListPendingReceived(userID uint) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.DB.Preload("Sender").
		Where("receiver_id = ? AND status = ?", userID, model.RequestPending).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// AreFriends is symmetric by construction: both orientations collapse onto
// the same canonical row. a == b is never a friendship.
func (r *FriendshipRepository) AreFriends(a, b uint) (bool, error) {
	if a == b {
		return false, nil
	}
	lo, hi := model.CanonicalPair(a, b)
	var count int64
	err := r.DB.Model(&model.Friend{}).
		Where("user_id = ? AND friend_id = ?", lo, hi).
		Count(&count).Error
	return count > 0, err
}

func (r *FriendshipRepository) ListFriends(userID uint) ([]model.User, error) {
	ids, err := r.friendIDs(userID)
	if err != nil {
		return nil, err
	}

	var friends []model.User
	if len(ids) == 0 {
		return friends, nil
	}
	err = r.DB.Where("id IN ?", ids).Find(&friends).Error
	return friends, err
}

func (r *FriendshipRepository) DeleteFriendship(a, b uint) (int64, error) {
	lo, hi := model.CanonicalPair(a, b)
	res := r.DB.Where("user_id = ? AND friend_id = ?", lo, hi).Delete(&model.Friend{})
	if res.Error == nil && res.RowsAffected > 0 {
		r.invalidateFriendCache(a, b)
	}
	return res.RowsAffected, res.Error
}

// friendIDs scans both edge orientations and resolves each row to the other
// participant, serving from the redis set when it is warm.
func (r *FriendshipRepository) friendIDs(userID uint) ([]uint, error) {
	if r.Redis != nil {
		key := friendCacheKey(userID)
		cached, err := r.Redis.SMembers(r.ctx, key).Result()
		if err == nil && len(cached) > 0 {
			var ids []uint
			for _, s := range cached {
				var id uint
				fmt.Sscanf(s, "%d", &id)
				if id > 0 {
					ids = append(ids, id)
				}
			}
			return ids, nil
		}
	}

	var edges []model.Friend
	err := r.DB.
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(edges))
	for _, e := range edges {
		if e.UserID == userID {
			ids = append(ids, e.FriendID)
		} else {
			ids = append(ids, e.UserID)
		}
	}

	if r.Redis != nil {
		key := friendCacheKey(userID)
		if len(ids) > 0 {
			pipe := r.Redis.Pipeline()
			for _, id := range ids {
				pipe.SAdd(r.ctx, key, id)
			}
			pipe.Expire(r.ctx, key, 24*time.Hour)
			pipe.Exec(r.ctx)
		} else {
			// short-lived sentinel against cache penetration
			r.Redis.SAdd(r.ctx, key, 0)
			r.Redis.Expire(r.ctx, key, 5*time.Minute)
		}
	}
	return ids, nil
}

func (r *FriendshipRepository) invalidateFriendCache(users ...uint) {
	if r.Redis == nil {
		return
	}
	for _, id := range users {
		r.Redis.Del(r.ctx, friendCacheKey(id))
	}
}

func friendCacheKey(userID uint) string {
	return fmt.Sprintf("social:relation:friends:%d", userID)
}
