package model

import "time"

type FriendRequestStatus string

const (
	RequestPending  FriendRequestStatus = "pending"
	RequestAccepted FriendRequestStatus = "accepted"
	RequestRejected FriendRequestStatus = "rejected"
)

// FriendRequest is a directed request from sender to receiver. At most one
// pending row may exist per unordered user pair; the repository guards this
// with a locking conditional insert.
type FriendRequest struct {
	UUIDBase
	SenderID   uint                `gorm:"index;not null" json:"senderId"`
	Sender     User                `gorm:"foreignKey:SenderID;references:ID;constraint:false" json:"sender,omitempty"`
	ReceiverID uint                `gorm:"index;not null" json:"receiverId"`
	Receiver   User                `gorm:"foreignKey:ReceiverID;references:ID;constraint:false" json:"receiver,omitempty"`
	Status     FriendRequestStatus `gorm:"type:enum('pending','accepted','rejected');default:'pending'" json:"status"`
	Message    string              `gorm:"size:255" json:"message"`
	CreatedAt  time.Time           `gorm:"autoCreateTime" json:"createdAt"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}

// Friend is one undirected friendship edge stored in canonical orientation:
// UserID < FriendID always. The composite unique index makes duplicate-edge
// checks a single lookup and backs the idempotent get-or-create on accept.
type Friend struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_friend_pair;not null" json:"userId"`
	FriendID  uint      `gorm:"uniqueIndex:idx_friend_pair;not null" json:"friendId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Friend) TableName() string {
	return "friends"
}

// CanonicalPair orders two user ids so the smaller one comes first.
func CanonicalPair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}
