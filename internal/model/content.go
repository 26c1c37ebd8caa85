package model

import "time"

// swagger:model Post
type Post struct {
	BaseModel
	AuthorID     uint      `gorm:"index;not null" json:"authorId"`
	Author       User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Image        string    `gorm:"size:255" json:"image"`
	Comments     []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	LikeCount    int64     `gorm:"-" json:"likeCount"`
	CommentCount int64     `gorm:"-" json:"commentCount"`
	LikedByMe    bool      `gorm:"-" json:"likedByMe"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	BaseModel
	PostID   uint   `gorm:"index;not null" json:"postId"`
	AuthorID uint   `gorm:"index;not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (Comment) TableName() string {
	return "comments"
}

// PostLike is unique per (post, user); liking twice toggles nothing, the
// repository insert is idempotent through the composite key.
type PostLike struct {
	PostID    uint      `gorm:"primaryKey" json:"postId"`
	UserID    uint      `gorm:"primaryKey;index" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
