package repository

import (
	"campus_link_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentStore interface {
	CreatePost(p *model.Post) error
	FindPost(id uint) (*model.Post, error)
	DeletePost(id uint) error
	ListPosts(page, limit int) ([]model.Post, int64, error)
	CreateComment(c *model.Comment) error
	FindComment(id uint) (*model.Comment, error)
	DeleteComment(id uint) error
	ListComments(postID uint) ([]model.Comment, error)
	ToggleLike(postID, userID uint) (bool, error)
	CountLikes(postID uint) (int64, error)
	HasLiked(postID, userID uint) (bool, error)
	CountPosts() (int64, error)
	CountComments() (int64, error)
}

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) CreatePost(p *model.Post) error {
	return r.DB.Create(p).Error
}

func (r *ContentRepository) FindPost(id uint) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").First(&post, id).Error
	return &post, err
}

// DeletePost takes the comments and likes with it.
func (r *ContentRepository) DeletePost(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

func (r *ContentRepository) ListPosts(page, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	db := r.DB.Model(&model.Post{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Author").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *ContentRepository) CreateComment(c *model.Comment) error {
	return r.DB.Create(c).Error
}

func (r *ContentRepository) FindComment(id uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.First(&comment, id).Error
	return &comment, err
}

func (r *ContentRepository) DeleteComment(id uint) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}

func (r *ContentRepository) ListComments(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// ToggleLike likes the post if the user has not, otherwise removes the like.
// Returns the resulting liked state. The conditional insert rides on the
// composite primary key, so concurrent likes cannot duplicate.
func (r *ContentRepository) ToggleLike(postID, userID uint) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PostLike{PostID: postID, UserID: userID})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	err := r.DB.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLike{}).Error
	return false, err
}

func (r *ContentRepository) CountLikes(postID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *ContentRepository) HasLiked(postID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ContentRepository) CountPosts() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Count(&count).Error
	return count, err
}

func (r *ContentRepository) CountComments() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Comment{}).Count(&count).Error
	return count, err
}
