package service

import (
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/repository"
	"campus_link_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type ContentService struct {
	ContentRepo repository.ContentStore
}

func NewContentService(contentRepo repository.ContentStore) *ContentService {
	return &ContentService{ContentRepo: contentRepo}
}

type PostRequest struct {
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (s *ContentService) CreatePost(authorID uint, req PostRequest) (*model.Post, error) {
	post := &model.Post{
		AuthorID: authorID,
		Content:  req.Content,
		Image:    req.Image,
	}
	if err := s.ContentRepo.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *ContentService) GetPost(viewerID, postID uint) (*model.Post, error) {
	post, err := s.ContentRepo.FindPost(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("post not found")
		}
		return nil, err
	}
	return s.decorate(viewerID, post)
}

func (s *ContentService) ListPosts(viewerID uint, page, limit int) ([]model.Post, int64, error) {
	posts, total, err := s.ContentRepo.ListPosts(page, limit)
	if err != nil {
		return nil, 0, err
	}
	for i := range posts {
		if _, err := s.decorate(viewerID, &posts[i]); err != nil {
			return nil, 0, err
		}
	}
	return posts, total, nil
}

// DeletePost is author-or-admin.
func (s *ContentService) DeletePost(actorID uint, actorRole model.UserRole, postID uint) error {
	post, err := s.ContentRepo.FindPost(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NewNotFoundError("post not found")
		}
		return err
	}
	if post.AuthorID != actorID && actorRole != model.Admin {
		return util.NewForbiddenError("not the author of this post")
	}
	return s.ContentRepo.DeletePost(postID)
}

func (s *ContentService) CreateComment(authorID, postID uint, req CommentRequest) (*model.Comment, error) {
	if _, err := s.ContentRepo.FindPost(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("post not found")
		}
		return nil, err
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.ContentRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *ContentService) ListComments(postID uint) ([]model.Comment, error) {
	return s.ContentRepo.ListComments(postID)
}

func (s *ContentService) DeleteComment(actorID uint, actorRole model.UserRole, commentID uint) error {
	comment, err := s.ContentRepo.FindComment(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NewNotFoundError("comment not found")
		}
		return err
	}
	if comment.AuthorID != actorID && actorRole != model.Admin {
		return util.NewForbiddenError("not the author of this comment")
	}
	return s.ContentRepo.DeleteComment(commentID)
}

// ToggleLike returns the resulting liked state.
func (s *ContentService) ToggleLike(userID, postID uint) (bool, error) {
	if _, err := s.ContentRepo.FindPost(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, util.NewNotFoundError("post not found")
		}
		return false, err
	}
	return s.ContentRepo.ToggleLike(postID, userID)
}

func (s *ContentService) decorate(viewerID uint, post *model.Post) (*model.Post, error) {
	likes, err := s.ContentRepo.CountLikes(post.ID)
	if err != nil {
		return nil, err
	}
	post.LikeCount = likes

	if viewerID != 0 {
		liked, err := s.ContentRepo.HasLiked(post.ID, viewerID)
		if err != nil {
			return nil, err
		}
		post.LikedByMe = liked
	}
	return post, nil
}
