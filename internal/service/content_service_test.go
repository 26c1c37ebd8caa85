package service

import (
	"testing"

	"campus_link_backend/internal/mocks"
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentService() (*ContentService, *mocks.MockContentStore) {
	contentRepo := new(mocks.MockContentStore)
	return NewContentService(contentRepo), contentRepo
}

func testPost(id, authorID uint) *model.Post {
	p := &model.Post{AuthorID: authorID, Content: "hello"}
	p.ID = id
	return p
}

func TestDeletePostByAuthor(t *testing.T) {
	svc, contentRepo := newContentService()
	contentRepo.On("FindPost", uint(1)).Return(testPost(1, 7), nil)
	contentRepo.On("DeletePost", uint(1)).Return(nil)

	require.NoError(t, svc.DeletePost(7, model.Student, 1))
	contentRepo.AssertExpectations(t)
}

func TestDeletePostByAdmin(t *testing.T) {
	svc, contentRepo := newContentService()
	contentRepo.On("FindPost", uint(1)).Return(testPost(1, 7), nil)
	contentRepo.On("DeletePost", uint(1)).Return(nil)

	require.NoError(t, svc.DeletePost(99, model.Admin, 1))
}

func TestDeletePostByStrangerForbidden(t *testing.T) {
	svc, contentRepo := newContentService()
	contentRepo.On("FindPost", uint(1)).Return(testPost(1, 7), nil)

	err := svc.DeletePost(8, model.Student, 1)
	require.Error(t, err)

	appErr, ok := util.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, util.KindForbidden, appErr.Kind)
	contentRepo.AssertNotCalled(t, "DeletePost", mock.Anything)
}

func TestDeleteCommentByAuthor(t *testing.T) {
	svc, contentRepo := newContentService()
	comment := &model.Comment{PostID: 1, AuthorID: 7, Content: "nice"}
	comment.ID = 3
	contentRepo.On("FindComment", uint(3)).Return(comment, nil)
	contentRepo.On("DeleteComment", uint(3)).Return(nil)

	require.NoError(t, svc.DeleteComment(7, model.Student, 3))
}

func TestToggleLikeReportsState(t *testing.T) {
	svc, contentRepo := newContentService()
	contentRepo.On("FindPost", uint(1)).Return(testPost(1, 7), nil)
	contentRepo.On("ToggleLike", uint(1), uint(5)).Return(true, nil).Once()
	contentRepo.On("ToggleLike", uint(1), uint(5)).Return(false, nil).Once()

	liked, err := svc.ToggleLike(5, 1)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.ToggleLike(5, 1)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestGetPostDecoratesLikes(t *testing.T) {
	svc, contentRepo := newContentService()
	contentRepo.On("FindPost", uint(1)).Return(testPost(1, 7), nil)
	contentRepo.On("CountLikes", uint(1)).Return(int64(4), nil)
	contentRepo.On("HasLiked", uint(1), uint(5)).Return(true, nil)

	post, err := svc.GetPost(5, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), post.LikeCount)
	assert.True(t, post.LikedByMe)
}
