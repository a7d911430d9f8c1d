package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkora-server/internal/repository"
	xerrors "linkora-server/pkg/utils/errors"
	"linkora-server/pkg/utils/id"
)

func newFeedUsecase(t *testing.T) *FeedUsecase {
	t.Helper()
	sf, err := id.NewSnowflake(1)
	require.NoError(t, err)
	return NewFeedUsecase(repository.NewSocialRepo(sf))
}

func TestCreatePostValidation(t *testing.T) {
	uc := newFeedUsecase(t)

	_, err := uc.CreatePost(CreatePostRequest{Username: "@a", Content: "hi"})
	assert.ErrorIs(t, err, xerrors.ErrMalformedEvent)
	_, err = uc.CreatePost(CreatePostRequest{UserID: "u1", Content: "hi"})
	assert.ErrorIs(t, err, xerrors.ErrMalformedEvent)
	_, err = uc.CreatePost(CreatePostRequest{UserID: "u1", Username: "@a"})
	assert.ErrorIs(t, err, xerrors.ErrMalformedEvent)

	post, err := uc.CreatePost(CreatePostRequest{UserID: "u1", Username: "@a", Content: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestFeedListNewestFirst(t *testing.T) {
	uc := newFeedUsecase(t)

	_, err := uc.CreatePost(CreatePostRequest{UserID: "u1", Username: "@a", Content: "older"})
	require.NoError(t, err)
	_, err = uc.CreatePost(CreatePostRequest{UserID: "u1", Username: "@a", Content: "newer"})
	require.NoError(t, err)

	posts := uc.List()
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Content)
	assert.Equal(t, "older", posts[1].Content)
}

func TestLikeAndCommentValidation(t *testing.T) {
	uc := newFeedUsecase(t)
	post, err := uc.CreatePost(CreatePostRequest{UserID: "u1", Username: "@a", Content: "hi"})
	require.NoError(t, err)

	_, err = uc.ToggleLike(LikePostRequest{PostID: post.ID, Username: "@b"})
	assert.ErrorIs(t, err, xerrors.ErrMalformedEvent)
	_, err = uc.AddComment(AddCommentRequest{PostID: post.ID, UserID: "u2", Username: "@b"})
	assert.ErrorIs(t, err, xerrors.ErrMalformedEvent)

	updated, err := uc.ToggleLike(LikePostRequest{PostID: post.ID, UserID: "u2", Username: "@b"})
	require.NoError(t, err)
	assert.Len(t, updated.Likes, 1)
}
