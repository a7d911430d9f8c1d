package usecase

import (
	"linkora-server/internal/domain"
	"linkora-server/internal/repository"
	xerrors "linkora-server/pkg/utils/errors"
)

// FeedUsecase covers post creation, like toggling, and comments.
type FeedUsecase struct {
	social *repository.SocialRepo
}

func NewFeedUsecase(social *repository.SocialRepo) *FeedUsecase {
	return &FeedUsecase{social: social}
}

type CreatePostRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`
}

func (uc *FeedUsecase) CreatePost(req CreatePostRequest) (*domain.Post, error) {
	if req.UserID == "" || req.Username == "" || req.Content == "" {
		return nil, xerrors.ErrMalformedEvent
	}
	return uc.social.CreatePost(req.UserID, req.Username, req.Avatar, req.Content, req.Image), nil
}

type LikePostRequest struct {
	PostID   string `json:"postId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

func (uc *FeedUsecase) ToggleLike(req LikePostRequest) (*domain.Post, error) {
	if req.PostID == "" || req.UserID == "" || req.Username == "" {
		return nil, xerrors.ErrMalformedEvent
	}
	return uc.social.ToggleLike(req.PostID, req.UserID, req.Username)
}

type AddCommentRequest struct {
	PostID   string `json:"postId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

func (uc *FeedUsecase) AddComment(req AddCommentRequest) (*domain.Post, error) {
	if req.PostID == "" || req.UserID == "" || req.Username == "" || req.Content == "" {
		return nil, xerrors.ErrMalformedEvent
	}
	return uc.social.AddComment(req.PostID, req.UserID, req.Username, req.Content)
}

// List returns the feed newest-first.
func (uc *FeedUsecase) List() []*domain.Post {
	return uc.social.List()
}
