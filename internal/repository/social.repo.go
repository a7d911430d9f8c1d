package repository

import (
	"sync"
	"time"

	"linkora-server/internal/domain"
	xerrors "linkora-server/pkg/utils/errors"
	"linkora-server/pkg/utils/id"
)

// SocialRepo owns the in-memory post table. Posts are kept newest-first
// for listing; likes are a set keyed by user ID; comments append-only.
type SocialRepo struct {
	mu    sync.RWMutex
	posts []*domain.Post // newest first
	byID  map[string]*domain.Post
	sf    *id.Snowflake
}

func NewSocialRepo(sf *id.Snowflake) *SocialRepo {
	return &SocialRepo{
		byID: make(map[string]*domain.Post),
		sf:   sf,
	}
}

// CreatePost assigns a fresh ID and timestamp and prepends the post.
func (r *SocialRepo) CreatePost(userID, username, avatar, content, image string) *domain.Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := &domain.Post{
		ID:        r.sf.Generate(),
		UserID:    userID,
		Username:  username,
		Avatar:    avatar,
		Content:   content,
		Image:     image,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		Timestamp: time.Now(),
	}
	r.posts = append([]*domain.Post{post}, r.posts...)
	r.byID[post.ID] = post
	return post
}

// ToggleLike removes the user's like if present, adds it otherwise.
func (r *SocialRepo) ToggleLike(postID, userID, username string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[postID]
	if !ok {
		return nil, xerrors.ErrPostNotFound
	}
	for i, like := range post.Likes {
		if like.UserID == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			return post, nil
		}
	}
	post.Likes = append(post.Likes, domain.Like{UserID: userID, Username: username})
	return post, nil
}

// AddComment appends a comment with a fresh ID and timestamp.
func (r *SocialRepo) AddComment(postID, userID, username, content string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[postID]
	if !ok {
		return nil, xerrors.ErrPostNotFound
	}
	post.Comments = append(post.Comments, domain.Comment{
		ID:        r.sf.Generate(),
		UserID:    userID,
		Username:  username,
		Content:   content,
		Timestamp: time.Now(),
	})
	return post, nil
}

// List returns the post sequence newest-first.
func (r *SocialRepo) List() []*domain.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Post, len(r.posts))
	copy(out, r.posts)
	return out
}
