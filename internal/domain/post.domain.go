package domain

import "time"

// Like membership within a post is a set keyed by UserID; toggling
// twice restores the original set.
type Like struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Comment entries are append-only and never reorder.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	Timestamp time.Time `json:"timestamp"`
}
