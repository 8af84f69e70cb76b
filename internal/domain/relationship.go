package domain

import "time"

// Post represents a post ("tweet") authored by an account.
type Post struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Like is an account's approval of a post.
type Like struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Follow is a directed relationship between two distinct accounts.
type Follow struct {
	ID         string    `json:"id"`
	FollowerID string    `json:"follower_id"`
	FolloweeID string    `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Reply is a text response to a post.
type Reply struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	PostID    string    `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostRequest is the body for creating or updating a post.
type PostRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateLikeRequest is the body for liking a post.
type CreateLikeRequest struct {
	PostID string `json:"post_id" binding:"required"`
}

// CreateFollowRequest is the body for following an account.
type CreateFollowRequest struct {
	FolloweeID string `json:"followee_id" binding:"required"`
}

// CreateReplyRequest is the body for replying to a post.
type CreateReplyRequest struct {
	PostID  string `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateReplyRequest is the body for editing a reply.
type UpdateReplyRequest struct {
	Content string `json:"content" binding:"required"`
}
