package repository

import (
	"context"
	"errors"

	"github.com/weiawesome/wes-social/internal/domain"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicate   = errors.New("record already exists")
	ErrMalformedID = errors.New("malformed identifier")

	// ErrMissingReference is returned when a row points at an account or post
	// that does not exist.
	ErrMissingReference = errors.New("referenced record does not exist")
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	// Delete removes the account together with its posts, likes, follows and replies.
	Delete(ctx context.Context, id string) error
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Post, error)
	CountByAccount(ctx context.Context, accountID string) (int64, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Post, error)
	// Delete removes the post together with its likes and replies.
	Delete(ctx context.Context, id string) error
}

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	GetByID(ctx context.Context, id string) (*domain.Like, error)
	Exists(ctx context.Context, accountID, postID string) (bool, error)
	List(ctx context.Context) ([]*domain.Like, error)
	Delete(ctx context.Context, id string) error
}

// FollowRepository defines persistence operations for follow relationships.
type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	GetByID(ctx context.Context, id string) (*domain.Follow, error)
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
	List(ctx context.Context) ([]*domain.Follow, error)
	Delete(ctx context.Context, id string) error
	GetFollowersCount(ctx context.Context, accountID string) (int64, error)
	GetFollowingCount(ctx context.Context, accountID string) (int64, error)
}

// ReplyRepository defines persistence operations for replies.
type ReplyRepository interface {
	Create(ctx context.Context, reply *domain.Reply) error
	GetByID(ctx context.Context, id string) (*domain.Reply, error)
	List(ctx context.Context) ([]*domain.Reply, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Reply, error)
	Delete(ctx context.Context, id string) error
}
