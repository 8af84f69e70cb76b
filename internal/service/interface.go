package service

import (
	"context"

	"github.com/weiawesome/wes-social/internal/domain"
)

// TokenIssuer issues identity tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(accountID string) (token string, expiresAt int64, err error)
}

// AccountService manages accounts and credentials.
type AccountService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AccountResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	List(ctx context.Context) ([]domain.AccountResponse, error)
	GetProfile(ctx context.Context, accountID string) (*domain.AccountProfile, error)
	Update(ctx context.Context, actorID, accountID string, req *domain.UpdateAccountRequest) (*domain.AccountResponse, error)
	Delete(ctx context.Context, actorID, accountID string) error
}

// PostService manages posts.
type PostService interface {
	Create(ctx context.Context, accountID, content string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Post, error)
	Get(ctx context.Context, postID string) (*domain.Post, error)
	Update(ctx context.Context, accountID, postID, content string) (*domain.Post, error)
	Delete(ctx context.Context, accountID, postID string) error
}

// LikeService enforces the like invariants: the post exists and an account
// likes a post at most once.
type LikeService interface {
	Create(ctx context.Context, accountID, postID string) (*domain.Like, error)
	List(ctx context.Context) ([]*domain.Like, error)
	Get(ctx context.Context, likeID string) (*domain.Like, error)
	Delete(ctx context.Context, accountID, likeID string) error
}

// FollowService enforces the follow invariants: no self-follow and at most
// one follow per (follower, followee) pair.
type FollowService interface {
	Create(ctx context.Context, followerID, followeeID string) (*domain.Follow, error)
	List(ctx context.Context) ([]*domain.Follow, error)
	Get(ctx context.Context, followID string) (*domain.Follow, error)
	Delete(ctx context.Context, followerID, followID string) error
}

// ReplyService manages replies; only the author may change or remove one.
type ReplyService interface {
	Create(ctx context.Context, accountID, postID, content string) (*domain.Reply, error)
	List(ctx context.Context) ([]*domain.Reply, error)
	Get(ctx context.Context, replyID string) (*domain.Reply, error)
	Update(ctx context.Context, accountID, replyID, content string) (*domain.Reply, error)
	Delete(ctx context.Context, accountID, replyID string) error
}
