package service

import (
	"context"
	"errors"

	"github.com/weiawesome/wes-social/internal/audit"
	"github.com/weiawesome/wes-social/internal/domain"
	"github.com/weiawesome/wes-social/internal/repository"
	"github.com/weiawesome/wes-social/pkg/apperr"
	"github.com/weiawesome/wes-social/pkg/log"
	"github.com/weiawesome/wes-social/pkg/pubsub"
)

type likeService struct {
	likes     repository.LikeRepository
	posts     repository.PostRepository
	accounts  repository.AccountRepository
	publisher pubsub.Publisher
}

// NewLikeService creates a new LikeService instance.
func NewLikeService(likes repository.LikeRepository, posts repository.PostRepository, accounts repository.AccountRepository, publisher pubsub.Publisher) LikeService {
	return &likeService{
		likes:     likes,
		posts:     posts,
		accounts:  accounts,
		publisher: publisher,
	}
}

// Create records that accountID likes postID.
func (s *likeService) Create(ctx context.Context, accountID, postID string) (*domain.Like, error) {
	l := log.Ctx(ctx)

	if err := requireActor(ctx, s.accounts, accountID); err != nil {
		return nil, err
	}
	if postID == "" {
		return nil, apperr.Validation("post_id is required")
	}

	// Absent and malformed posts are both storage failures here.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, apperr.Database("failed to load post", err)
	}

	exists, err := s.likes.Exists(ctx, accountID, postID)
	if err != nil {
		return nil, apperr.Database("failed to check like", err)
	}
	if exists {
		return nil, apperr.Duplicate("already liked")
	}

	like := &domain.Like{AccountID: accountID, PostID: postID}
	if err := s.likes.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Duplicate("already liked")
		}
		l.Error().Err(err).
			Str(log.FieldUserID, accountID).
			Str(log.FieldPostID, postID).
			Msg("failed to create like")
		return nil, apperr.Database("failed to create like", err)
	}

	audit.Log(ctx, audit.ActionLike, accountID, postID, "post liked")
	publish(ctx, s.publisher, pubsub.ChannelLikes, pubsub.EventLikeCreated, postID, accountID,
		pubsub.LikePayload{LikeID: like.ID, AccountID: accountID, PostID: postID})

	return like, nil
}

func (s *likeService) List(ctx context.Context) ([]*domain.Like, error) {
	likes, err := s.likes.List(ctx)
	if err != nil {
		return nil, apperr.Database("failed to list likes", err)
	}
	return likes, nil
}

func (s *likeService) Get(ctx context.Context, likeID string) (*domain.Like, error) {
	like, err := s.likes.GetByID(ctx, likeID)
	if err != nil {
		return nil, lookupError(err, "like")
	}
	return like, nil
}

// Delete removes a like owned by accountID.
func (s *likeService) Delete(ctx context.Context, accountID, likeID string) error {
	like, err := s.likes.GetByID(ctx, likeID)
	if err != nil {
		return lookupError(err, "like")
	}
	if like.AccountID != accountID {
		return notOwned("like")
	}

	if err := s.likes.Delete(ctx, likeID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l := log.Ctx(ctx)
			l.Error().Err(err).Str(log.FieldLikeID, likeID).Msg("failed to remove like")
		}
		return lookupError(err, "like")
	}

	audit.Log(ctx, audit.ActionUnlike, accountID, like.PostID, "like removed")
	publish(ctx, s.publisher, pubsub.ChannelLikes, pubsub.EventLikeDeleted, like.PostID, accountID,
		pubsub.LikePayload{LikeID: like.ID, AccountID: accountID, PostID: like.PostID})

	return nil
}

// Ensure interface is satisfied at compile time.
var _ LikeService = (*likeService)(nil)
