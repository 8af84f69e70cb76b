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

// followService implements FollowService.
type followService struct {
	follows   repository.FollowRepository
	accounts  repository.AccountRepository
	publisher pubsub.Publisher
}

// NewFollowService creates a new FollowService instance.
func NewFollowService(follows repository.FollowRepository, accounts repository.AccountRepository, publisher pubsub.Publisher) FollowService {
	return &followService{
		follows:   follows,
		accounts:  accounts,
		publisher: publisher,
	}
}

// Create makes followerID follow followeeID.
func (s *followService) Create(ctx context.Context, followerID, followeeID string) (*domain.Follow, error) {
	l := log.Ctx(ctx)

	if err := requireActor(ctx, s.accounts, followerID); err != nil {
		return nil, err
	}
	if followeeID == "" {
		return nil, apperr.Validation("followee_id is required")
	}
	if followerID == followeeID {
		return nil, apperr.SelfReference("cannot follow yourself")
	}

	if _, err := s.accounts.GetByID(ctx, followeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Validation("account to follow does not exist")
		}
		return nil, apperr.Database("failed to load account", err)
	}

	exists, err := s.follows.Exists(ctx, followerID, followeeID)
	if err != nil {
		return nil, apperr.Database("failed to check follow", err)
	}
	if exists {
		return nil, apperr.Duplicate("already following")
	}

	follow := &domain.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := s.follows.Create(ctx, follow); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Duplicate("already following")
		}
		l.Error().Err(err).
			Str("follower_id", followerID).
			Str("followee_id", followeeID).
			Msg("failed to follow account")
		return nil, apperr.Database("failed to create follow", err)
	}

	audit.Log(ctx, audit.ActionFollow, followerID, followeeID, "account followed")
	publish(ctx, s.publisher, pubsub.ChannelFollows, pubsub.EventFollowCreated, followeeID, followerID,
		pubsub.FollowPayload{FollowID: follow.ID, FollowerID: followerID, FolloweeID: followeeID})

	return follow, nil
}

func (s *followService) List(ctx context.Context) ([]*domain.Follow, error) {
	follows, err := s.follows.List(ctx)
	if err != nil {
		return nil, apperr.Database("failed to list follows", err)
	}
	return follows, nil
}

func (s *followService) Get(ctx context.Context, followID string) (*domain.Follow, error) {
	follow, err := s.follows.GetByID(ctx, followID)
	if err != nil {
		return nil, lookupError(err, "follow")
	}
	return follow, nil
}

// Delete removes a follow made by followerID.
func (s *followService) Delete(ctx context.Context, followerID, followID string) error {
	l := log.Ctx(ctx)

	follow, err := s.follows.GetByID(ctx, followID)
	if err != nil {
		return lookupError(err, "follow")
	}
	if follow.FollowerID != followerID {
		return notOwned("follow")
	}

	if err := s.follows.Delete(ctx, followID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l.Error().Err(err).Str(log.FieldFollowID, followID).Msg("failed to unfollow account")
		}
		return lookupError(err, "follow")
	}

	audit.Log(ctx, audit.ActionUnfollow, followerID, follow.FolloweeID, "account unfollowed")
	publish(ctx, s.publisher, pubsub.ChannelFollows, pubsub.EventFollowDeleted, follow.FolloweeID, followerID,
		pubsub.FollowPayload{FollowID: follow.ID, FollowerID: followerID, FolloweeID: follow.FolloweeID})

	return nil
}

// Ensure interface is satisfied at compile time.
var _ FollowService = (*followService)(nil)
