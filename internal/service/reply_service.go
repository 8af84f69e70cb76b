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

type replyService struct {
	replies   repository.ReplyRepository
	posts     repository.PostRepository
	accounts  repository.AccountRepository
	publisher pubsub.Publisher
}

// NewReplyService creates a new ReplyService instance.
func NewReplyService(replies repository.ReplyRepository, posts repository.PostRepository, accounts repository.AccountRepository, publisher pubsub.Publisher) ReplyService {
	return &replyService{
		replies:   replies,
		posts:     posts,
		accounts:  accounts,
		publisher: publisher,
	}
}

func (s *replyService) Create(ctx context.Context, accountID, postID, content string) (*domain.Reply, error) {
	if err := requireActor(ctx, s.accounts, accountID); err != nil {
		return nil, err
	}
	if postID == "" {
		return nil, apperr.Validation("post_id is required")
	}
	if content == "" {
		return nil, apperr.Validation("content is required")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, apperr.Database("failed to load post", err)
	}

	reply := &domain.Reply{AccountID: accountID, PostID: postID, Content: content}
	if err := s.replies.Create(ctx, reply); err != nil {
		l := log.Ctx(ctx)
		l.Error().Err(err).Str(log.FieldUserID, accountID).Str(log.FieldPostID, postID).Msg("failed to create reply")
		return nil, apperr.Database("failed to create reply", err)
	}

	audit.Log(ctx, audit.ActionReply, accountID, postID, "reply created")
	publish(ctx, s.publisher, pubsub.ChannelReplies, pubsub.EventReplyCreated, postID, accountID,
		pubsub.ReplyPayload{ReplyID: reply.ID, AccountID: accountID, PostID: postID})

	return reply, nil
}

func (s *replyService) List(ctx context.Context) ([]*domain.Reply, error) {
	replies, err := s.replies.List(ctx)
	if err != nil {
		return nil, apperr.Database("failed to list replies", err)
	}
	return replies, nil
}

func (s *replyService) Get(ctx context.Context, replyID string) (*domain.Reply, error) {
	reply, err := s.replies.GetByID(ctx, replyID)
	if err != nil {
		return nil, lookupError(err, "reply")
	}
	return reply, nil
}

// owned loads a reply and checks it was written by accountID.
func (s *replyService) owned(ctx context.Context, accountID, replyID string) (*domain.Reply, error) {
	reply, err := s.replies.GetByID(ctx, replyID)
	if err != nil {
		return nil, lookupError(err, "reply")
	}
	if reply.AccountID != accountID {
		return nil, notOwned("reply")
	}
	return reply, nil
}

func (s *replyService) Update(ctx context.Context, accountID, replyID, content string) (*domain.Reply, error) {
	if content == "" {
		return nil, apperr.Validation("content is required")
	}
	if _, err := s.owned(ctx, accountID, replyID); err != nil {
		return nil, err
	}

	reply, err := s.replies.UpdateContent(ctx, replyID, content)
	if err != nil {
		return nil, lookupError(err, "reply")
	}

	audit.Log(ctx, audit.ActionUpdateReply, accountID, replyID, "reply updated")
	return reply, nil
}

func (s *replyService) Delete(ctx context.Context, accountID, replyID string) error {
	reply, err := s.owned(ctx, accountID, replyID)
	if err != nil {
		return err
	}
	if err := s.replies.Delete(ctx, replyID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l := log.Ctx(ctx)
			l.Error().Err(err).Str(log.FieldReplyID, replyID).Msg("failed to delete reply")
		}
		return lookupError(err, "reply")
	}

	audit.Log(ctx, audit.ActionDeleteReply, accountID, replyID, "reply deleted")
	publish(ctx, s.publisher, pubsub.ChannelReplies, pubsub.EventReplyDeleted, reply.PostID, accountID,
		pubsub.ReplyPayload{ReplyID: reply.ID, AccountID: accountID, PostID: reply.PostID})
	return nil
}

var _ ReplyService = (*replyService)(nil)
