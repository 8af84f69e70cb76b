package service

import (
	"context"

	"github.com/weiawesome/wes-social/internal/audit"
	"github.com/weiawesome/wes-social/internal/domain"
	"github.com/weiawesome/wes-social/internal/repository"
	"github.com/weiawesome/wes-social/pkg/apperr"
)

type postService struct {
	posts    repository.PostRepository
	accounts repository.AccountRepository
}

// NewPostService creates a new PostService instance.
func NewPostService(posts repository.PostRepository, accounts repository.AccountRepository) PostService {
	return &postService{posts: posts, accounts: accounts}
}

func (s *postService) Create(ctx context.Context, accountID, content string) (*domain.Post, error) {
	if err := requireActor(ctx, s.accounts, accountID); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, apperr.Validation("content is required")
	}

	post := &domain.Post{AccountID: accountID, Content: content}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, apperr.Database("failed to create post", err)
	}

	audit.Log(ctx, audit.ActionCreatePost, accountID, post.ID, "post created")
	return post, nil
}

func (s *postService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, apperr.Database("failed to list posts", err)
	}
	return posts, nil
}

// ListByAccount returns an account's posts; an account without posts yields an empty list.
func (s *postService) ListByAccount(ctx context.Context, accountID string) ([]*domain.Post, error) {
	posts, err := s.posts.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, apperr.Database("failed to list posts", err)
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, lookupError(err, "post")
	}
	return post, nil
}

func (s *postService) owned(ctx context.Context, accountID, postID string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return lookupError(err, "post")
	}
	if post.AccountID != accountID {
		return notOwned("post")
	}
	return nil
}

func (s *postService) Update(ctx context.Context, accountID, postID, content string) (*domain.Post, error) {
	if content == "" {
		return nil, apperr.Validation("content is required")
	}
	if err := s.owned(ctx, accountID, postID); err != nil {
		return nil, err
	}

	post, err := s.posts.UpdateContent(ctx, postID, content)
	if err != nil {
		return nil, lookupError(err, "post")
	}

	audit.Log(ctx, audit.ActionUpdatePost, accountID, postID, "post updated")
	return post, nil
}

// Delete removes a post together with its likes and replies.
func (s *postService) Delete(ctx context.Context, accountID, postID string) error {
	if err := s.owned(ctx, accountID, postID); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return lookupError(err, "post")
	}

	audit.Log(ctx, audit.ActionDeletePost, accountID, postID, "post deleted")
	return nil
}

var _ PostService = (*postService)(nil)
