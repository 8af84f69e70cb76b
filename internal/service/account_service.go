package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/weiawesome/wes-social/internal/audit"
	"github.com/weiawesome/wes-social/internal/cache"
	"github.com/weiawesome/wes-social/internal/domain"
	"github.com/weiawesome/wes-social/internal/repository"
	"github.com/weiawesome/wes-social/pkg/apperr"
	"github.com/weiawesome/wes-social/pkg/log"
)

// AccountDeps groups the collaborators of the account service.
type AccountDeps struct {
	Accounts repository.AccountRepository
	Posts    repository.PostRepository
	Follows  repository.FollowRepository
	Tokens   TokenIssuer
	Cache    cache.AccountCache

	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	// CacheTTL defaults to 30s.
	CacheTTL time.Duration
}

type accountService struct {
	accounts   repository.AccountRepository
	posts      repository.PostRepository
	follows    repository.FollowRepository
	tokens     TokenIssuer
	cache      cache.AccountCache
	bcryptCost int
	cacheTTL   time.Duration
	sf         singleflight.Group
}

// NewAccountService creates a new AccountService.
func NewAccountService(deps AccountDeps) AccountService {
	s := &accountService{
		accounts:   deps.Accounts,
		posts:      deps.Posts,
		follows:    deps.Follows,
		tokens:     deps.Tokens,
		cache:      deps.Cache,
		bcryptCost: deps.BcryptCost,
		cacheTTL:   deps.CacheTTL,
	}
	if s.cache == nil {
		s.cache = cache.NopCache{}
	}
	if s.bcryptCost == 0 {
		s.bcryptCost = bcrypt.DefaultCost
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = 30 * time.Second
	}
	return s
}

// Register creates a new account.
func (s *accountService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AccountResponse, error) {
	l := log.Ctx(ctx)

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		l.Error().Err(err).Msg("failed to hash password")
		return nil, apperr.Database("failed to hash password", err)
	}

	account := &domain.Account{
		Email:        req.Email,
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hashed),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Duplicate("email or username already registered")
		}
		l.Error().Err(err).Msg("failed to create account")
		return nil, apperr.Database("failed to create account", err)
	}

	audit.Log(ctx, audit.ActionRegister, account.ID, "", "account registered")

	resp := account.ToResponse()
	return &resp, nil
}

// Login checks credentials and issues an identity token.
func (s *accountService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	l := log.Ctx(ctx)

	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			audit.LogWithDetail(ctx, audit.ActionLoginFailed, "", req.Email, "login failed: account not found")
			return nil, apperr.Unauthorized("invalid email or password")
		}
		l.Error().Err(err).Msg("failed to get account by email")
		return nil, apperr.Database("failed to load account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		audit.LogWithDetail(ctx, audit.ActionLoginFailed, account.ID, req.Email, "login failed: wrong password")
		return nil, apperr.Unauthorized("invalid email or password")
	}

	token, expiresAt, err := s.tokens.Issue(account.ID)
	if err != nil {
		l.Error().Err(err).Str(log.FieldUserID, account.ID).Msg("failed to issue token")
		return nil, apperr.Database("failed to issue token", err)
	}

	audit.Log(ctx, audit.ActionLogin, account.ID, "", "account logged in")

	return &domain.AuthResponse{
		Token:     token,
		AccountID: account.ID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *accountService) List(ctx context.Context) ([]domain.AccountResponse, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, apperr.Database("failed to list accounts", err)
	}
	resp := make([]domain.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, a.ToResponse())
	}
	return resp, nil
}

// GetProfile returns an account with its follower, following and post counts.
func (s *accountService) GetProfile(ctx context.Context, accountID string) (*domain.AccountProfile, error) {
	account, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile := &domain.AccountProfile{AccountResponse: *account}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.follows.GetFollowersCount(gctx, accountID)
		profile.FollowersCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.follows.GetFollowingCount(gctx, accountID)
		profile.FollowingCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.posts.CountByAccount(gctx, accountID)
		profile.PostsCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Database("failed to count relationships", err)
	}

	return profile, nil
}

// loadAccount reads an account through the cache. Concurrent misses for the
// same id share one database read.
func (s *accountService) loadAccount(ctx context.Context, accountID string) (*domain.AccountResponse, error) {
	l := log.Ctx(ctx)

	cached, err := s.cache.Get(ctx, accountID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		l.Warn().Err(err).Str(log.FieldUserID, accountID).Msg("account cache get failed, falling back to db")
	}

	v, err, _ := s.sf.Do(accountID, func() (interface{}, error) {
		account, err := s.accounts.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		resp := account.ToResponse()
		if err := s.cache.Set(ctx, &resp, s.cacheTTL); err != nil {
			l.Warn().Err(err).Str(log.FieldUserID, accountID).Msg("failed to set account cache")
		}
		return &resp, nil
	})
	if err != nil {
		return nil, lookupError(err, "account")
	}
	return v.(*domain.AccountResponse), nil
}

// owned loads an account that the actor is allowed to change: only itself.
func (s *accountService) owned(ctx context.Context, actorID, accountID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, lookupError(err, "account")
	}
	if account.ID != actorID {
		return nil, notOwned("account")
	}
	return account, nil
}

func (s *accountService) Update(ctx context.Context, actorID, accountID string, req *domain.UpdateAccountRequest) (*domain.AccountResponse, error) {
	l := log.Ctx(ctx)

	account, err := s.owned(ctx, actorID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Username != nil {
		account.Username = *req.Username
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, apperr.Database("failed to hash password", err)
		}
		account.PasswordHash = string(hashed)
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Duplicate("username already taken")
		}
		return nil, lookupError(err, "account")
	}

	if err := s.cache.Delete(ctx, accountID); err != nil {
		l.Warn().Err(err).Str(log.FieldUserID, accountID).Msg("failed to invalidate account cache")
	}
	audit.Log(ctx, audit.ActionUpdateAccount, actorID, accountID, "account updated")

	resp := account.ToResponse()
	return &resp, nil
}

// Delete removes the actor's own account and everything it owns.
func (s *accountService) Delete(ctx context.Context, actorID, accountID string) error {
	l := log.Ctx(ctx)

	if _, err := s.owned(ctx, actorID, accountID); err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		l.Error().Err(err).Str(log.FieldUserID, accountID).Msg("failed to delete account")
		return lookupError(err, "account")
	}

	if err := s.cache.Delete(ctx, accountID); err != nil {
		l.Warn().Err(err).Str(log.FieldUserID, accountID).Msg("failed to invalidate account cache")
	}
	audit.Log(ctx, audit.ActionDeleteAccount, actorID, accountID, "account deleted")
	return nil
}

var _ AccountService = (*accountService)(nil)
