package cache

import (
	"context"
	"errors"
	"time"

	"github.com/weiawesome/wes-social/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// AccountCache stores account responses keyed by account id.
type AccountCache interface {
	Get(ctx context.Context, accountID string) (*domain.AccountResponse, error)
	Set(ctx context.Context, account *domain.AccountResponse, ttl time.Duration) error
	Delete(ctx context.Context, accountIDs ...string) error
	Close() error
}

// NopCache never stores anything; every Get is a miss.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*domain.AccountResponse, error) {
	return nil, ErrCacheMiss
}

func (NopCache) Set(context.Context, *domain.AccountResponse, time.Duration) error { return nil }

func (NopCache) Delete(context.Context, ...string) error { return nil }

func (NopCache) Close() error { return nil }
