package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestKeyUsesPrefix(t *testing.T) {
	c := NewRedisAccountCacheWithClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "account")
	defer c.Close()

	if got, want := c.key("abc"), "account:id:abc"; got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}

func TestDeleteWithoutKeysIsNoop(t *testing.T) {
	c := NewRedisAccountCacheWithClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "account")
	defer c.Close()

	if err := c.Delete(context.Background()); err != nil {
		t.Fatalf("Delete() = %v, want nil", err)
	}
}

func TestNopCacheAlwaysMisses(t *testing.T) {
	var c AccountCache = NopCache{}
	ctx := context.Background()

	if err := c.Set(ctx, nil, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := c.Get(ctx, "abc"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss", err)
	}
}
