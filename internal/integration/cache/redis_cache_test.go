package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redisCache) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return server, NewRedisCacheWithClient(client).(*redisCache)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on absent key", func(t *testing.T) {
		_, cache := newTestCache(t)
		_, ok, err := cache.Get(ctx, "coach:low_income:none")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if ok {
			t.Error("expected a miss for an absent key")
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		_, cache := newTestCache(t)
		if err := cache.Set(ctx, "k", []byte(`{"status":"normal"}`), time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}
		data, ok, err := cache.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !ok || string(data) != `{"status":"normal"}` {
			t.Errorf("Get = (%q, %v), want the stored value", data, ok)
		}
	})

	t.Run("entry expires after the TTL", func(t *testing.T) {
		server, cache := newTestCache(t)
		if err := cache.Set(ctx, "k", []byte("v"), 30*time.Second); err != nil {
			t.Fatalf("Set: %v", err)
		}
		server.FastForward(31 * time.Second)
		_, ok, err := cache.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if ok {
			t.Error("entry should have expired")
		}
	})

	t.Run("server failure surfaces an error", func(t *testing.T) {
		server, cache := newTestCache(t)
		server.Close()
		if _, _, err := cache.Get(ctx, "k"); err == nil {
			t.Error("expected an error when the server is down")
		}
	})
}
