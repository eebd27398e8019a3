package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"devflow/internal/model"
	"devflow/pkg/log"
)

// newTestRepo needs a reachable server in DEVFLOW_TEST_REDIS_ADDR.
func newTestRepo(t *testing.T, ttl time.Duration) (*implRepository, *redis.Client) {
	t.Helper()
	addr := os.Getenv("DEVFLOW_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("DEVFLOW_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return New(client, ttl, log.NewNop()).(*implRepository), client
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, client := newTestRepo(t, time.Minute)
	id := uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, key(id)) })

	if got, err := repo.GetSession(ctx, id); err != nil || got != nil {
		t.Fatalf("GetSession(missing) = %v, %v", got, err)
	}

	conv := model.NewConversation()
	conv.Append(model.Message{Role: model.RoleUser, Content: "hello"})
	if err := repo.SaveSession(ctx, id, conv); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	ttl, err := client.TTL(ctx, key(id)).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl = %v, %v", ttl, err)
	}

	got, err := repo.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "hello" {
		t.Errorf("messages = %+v", got.Messages)
	}

	if err := repo.DeleteSession(ctx, id); err != nil {
		t.Fatal(err)
	}
	if got, _ := repo.GetSession(ctx, id); got != nil {
		t.Error("session still present after delete")
	}
}

func TestNew_DefaultTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	repo := New(client, 0, log.NewNop()).(*implRepository)
	if repo.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", repo.ttl, DefaultTTL)
	}
	if key("abc") != "devflow:session:abc" {
		t.Errorf("key = %q", key("abc"))
	}
}
