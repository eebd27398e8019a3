package redis

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"devflow/internal/chat/repository"
	"devflow/pkg/log"
)

const (
	KeyPrefix  = "devflow:session:"
	DefaultTTL = 24 * time.Hour
)

type implRepository struct {
	client *redis.Client
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed session store. Every save refreshes the TTL.
func New(client *redis.Client, ttl time.Duration, l log.Logger) repository.Repository {
	if client == nil {
		panic("chat/repository/redis: client is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{client: client, ttl: ttl, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/redis.%s", method)
}

func key(id string) string {
	return KeyPrefix + id
}
