package memory

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"devflow/internal/chat/repository"
	"devflow/pkg/log"
)

const (
	DefaultCapacity = 1000
	DefaultTTL      = 24 * time.Hour
)

type implRepository struct {
	sessions *expirable.LRU[string, []byte]
	l        log.Logger
}

// New creates an in-process session store. Sessions expire after ttl and the
// least recently used one is evicted once capacity is reached.
func New(capacity int, ttl time.Duration, l log.Logger) repository.Repository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, []byte](capacity, nil, ttl),
		l:        l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/memory.%s", method)
}
