package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"devflow/internal/chat/repository"
	"devflow/internal/model"
)

func (r *implRepository) GetSession(ctx context.Context, id string) (*model.Conversation, error) {
	raw, err := r.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return nil, repository.ErrFailedToGet
	}

	conv, err := repository.Decode(raw)
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetSession"), err)
		return nil, repository.ErrFailedToGet
	}
	return conv, nil
}

func (r *implRepository) SaveSession(ctx context.Context, id string, conv *model.Conversation) error {
	raw, err := repository.Encode(conv)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("SaveSession"), err)
		return repository.ErrFailedToSave
	}
	if err := r.client.Set(ctx, key(id), raw, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveSession"), err)
		return repository.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
