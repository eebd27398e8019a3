package memory

import (
	"context"

	"devflow/internal/chat/repository"
	"devflow/internal/model"
)

func (r *implRepository) GetSession(ctx context.Context, id string) (*model.Conversation, error) {
	raw, ok := r.sessions.Get(id)
	if !ok {
		return nil, nil
	}
	conv, err := repository.Decode(raw)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return nil, repository.ErrFailedToGet
	}
	return conv, nil
}

func (r *implRepository) SaveSession(ctx context.Context, id string, conv *model.Conversation) error {
	raw, err := repository.Encode(conv)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveSession"), err)
		return repository.ErrFailedToSave
	}
	r.sessions.Add(id, raw)
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	r.sessions.Remove(id)
	return nil
}
