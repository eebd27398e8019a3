package repository

import (
	"encoding/json"

	"devflow/internal/model"
)

// Encode snapshots a conversation so later mutation by the caller does not
// leak into the store.
func Encode(conv *model.Conversation) ([]byte, error) {
	return json.Marshal(conv)
}

// Decode restores a snapshot written by Encode.
func Decode(raw []byte) (*model.Conversation, error) {
	conv := model.NewConversation()
	if err := json.Unmarshal(raw, conv); err != nil {
		return nil, err
	}
	return conv, nil
}
