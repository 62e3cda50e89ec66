package chat

import (
	"context"
	"fmt"

	"github.com/2beens/fitgenius/internal/store"
)

type Repo struct {
	store *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

func (r *Repo) Messages(ctx context.Context) ([]Message, error) {
	var messages []Message
	if _, err := r.store.GetJSON(ctx, store.KeyChatMessages, &messages); err != nil {
		return nil, fmt.Errorf("get chat messages: %w", err)
	}
	return messages, nil
}

func (r *Repo) SetMessages(ctx context.Context, messages []Message) error {
	if err := r.store.SetJSON(ctx, store.KeyChatMessages, messages); err != nil {
		return fmt.Errorf("set chat messages: %w", err)
	}
	return nil
}

func (r *Repo) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, store.KeyChatMessages); err != nil {
		return fmt.Errorf("clear chat messages: %w", err)
	}
	return nil
}
