package repositories

import (
	"context"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/store"
)

// MessageRepository handles chat message records
type MessageRepository struct {
	client *store.Client
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(client *store.Client) *MessageRepository {
	return &MessageRepository{client: client}
}

// ListThread returns the thread's messages newest-first, matching the store's
// efficient "most recent N" access path. Display order is the view's concern.
func (r *MessageRepository) ListThread(ctx context.Context, threadID, threadType string) ([]models.Message, error) {
	predicate := store.Predicate{
		"thread_id":   threadID,
		"thread_type": threadType,
	}
	raw, err := r.client.Filter(ctx, store.KindMessage, predicate, "-created_date")
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Message](store.KindMessage, raw)
}

// Create persists a new message and returns the stored record.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	raw, err := r.client.Create(ctx, store.KindMessage, message)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Message](store.KindMessage, raw)
}
