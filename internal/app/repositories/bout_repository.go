package repositories

import (
	"context"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/store"
)

// BoutRepository handles bout records
type BoutRepository struct {
	client *store.Client
}

// NewBoutRepository creates a new BoutRepository
func NewBoutRepository(client *store.Client) *BoutRepository {
	return &BoutRepository{client: client}
}

// ListAll returns every bout in the league, used for listing-page counts.
func (r *BoutRepository) ListAll(ctx context.Context) ([]models.Bout, error) {
	raw, err := r.client.List(ctx, store.KindBout)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Bout](store.KindBout, raw)
}

// ListByEvent returns the event's fight card, highest bout_order first.
func (r *BoutRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Bout, error) {
	raw, err := r.client.Filter(ctx, store.KindBout, store.Predicate{"event_id": eventID}, "-bout_order")
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Bout](store.KindBout, raw)
}

// Create persists a new bout and returns the stored record.
func (r *BoutRepository) Create(ctx context.Context, bout *models.Bout) (*models.Bout, error) {
	raw, err := r.client.Create(ctx, store.KindBout, bout)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Bout](store.KindBout, raw)
}
