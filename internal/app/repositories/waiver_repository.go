package repositories

import (
	"context"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/store"
)

// WaiverRepository handles signed waiver records
type WaiverRepository struct {
	client *store.Client
}

// NewWaiverRepository creates a new WaiverRepository
func NewWaiverRepository(client *store.Client) *WaiverRepository {
	return &WaiverRepository{client: client}
}

// ListByEvent returns every waiver signed for the event.
func (r *WaiverRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Waiver, error) {
	raw, err := r.client.Filter(ctx, store.KindWaiver, store.Predicate{"event_id": eventID}, "")
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Waiver](store.KindWaiver, raw)
}

// Create persists a new waiver and returns the stored record.
func (r *WaiverRepository) Create(ctx context.Context, waiver *models.Waiver) (*models.Waiver, error) {
	raw, err := r.client.Create(ctx, store.KindWaiver, waiver)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Waiver](store.KindWaiver, raw)
}
