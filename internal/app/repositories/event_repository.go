package repositories

import (
	"context"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/store"
)

// EventRepository handles event records
type EventRepository struct {
	client *store.Client
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(client *store.Client) *EventRepository {
	return &EventRepository{client: client}
}

// GetByID returns the event, or nil when the store holds no such record.
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	raw, err := r.client.Filter(ctx, store.KindEvent, store.Predicate{"id": eventID}, "")
	if err != nil {
		return nil, err
	}
	events, err := decodeAll[models.Event](store.KindEvent, raw)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

// ListPublished returns published events, soonest first.
func (r *EventRepository) ListPublished(ctx context.Context) ([]models.Event, error) {
	raw, err := r.client.Filter(ctx, store.KindEvent, store.Predicate{"status": models.EventPublished}, "date_time")
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Event](store.KindEvent, raw)
}

// ListByOrganizer returns an organizer's events, newest first.
func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	raw, err := r.client.Filter(ctx, store.KindEvent, store.Predicate{"organizer_id": organizerID}, "-created_date")
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Event](store.KindEvent, raw)
}

// Create persists a new event and returns the stored record.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	raw, err := r.client.Create(ctx, store.KindEvent, event)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Event](store.KindEvent, raw)
}
