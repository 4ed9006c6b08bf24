package repositories

import (
	"context"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/store"
)

// RSVPRepository handles attendance records
type RSVPRepository struct {
	client *store.Client
}

// NewRSVPRepository creates a new RSVPRepository
func NewRSVPRepository(client *store.Client) *RSVPRepository {
	return &RSVPRepository{client: client}
}

// ListAll returns every RSVP in the league, used for listing-page counts.
func (r *RSVPRepository) ListAll(ctx context.Context) ([]models.RSVP, error) {
	raw, err := r.client.List(ctx, store.KindRSVP)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.RSVP](store.KindRSVP, raw)
}

// ListByEvent returns every RSVP for the event.
func (r *RSVPRepository) ListByEvent(ctx context.Context, eventID string) ([]models.RSVP, error) {
	raw, err := r.client.Filter(ctx, store.KindRSVP, store.Predicate{"event_id": eventID}, "")
	if err != nil {
		return nil, err
	}
	return decodeAll[models.RSVP](store.KindRSVP, raw)
}

// Create persists a new RSVP and returns the stored record.
func (r *RSVPRepository) Create(ctx context.Context, rsvp *models.RSVP) (*models.RSVP, error) {
	raw, err := r.client.Create(ctx, store.KindRSVP, rsvp)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.RSVP](store.KindRSVP, raw)
}
