package repositories

import (
	"context"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/store"
)

// FighterRepository handles fighter profile records
type FighterRepository struct {
	client *store.Client
}

// NewFighterRepository creates a new FighterRepository
func NewFighterRepository(client *store.Client) *FighterRepository {
	return &FighterRepository{client: client}
}

// ListAll returns every fighter profile, used to resolve bout corners.
func (r *FighterRepository) ListAll(ctx context.Context) ([]models.Fighter, error) {
	raw, err := r.client.List(ctx, store.KindFighter)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Fighter](store.KindFighter, raw)
}

// FindByUserID returns the user's fighter profile, or nil when none exists.
// The store tolerates multiple profiles per user; the first match wins.
func (r *FighterRepository) FindByUserID(ctx context.Context, userID string) (*models.Fighter, error) {
	raw, err := r.client.Filter(ctx, store.KindFighter, store.Predicate{"user_id": userID}, "")
	if err != nil {
		return nil, err
	}
	fighters, err := decodeAll[models.Fighter](store.KindFighter, raw)
	if err != nil {
		return nil, err
	}
	if len(fighters) == 0 {
		return nil, nil
	}
	return &fighters[0], nil
}

// Create persists a new fighter profile and returns the stored record.
func (r *FighterRepository) Create(ctx context.Context, fighter *models.Fighter) (*models.Fighter, error) {
	raw, err := r.client.Create(ctx, store.KindFighter, fighter)
	if err != nil {
		return nil, err
	}
	return decodeOne[models.Fighter](store.KindFighter, raw)
}
