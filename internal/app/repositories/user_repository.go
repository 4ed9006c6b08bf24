package repositories

import (
	"context"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/store"
)

// UserRepository reads the user directory from the entity store
type UserRepository struct {
	client *store.Client
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(client *store.Client) *UserRepository {
	return &UserRepository{client: client}
}

// List returns every user record. The chat panel uses this directory to
// resolve sender display names; there is no per-id lookup on the store.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	raw, err := r.client.List(ctx, store.KindUser)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.User](store.KindUser, raw)
}

// Directory returns users keyed by id for O(1) sender resolution.
func (r *UserRepository) Directory(ctx context.Context) (map[string]models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	directory := make(map[string]models.User, len(users))
	for _, user := range users {
		directory[user.ID] = user
	}
	return directory, nil
}
