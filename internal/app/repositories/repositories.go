package repositories

import (
	"encoding/json"

	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/store"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	FighterRepository *FighterRepository
	EventRepository   *EventRepository
	BoutRepository    *BoutRepository
	RSVPRepository    *RSVPRepository
	WaiverRepository  *WaiverRepository
	MessageRepository *MessageRepository
}

// NewRepositories initializes all repositories over one store client
func NewRepositories(client *store.Client) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(client),
		FighterRepository: NewFighterRepository(client),
		EventRepository:   NewEventRepository(client),
		BoutRepository:    NewBoutRepository(client),
		RSVPRepository:    NewRSVPRepository(client),
		WaiverRepository:  NewWaiverRepository(client),
		MessageRepository: NewMessageRepository(client),
	}
}

// decodeAll unmarshals raw store records into typed models, failing on the
// first undecodable record.
func decodeAll[T any](kind store.Kind, raw []json.RawMessage) ([]T, error) {
	records := make([]T, 0, len(raw))
	for _, r := range raw {
		var record T
		if err := json.Unmarshal(r, &record); err != nil {
			return nil, apperrors.NewRemoteError(string(kind)+" record does not match the expected shape", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// decodeOne unmarshals a single created record returned by the store.
func decodeOne[T any](kind store.Kind, raw json.RawMessage) (*T, error) {
	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, apperrors.NewRemoteError(string(kind)+" record does not match the expected shape", err)
	}
	return &record, nil
}
