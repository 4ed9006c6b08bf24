package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tmercan/fightnight/internal/app/repositories"
	"github.com/tmercan/fightnight/internal/config"
	"github.com/tmercan/fightnight/internal/pkg/helpers"
	"github.com/tmercan/fightnight/internal/sync"
)

// Binding keys for the synchronizer. Entity-scoped keys embed the entity id
// so each event page and chat thread polls independently.
const KeyEvents = "events"

// KeyEvent is the binding key for one event's page data
func KeyEvent(eventID string) string { return "event:" + eventID }

// KeyChat is the binding key for one event's chat thread
func KeyChat(eventID string) string { return "chat:" + eventID }

// Services holds all the service instances
type Services struct {
	EventService   EventService
	FighterService FighterService
	RSVPService    RSVPService
	WaiverService  WaiverService
	ChatService    ChatService
}

// NewServices initializes all services over the shared repositories and
// synchronizer.
func NewServices(repos *repositories.Repositories, syncer *sync.Syncer, cfg *config.Config, logger zerolog.Logger) *Services {
	pageInterval := helpers.ParseDuration(cfg.Sync.PagePollInterval, 15*time.Second)
	chatInterval := helpers.ParseDuration(cfg.Sync.ChatPollInterval, 3*time.Second)

	return &Services{
		EventService:   NewEventService(repos, syncer, pageInterval, logger),
		FighterService: NewFighterService(repos, logger),
		RSVPService:    NewRSVPService(repos, syncer, logger),
		WaiverService:  NewWaiverService(repos, syncer, logger),
		ChatService:    NewChatService(repos, syncer, chatInterval, logger),
	}
}
