package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/repositories"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/session"
	"github.com/tmercan/fightnight/internal/sync"
)

// WaiverService defines the interface for liability waiver operations
type WaiverService interface {
	Sign(ctx context.Context, sess session.Session, eventID string) (*models.Waiver, error)
}

type waiverServiceImpl struct {
	repos  *repositories.Repositories
	syncer *sync.Syncer
	logger zerolog.Logger
}

// NewWaiverService creates a new WaiverService
func NewWaiverService(repos *repositories.Repositories, syncer *sync.Syncer, logger zerolog.Logger) WaiverService {
	return &waiverServiceImpl{
		repos:  repos,
		syncer: syncer,
		logger: logger.With().Str("service", "waiver").Logger(),
	}
}

// Sign records the waiver for (event, user). Signing requires an existing
// RSVP; a waiver already on record is returned as-is so the user is never
// re-prompted.
func (s *waiverServiceImpl) Sign(ctx context.Context, sess session.Session, eventID string) (*models.Waiver, error) {
	if !sess.IsAuthenticated() {
		return nil, apperrors.NewAuthError("signing a waiver requires signing in")
	}

	rsvps, err := s.repos.RSVPRepository.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	hasRSVP := false
	for _, rsvp := range rsvps {
		if rsvp.UserID == sess.User.ID {
			hasRSVP = true
			break
		}
	}
	if !hasRSVP {
		return nil, apperrors.NewForbiddenError("respond to the event before signing its waiver")
	}

	waivers, err := s.repos.WaiverRepository.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for i := range waivers {
		if waivers[i].UserID == sess.User.ID {
			s.logger.Debug().Str("eventID", eventID).Str("userID", sess.User.ID).Msg("Waiver already signed, skipping create")
			return &waivers[i], nil
		}
	}

	created, err := s.repos.WaiverRepository.Create(ctx, &models.Waiver{
		EventID:  eventID,
		UserID:   sess.User.ID,
		SignedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("waiverID", created.ID).Str("eventID", eventID).Msg("Waiver signed")
	s.syncer.Invalidate(KeyEvent(eventID))
	return created, nil
}
