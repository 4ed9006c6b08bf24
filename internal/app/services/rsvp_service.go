package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/app/repositories"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/session"
	"github.com/tmercan/fightnight/internal/sync"
)

// RSVPService defines the interface for attendance operations
type RSVPService interface {
	RSVP(ctx context.Context, sess session.Session, eventID string, req *dto.RSVPRequest) (*models.RSVP, error)
}

type rsvpServiceImpl struct {
	repos  *repositories.Repositories
	syncer *sync.Syncer
	logger zerolog.Logger
}

// NewRSVPService creates a new RSVPService
func NewRSVPService(repos *repositories.Repositories, syncer *sync.Syncer, logger zerolog.Logger) RSVPService {
	return &rsvpServiceImpl{
		repos:  repos,
		syncer: syncer,
		logger: logger.With().Str("service", "rsvp").Logger(),
	}
}

// RSVP records the user's intention to attend. An existing RSVP for the same
// (event, user) pair is returned without issuing a create; the check is
// optimistic, so a race between two tabs can still produce a duplicate.
func (s *rsvpServiceImpl) RSVP(ctx context.Context, sess session.Session, eventID string, req *dto.RSVPRequest) (*models.RSVP, error) {
	if !sess.IsAuthenticated() {
		return nil, apperrors.NewAuthError("responding to an event requires signing in")
	}

	status := models.RSVPStatus(req.Status)
	switch status {
	case models.RSVPGoing, models.RSVPMaybe, models.RSVPDeclined:
	default:
		return nil, apperrors.NewValidationError("status must be going, maybe or declined")
	}

	existing, err := s.repos.RSVPRepository.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].UserID == sess.User.ID {
			s.logger.Debug().Str("eventID", eventID).Str("userID", sess.User.ID).Msg("RSVP already exists, skipping create")
			return &existing[i], nil
		}
	}

	role := models.RoleType(req.RoleAtEvent)
	if role == "" {
		role = sess.User.RoleType
	}

	created, err := s.repos.RSVPRepository.Create(ctx, &models.RSVP{
		EventID:     eventID,
		UserID:      sess.User.ID,
		RoleAtEvent: role,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("rsvpID", created.ID).Str("eventID", eventID).Msg("RSVP recorded")
	s.syncer.Invalidate(KeyEvent(eventID))
	s.syncer.Invalidate(KeyEvents)
	return created, nil
}
