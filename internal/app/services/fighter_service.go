package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/app/repositories"
	"github.com/tmercan/fightnight/internal/app/views"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/session"
)

// FighterService defines the interface for fighter profile operations
type FighterService interface {
	Profile(ctx context.Context, sess session.Session) (*dto.ProfileResponse, error)
	CreateProfile(ctx context.Context, sess session.Session, req *dto.CreateFighterRequest) (*models.Fighter, error)
}

type fighterServiceImpl struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewFighterService creates a new FighterService
func NewFighterService(repos *repositories.Repositories, logger zerolog.Logger) FighterService {
	return &fighterServiceImpl{
		repos:  repos,
		logger: logger.With().Str("service", "fighter").Logger(),
	}
}

// Profile returns the signed-in user's profile page payload.
func (s *fighterServiceImpl) Profile(ctx context.Context, sess session.Session) (*dto.ProfileResponse, error) {
	if !sess.IsAuthenticated() {
		return nil, apperrors.NewAuthError("the profile page requires signing in")
	}

	fighter, err := s.repos.FighterRepository.FindByUserID(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}

	var organized []models.Event
	if sess.User.RoleType == models.RoleOrganizer {
		organized, err = s.repos.EventRepository.ListByOrganizer(ctx, sess.User.ID)
		if err != nil {
			return nil, err
		}
	}

	return views.BuildProfile(sess, fighter, organized), nil
}

// CreateProfile persists the user's fighter profile. An existing profile is
// returned as-is without a second create; the one-profile-per-user rule is
// advisory and checked here, not enforced by the store.
func (s *fighterServiceImpl) CreateProfile(ctx context.Context, sess session.Session, req *dto.CreateFighterRequest) (*models.Fighter, error) {
	if !sess.IsAuthenticated() {
		return nil, apperrors.NewAuthError("creating a fighter profile requires signing in")
	}

	existing, err := s.repos.FighterRepository.FindByUserID(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Debug().Str("userID", sess.User.ID).Msg("Fighter profile already exists, skipping create")
		return existing, nil
	}

	currentWeight, err := parseOptionalWeight("current_weight", req.CurrentWeight)
	if err != nil {
		return nil, err
	}

	stance := models.Stance(req.Stance)
	if stance == "" {
		stance = models.StanceOrthodox
	}
	experience := models.ExperienceLevel(req.ExperienceLevel)
	if experience == "" {
		experience = models.ExperienceBeginner
	}

	rulesets := make([]models.Ruleset, 0, len(req.PreferredRulesets))
	for _, r := range req.PreferredRulesets {
		rulesets = append(rulesets, models.Ruleset(r))
	}

	fighter := &models.Fighter{
		UserID:                sess.User.ID,
		WeightClass:           req.WeightClass,
		CurrentWeight:         currentWeight,
		Stance:                stance,
		ExperienceLevel:       experience,
		GymTeam:               req.GymTeam,
		PreferredRulesets:     rulesets,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		MedicalNotes:          req.MedicalNotes,
		Status:                models.FighterActive,
	}

	created, err := s.repos.FighterRepository.Create(ctx, fighter)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("fighterID", created.ID).Str("userID", created.UserID).Msg("Fighter profile created")
	return created, nil
}
