package services

import (
	"context"
	gosync "sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/app/repositories"
	"github.com/tmercan/fightnight/internal/app/views"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
	"github.com/tmercan/fightnight/internal/session"
	"github.com/tmercan/fightnight/internal/sync"
)

// EventService defines the interface for event operations
type EventService interface {
	ListPage(ctx context.Context, sess session.Session) (*dto.EventListResponse, error)
	Details(ctx context.Context, sess session.Session, eventID string) (*dto.EventDetailsResponse, error)
	CreateEvent(ctx context.Context, sess session.Session, req *dto.CreateEventRequest) (*models.Event, error)
	AddBout(ctx context.Context, sess session.Session, eventID string, req *dto.CreateBoutRequest) (*models.Bout, error)
}

type eventServiceImpl struct {
	repos        *repositories.Repositories
	syncer       *sync.Syncer
	pollInterval time.Duration
	logger       zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(repos *repositories.Repositories, syncer *sync.Syncer, pollInterval time.Duration, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		repos:        repos,
		syncer:       syncer,
		pollInterval: pollInterval,
		logger:       logger.With().Str("service", "event").Logger(),
	}
}

type eventListData struct {
	Events []models.Event
	RSVPs  []models.RSVP
	Bouts  []models.Bout
}

// ListPage returns the events listing, served from the listing binding so
// repeated visits within the poll interval do not re-query the store.
func (s *eventServiceImpl) ListPage(ctx context.Context, sess session.Session) (*dto.EventListResponse, error) {
	s.syncer.Register(sync.Binding{
		Key:      KeyEvents,
		Interval: s.pollInterval,
		Fetch:    s.fetchEventList,
	})

	result, ok := s.syncer.Get(KeyEvents)
	if !ok {
		value, err := s.syncer.Refresh(ctx, KeyEvents)
		if err != nil {
			return nil, err
		}
		result = sync.Result{Value: value, FetchedAt: time.Now()}
	}

	data := result.Value.(*eventListData)
	resp := views.BuildEventList(sess, data.Events, data.RSVPs, data.Bouts)
	resp.RefreshedAt = result.FetchedAt
	return resp, nil
}

// Details returns the event page payload. The shared entity bundle is cached
// per event; session-dependent flags are derived per request on top of it.
func (s *eventServiceImpl) Details(ctx context.Context, sess session.Session, eventID string) (*dto.EventDetailsResponse, error) {
	key := KeyEvent(eventID)
	s.syncer.Register(sync.Binding{
		Key:      key,
		Interval: s.pollInterval,
		Fetch: func(ctx context.Context) (interface{}, error) {
			return s.fetchEventData(ctx, eventID)
		},
	})

	result, ok := s.syncer.Get(key)
	if !ok {
		value, err := s.syncer.Refresh(ctx, key)
		if err != nil {
			return nil, err
		}
		result = sync.Result{Value: value, FetchedAt: time.Now()}
	}

	data := result.Value.(*views.EventData)
	return views.BuildEventDetails(sess, *data), nil
}

// CreateEvent persists a new event from the organizer form. Role gating here
// mirrors the page gating; the store remains the authority.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, sess session.Session, req *dto.CreateEventRequest) (*models.Event, error) {
	if !sess.IsAuthenticated() {
		return nil, apperrors.NewAuthError("creating an event requires signing in")
	}
	if sess.User.RoleType != models.RoleOrganizer {
		return nil, apperrors.NewForbiddenError("only organizers can create events")
	}

	dateTime, err := parseDateTime("date_time", req.DateTime)
	if err != nil {
		return nil, err
	}
	maxBouts, err := parseIntField("max_bouts", req.MaxBouts)
	if err != nil {
		return nil, err
	}
	minAge, err := parseIntField("min_age", req.MinAge)
	if err != nil {
		return nil, err
	}
	rsvpLimit, err := parseIntField("rsvp_limit", req.RSVPLimit)
	if err != nil {
		return nil, err
	}
	ticketPrice, err := parseFloatField("ticket_price", req.TicketPrice)
	if err != nil {
		return nil, err
	}
	// A free event never carries a price, whatever the form field held.
	if !req.PaidEvent {
		ticketPrice = 0
	}

	visibility := models.Visibility(req.Visibility)
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	ruleset := models.Ruleset(req.RulesetDefault)
	if ruleset == "" {
		ruleset = models.RulesetMMA
	}
	event := &models.Event{
		OrganizerID:           sess.User.ID,
		Title:                 req.Title,
		Description:           req.Description,
		BannerImage:           req.BannerImage,
		DateTime:              dateTime,
		Location:              req.Location,
		Visibility:            visibility,
		Status:                models.EventPublished,
		RulesetDefault:        ruleset,
		EquipmentRequirements: req.EquipmentRequirements,
		MaxBouts:              maxBouts,
		MinAge:                minAge,
		PaidEvent:             req.PaidEvent,
		TicketPrice:           ticketPrice,
		RSVPLimit:             rsvpLimit,
	}

	created, err := s.repos.EventRepository.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("eventID", created.ID).Str("organizerID", created.OrganizerID).Msg("Event created")
	s.syncer.Invalidate(KeyEvents)
	return created, nil
}

// AddBout adds a matchup to the event's card.
func (s *eventServiceImpl) AddBout(ctx context.Context, sess session.Session, eventID string, req *dto.CreateBoutRequest) (*models.Bout, error) {
	if !sess.IsAuthenticated() {
		return nil, apperrors.NewAuthError("adding a bout requires signing in")
	}

	event, err := s.repos.EventRepository.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NewNotFoundError("event not found")
	}
	if event.OrganizerID != sess.User.ID {
		return nil, apperrors.NewForbiddenError("only the event organizer can add bouts")
	}

	boutOrder, err := parseIntField("bout_order", req.BoutOrder)
	if err != nil {
		return nil, err
	}
	rounds, err := parseIntField("rounds", req.Rounds)
	if err != nil {
		return nil, err
	}
	roundLength, err := parseIntField("round_length_minutes", req.RoundLengthMinutes)
	if err != nil {
		return nil, err
	}

	boutType := models.BoutType(req.BoutType)
	if boutType == "" {
		boutType = models.BoutUndercard
	}
	ruleset := models.Ruleset(req.Ruleset)
	if ruleset == "" {
		ruleset = event.RulesetDefault
	}

	bout := &models.Bout{
		EventID:            eventID,
		RedFighterID:       req.RedFighterID,
		BlueFighterID:      req.BlueFighterID,
		BoutType:           boutType,
		BoutOrder:          boutOrder,
		Status:             models.BoutProposed,
		Ruleset:            ruleset,
		Rounds:             rounds,
		RoundLengthMinutes: roundLength,
	}

	created, err := s.repos.BoutRepository.Create(ctx, bout)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("boutID", created.ID).Str("eventID", eventID).Msg("Bout added")
	s.syncer.Invalidate(KeyEvent(eventID))
	return created, nil
}

func (s *eventServiceImpl) fetchEventList(ctx context.Context) (interface{}, error) {
	data := &eventListData{}
	var wg gosync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Events, errs[0] = s.repos.EventRepository.ListPublished(ctx)
	}()
	go func() {
		defer wg.Done()
		data.RSVPs, errs[1] = s.repos.RSVPRepository.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Bouts, errs[2] = s.repos.BoutRepository.ListAll(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// fetchEventData loads the event page bundle. The sequences fetch
// independently and concurrently; none waits on another.
func (s *eventServiceImpl) fetchEventData(ctx context.Context, eventID string) (interface{}, error) {
	data := &views.EventData{}
	var event *models.Event
	var fighters []models.Fighter
	var wg gosync.WaitGroup
	errs := make([]error, 6)

	wg.Add(6)
	go func() {
		defer wg.Done()
		event, errs[0] = s.repos.EventRepository.GetByID(ctx, eventID)
	}()
	go func() {
		defer wg.Done()
		data.Bouts, errs[1] = s.repos.BoutRepository.ListByEvent(ctx, eventID)
	}()
	go func() {
		defer wg.Done()
		data.RSVPs, errs[2] = s.repos.RSVPRepository.ListByEvent(ctx, eventID)
	}()
	go func() {
		defer wg.Done()
		data.Waivers, errs[3] = s.repos.WaiverRepository.ListByEvent(ctx, eventID)
	}()
	go func() {
		defer wg.Done()
		fighters, errs[4] = s.repos.FighterRepository.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Users, errs[5] = s.repos.UserRepository.Directory(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if event == nil {
		return nil, apperrors.NewNotFoundError("event not found")
	}

	data.Event = *event
	data.Fighters = make(map[string]models.Fighter, len(fighters))
	for _, fighter := range fighters {
		data.Fighters[fighter.ID] = fighter
	}
	return data, nil
}
