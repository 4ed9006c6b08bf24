package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/pkg/apperrors"
)

func eventForm() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:       "Fight Night 12",
		DateTime:    "2026-09-12T19:00",
		Location:    "Kadikoy Boxing Hall",
		MaxBouts:    "8",
		MinAge:      "18",
		RSVPLimit:   "150",
		PaidEvent:   true,
		TicketPrice: "25.50",
	}
}

func TestCreateEventCoercesFormNumbers(t *testing.T) {
	svc, fs := newTestServices(t)

	event, err := svc.EventService.CreateEvent(context.Background(), organizerSession("org1"), eventForm())
	require.NoError(t, err)
	assert.Equal(t, "org1", event.OrganizerID)
	assert.Equal(t, 8, event.MaxBouts)
	assert.Equal(t, 18, event.MinAge)
	assert.Equal(t, 150, event.RSVPLimit)
	assert.InDelta(t, 25.50, event.TicketPrice, 0.001)
	assert.Equal(t, models.EventPublished, event.Status)
	assert.Equal(t, models.VisibilityPublic, event.Visibility)
	assert.Equal(t, 1, fs.createCount("Event"))
}

func TestCreateEventBlankNumbersDefaultToZero(t *testing.T) {
	svc, _ := newTestServices(t)

	form := eventForm()
	form.MaxBouts = ""
	form.TicketPrice = ""
	event, err := svc.EventService.CreateEvent(context.Background(), organizerSession("org1"), form)
	require.NoError(t, err)
	assert.Zero(t, event.MaxBouts)
	assert.Zero(t, event.TicketPrice)
}

func TestCreateEventFreeEventDropsTicketPrice(t *testing.T) {
	svc, _ := newTestServices(t)

	form := eventForm()
	form.PaidEvent = false
	event, err := svc.EventService.CreateEvent(context.Background(), organizerSession("org1"), form)
	require.NoError(t, err)
	assert.Zero(t, event.TicketPrice, "a free event carries no price even when the field was filled")
}

func TestCreateEventRejectsUnparsableNumber(t *testing.T) {
	svc, fs := newTestServices(t)

	form := eventForm()
	form.MaxBouts = "eight"
	_, err := svc.EventService.CreateEvent(context.Background(), organizerSession("org1"), form)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, 0, fs.createCount("Event"))
}

func TestCreateEventRejectsUnparsableDate(t *testing.T) {
	svc, fs := newTestServices(t)

	form := eventForm()
	form.DateTime = "next friday"
	_, err := svc.EventService.CreateEvent(context.Background(), organizerSession("org1"), form)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, 0, fs.createCount("Event"))
}

func TestCreateEventRequiresOrganizerRole(t *testing.T) {
	svc, fs := newTestServices(t)

	_, err := svc.EventService.CreateEvent(context.Background(), fighterSession("u1"), eventForm())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
	assert.Equal(t, 0, fs.createCount("Event"))
}

func TestAddBoutRequiresTheEventOrganizer(t *testing.T) {
	svc, fs := newTestServices(t)
	fs.seed("Event", map[string]interface{}{"id": "e1", "organizer_id": "org1", "status": "published"})

	req := &dto.CreateBoutRequest{RedFighterID: "f1", BlueFighterID: "f2"}
	_, err := svc.EventService.AddBout(context.Background(), organizerSession("org2"), "e1", req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
	assert.Equal(t, 0, fs.createCount("Bout"))
}

func TestAddBoutUnknownEvent(t *testing.T) {
	svc, _ := newTestServices(t)

	req := &dto.CreateBoutRequest{RedFighterID: "f1", BlueFighterID: "f2"}
	_, err := svc.EventService.AddBout(context.Background(), organizerSession("org1"), "missing", req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestAddBoutDefaultsAndCoercions(t *testing.T) {
	svc, fs := newTestServices(t)
	fs.seed("Event", map[string]interface{}{"id": "e1", "organizer_id": "org1", "ruleset_default": "boxing"})

	req := &dto.CreateBoutRequest{
		RedFighterID:  "f1",
		BlueFighterID: "f2",
		BoutOrder:     "3",
		Rounds:        "5",
	}
	bout, err := svc.EventService.AddBout(context.Background(), organizerSession("org1"), "e1", req)
	require.NoError(t, err)
	assert.Equal(t, models.BoutUndercard, bout.BoutType, "bout type defaults to undercard")
	assert.Equal(t, models.RulesetBoxing, bout.Ruleset, "ruleset falls back to the event default")
	assert.Equal(t, 3, bout.BoutOrder)
	assert.Equal(t, 5, bout.Rounds)
	assert.Equal(t, models.BoutProposed, bout.Status)
	assert.Equal(t, 1, fs.createCount("Bout"))
}

func TestDetailsAggregatesEventPage(t *testing.T) {
	svc, fs := newTestServices(t)
	fs.seed("Event", map[string]interface{}{"id": "e1", "organizer_id": "org1", "title": "Fight Night 12"})
	fs.seed("Bout", map[string]interface{}{"id": "b1", "event_id": "e1", "bout_type": "main_event", "bout_order": 10, "red_fighter_id": "f1", "blue_fighter_id": "f2"})
	fs.seed("Bout", map[string]interface{}{"id": "b2", "event_id": "e1", "bout_type": "undercard", "bout_order": 1})
	fs.seed("RSVP", map[string]interface{}{"id": "r1", "event_id": "e1", "user_id": "u1", "status": "going", "role_at_event": "fighter"})
	fs.seed("Fighter", map[string]interface{}{"id": "f1", "user_id": "u1", "weight_class": "welterweight", "wins": 3, "losses": 1})
	fs.seed("User", map[string]interface{}{"id": "u1", "full_name": "Ali Kaya", "email": "ali@example.com"})

	resp, err := svc.EventService.Details(context.Background(), fighterSession("u1"), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Fight Night 12", resp.Event.Title)
	require.NotNil(t, resp.MainEvent)
	assert.Equal(t, "b1", resp.MainEvent.Bout.ID)
	require.NotNil(t, resp.MainEvent.Red)
	assert.Equal(t, "Ali Kaya", resp.MainEvent.Red.DisplayName)
	assert.Len(t, resp.Undercard, 1)
	require.NotNil(t, resp.UserRSVP)
	assert.True(t, resp.CanSignWaiver)
	assert.False(t, resp.CanRSVP)
	require.Len(t, resp.Attending, 1)
}

func TestDetailsUnknownEvent(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.EventService.Details(context.Background(), anonymousSession(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestListPageCountsAttendance(t *testing.T) {
	svc, fs := newTestServices(t)
	fs.seed("Event", map[string]interface{}{"id": "e1", "status": "published", "title": "Fight Night 12", "date_time": "2026-09-12T19:00:00Z"})
	fs.seed("Event", map[string]interface{}{"id": "e2", "status": "draft", "title": "Unannounced"})
	fs.seed("RSVP", map[string]interface{}{"id": "r1", "event_id": "e1", "user_id": "u1", "status": "going"})
	fs.seed("Bout", map[string]interface{}{"id": "b1", "event_id": "e1"})

	resp, err := svc.EventService.ListPage(context.Background(), anonymousSession())
	require.NoError(t, err)
	require.Len(t, resp.Events, 1, "draft events are not listed")
	assert.Equal(t, "e1", resp.Events[0].Event.ID)
	assert.Equal(t, 1, resp.Events[0].GoingCount)
	assert.Equal(t, 1, resp.Events[0].BoutCount)
}
