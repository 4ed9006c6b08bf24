// Package views derives page payloads from fetched entities plus the current
// session. Builders are pure: they never touch the network, so every flag a
// page renders can be recomputed from the same inputs in tests.
package views

import (
	"fmt"

	"github.com/tmercan/fightnight/internal/app/models"
	"github.com/tmercan/fightnight/internal/app/models/dto"
	"github.com/tmercan/fightnight/internal/session"
)

// EventData is the bundle of independently fetched sequences the event page
// composes. Fighters are keyed by fighter id, Users by user id.
type EventData struct {
	Event    models.Event
	Bouts    []models.Bout
	RSVPs    []models.RSVP
	Waivers  []models.Waiver
	Fighters map[string]models.Fighter
	Users    map[string]models.User
}

// BuildEventDetails composes the event page payload.
//
// Bout partition takes the first main_event and the first co_main it sees and
// tolerates duplicates without signaling; the undercard lists only bouts
// typed undercard. The waiver flag is derived here from the fetched waiver
// records, never tracked as separate state.
func BuildEventDetails(sess session.Session, data EventData) *dto.EventDetailsResponse {
	resp := &dto.EventDetailsResponse{
		Event:        data.Event,
		Undercard:    []dto.BoutCard{},
		Attending:    []dto.AttendeeCard{},
		SessionState: sess.State.String(),
	}

	for _, bout := range data.Bouts {
		card := buildBoutCard(bout, data)
		switch {
		case bout.BoutType == models.BoutMainEvent && resp.MainEvent == nil:
			resp.MainEvent = &card
		case bout.BoutType == models.BoutCoMain && resp.CoMain == nil:
			resp.CoMain = &card
		case bout.BoutType == models.BoutUndercard:
			resp.Undercard = append(resp.Undercard, card)
		}
	}

	for _, rsvp := range data.RSVPs {
		if rsvp.Status != models.RSVPGoing {
			continue
		}
		card := dto.AttendeeCard{
			UserID:      rsvp.UserID,
			DisplayName: "Attendee",
			Initial:     "A",
			RoleAtEvent: rsvp.RoleAtEvent,
			Status:      rsvp.Status,
		}
		if user, ok := data.Users[rsvp.UserID]; ok {
			card.DisplayName = user.DisplayName()
			card.Initial = user.Initial()
		}
		resp.Attending = append(resp.Attending, card)
	}

	if !sess.IsAuthenticated() {
		return resp
	}

	userID := sess.User.ID
	resp.IsOrganizer = data.Event.OrganizerID == userID
	for i := range data.RSVPs {
		if data.RSVPs[i].UserID == userID {
			resp.UserRSVP = &data.RSVPs[i]
			break
		}
	}
	for _, waiver := range data.Waivers {
		if waiver.UserID == userID {
			resp.HasWaiver = true
			break
		}
	}

	resp.CanRSVP = resp.UserRSVP == nil
	resp.CanSignWaiver = resp.UserRSVP != nil && !resp.HasWaiver
	resp.CanAddBout = resp.IsOrganizer
	return resp
}

// BuildEventList composes the events listing page payload.
func BuildEventList(sess session.Session, events []models.Event, rsvps []models.RSVP, bouts []models.Bout) *dto.EventListResponse {
	going := make(map[string]int)
	for _, rsvp := range rsvps {
		if rsvp.Status == models.RSVPGoing {
			going[rsvp.EventID]++
		}
	}
	boutCounts := make(map[string]int)
	for _, bout := range bouts {
		boutCounts[bout.EventID]++
	}

	summaries := make([]dto.EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, dto.EventSummary{
			Event:      event,
			GoingCount: going[event.ID],
			BoutCount:  boutCounts[event.ID],
		})
	}
	return &dto.EventListResponse{
		Events:       summaries,
		SessionState: sess.State.String(),
	}
}

// BuildProfile composes the profile page payload.
func BuildProfile(sess session.Session, fighter *models.Fighter, organized []models.Event) *dto.ProfileResponse {
	if !sess.IsAuthenticated() {
		return nil
	}
	if organized == nil {
		organized = []models.Event{}
	}
	return &dto.ProfileResponse{
		User:            *sess.User,
		Fighter:         fighter,
		OrganizedEvents: organized,
		SessionState:    sess.State.String(),
	}
}

func buildBoutCard(bout models.Bout, data EventData) dto.BoutCard {
	return dto.BoutCard{
		Bout: bout,
		Red:  buildFighterCard(bout.RedFighterID, data),
		Blue: buildFighterCard(bout.BlueFighterID, data),
	}
}

func buildFighterCard(fighterID string, data EventData) *dto.FighterCard {
	fighter, ok := data.Fighters[fighterID]
	if !ok {
		return nil
	}
	card := &dto.FighterCard{
		FighterID:     fighter.ID,
		UserID:        fighter.UserID,
		DisplayName:   "Fighter",
		Initial:       "F",
		WeightClass:   fighter.WeightClass,
		Record:        fmt.Sprintf("%d-%d", fighter.Wins, fighter.Losses),
		Stance:        string(fighter.Stance),
		GymTeam:       fighter.GymTeam,
		CurrentWeight: fighter.CurrentWeight,
	}
	if user, ok := data.Users[fighter.UserID]; ok {
		card.DisplayName = user.DisplayName()
		card.Initial = user.Initial()
	}
	return card
}
