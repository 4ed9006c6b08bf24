package dto

import (
	"time"

	"github.com/tmercan/fightnight/internal/app/models"
)

// FighterCard is the compact fighter rendering used on bout cards
type FighterCard struct {
	FighterID     string   `json:"fighter_id"`
	UserID        string   `json:"user_id"`
	DisplayName   string   `json:"display_name"`
	Initial       string   `json:"initial"`
	WeightClass   string   `json:"weight_class"`
	Record        string   `json:"record"`
	Stance        string   `json:"stance,omitempty"`
	GymTeam       string   `json:"gym_team,omitempty"`
	CurrentWeight *float64 `json:"current_weight,omitempty"`
}

// BoutCard pairs a bout with its resolved corner fighters
type BoutCard struct {
	Bout models.Bout  `json:"bout"`
	Red  *FighterCard `json:"red,omitempty"`
	Blue *FighterCard `json:"blue,omitempty"`
}

// AttendeeCard is one confirmed attendee on the event page
type AttendeeCard struct {
	UserID      string            `json:"user_id"`
	DisplayName string            `json:"display_name"`
	Initial     string            `json:"initial"`
	RoleAtEvent models.RoleType   `json:"role_at_event"`
	Status      models.RSVPStatus `json:"status"`
}

// EventSummary is one row on the events listing page
type EventSummary struct {
	Event      models.Event `json:"event"`
	GoingCount int          `json:"going_count"`
	BoutCount  int          `json:"bout_count"`
}

// EventListResponse is the events listing page payload
type EventListResponse struct {
	Events       []EventSummary `json:"events"`
	SessionState string         `json:"session_state"`
	RefreshedAt  time.Time      `json:"refreshed_at"`
}

// EventDetailsResponse is the event page payload. The Can* flags are derived
// purely from the loaded records plus the session; rendering never needs to
// re-query to decide what to offer.
type EventDetailsResponse struct {
	Event     models.Event   `json:"event"`
	MainEvent *BoutCard      `json:"main_event,omitempty"`
	CoMain    *BoutCard      `json:"co_main,omitempty"`
	Undercard []BoutCard     `json:"undercard"`
	Attending []AttendeeCard `json:"attending"`

	UserRSVP    *models.RSVP `json:"user_rsvp,omitempty"`
	IsOrganizer bool         `json:"is_organizer"`
	HasWaiver   bool         `json:"has_waiver"`

	CanRSVP       bool `json:"can_rsvp"`
	CanSignWaiver bool `json:"can_sign_waiver"`
	CanAddBout    bool `json:"can_add_bout"`

	SessionState string `json:"session_state"`
}
