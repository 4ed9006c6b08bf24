package models

import "time"

// BoutType places a bout on the fight card
type BoutType string

const (
	BoutMainEvent BoutType = "main_event"
	BoutCoMain    BoutType = "co_main"
	BoutUndercard BoutType = "undercard"
)

// BoutStatus tracks a bout from proposal to result entry
type BoutStatus string

const (
	BoutProposed   BoutStatus = "proposed"
	BoutConfirmed  BoutStatus = "confirmed"
	BoutInProgress BoutStatus = "in_progress"
	BoutCompleted  BoutStatus = "completed"
)

// Bout is a single matchup on an event's card. WinnerID, when set, must equal
// RedFighterID or BlueFighterID; the store is trusted to keep that true.
type Bout struct {
	ID                 string     `json:"id"`
	EventID            string     `json:"event_id"`
	RedFighterID       string     `json:"red_fighter_id"`
	BlueFighterID      string     `json:"blue_fighter_id"`
	BoutType           BoutType   `json:"bout_type"`
	BoutOrder          int        `json:"bout_order"`
	Status             BoutStatus `json:"status"`
	Ruleset            Ruleset    `json:"ruleset,omitempty"`
	Rounds             int        `json:"rounds,omitempty"`
	RoundLengthMinutes int        `json:"round_length_minutes,omitempty"`
	RedAccepted        bool       `json:"red_accepted"`
	BlueAccepted       bool       `json:"blue_accepted"`
	WinnerID           string     `json:"winner_id,omitempty"`
	Result             string     `json:"result,omitempty"`
	Method             string     `json:"method,omitempty"`
	RoundFinished      int        `json:"round_finished,omitempty"`
	TimeFinished       string     `json:"time_finished,omitempty"`
	CreatedDate        time.Time  `json:"created_date"`
}
