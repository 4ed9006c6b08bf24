package models

import "time"

// Waiver records that a user signed the liability waiver for an event.
// Its presence means the user is never re-prompted.
type Waiver struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	SignedAt    time.Time `json:"signed_at"`
	CreatedDate time.Time `json:"created_date"`
}
