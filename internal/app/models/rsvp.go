package models

import "time"

// RSVPStatus is the attendee's stated intention
type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "going"
	RSVPMaybe    RSVPStatus = "maybe"
	RSVPDeclined RSVPStatus = "declined"
)

// RSVP records a user's intention to attend an event. At most one per
// (event, user) pair is expected; the client checks before creating but the
// store does not enforce it.
type RSVP struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	UserID      string     `json:"user_id"`
	RoleAtEvent RoleType   `json:"role_at_event"`
	Status      RSVPStatus `json:"status"`
	CreatedDate time.Time  `json:"created_date"`
}
