package models

import "time"

// EventStatus is the organizer-controlled lifecycle state of an event
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Event is a fight night created by an organizer. Bouts, RSVPs and waivers
// reference it by id.
type Event struct {
	ID                    string      `json:"id"`
	OrganizerID           string      `json:"organizer_id"`
	Title                 string      `json:"title"`
	Description           string      `json:"description,omitempty"`
	BannerImage           string      `json:"banner_image,omitempty"`
	DateTime              time.Time   `json:"date_time"`
	Location              string      `json:"location"`
	Visibility            Visibility  `json:"visibility"`
	Status                EventStatus `json:"status"`
	RulesetDefault        Ruleset     `json:"ruleset_default"`
	EquipmentRequirements []string    `json:"equipment_requirements,omitempty"`
	MaxBouts              int         `json:"max_bouts"`
	MinAge                int         `json:"min_age"`
	PaidEvent             bool        `json:"paid_event"`
	TicketPrice           float64     `json:"ticket_price"`
	RSVPLimit             int         `json:"rsvp_limit"`
	CreatedDate           time.Time   `json:"created_date"`
}
