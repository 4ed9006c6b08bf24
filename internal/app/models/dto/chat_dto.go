package dto

import "time"

// ChatPanelState names what the chat panel should render
type ChatPanelState string

const (
	// ChatStateLoggedOut renders the login prompt instead of the composer.
	ChatStateLoggedOut ChatPanelState = "logged_out"
	// ChatStateResolving means the session is not yet known; the composer is
	// shown disabled rather than flashing the login prompt.
	ChatStateResolving ChatPanelState = "resolving"
	// ChatStateIdle is the normal composing-enabled state.
	ChatStateIdle ChatPanelState = "idle"
	// ChatStateComposing and ChatStateSending are driven by the browser while
	// the user types and submits. The server only ever emits the states above;
	// these complete the vocabulary the panel moves through.
	ChatStateComposing ChatPanelState = "composing"
	ChatStateSending   ChatPanelState = "sending"
)

// ChatMessage is one rendered message, oldest first
type ChatMessage struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	Initial     string    `json:"initial"`
	Body        string    `json:"body"`
	CreatedDate time.Time `json:"created_date"`
	Own         bool      `json:"own"`
}

// ChatPanelResponse is the event chat payload. Messages are ascending by
// creation time so the newest message renders at the bottom.
type ChatPanelResponse struct {
	State       ChatPanelState `json:"state"`
	Messages    []ChatMessage  `json:"messages"`
	CanPost     bool           `json:"can_post"`
	RefreshedAt time.Time      `json:"refreshed_at"`
}
