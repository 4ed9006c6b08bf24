package models

import "time"

// ThreadTypeEvent scopes a message thread to an event's conversation.
const ThreadTypeEvent = "event"

// Message is one chat message in a thread. Threads are addressed by
// (thread_id, thread_type); for event chat the thread id is the event id.
// The store returns only sender_id; display names resolve through the user
// directory when the panel is built.
type Message struct {
	ID          string    `json:"id"`
	ThreadID    string    `json:"thread_id"`
	ThreadType  string    `json:"thread_type"`
	SenderID    string    `json:"sender_id"`
	Body        string    `json:"body"`
	CreatedDate time.Time `json:"created_date"`
}
