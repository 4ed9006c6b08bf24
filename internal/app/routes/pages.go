package routes

import "net/url"

// Page identifiers the frontend links between.
const (
	PageEvents        = "Events"
	PageEventDetails  = "EventDetails"
	PageProfile       = "Profile"
	PageCreateEvent   = "CreateEvent"
	PageCreateFighter = "CreateFighterProfile"
)

var pagePaths = map[string]string{
	PageEvents:        "/api/pages/events",
	PageEventDetails:  "/api/pages/event-details",
	PageProfile:       "/api/pages/profile",
	PageCreateEvent:   "/create-event",
	PageCreateFighter: "/create-fighter-profile",
}

// PageURL maps a page identifier to its URL, with entity identifiers carried
// in the query string. Unknown pages map to the events listing.
func PageURL(page string, params url.Values) string {
	path, ok := pagePaths[page]
	if !ok {
		path = pagePaths[PageEvents]
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return path
}
