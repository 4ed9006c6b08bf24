package dto

import "github.com/tmercan/fightnight/internal/app/models"

// ProfileResponse is the profile page payload. Fighter is nil until the user
// creates a competition profile; OrganizedEvents is empty for non-organizers.
type ProfileResponse struct {
	User            models.User     `json:"user"`
	Fighter         *models.Fighter `json:"fighter,omitempty"`
	OrganizedEvents []models.Event  `json:"organized_events"`
	SessionState    string          `json:"session_state"`
}
