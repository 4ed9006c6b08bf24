package models

import "time"

// Stance is a fighter's leading stance
type Stance string

const (
	StanceOrthodox Stance = "orthodox"
	StanceSouthpaw Stance = "southpaw"
	StanceSwitch   Stance = "switch"
)

// ExperienceLevel buckets fighters by number of recorded fights
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// FighterStatus marks whether a profile is eligible for matchmaking
type FighterStatus string

const (
	FighterActive   FighterStatus = "active"
	FighterInactive FighterStatus = "inactive"
)

// Fighter is the competition profile a user with the fighter role creates for
// themselves. The store does not enforce one profile per user; lookups take
// the first match.
type Fighter struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"user_id"`
	WeightClass           string          `json:"weight_class"`
	CurrentWeight         *float64        `json:"current_weight"`
	Stance                Stance          `json:"stance"`
	ExperienceLevel       ExperienceLevel `json:"experience_level"`
	GymTeam               string          `json:"gym_team,omitempty"`
	PreferredRulesets     []Ruleset       `json:"preferred_rulesets,omitempty"`
	EmergencyContactName  string          `json:"emergency_contact_name"`
	EmergencyContactPhone string          `json:"emergency_contact_phone"`
	MedicalNotes          string          `json:"medical_notes,omitempty"`
	Wins                  int             `json:"wins"`
	Losses                int             `json:"losses"`
	KOWins                int             `json:"ko_wins"`
	SubmissionWins        int             `json:"submission_wins"`
	Status                FighterStatus   `json:"status"`
	CreatedDate           time.Time       `json:"created_date"`
}
