package dto

// Form payloads arrive as the browser submits them: numeric inputs are
// strings and may be empty. Coercion to typed values happens in the services,
// which own the blank-means-absent rules.

// CreateEventRequest is the organizer's event form
type CreateEventRequest struct {
	Title                 string   `json:"title" binding:"required"`
	Description           string   `json:"description"`
	BannerImage           string   `json:"banner_image"`
	DateTime              string   `json:"date_time" binding:"required"`
	Location              string   `json:"location" binding:"required"`
	Visibility            string   `json:"visibility"`
	RulesetDefault        string   `json:"ruleset_default"`
	EquipmentRequirements []string `json:"equipment_requirements"`
	MaxBouts              string   `json:"max_bouts"`
	MinAge                string   `json:"min_age"`
	PaidEvent             bool     `json:"paid_event"`
	TicketPrice           string   `json:"ticket_price"`
	RSVPLimit             string   `json:"rsvp_limit"`
}

// CreateFighterRequest is the fighter profile form
type CreateFighterRequest struct {
	WeightClass           string   `json:"weight_class" binding:"required"`
	CurrentWeight         string   `json:"current_weight"`
	Stance                string   `json:"stance"`
	ExperienceLevel       string   `json:"experience_level"`
	GymTeam               string   `json:"gym_team"`
	PreferredRulesets     []string `json:"preferred_rulesets"`
	EmergencyContactName  string   `json:"emergency_contact_name" binding:"required"`
	EmergencyContactPhone string   `json:"emergency_contact_phone" binding:"required"`
	MedicalNotes          string   `json:"medical_notes"`
}

// CreateBoutRequest is the organizer's add-bout form
type CreateBoutRequest struct {
	RedFighterID       string `json:"red_fighter_id" binding:"required"`
	BlueFighterID      string `json:"blue_fighter_id" binding:"required"`
	BoutType           string `json:"bout_type"`
	BoutOrder          string `json:"bout_order"`
	Ruleset            string `json:"ruleset"`
	Rounds             string `json:"rounds"`
	RoundLengthMinutes string `json:"round_length_minutes"`
}

// RSVPRequest records the attendee's intention for an event
type RSVPRequest struct {
	Status      string `json:"status" binding:"required"`
	RoleAtEvent string `json:"role_at_event"`
}

// SendMessageRequest posts one chat message to an event thread
type SendMessageRequest struct {
	Body string `json:"body"`
}
