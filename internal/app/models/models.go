package models

// RoleType defines the user role within the league
type RoleType string

const (
	RoleFighter   RoleType = "fighter"
	RoleOrganizer RoleType = "organizer"
	RoleSpectator RoleType = "spectator"
)

// Visibility controls who can discover an event
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

// Ruleset identifies the rule system a bout or event is contested under
type Ruleset string

const (
	RulesetMMA        Ruleset = "mma"
	RulesetBoxing     Ruleset = "boxing"
	RulesetKickboxing Ruleset = "kickboxing"
	RulesetGrappling  Ruleset = "grappling"
)
