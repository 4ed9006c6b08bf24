package models

import "time"

// User is the account record owned by the hosted auth provider. The client
// never writes this entity; role changes happen in the provider's console.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Nickname    string    `json:"nickname,omitempty"`
	RoleType    RoleType  `json:"role"`
	Avatar      string    `json:"avatar,omitempty"`
	Verified    bool      `json:"verified,omitempty"`
	CreatedDate time.Time `json:"created_date"`
}

// DisplayName returns the name shown next to a user's messages and profile,
// falling back to the email address when no full name is set.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// Initial returns the single-character avatar fallback.
func (u *User) Initial() string {
	name := u.DisplayName()
	if name == "" {
		return "U"
	}
	return string([]rune(name)[:1])
}
