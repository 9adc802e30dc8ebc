// Package models defines the domain types exchanged with the print-shop
// backend and the client-owned state (session, cart). Remote entities are
// immutable snapshots per fetch; field names follow the API's JSON payloads.
package models

// Roles recognized by the backend. The role gates which command surfaces
// are reachable in the client.
const (
	RoleUser    = "USER"
	RoleManager = "MANAGER"
	RoleAdmin   = "ADMIN"
)

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Session is the client's record of the current authenticated user.
// Token and User are both set or both nil; no partial session is valid.
type Session struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// Empty reports whether the session holds no authenticated user.
func (s Session) Empty() bool {
	return s.Token == "" && s.User == nil
}

// Valid reports whether the session satisfies the all-or-nothing invariant.
func (s Session) Valid() bool {
	return (s.Token == "" && s.User == nil) || (s.Token != "" && s.User != nil)
}
