// Package models defines the persistent and wire-level data structures of
// the student-track server.
package models

import "time"

// Roles a user account can hold. The role is fixed at registration and
// never updated afterwards.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User is an account record. The JSON field names follow the public API:
// the role travels as "profile". PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"profile"`
	Name         string    `json:"name"`
	StudentID    string    `json:"studentId,omitempty"`
	Grade        string    `json:"grade,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to clients: identical to the
// record but with the password hash cleared.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.PasswordHash = ""
	return &c
}

// AuthEvent is an audit row for login/logout activity. Recording these is
// best-effort: a failed write never blocks the authentication flow.
type AuthEvent struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"createdAt"`
}

// Auth event kinds.
const (
	EventLogin  = "login"
	EventLogout = "logout"
)
