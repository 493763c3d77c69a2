package domain

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidSession signals that the hosted identity service rejected an
// access token. Callers fall back to the local token scheme on this error.
var ErrInvalidSession = errors.New("invalid session token")

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff || role == RoleCustomer
}

// User is the profile record owned by this system. Authentication state
// (password, session) lives in the hosted identity service; the two share
// the same ID.
type User struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Role          string          `json:"role"`
	Phone         string          `json:"phone,omitempty"`
	Avatar        string          `json:"avatar,omitempty"`
	PasswordHash  string          `json:"-"`
	IsActive      bool            `json:"is_active"`
	EmailVerified bool            `json:"email_verified"`
	LastLogin     *time.Time      `json:"last_login,omitempty"`
	Preferences   json.RawMessage `json:"preferences,omitempty"`
	Address       json.RawMessage `json:"address,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// FullName returns the display name for the user.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
