package model

import (
	"fmt"
	"time"
)

// User represents a marketplace member.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Role         string    `json:"role"`
	Points       int       `json:"points"`
	Avatar       string    `json:"avatar,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Newsletter   bool      `json:"newsletter"`
	Rating       float64   `json:"rating"`
	TotalSwaps   int       `json:"total_swaps"`
}

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// RoleAtLeast checks if role meets or exceeds the minimum required role.
func RoleAtLeast(role, minimum string) bool {
	levels := map[string]int{
		RoleAdmin: 2,
		RoleUser:  1,
	}
	return levels[role] >= levels[minimum]
}

// ValidatePassword checks that a password meets the minimum requirements.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// UserPatch lists the user fields that can be updated after registration.
// Nil fields are left unchanged.
type UserPatch struct {
	FirstName  *string  `json:"first_name,omitempty"`
	LastName   *string  `json:"last_name,omitempty"`
	Avatar     *string  `json:"avatar,omitempty"`
	Location   *string  `json:"location,omitempty"`
	Newsletter *bool    `json:"newsletter,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
}

// Apply merges the patch into the user.
func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Newsletter != nil {
		u.Newsletter = *p.Newsletter
	}
	if p.Rating != nil {
		u.Rating = *p.Rating
	}
}
