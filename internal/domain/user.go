package domain

import "time"

// Role is the access role carried by an authenticated principal
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

// IsValid returns true if the role is one of the known values
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleOwner
}

// User represents a registered account
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         Role
	ProfileImage string

	CreatedAt time.Time
	UpdatedAt time.Time
}
