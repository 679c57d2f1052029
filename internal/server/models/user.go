package models

import "time"

// Role controls which API surface a user may reach.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleManager  Role = "manager"
)

type User struct {
	ID           string
	Role         Role
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	Phone        string
	Nationality  string
	CreatedAt    time.Time
}
