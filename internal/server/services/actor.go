package services

import "github.com/guptaRishi00/waflow/internal/server/models"

// Actor identifies the authenticated caller of a service operation. Services
// use it for ownership scoping; coarse per-route role checks live in the
// HTTP layer.
type Actor struct {
	ID   string
	Role models.Role
}

// IsStaff reports whether the actor works cases rather than owning one.
func (a Actor) IsStaff() bool {
	return a.Role == models.RoleAgent || a.Role == models.RoleManager
}
