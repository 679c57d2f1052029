package models

import "time"

// RefreshToken is a stored refresh token tied to a user session. Tokens are
// rotated on every refresh and deleted on logout.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
