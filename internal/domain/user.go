package domain

import "time"

// User is the domain model for accounts that can authenticate.
type User struct {
	UserID       string
	FirstName    string
	LastName     string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
