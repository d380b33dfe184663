package dto

import (
	"time"

	"github.com/spec-kit/commerce-api/internal/domain"
)

// UserDTO is the transport representation of a user account. Password is
// write-only; the stored hash never leaves the service.
type UserDTO struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	Password  string `json:"password,omitempty"`
}

// LoginRequest is the credential payload for token issuance.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// AuthResponse carries the issued access token.
type AuthResponse struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserToEntity maps a DTO onto the domain model. The plaintext password is
// carried in PasswordHash until the service hashes it before any write.
func UserToEntity(d UserDTO) *domain.User {
	return &domain.User{
		UserID:       d.UserID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		UserName:     d.UserName,
		PasswordHash: d.Password,
	}
}

// UserFromEntity maps the domain model back to its DTO, dropping the hash.
func UserFromEntity(u *domain.User) UserDTO {
	return UserDTO{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
	}
}
