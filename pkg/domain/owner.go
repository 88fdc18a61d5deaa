package domain

import (
	"time"

	"github.com/google/uuid"
)

// Owner represents a registered Aluguei landlord account.
// Immutable on the client: only a fresh login response replaces it.
type Owner struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CPF       string    `json:"cpf"`
	BirthDate *string   `json:"birth_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse is the payload returned by POST /auth/login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Owner     Owner  `json:"owner"`
}
