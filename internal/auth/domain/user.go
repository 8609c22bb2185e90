package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string // argon2 encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest carries the fields a new account is created from. The
// validate tags are enforced by the auth service before anything is written.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Username  string `json:"username"   validate:"required,min=3,max=50,alphanum"`
	Email     string `json:"email"      validate:"required,email,max=254"`
	Password  string `json:"password"   validate:"required,min=8,max=128,password"`
	Role      string `json:"role"       validate:"required"`
}
