package domain

import "time"

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Claim is a single (type, value) pair carried in an access token. Claims are
// attached to users directly or inherited through role membership.
type Claim struct {
	Type  string
	Value string
}
