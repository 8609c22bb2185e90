package service

import (
	"strings"
	"testing"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestPasswordComplex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		want     bool
	}{
		{"S3cure!pass", true},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigitsHere!", false},
		{"NoSymbols123", false},
		{"Ünïcode9#", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			require.Equal(t, tt.want, passwordComplex(tt.password))
		})
	}
}

func TestValidatorCollectsEverything(t *testing.T) {
	t.Parallel()

	v := NewValidator()

	msgs := v.Validate(domain.RegisterRequest{
		Username: "a b",
		Email:    "not-an-email",
		Password: "short",
	})

	joined := strings.Join(msgs, "\n")
	require.Contains(t, joined, "first_name is required")
	require.Contains(t, joined, "last_name is required")
	require.Contains(t, joined, "username may only contain letters and digits")
	require.Contains(t, joined, "email must be a valid email address")
	require.Contains(t, joined, "password must be at least 8 characters long")
	require.Contains(t, joined, "role is required")
}

func TestValidatorAcceptsValidRequest(t *testing.T) {
	t.Parallel()

	msgs := NewValidator().Validate(domain.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@clinic.test",
		Password:  "S3cure!pass",
		Role:      "Doctor",
	})
	require.Empty(t, msgs)
}
