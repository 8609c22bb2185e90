package service

import (
	"testing"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestBuildClaims(t *testing.T) {
	t.Parallel()

	user := domain.User{ID: "user-1", Username: "drsmith", Email: "smith@clinic.test"}

	t.Run("no roles and no claims yields identity claims only", func(t *testing.T) {
		claims := BuildClaims(user, nil, nil, nil)

		require.Len(t, claims, 4)
		require.Equal(t, jwtx.ClaimJTI, claims[0].Type)
		require.NotEmpty(t, claims[0].Value)
		require.Equal(t, []domain.Claim{
			{Type: jwtx.ClaimSubject, Value: "user-1"},
			{Type: jwtx.ClaimUniqueName, Value: "drsmith"},
			{Type: jwtx.ClaimEmail, Value: "smith@clinic.test"},
		}, claims[1:])
	})

	t.Run("token id is fresh per call", func(t *testing.T) {
		a := BuildClaims(user, nil, nil, nil)
		b := BuildClaims(user, nil, nil, nil)
		require.NotEqual(t, a[0].Value, b[0].Value)
	})

	t.Run("direct then per role claims in store order", func(t *testing.T) {
		claims := BuildClaims(user,
			[]domain.Claim{{Type: "department", Value: "cardiology"}},
			[]string{"Doctor", "Admin"},
			map[string][]domain.Claim{
				"Doctor": {{Type: "permission", Value: "records.read"}},
				"Admin":  {{Type: "permission", Value: "users.manage"}},
			},
		)

		require.Equal(t, []domain.Claim{
			{Type: "department", Value: "cardiology"},
			{Type: jwtx.ClaimRole, Value: "Doctor"},
			{Type: "permission", Value: "records.read"},
			{Type: jwtx.ClaimRole, Value: "Admin"},
			{Type: "permission", Value: "users.manage"},
		}, claims[4:])
	})

	t.Run("shared role claims collapse to one", func(t *testing.T) {
		shared := domain.Claim{Type: "permission", Value: "appointments.read"}
		claims := BuildClaims(user,
			[]domain.Claim{shared},
			[]string{"Doctor", "Receptionist"},
			map[string][]domain.Claim{
				"Doctor":       {shared, {Type: "permission", Value: "records.read"}},
				"Receptionist": {shared},
			},
		)

		count := 0
		for _, c := range claims {
			if c == shared {
				count++
			}
		}
		require.Equal(t, 1, count)
		require.Len(t, claims, 8)
	})

	t.Run("identity claims survive a clashing direct claim", func(t *testing.T) {
		claims := BuildClaims(user, []domain.Claim{{Type: jwtx.ClaimSubject, Value: "user-1"}}, nil, nil)
		require.Len(t, claims, 4)
	})

	t.Run("stored claims of reserved types are skipped", func(t *testing.T) {
		direct := []domain.Claim{
			{Type: jwtx.ClaimSubject, Value: "other"},
			{Type: "exp", Value: "x"},
			{Type: "department", Value: "cardiology"},
		}
		byRole := map[string][]domain.Claim{
			"Doctor": {{Type: jwtx.ClaimEmail, Value: "root@clinic.test"}, {Type: "aud", Value: "elsewhere"}},
		}

		claims := BuildClaims(user, direct, []string{"Doctor"}, byRole)

		require.Len(t, claims, 6)
		for _, c := range claims[1:] {
			switch c.Type {
			case jwtx.ClaimSubject:
				require.Equal(t, "user-1", c.Value)
			case jwtx.ClaimEmail:
				require.Equal(t, "smith@clinic.test", c.Value)
			case "exp", "aud":
				t.Fatalf("registered claim %q leaked into the token", c.Type)
			}
		}
		require.Len(t, reservedClaims(direct, byRole), 4)
	})
}
