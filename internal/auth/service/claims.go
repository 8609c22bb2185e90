package service

import (
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
	"github.com/google/uuid"
)

// BuildClaims assembles the claim set of an access token. The four identity
// claims (jti, sub, unique_name, email) always come first, followed by the
// user's direct claims and then, per role in the given order, a role claim and
// the claims of that role. Exact (type, value) repeats are kept once and
// stored claims of a reserved type (see jwtx.IsReserved) are skipped.
func BuildClaims(
	user domain.User,
	directClaims []domain.Claim,
	roleNames []string,
	roleClaimsByRole map[string][]domain.Claim,
) []domain.Claim {
	out := make([]domain.Claim, 0, 4+len(directClaims)+2*len(roleNames))
	seen := make(map[domain.Claim]struct{}, cap(out))

	add := func(c domain.Claim) {
		if jwtx.IsReserved(c.Type) {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, c := range []domain.Claim{
		{Type: jwtx.ClaimJTI, Value: uuid.NewString()},
		{Type: jwtx.ClaimSubject, Value: user.ID},
		{Type: jwtx.ClaimUniqueName, Value: user.Username},
		{Type: jwtx.ClaimEmail, Value: user.Email},
	} {
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, c := range directClaims {
		add(c)
	}

	for _, name := range roleNames {
		add(domain.Claim{Type: jwtx.ClaimRole, Value: name})
		for _, c := range roleClaimsByRole[name] {
			add(c)
		}
	}

	return out
}

// reservedClaims lists the stored claims BuildClaims will skip.
func reservedClaims(direct []domain.Claim, byRole map[string][]domain.Claim) []domain.Claim {
	var out []domain.Claim
	for _, c := range direct {
		if jwtx.IsReserved(c.Type) {
			out = append(out, c)
		}
	}
	for _, claims := range byRole {
		for _, c := range claims {
			if jwtx.IsReserved(c.Type) {
				out = append(out, c)
			}
		}
	}
	return out
}

func toJWTClaims(claims []domain.Claim) []jwtx.Claim {
	out := make([]jwtx.Claim, len(claims))
	for i, c := range claims {
		out[i] = jwtx.Claim{Type: c.Type, Value: c.Value}
	}
	return out
}
