package http

import (
	"net/http"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/httpx"
)

// MeHandler godoc
//
//	@Summary		Describe the current principal
//	@Description	Returns the subject, roles and claims carried by the presented access token.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	authsdk.MeResponse		"sub, username, email, roles, claims"
//	@Failure		401	{object}	authsdk.ErrorResponse	"missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get]
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := httpx.PrincipalFromContext(r.Context())
		if !ok {
			authsdk.ErrInvalidToken.WriteError(w)
			return
		}

		claims := make([]authsdk.ClaimInfo, len(p.Claims))
		for i, c := range p.Claims {
			claims[i] = authsdk.ClaimInfo{Type: c.Type, Value: c.Value}
		}

		roles := p.Roles
		if roles == nil {
			roles = []string{}
		}

		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, authsdk.MeResponse{
			Subject:   p.Subject,
			Username:  p.Username,
			Email:     p.Email,
			Roles:     roles,
			Claims:    claims,
			ExpiresAt: p.ExpiresAt,
		})
	}
}
