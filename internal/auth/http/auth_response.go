package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/httpx"
)

func writeAuthResponse(w http.ResponseWriter, status int, resp *domain.AuthResponse, accessTTL time.Duration) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, status, authsdk.AuthResponse{
		Success:                resp.Success,
		Message:                resp.Message,
		AccessToken:            resp.AccessToken,
		TokenType:              "Bearer",
		ExpiresIn:              int(accessTTL.Seconds()),
		RefreshToken:           resp.RefreshToken,
		RefreshTokenExpiration: resp.RefreshTokenExpiration,
		Username:               resp.Username,
		Email:                  resp.Email,
		Roles:                  resp.Roles,
	})
}

// writeBodyError maps a DecodeJSON failure. Oversized bodies get 413.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		authsdk.NewAPIError(http.StatusRequestEntityTooLarge, authsdk.ErrorCodeInvalidRequest,
			"request body too large").WriteError(w)
		return
	}
	authsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
}
