package http

import (
	"net/http"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/httpx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
)

// RefreshHandler serves POST /v1/auth/refresh-token.
type RefreshHandler struct {
	AuthService *service.AuthService
	AccessTTL   time.Duration
}

// ServeHTTP godoc
//
//	@Summary		Rotate a refresh token
//	@Description	Revokes the presented refresh token and returns a new access and refresh token pair. Unknown, expired and revoked tokens are rejected identically.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.RefreshTokenRequest	true	"Refresh token"
//	@Success		200		{object}	authsdk.AuthResponse		"access_token, refresh_token, roles"
//	@Failure		400		{object}	authsdk.ErrorResponse		"malformed body"
//	@Failure		401		{object}	authsdk.ErrorResponse		"Invalid token"
//	@Failure		429		{object}	authsdk.ErrorResponse		"rate limited"
//	@Failure		500		{object}	authsdk.ErrorResponse		"internal server error"
//	@Router			/v1/auth/refresh-token [post]
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authsdk.RefreshTokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	resp, err := h.AuthService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		slogx.FromContext(ctx).Error("refresh failed", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}
	if !resp.Success {
		authsdk.ErrInvalidRefreshToken.WriteError(w)
		return
	}

	writeAuthResponse(w, http.StatusOK, resp, h.AccessTTL)
}
