package http

import (
	"net/http"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/httpx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
)

// RevokeHandler serves POST /v1/auth/revoke-token.
type RevokeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Revoke a refresh token
//	@Description	Ends a session by revoking its refresh token. A token can be revoked once; later attempts fail.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body	authsdk.RefreshTokenRequest	true	"Refresh token"
//	@Success		204		"revoked"
//	@Failure		400		{object}	authsdk.ErrorResponse	"unknown, expired or already revoked token"
//	@Failure		429		{object}	authsdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	authsdk.ErrorResponse	"internal server error"
//	@Router			/v1/auth/revoke-token [post]
func (h *RevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authsdk.RefreshTokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	ok, err := h.AuthService.RevokeToken(ctx, req.RefreshToken)
	if err != nil {
		slogx.FromContext(ctx).Error("revoke failed", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}
	if !ok {
		authsdk.ErrRevokeFailed.WriteError(w)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
