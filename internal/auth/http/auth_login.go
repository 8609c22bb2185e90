package http

import (
	"net/http"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/httpx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
)

// LoginHandler serves POST /v1/auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
	AccessTTL   time.Duration
}

// ServeHTTP godoc
//
//	@Summary		Log in with email and password
//	@Description	Returns a signed access token and the caller's active refresh token, minting one when none is active.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.AuthResponse	"access_token, refresh_token, roles"
//	@Failure		400		{object}	authsdk.ErrorResponse	"malformed body"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Email or Password Incorrect"
//	@Failure		429		{object}	authsdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	authsdk.ErrorResponse	"internal server error"
//	@Router			/v1/auth/login [post]
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		authsdk.ErrInvalidRequest.WithDescription("email and password are required").WriteError(w)
		return
	}

	resp, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		slogx.FromContext(ctx).Error("login failed", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}
	if !resp.Success {
		authsdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	writeAuthResponse(w, http.StatusOK, resp, h.AccessTTL)
}
