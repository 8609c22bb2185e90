package http

import (
	"net/http"
	"time"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/domain"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/httpx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
)

// RegisterHandler serves POST /v1/auth/register.
type RegisterHandler struct {
	AuthService *service.AuthService
	AccessTTL   time.Duration
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates a user with the requested role and signs them in. Every validation problem is reported at once in error_description.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	authsdk.AuthResponse	"access_token, refresh_token, roles"
//	@Failure		400		{object}	authsdk.ErrorResponse	"validation failed"
//	@Failure		429		{object}	authsdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	authsdk.ErrorResponse	"internal server error"
//	@Router			/v1/auth/register [post]
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	resp, err := h.AuthService.Register(ctx, domain.RegisterRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("register failed", "error", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}
	if !resp.Success {
		authsdk.ErrInvalidRequest.WithDescription(resp.Message).WriteError(w)
		return
	}

	writeAuthResponse(w, http.StatusCreated, resp, h.AccessTTL)
}
