package http

import (
	"net/http"

	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/authsdk"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/httpx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP handles the list roles endpoint
//
//	@Summary		List all roles
//	@Description	Returns every role in the system. Requires the SuperAdmin or Admin role.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	authsdk.ListRolesResponse	"List of roles"
//	@Failure		401	{object}	authsdk.ErrorResponse		"Unauthorized - missing or invalid token"
//	@Failure		403	{object}	authsdk.ErrorResponse		"Forbidden - missing required role"
//	@Failure		500	{object}	authsdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/roles [get]
func (h *RolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roles, err := h.RolesService.ListAll(ctx)
	if err != nil {
		log.Error("failed to list roles", "error", err)
		authsdk.ErrServerError.WithDescription("Failed to retrieve roles").WriteError(w)
		return
	}

	response := authsdk.ListRolesResponse{
		Roles: make([]authsdk.RoleInfo, len(roles)),
	}
	for i, role := range roles {
		response.Roles[i] = authsdk.RoleInfo{ID: role.ID, Name: role.Name}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
