package http

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/api/auth" // Swagger docs
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/metrics"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/service"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/internal/auth/store"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/httpx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/jwtx"
	"github.com/Zyad-Eltayabi/ClinicCore-Management-sub000/pkg/slogx"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Roles allowed to list the role catalogue.
var adminRoles = []string{"SuperAdmin", "Admin"}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	accessTTL    time.Duration
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	AuthService  *service.AuthService
	RolesService *service.RolesService
}

func NewRouter(
	verifier jwtx.Verifier,
	accessTTL time.Duration,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		accessTTL:    accessTTL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRoles()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ClinicCore Authentication Service API
//	@version		0.1.0
//	@description	Username/password authentication for ClinicCore with HS256 access tokens and rotating refresh tokens.
//	@description
//	@description				Access tokens carry the user's identity, role and permission claims.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Credential endpoints - strict rate limit by IP (brute force)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(&RegisterHandler{AuthService: r.AuthService, AccessTTL: r.accessTTL},
			metrics.Instrument("register"),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(&LoginHandler{AuthService: r.AuthService, AccessTTL: r.accessTTL},
			metrics.Instrument("login"),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/refresh-token",
		httpx.Chain(&RefreshHandler{AuthService: r.AuthService, AccessTTL: r.accessTTL},
			metrics.Instrument("refresh_token"),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/revoke-token",
		httpx.Chain(&RevokeHandler{AuthService: r.AuthService},
			metrics.Instrument("revoke_token"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(MeHandler(),
			metrics.Instrument("me"),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	// GET /roles - moderate rate limit by user (admin read operation)
	r.Mux.Handle("GET /v1/roles",
		httpx.Chain(h,
			metrics.Instrument("list_roles"),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(adminRoles...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(metrics.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
