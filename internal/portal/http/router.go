package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/andinopay/nomina/internal/portal/domain"
	"github.com/andinopay/nomina/internal/portal/service"
	"github.com/andinopay/nomina/internal/portal/store"
	"github.com/andinopay/nomina/pkg/httpx"
	"github.com/andinopay/nomina/pkg/jwtx"
	"github.com/andinopay/nomina/pkg/slogx"

	_ "github.com/andinopay/nomina/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
	RosterService  *service.RosterService

	// MaxUploadBytes caps the upload endpoint's request body.
	MaxUploadBytes int64
}

func NewRouter(
	signer *jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerRosters()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Nomina Portal API
//	@version		0.1.0
//	@description	Payroll roster submission and payment-tracking portal. Contractor companies upload payroll files (CSV, XLS, XLSX); administrators track each submission through its payment stages and manage the contractor accounts.
//	@description
//	@description				Sessions are bearer JWTs signed with Ed25519 and minted at login.
//
//	@contact.name				AndinoPay Team
//	@contact.url				https://github.com/andinopay/nomina
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /api/login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{
		AccountService: r.AccountService,
		Signer:         r.signer,
	}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{AccountService: r.AccountService}

	adminOnly := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(string(domain.RoleAdmin)),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList), adminOnly...))
	r.Mux.Handle("POST /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleUpsert), adminOnly...))
	r.Mux.Handle("DELETE /api/users/{username}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), adminOnly...))
}

func (r *Router) registerRosters() {
	h := &RostersHandler{RosterService: r.RosterService}
	uploadHandler := &UploadHandler{
		RosterService:  r.RosterService,
		MaxUploadBytes: r.MaxUploadBytes,
	}

	// Reads are open to both roles; the handler pins contractors to their
	// own records.
	anyRole := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(string(domain.RoleAdmin), string(domain.RoleContractor)),
	}

	r.Mux.Handle("GET /api/rosters",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			append(anyRole, httpx.RateLimitByUser(httpx.LenientLimit))...))

	r.Mux.Handle("POST /api/rosters",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			append(anyRole, httpx.RateLimitByUser(httpx.ModerateLimit))...))

	// POST /api/rosters/upload - file parsing is the expensive path, keep
	// the moderate limit per user
	r.Mux.Handle("POST /api/rosters/upload",
		httpx.Chain(uploadHandler,
			append(anyRole, httpx.RateLimitByUser(httpx.ModerateLimit))...))

	// Payment tracking and deletion are admin operations.
	adminOnly := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireRole(string(domain.RoleAdmin)),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	r.Mux.Handle("PATCH /api/rosters/{id}",
		httpx.Chain(http.HandlerFunc(h.HandlePatch), adminOnly...))
	r.Mux.Handle("DELETE /api/rosters/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), adminOnly...))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
