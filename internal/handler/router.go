package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clearpath-mortgage/backend/pkg/auth"
)

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	Inquiries *InquiryHandler
	Leads     *LeadHandler
	Auth      *AuthHandler
	Limiter   *RateLimiter

	AllowedOrigins []string
	TokenSecret    []byte
}

// NewRouter builds the full HTTP surface: public submission endpoints,
// token-gated admin endpoints, login and health, with the rate limiter on
// every /api route and logging/security/CORS outermost.
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(deps.Limiter.Middleware)

	api.HandleFunc("/health", Health).Methods(http.MethodGet)
	api.HandleFunc("/auth/login", deps.Auth.Login).Methods(http.MethodPost)

	// Public submission endpoints
	api.HandleFunc("/inquiries", deps.Inquiries.Submit).Methods(http.MethodPost)
	api.HandleFunc("/leads", deps.Leads.Submit).Methods(http.MethodPost)

	// Admin endpoints (bearer token)
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAuth(deps.TokenSecret))
	admin.HandleFunc("/inquiries", deps.Inquiries.List).Methods(http.MethodGet)
	admin.HandleFunc("/inquiries/{id}", deps.Inquiries.MarkAsRead).Methods(http.MethodPatch)
	admin.HandleFunc("/inquiries/{id}", deps.Inquiries.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/leads", deps.Leads.List).Methods(http.MethodGet)
	admin.HandleFunc("/leads/{id}", deps.Leads.MarkAsRead).Methods(http.MethodPatch)
	admin.HandleFunc("/leads/{id}", deps.Leads.Delete).Methods(http.MethodDelete)

	// CORS sits outside the router so preflight OPTIONS requests are
	// answered without needing a matching route.
	return RequestLogger(SecurityHeaders(CORS(deps.AllowedOrigins)(r)))
}
