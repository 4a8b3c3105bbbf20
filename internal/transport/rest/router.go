package rest

import "net/http"

// NewRouter wires all REST handlers onto a ServeMux. Authentication is
// applied by middleware outside the mux; handlers resolve the caller
// from the request context.
func NewRouter(health *HealthHandler, auth *AuthHandler, events *EventHandler, swaps *SwapHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	mux.HandleFunc("POST /api/auth/signup", auth.Signup)
	mux.HandleFunc("POST /api/auth/login", auth.Login)
	mux.HandleFunc("GET /api/auth/me", auth.Me)

	mux.HandleFunc("GET /api/events", events.List)
	mux.HandleFunc("POST /api/events", events.Create)
	mux.HandleFunc("GET /api/events/{id}", events.Get)
	mux.HandleFunc("PUT /api/events/{id}", events.Update)
	mux.HandleFunc("DELETE /api/events/{id}", events.Delete)

	mux.HandleFunc("GET /api/swappable-slots", swaps.Marketplace)
	mux.HandleFunc("POST /api/swap-request", swaps.CreateRequest)
	mux.HandleFunc("GET /api/swap-requests", swaps.ListRequests)
	mux.HandleFunc("POST /api/swap-response/{requestId}", swaps.Respond)

	return mux
}
