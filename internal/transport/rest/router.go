package rest

import (
	"net/http"

	"github.com/heartmarshall/docsign-backend/internal/transport/middleware"
)

// Routes holds everything the router mounts.
type Routes struct {
	Health    *HealthHandler
	Signing   *SigningHandler
	Requests  *RequestHandler
	Documents *DocumentHandler
	Metrics   http.Handler

	// StaffAuth guards every staff endpoint.
	StaffAuth middleware.Middleware
	// SigningLimit throttles the public signing endpoints.
	SigningLimit middleware.Middleware
	// Loaders installs per-request DataLoaders on listing endpoints.
	Loaders middleware.Middleware
}

// NewRouter registers all endpoints on a ServeMux. Global middleware is
// applied by the caller around the returned mux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	public := func(h http.HandlerFunc) http.Handler { return rt.SigningLimit(h) }
	mux.Handle("GET /sign/{token}", public(rt.Signing.View))
	mux.Handle("POST /sign/{token}/areas/{areaID}/signature", public(rt.Signing.Capture))
	mux.Handle("POST /sign/{token}/decline", public(rt.Signing.Decline))

	staff := func(h http.HandlerFunc) http.Handler { return rt.StaffAuth(h) }
	mux.Handle("POST /requests", staff(rt.Requests.Create))
	mux.Handle("GET /requests/{id}", staff(rt.Requests.Get))
	mux.Handle("POST /requests/{id}/signers", staff(rt.Requests.AddSigners))
	mux.Handle("POST /requests/{id}/send", staff(rt.Requests.Send))
	mux.Handle("POST /requests/{id}/remind", staff(rt.Requests.Remind))
	mux.Handle("POST /requests/{id}/cancel", staff(rt.Requests.Cancel))

	mux.Handle("POST /documents/{id}/render", staff(rt.Documents.Render))
	mux.Handle("GET /documents/{id}/verify", staff(rt.Documents.Verify))
	mux.Handle("GET /documents/{id}/certificate", staff(rt.Documents.Certificate))
	mux.Handle("GET /documents/{id}/events", staff(rt.Documents.Events))
	mux.Handle("GET /documents/{id}/requests", middleware.Chain(rt.StaffAuth, rt.Loaders)(http.HandlerFunc(rt.Documents.Requests)))

	return mux
}
