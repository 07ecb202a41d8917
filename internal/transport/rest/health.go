package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	stubbed bool
	clock   func() time.Time
}

// NewHealthHandler creates a HealthHandler. stubbedNotify marks signer
// notifications as going to the log stub instead of the delivery functions;
// it is reported but never fails the check.
func NewHealthHandler(db dbPinger, version string, stubbedNotify bool) *HealthHandler {
	return &HealthHandler{db: db, version: version, stubbed: stubbedNotify, clock: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: h.clock()})
}

// Health reports every component with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())

	notifications := CompStatus{Status: "ok", Detail: "functions"}
	if h.stubbed {
		notifications.Detail = "log stub"
	}

	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Components: map[string]CompStatus{
			"database":      db,
			"notifications": notifications,
		},
		Timestamp: h.clock(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func httpStatus(componentStatus string) int {
	if componentStatus != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
