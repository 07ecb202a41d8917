//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/docsign-backend/internal/app"
	"github.com/heartmarshall/docsign-backend/internal/config"
	"github.com/heartmarshall/docsign-backend/internal/metrics"
	"github.com/heartmarshall/docsign-backend/internal/transport/middleware"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	app    *app.Container
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret: "test-secret-at-least-32-chars-long!!",
			JWTIssuer: "test-issuer",
		},
		Signing: config.SigningConfig{
			PublicBaseURL:     "https://sign.example.com",
			TokenTTL:          72 * time.Hour,
			MaxAttempts:       5,
			MaxSignatureBytes: 512 * 1024,
			NotifyConcurrency: 2,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{
			SigningPerMinute: 1000,
			CleanupInterval:  time.Minute,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). Notifications go to the
// log stub because no functions URL is configured.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	m := metrics.New()
	container := app.NewContainer(cfg, logger, pool, m)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(container.Handler(cfg, logger, limiter, m, m.Handler()))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		app:    container,
	}
}

// staffToken mints a staff access token for a fresh user id.
func (ts *testServer) staffToken(t *testing.T) string {
	t.Helper()
	tok, err := ts.app.JWT.GenerateAccessToken(uuid.New(), "staff")
	require.NoError(t, err)
	return tok
}

// do sends a JSON request and decodes the JSON response. A nil body sends
// no payload; an empty token sends no Authorization header.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, any) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

// doObject is do for endpoints that answer with a JSON object.
func (ts *testServer) doObject(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()
	status, result := ts.do(t, method, path, body, token)
	obj, ok := result.(map[string]any)
	require.True(t, ok, "expected JSON object, got %v", result)
	return status, obj
}

// doArray is do for endpoints that answer with a JSON array.
func (ts *testServer) doArray(t *testing.T, method, path string, body any, token string) (int, []any) {
	t.Helper()
	status, result := ts.do(t, method, path, body, token)
	arr, ok := result.([]any)
	require.True(t, ok, "expected JSON array, got %v", result)
	return status, arr
}

// accessToken reads a signer's access token straight from the database;
// staff responses never expose it.
func (ts *testServer) accessToken(t *testing.T, signerID string) string {
	t.Helper()
	var tok string
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT access_token FROM signers WHERE id = $1`, signerID,
	).Scan(&tok)
	require.NoError(t, err)
	return tok
}

// signatureImage returns a small PNG encoded as a data URL.
func signatureImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		img.Set(x, 2, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func object(t *testing.T, m map[string]any, key string) map[string]any {
	t.Helper()
	v, ok := m[key].(map[string]any)
	require.True(t, ok, "expected %q object in %v", key, m)
	return v
}

func array(t *testing.T, m map[string]any, key string) []any {
	t.Helper()
	v, ok := m[key].([]any)
	require.True(t, ok, "expected %q array in %v", key, m)
	return v
}
