package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/docsign-backend/internal/adapter/notify/functions"
	"github.com/heartmarshall/docsign-backend/internal/adapter/notify/logstub"
	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres/area"
	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres/document"
	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres/request"
	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres/signer"
	"github.com/heartmarshall/docsign-backend/internal/auth"
	"github.com/heartmarshall/docsign-backend/internal/config"
	"github.com/heartmarshall/docsign-backend/internal/notify"
	"github.com/heartmarshall/docsign-backend/internal/service/capture"
	"github.com/heartmarshall/docsign-backend/internal/service/integrity"
	"github.com/heartmarshall/docsign-backend/internal/service/lifecycle"
	"github.com/heartmarshall/docsign-backend/internal/service/tokenguard"
	"github.com/heartmarshall/docsign-backend/internal/transport/middleware"
	"github.com/heartmarshall/docsign-backend/internal/transport/rest"
	"github.com/heartmarshall/docsign-backend/internal/transport/rest/loader"
)

// staffTokenTTL only applies to staff tokens minted by tooling and tests;
// production sessions come from the hosted auth provider.
const staffTokenTTL = time.Hour

// Recorder is the union of the metric hooks the services call.
// *metrics.Metrics and metrics.Nop both satisfy it.
type Recorder interface {
	TokenValidated(result string)
	TokensExpired(n int)
	SignatureCaptured(role string)
	NotificationSent(channel, status string)
	RequestCompleted()
	RequestsExpired(n int)
}

// Sender delivers signer notifications.
type Sender interface {
	SendInvitation(ctx context.Context, inv notify.Invitation) error
	SendWhatsApp(ctx context.Context, msg notify.WhatsAppMessage) error
}

// Container holds the repositories and services of one process.
type Container struct {
	Pool      *pgxpool.Pool
	JWT       *auth.JWTManager
	Signers   *signer.Repo
	Guard     *tokenguard.Service
	Lifecycle *lifecycle.Service
	Capture   *capture.Service
	Integrity *integrity.Service
}

// NewContainer wires repositories and services on top of pool.
func NewContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rec Recorder) *Container {
	txm := postgres.NewTxManager(pool)

	documentRepo := document.New(pool)
	requestRepo := request.New(pool)
	signerRepo := signer.New(pool)
	areaRepo := area.New(pool)
	eventRepo := event.New(pool)
	notificationRepo := notification.New(pool)

	guard := tokenguard.NewService(
		logger, signerRepo, requestRepo, eventRepo, rec,
		cfg.Signing.PublicBaseURL, auth.LooksLikeSignerToken,
	)

	integritySvc := integrity.NewService(logger, documentRepo, requestRepo, signerRepo, eventRepo, txm)

	lifecycleSvc := lifecycle.NewService(
		logger, documentRepo, requestRepo, signerRepo, areaRepo, eventRepo, notificationRepo,
		NewSender(cfg.Notify, logger), guard, txm, rec,
		lifecycle.Config{
			TokenTTL:          cfg.Signing.TokenTTL,
			MaxAttempts:       cfg.Signing.MaxAttempts,
			NotifyConcurrency: cfg.Signing.NotifyConcurrency,
		},
		auth.NewSignerToken,
	)

	captureSvc := capture.NewService(
		logger, guard, requestRepo, documentRepo, areaRepo, signerRepo, eventRepo,
		lifecycleSvc, integritySvc, txm, rec, cfg.Signing.MaxSignatureBytes,
	)

	return &Container{
		Pool:      pool,
		JWT:       auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, staffTokenTTL),
		Signers:   signerRepo,
		Guard:     guard,
		Lifecycle: lifecycleSvc,
		Capture:   captureSvc,
		Integrity: integritySvc,
	}
}

// NewSender picks the delivery functions client, or the logging stub when
// no functions URL is configured.
func NewSender(cfg config.NotifyConfig, logger *slog.Logger) Sender {
	if cfg.StubNotifications() {
		logger.Warn("notification delivery disabled, using log stub")
		return logstub.New(logger)
	}
	return functions.NewClient(cfg.FunctionsURL, cfg.APIKey, cfg.Timeout, logger)
}

// HTTPObserver receives per-request HTTP metrics.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Handler builds the full HTTP stack: global middleware around the router.
// metricsHandler may be nil to leave /metrics unmounted.
func (c *Container) Handler(cfg *config.Config, logger *slog.Logger, limiter *middleware.RateLimiter, obs HTTPObserver, metricsHandler http.Handler) http.Handler {
	mux := rest.NewRouter(rest.Routes{
		Health:       rest.NewHealthHandler(c.Pool, BuildVersion(), cfg.Notify.StubNotifications()),
		Signing:      rest.NewSigningHandler(c.Capture, c.Lifecycle, logger),
		Requests:     rest.NewRequestHandler(c.Lifecycle, logger),
		Documents:    rest.NewDocumentHandler(c.Integrity, c.Lifecycle, logger),
		Metrics:      metricsHandler,
		StaffAuth:    middleware.Auth(c.JWT),
		SigningLimit: limiter.Limit(cfg.RateLimit.SigningPerMinute),
		Loaders:      loader.Middleware(c.Signers),
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.ClientInfo(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(obs),
	)(mux)
}
