// Package lifecycle owns the status of signature requests and their
// signers: creation, adding signers, sending, completion, cancellation,
// decline, reminders and expiry.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/internal/notify"
)

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error
}

type requestRepo interface {
	Create(ctx context.Context, req domain.SignatureRequest) (domain.SignatureRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SignatureRequest, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.SignatureRequest, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.SignatureRequest, error)
	Transition(ctx context.Context, id uuid.UUID, next domain.RequestStatus) (domain.SignatureRequest, error)
	ListExpirable(ctx context.Context, now time.Time, limit int) ([]domain.SignatureRequest, error)
}

type signerRepo interface {
	CreateBatch(ctx context.Context, signers []domain.Signer) ([]domain.Signer, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Signer, error)
	MarkSent(ctx context.Context, requestID uuid.UUID, expiresAt time.Time) ([]domain.Signer, error)
	MarkDeclined(ctx context.Context, id uuid.UUID, reason *string, at time.Time) (domain.Signer, error)
	MarkReminded(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

type areaRepo interface {
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.SignatureArea, error)
	CountUnboundRequired(ctx context.Context, documentID uuid.UUID) (int, error)
}

type eventLog interface {
	Append(ctx context.Context, e domain.DocumentEvent) (domain.DocumentEvent, error)
}

type notificationLog interface {
	Create(ctx context.Context, l domain.NotificationLog) (domain.NotificationLog, error)
}

type sender interface {
	SendInvitation(ctx context.Context, inv notify.Invitation) error
	SendWhatsApp(ctx context.Context, msg notify.WhatsAppMessage) error
}

type tokenGuard interface {
	Authorize(ctx context.Context, token string) (domain.Signer, error)
	SigningURL(token string) string
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	NotificationSent(channel, status string)
	RequestCompleted()
	RequestsExpired(n int)
}

const (
	// tokenMintAttempts bounds retries of AddSigners on an access token collision.
	tokenMintAttempts = 3
	// expireBatchSize caps how many requests one ExpireStale run handles.
	expireBatchSize = 500
)

// Config holds the signing policy applied to new signers and deliveries.
type Config struct {
	TokenTTL time.Duration
	// MaxAttempts is the base access budget of a signer. Each area the signer
	// has to sign adds one attempt on top of it.
	MaxAttempts       int
	NotifyConcurrency int
}

// Service manages the signature request lifecycle.
type Service struct {
	documents     documentRepo
	requests      requestRepo
	signers       signerRepo
	areas         areaRepo
	events        eventLog
	notifications notificationLog
	sender        sender
	guard         tokenGuard
	tx            txManager
	metrics       recorder
	cfg           Config
	newToken      func() (string, error)
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new lifecycle service. newToken mints signer access
// tokens.
func NewService(
	log *slog.Logger,
	documents documentRepo,
	requests requestRepo,
	signers signerRepo,
	areas areaRepo,
	events eventLog,
	notifications notificationLog,
	sender sender,
	guard tokenGuard,
	tx txManager,
	metrics recorder,
	cfg Config,
	newToken func() (string, error),
) *Service {
	if cfg.NotifyConcurrency < 1 {
		cfg.NotifyConcurrency = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = domain.DefaultMaxAttempts
	}
	return &Service{
		documents:     documents,
		requests:      requests,
		signers:       signers,
		areas:         areas,
		events:        events,
		notifications: notifications,
		sender:        sender,
		guard:         guard,
		tx:            tx,
		metrics:       metrics,
		cfg:           cfg,
		newToken:      newToken,
		now:           time.Now,
		log:           log.With("service", "lifecycle"),
	}
}

// RequestView is a request together with its signers.
type RequestView struct {
	Request domain.SignatureRequest
	Signers []domain.Signer
}

// SendResult reports what Send or Remind delivered. Delivery failures are
// counted, never returned as errors.
type SendResult struct {
	Request   domain.SignatureRequest
	Delivered int
	Failed    int
}

func (s *Service) appendEvent(ctx context.Context, req domain.SignatureRequest, signerID *uuid.UUID, t domain.EventType, data map[string]any) error {
	_, err := s.events.Append(ctx, domain.DocumentEvent{
		DocumentID:         req.DocumentID,
		SignatureRequestID: &req.ID,
		SignerID:           signerID,
		EventType:          t,
		EventData:          data,
	})
	return err
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
