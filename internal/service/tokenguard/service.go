// Package tokenguard validates signer access tokens. A token is a bearer
// credential: whoever holds it may view and sign as that signer, within
// its expiry window and attempt budget.
package tokenguard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// Rejection reasons. They are logged and counted but never shown to the
// caller, who only ever sees domain.ErrInvalidToken.
const (
	ReasonOK               = "ok"
	ReasonMalformed        = "malformed"
	ReasonUnknown          = "unknown"
	ReasonAttemptsExceeded = "attempts_exceeded"
	ReasonInactive         = "inactive"
	ReasonExpired          = "expired"
	ReasonError            = "error"
)

type signerRepo interface {
	ConsumeAttempt(ctx context.Context, token string) (domain.Signer, error)
	GetByToken(ctx context.Context, token string) (domain.Signer, error)
	MarkOpened(ctx context.Context, id uuid.UUID) (bool, error)
	CleanupExpired(ctx context.Context, now time.Time) (int64, error)
}

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.SignatureRequest, error)
}

type eventLog interface {
	Append(ctx context.Context, e domain.DocumentEvent) (domain.DocumentEvent, error)
}

type recorder interface {
	TokenValidated(result string)
	TokensExpired(n int)
}

// Service validates and sweeps signer access tokens.
type Service struct {
	signers       signerRepo
	requests      requestRepo
	events        eventLog
	metrics       recorder
	publicBaseURL string
	wellFormed    func(string) bool
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new token guard. publicBaseURL is the origin of the
// signing page; wellFormed rejects tokens that cannot have been minted.
func NewService(
	log *slog.Logger,
	signers signerRepo,
	requests requestRepo,
	events eventLog,
	metrics recorder,
	publicBaseURL string,
	wellFormed func(string) bool,
) *Service {
	return &Service{
		signers:       signers,
		requests:      requests,
		events:        events,
		metrics:       metrics,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		wellFormed:    wellFormed,
		now:           time.Now,
		log:           log.With("service", "tokenguard"),
	}
}

// ValidationResult is the outcome of a token check. Reason is one of the
// Reason* constants.
type ValidationResult struct {
	Valid  bool
	Signer domain.Signer
	Reason string
}

// SigningURL returns the public signing link for a token.
func (s *Service) SigningURL(token string) string {
	return s.publicBaseURL + "/sign/" + token
}
