// Package capture records signatures: it validates the signature image,
// authorizes the signer through its access token, binds the signature to a
// signature area and hands completion off to the lifecycle.
package capture

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

type tokenGuard interface {
	Authorize(ctx context.Context, token string) (domain.Signer, error)
}

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.SignatureRequest, error)
}

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error)
}

type areaRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.SignatureArea, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.SignatureArea, error)
	Bind(ctx context.Context, b domain.AreaBinding) error
	GetBinding(ctx context.Context, areaID uuid.UUID) (domain.AreaBinding, error)
	ListBindingsByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.AreaBinding, error)
}

type signerRepo interface {
	MarkSigned(ctx context.Context, id uuid.UUID, c domain.SignatureCapture) (domain.Signer, error)
}

type eventLog interface {
	Append(ctx context.Context, e domain.DocumentEvent) (domain.DocumentEvent, error)
}

type completionChecker interface {
	CheckCompletion(ctx context.Context, requestID uuid.UUID) (bool, error)
}

type hashRefresher interface {
	RefreshHash(ctx context.Context, documentID uuid.UUID) (domain.HashResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	SignatureCaptured(role string)
}

// Service captures signatures.
type Service struct {
	guard      tokenGuard
	requests   requestRepo
	documents  documentRepo
	areas      areaRepo
	signers    signerRepo
	events     eventLog
	completion completionChecker
	hashes     hashRefresher
	tx         txManager
	metrics    recorder
	maxBytes   int
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new capture service. maxSignatureBytes caps the
// decoded size of a signature image.
func NewService(
	log *slog.Logger,
	guard tokenGuard,
	requests requestRepo,
	documents documentRepo,
	areas areaRepo,
	signers signerRepo,
	events eventLog,
	completion completionChecker,
	hashes hashRefresher,
	tx txManager,
	metrics recorder,
	maxSignatureBytes int,
) *Service {
	return &Service{
		guard:      guard,
		requests:   requests,
		documents:  documents,
		areas:      areas,
		signers:    signers,
		events:     events,
		completion: completion,
		hashes:     hashes,
		tx:         tx,
		metrics:    metrics,
		maxBytes:   maxSignatureBytes,
		now:        time.Now,
		log:        log.With("service", "capture"),
	}
}

// CaptureResult is the outcome of a successful capture.
type CaptureResult struct {
	Signer           domain.Signer
	Binding          domain.AreaBinding
	RequestCompleted bool
}

// AreaView is a signature area as shown on the signing page.
type AreaView struct {
	Area       domain.SignatureArea
	Signed     bool
	SignedByMe bool
}

// View is the read model of the signing page.
type View struct {
	Signer        domain.Signer
	Request       domain.SignatureRequest
	DocumentTitle string
	Areas         []AreaView
}

// signable reports whether signers may still sign on a request in status s.
func signable(s domain.RequestStatus) bool {
	return s == domain.RequestStatusSent || s == domain.RequestStatusPartiallySigned
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
