// Package integrity hashes rendered documents and issues completion
// certificates.
package integrity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error)
	UpdateIntegrity(ctx context.Context, id uuid.UUID, in domain.DocumentIntegrity) (domain.Document, error)
}

type requestRepo interface {
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.SignatureRequest, error)
}

type signerRepo interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Signer, error)
}

type eventLog interface {
	Append(ctx context.Context, e domain.DocumentEvent) (domain.DocumentEvent, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service computes document digests and certificates.
type Service struct {
	documents documentRepo
	requests  requestRepo
	signers   signerRepo
	events    eventLog
	tx        txManager
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new integrity service.
func NewService(
	log *slog.Logger,
	documents documentRepo,
	requests requestRepo,
	signers signerRepo,
	events eventLog,
	tx txManager,
) *Service {
	return &Service{
		documents: documents,
		requests:  requests,
		signers:   signers,
		events:    events,
		tx:        tx,
		now:       time.Now,
		log:       log.With("service", "integrity"),
	}
}

// VerifyResult compares the stored content digest with a fresh one.
type VerifyResult struct {
	DocumentID uuid.UUID
	Valid      bool
	Stored     string
	Computed   string
}
