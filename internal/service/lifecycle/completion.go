package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// CheckCompletion re-evaluates a request after a signature. The request is
// completed exactly once, when every signer has signed and every required
// area of the document is bound. Short of that, a sent request with at least
// one signature moves to partially_signed. It is safe to call any number of
// times: later calls on a completed request report true and change nothing.
func (s *Service) CheckCompletion(ctx context.Context, requestID uuid.UUID) (bool, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return false, fmt.Errorf("get signature request: %w", err)
	}
	if req.Status.IsTerminal() {
		return req.Status == domain.RequestStatusCompleted, nil
	}

	signers, err := s.signers.ListByRequest(ctx, requestID)
	if err != nil {
		return false, fmt.Errorf("list signers: %w", err)
	}
	if len(signers) == 0 {
		return false, nil
	}

	signed := 0
	for _, sg := range signers {
		if sg.HasSigned() {
			signed++
		}
	}

	if signed == len(signers) {
		unbound, err := s.areas.CountUnboundRequired(ctx, req.DocumentID)
		if err != nil {
			return false, fmt.Errorf("count unbound required areas: %w", err)
		}
		if unbound == 0 {
			return s.complete(ctx, req, len(signers))
		}
		s.log.InfoContext(ctx, "all signers signed, required areas still unbound",
			slog.String("request_id", req.ID.String()),
			slog.Int("unbound", unbound),
		)
	}

	if signed > 0 && req.Status == domain.RequestStatusSent {
		_, err := s.requests.Transition(ctx, req.ID, domain.RequestStatusPartiallySigned)
		if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
			return false, fmt.Errorf("transition to partially_signed: %w", err)
		}
	}
	return false, nil
}

func (s *Service) complete(ctx context.Context, req domain.SignatureRequest, signers int) (bool, error) {
	var changed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		completed, err := s.requests.Transition(txCtx, req.ID, domain.RequestStatusCompleted)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) && completed.Status == domain.RequestStatusCompleted {
				return nil
			}
			return fmt.Errorf("transition to completed: %w", err)
		}
		changed = true

		if err := s.documents.UpdateStatus(txCtx, completed.DocumentID, domain.DocumentStatusCompleted); err != nil {
			return fmt.Errorf("update document status: %w", err)
		}
		if err := s.appendEvent(txCtx, completed, nil, domain.EventTypeCompleted, map[string]any{
			"signers":      signers,
			"completed_at": completed.CompletedAt,
		}); err != nil {
			return fmt.Errorf("append completed event: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		s.metrics.RequestCompleted()
		s.log.InfoContext(ctx, "signature request completed",
			slog.String("request_id", req.ID.String()),
			slog.String("document_id", req.DocumentID.String()),
		)
	}
	return true, nil
}
