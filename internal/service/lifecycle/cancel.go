package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/pkg/ctxutil"
)

// Cancel withdraws a request that has not reached a terminal status.
func (s *Service) Cancel(ctx context.Context, requestID uuid.UUID, reason *string) (domain.SignatureRequest, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.SignatureRequest{}, domain.ErrUnauthorized
	}
	reason = trimOrNil(reason)
	if reason != nil && len(*reason) > maxReasonLen {
		return domain.SignatureRequest{}, domain.NewValidationError("reason", fmt.Sprintf("max %d characters", maxReasonLen))
	}

	var cancelled domain.SignatureRequest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		cancelled, err = s.requests.Transition(txCtx, requestID, domain.RequestStatusCancelled)
		if err != nil {
			return fmt.Errorf("transition to cancelled: %w", err)
		}
		if err := s.documents.UpdateStatus(txCtx, cancelled.DocumentID, domain.DocumentStatusCancelled); err != nil {
			return fmt.Errorf("update document status: %w", err)
		}
		data := map[string]any{}
		if reason != nil {
			data["reason"] = *reason
		}
		if err := s.appendEvent(txCtx, cancelled, nil, domain.EventTypeCancelled, data); err != nil {
			return fmt.Errorf("append cancelled event: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.SignatureRequest{}, err
	}

	s.log.InfoContext(ctx, "signature request cancelled", slog.String("request_id", requestID.String()))
	return cancelled, nil
}

// Decline records that the token holder refuses to sign. A signer that has
// already signed, declined or lapsed is never changed.
func (s *Service) Decline(ctx context.Context, input DeclineInput) (domain.Signer, error) {
	if err := input.Validate(); err != nil {
		return domain.Signer{}, err
	}

	signer, err := s.guard.Authorize(ctx, input.Token)
	if err != nil {
		return domain.Signer{}, err
	}

	req, err := s.requests.GetByID(ctx, signer.SignatureRequestID)
	if err != nil {
		return domain.Signer{}, fmt.Errorf("get signature request: %w", err)
	}
	if req.Status != domain.RequestStatusSent && req.Status != domain.RequestStatusPartiallySigned {
		return domain.Signer{}, fmt.Errorf("decline on %s request: %w", req.Status, domain.ErrInvalidTransition)
	}

	reason := trimOrNil(input.Reason)
	var declined domain.Signer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		declined, err = s.signers.MarkDeclined(txCtx, signer.ID, reason, s.now())
		if err != nil {
			return fmt.Errorf("mark declined: %w", err)
		}
		data := map[string]any{"signer_name": declined.Name, "role": declined.Role.String()}
		if reason != nil {
			data["reason"] = *reason
		}
		_, err = s.events.Append(txCtx, domain.DocumentEvent{
			DocumentID:         req.DocumentID,
			SignatureRequestID: &req.ID,
			SignerID:           &declined.ID,
			EventType:          domain.EventTypeDeclined,
			EventData:          data,
			IPAddress:          strOrNil(input.Evidence.IPAddress),
			UserAgent:          strOrNil(input.Evidence.UserAgent),
		})
		if err != nil {
			return fmt.Errorf("append declined event: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Signer{}, err
	}

	s.log.InfoContext(ctx, "signer declined",
		slog.String("request_id", req.ID.String()),
		slog.String("signer_id", declined.ID.String()),
	)
	return declined, nil
}
