package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/internal/notify"
)

// Send moves a draft request to sent and notifies every signer. The signers'
// token window starts here, so a draft may wait any time before it is sent.
// Delivery failures are recorded in the notification log and never fail Send.
func (s *Service) Send(ctx context.Context, input SendInput) (SendResult, error) {
	if err := input.Validate(); err != nil {
		return SendResult{}, err
	}

	var (
		req     domain.SignatureRequest
		signers []domain.Signer
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.requests.GetForUpdate(txCtx, input.RequestID)
		if err != nil {
			return fmt.Errorf("get signature request: %w", err)
		}
		all, err := s.signers.ListByRequest(txCtx, current.ID)
		if err != nil {
			return fmt.Errorf("list signers: %w", err)
		}
		if len(all) == 0 {
			return domain.NewValidationError("signers", "request has no signers")
		}

		req, err = s.requests.Transition(txCtx, current.ID, domain.RequestStatusSent)
		if err != nil {
			return fmt.Errorf("transition to sent: %w", err)
		}
		signers, err = s.signers.MarkSent(txCtx, req.ID, s.now().Add(s.cfg.TokenTTL))
		if err != nil {
			return fmt.Errorf("mark signers sent: %w", err)
		}
		if err := s.documents.UpdateStatus(txCtx, req.DocumentID, domain.DocumentStatusSent); err != nil {
			return fmt.Errorf("update document status: %w", err)
		}
		if err := s.appendEvent(txCtx, req, nil, domain.EventTypeSent, map[string]any{
			"signers": len(signers),
		}); err != nil {
			return fmt.Errorf("append sent event: %w", err)
		}
		return nil
	})
	if err != nil {
		return SendResult{}, err
	}

	doc, err := s.documents.GetByID(ctx, req.DocumentID)
	if err != nil {
		return SendResult{}, fmt.Errorf("get document: %w", err)
	}

	result := s.deliver(ctx, req, doc.Title, signers, input.wantsWhatsApp(), false)
	result.Request = req

	s.log.InfoContext(ctx, "signature request sent",
		slog.String("request_id", req.ID.String()),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

// Remind re-sends the invitation to signers that have not signed yet.
func (s *Service) Remind(ctx context.Context, requestID uuid.UUID) (SendResult, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return SendResult{}, fmt.Errorf("get signature request: %w", err)
	}
	if req.Status != domain.RequestStatusSent && req.Status != domain.RequestStatusPartiallySigned {
		return SendResult{}, fmt.Errorf("remind %s request: %w", req.Status, domain.ErrInvalidTransition)
	}

	all, err := s.signers.ListByRequest(ctx, req.ID)
	if err != nil {
		return SendResult{}, fmt.Errorf("list signers: %w", err)
	}
	now := s.now()
	var (
		waiting []domain.Signer
		ids     []uuid.UUID
	)
	for _, sg := range all {
		if sg.Status != domain.SignerStatusSent && sg.Status != domain.SignerStatusOpened {
			continue
		}
		if sg.TokenExpiredAt(now) {
			continue
		}
		waiting = append(waiting, sg)
		ids = append(ids, sg.ID)
	}
	if len(waiting) == 0 {
		return SendResult{Request: req}, nil
	}

	doc, err := s.documents.GetByID(ctx, req.DocumentID)
	if err != nil {
		return SendResult{}, fmt.Errorf("get document: %w", err)
	}

	result := s.deliver(ctx, req, doc.Title, waiting, false, true)
	result.Request = req

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.signers.MarkReminded(txCtx, ids, now); err != nil {
			return fmt.Errorf("mark reminded: %w", err)
		}
		if err := s.appendEvent(txCtx, req, nil, domain.EventTypeReminded, map[string]any{
			"signers":   len(waiting),
			"delivered": result.Delivered,
		}); err != nil {
			return fmt.Errorf("append reminded event: %w", err)
		}
		return nil
	})
	if err != nil {
		return SendResult{}, err
	}

	s.log.InfoContext(ctx, "signers reminded",
		slog.String("request_id", req.ID.String()),
		slog.Int("delivered", result.Delivered),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

// deliver sends one notification per signer per channel, bounded by
// NotifyConcurrency, and records every attempt.
func (s *Service) deliver(
	ctx context.Context,
	req domain.SignatureRequest,
	documentTitle string,
	signers []domain.Signer,
	whatsapp bool,
	reminder bool,
) SendResult {
	var delivered, failed atomic.Int64

	kind := "signature invitation"
	if reminder {
		kind = "signature reminder"
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.NotifyConcurrency)

	for _, sg := range signers {
		url := s.guard.SigningURL(sg.AccessToken)

		g.Go(func() error {
			err := s.sender.SendInvitation(gctx, notify.Invitation{
				SignatureRequestID: req.ID,
				SignerEmail:        sg.Email,
				SignerName:         sg.Name,
				DocumentTitle:      documentTitle,
				AccessToken:        sg.AccessToken,
				SigningURL:         url,
				Message:            req.Message,
				ExpiresAt:          sg.ExpiresAt,
				Reminder:           reminder,
			})
			s.record(gctx, req.ID, sg.ID, domain.NotificationChannelEmail, kind, err, &delivered, &failed)
			return nil
		})

		if whatsapp && sg.Phone != nil {
			g.Go(func() error {
				err := s.sender.SendWhatsApp(gctx, notify.WhatsAppMessage{
					SignatureRequestID: req.ID,
					Phone:              *sg.Phone,
					SignerName:         sg.Name,
					DocumentTitle:      documentTitle,
					SigningURL:         url,
					ExpiresAt:          sg.ExpiresAt,
					Reminder:           reminder,
				})
				s.record(gctx, req.ID, sg.ID, domain.NotificationChannelWhatsApp, kind, err, &delivered, &failed)
				return nil
			})
		}
	}
	_ = g.Wait()

	return SendResult{Delivered: int(delivered.Load()), Failed: int(failed.Load())}
}

func (s *Service) record(
	ctx context.Context,
	requestID, signerID uuid.UUID,
	channel domain.NotificationChannel,
	content string,
	sendErr error,
	delivered, failed *atomic.Int64,
) {
	entry := domain.NotificationLog{
		SignatureRequestID: requestID,
		SignerID:           signerID,
		NotificationType:   channel,
		MessageContent:     &content,
	}
	if sendErr != nil {
		failed.Add(1)
		msg := sendErr.Error()
		entry.Status = domain.NotificationStatusFailed
		entry.ErrorMessage = &msg
		s.metrics.NotificationSent(channel.String(), domain.NotificationStatusFailed.String())
		s.log.WarnContext(ctx, "notification delivery failed",
			slog.String("request_id", requestID.String()),
			slog.String("signer_id", signerID.String()),
			slog.String("channel", channel.String()),
			slog.String("error", msg),
		)
	} else {
		delivered.Add(1)
		now := s.now()
		entry.Status = domain.NotificationStatusSent
		entry.SentAt = &now
		s.metrics.NotificationSent(channel.String(), domain.NotificationStatusSent.String())
	}

	if _, err := s.notifications.Create(ctx, entry); err != nil {
		s.log.ErrorContext(ctx, "write notification log",
			slog.String("signer_id", signerID.String()),
			slog.String("error", err.Error()),
		)
	}
}
