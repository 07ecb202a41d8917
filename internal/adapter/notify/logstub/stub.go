// Package logstub is the notification sender used when no delivery
// functions are configured. It only logs what would have been sent.
package logstub

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/docsign-backend/internal/notify"
)

// Sender logs notifications instead of delivering them.
type Sender struct {
	log *slog.Logger
}

// New creates a logging Sender.
func New(logger *slog.Logger) *Sender {
	return &Sender{log: logger.With("adapter", "notify_stub")}
}

// SendInvitation logs the invitation and reports success.
func (s *Sender) SendInvitation(ctx context.Context, inv notify.Invitation) error {
	s.log.InfoContext(ctx, "invitation not sent: delivery disabled",
		slog.String("request_id", inv.SignatureRequestID.String()),
		slog.String("email", inv.SignerEmail),
		slog.String("signing_url", inv.SigningURL),
		slog.Bool("reminder", inv.Reminder),
	)
	return nil
}

// SendWhatsApp logs the message and reports success.
func (s *Sender) SendWhatsApp(ctx context.Context, msg notify.WhatsAppMessage) error {
	s.log.InfoContext(ctx, "whatsapp not sent: delivery disabled",
		slog.String("request_id", msg.SignatureRequestID.String()),
		slog.String("phone", msg.Phone),
		slog.String("signing_url", msg.SigningURL),
	)
	return nil
}
