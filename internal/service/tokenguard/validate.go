package tokenguard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/pkg/ctxutil"
)

// ValidateAccessToken spends one access attempt of token and reports
// whether it grants access. Attempts are consumed whether the check then
// succeeds or fails, so the budget bounds guessing and replay alike.
//
// Only infrastructure failures are returned as errors; every rejection is a
// ValidationResult with Valid false.
func (s *Service) ValidateAccessToken(ctx context.Context, token string) (ValidationResult, error) {
	if s.wellFormed != nil && !s.wellFormed(token) {
		return s.reject(ctx, domain.Signer{}, ReasonMalformed), nil
	}

	signer, err := s.signers.ConsumeAttempt(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.metrics.TokenValidated(ReasonError)
			return ValidationResult{}, fmt.Errorf("consume access attempt: %w", err)
		}
		return s.classifyMiss(ctx, token)
	}

	if signer.TokenExpiredAt(s.now()) {
		return s.reject(ctx, signer, ReasonExpired), nil
	}

	if err := s.markOpened(ctx, signer); err != nil {
		s.log.WarnContext(ctx, "record signer opened failed",
			slog.String("signer_id", signer.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.metrics.TokenValidated(ReasonOK)
	return ValidationResult{Valid: true, Signer: signer, Reason: ReasonOK}, nil
}

// Authorize is ValidateAccessToken for callers that only need the signer:
// any rejection becomes domain.ErrInvalidToken.
func (s *Service) Authorize(ctx context.Context, token string) (domain.Signer, error) {
	res, err := s.ValidateAccessToken(ctx, token)
	if err != nil {
		return domain.Signer{}, err
	}
	if !res.Valid {
		return domain.Signer{}, domain.ErrInvalidToken
	}
	return res.Signer, nil
}

// classifyMiss looks the token up without spending budget, only to tell
// apart why ConsumeAttempt matched no row.
func (s *Service) classifyMiss(ctx context.Context, token string) (ValidationResult, error) {
	signer, err := s.signers.GetByToken(ctx, token)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return s.reject(ctx, domain.Signer{}, ReasonUnknown), nil
	case err != nil:
		s.metrics.TokenValidated(ReasonError)
		return ValidationResult{}, fmt.Errorf("lookup access token: %w", err)
	case signer.Status == domain.SignerStatusDeclined || signer.Status == domain.SignerStatusExpired:
		return s.reject(ctx, signer, ReasonInactive), nil
	default:
		return s.reject(ctx, signer, ReasonAttemptsExceeded), nil
	}
}

func (s *Service) reject(ctx context.Context, signer domain.Signer, reason string) ValidationResult {
	s.metrics.TokenValidated(reason)

	ip, _ := ctxutil.ClientFromCtx(ctx)
	attrs := []any{slog.String("reason", reason), slog.String("ip", ip)}
	if signer.ID != uuid.Nil {
		attrs = append(attrs,
			slog.String("signer_id", signer.ID.String()),
			slog.Int("attempts", signer.AccessAttempts),
		)
	}
	s.log.WarnContext(ctx, "signer token rejected", attrs...)

	return ValidationResult{Valid: false, Signer: signer, Reason: reason}
}

// markOpened moves a sent signer to opened on first access and appends an
// opened event. Later accesses are no-ops.
func (s *Service) markOpened(ctx context.Context, signer domain.Signer) error {
	if signer.Status != domain.SignerStatusSent {
		return nil
	}
	changed, err := s.signers.MarkOpened(ctx, signer.ID)
	if err != nil {
		return fmt.Errorf("mark opened: %w", err)
	}
	if !changed {
		return nil
	}

	req, err := s.requests.GetByID(ctx, signer.SignatureRequestID)
	if err != nil {
		return fmt.Errorf("get signature request: %w", err)
	}

	ip, ua := ctxutil.ClientFromCtx(ctx)
	_, err = s.events.Append(ctx, domain.DocumentEvent{
		DocumentID:         req.DocumentID,
		SignatureRequestID: &req.ID,
		SignerID:           &signer.ID,
		EventType:          domain.EventTypeOpened,
		IPAddress:          strOrNil(ip),
		UserAgent:          strOrNil(ua),
	})
	if err != nil {
		return fmt.Errorf("append opened event: %w", err)
	}
	return nil
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
