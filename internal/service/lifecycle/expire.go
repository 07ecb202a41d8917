package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// ExpireStale moves every open request whose deadline passed, or whose
// unsigned signers have all lapsed, to expired. Requests that changed status
// concurrently are skipped. It returns how many requests were expired.
func (s *Service) ExpireStale(ctx context.Context) (int, error) {
	now := s.now()
	candidates, err := s.requests.ListExpirable(ctx, now, expireBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list expirable requests: %w", err)
	}

	expired := 0
	for _, req := range candidates {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			updated, err := s.requests.Transition(txCtx, req.ID, domain.RequestStatusExpired)
			if err != nil {
				return err
			}
			reason := "signer tokens lapsed"
			if req.IsExpiredAt(now) {
				reason = "request deadline passed"
			}
			if err := s.appendEvent(txCtx, updated, nil, domain.EventTypeExpired, map[string]any{
				"reason": reason,
			}); err != nil {
				return fmt.Errorf("append expired event: %w", err)
			}
			return nil
		})
		switch {
		case err == nil:
			expired++
		case errors.Is(err, domain.ErrInvalidTransition):
			continue
		default:
			return expired, fmt.Errorf("expire request %s: %w", req.ID, err)
		}
	}

	if expired > 0 {
		s.metrics.RequestsExpired(expired)
		s.log.InfoContext(ctx, "stale signature requests expired", slog.Int("count", expired))
	}
	return expired, nil
}
