package tokenguard

import (
	"context"
	"fmt"
	"log/slog"
)

// CleanupExpiredTokens flags every token past its window as expired and
// moves signers that never signed to expired. It is idempotent: a second
// run right after the first returns 0.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.signers.CleanupExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("cleanup expired tokens: %w", err)
	}

	s.metrics.TokensExpired(int(n))
	s.log.InfoContext(ctx, "expired signer tokens swept", slog.Int64("count", n))

	return int(n), nil
}
