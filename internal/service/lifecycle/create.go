package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
	"github.com/heartmarshall/docsign-backend/pkg/ctxutil"
)

// CreateRequest creates a draft signature request for a document.
func (s *Service) CreateRequest(ctx context.Context, input CreateRequestInput) (domain.SignatureRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SignatureRequest{}, domain.ErrUnauthorized
	}
	if err := input.Validate(s.now()); err != nil {
		return domain.SignatureRequest{}, err
	}

	if _, err := s.documents.GetByID(ctx, input.DocumentID); err != nil {
		return domain.SignatureRequest{}, fmt.Errorf("get document: %w", err)
	}

	var created domain.SignatureRequest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.requests.Create(txCtx, domain.SignatureRequest{
			DocumentID: input.DocumentID,
			Title:      strings.TrimSpace(input.Title),
			Message:    trimOrNil(input.Message),
			Status:     domain.RequestStatusDraft,
			CreatedBy:  userID,
			ExpiresAt:  input.ExpiresAt,
		})
		if err != nil {
			return fmt.Errorf("create signature request: %w", err)
		}
		data := map[string]any{
			"title":      created.Title,
			"created_by": userID.String(),
		}
		if role := ctxutil.UserRoleFromCtx(ctx); role != "" {
			data["created_by_role"] = role
		}
		if err := s.appendEvent(txCtx, created, nil, domain.EventTypeCreated, data); err != nil {
			return fmt.Errorf("append created event: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.SignatureRequest{}, err
	}

	s.log.InfoContext(ctx, "signature request created",
		slog.String("request_id", created.ID.String()),
		slog.String("document_id", created.DocumentID.String()),
	)
	return created, nil
}

// AddSigners attaches signers to a draft request, minting one access token
// per signer. All signers are inserted together or not at all. The request
// row stays locked while they are inserted, so a concurrent Send either sees
// all of them or runs first and makes this call fail.
func (s *Service) AddSigners(ctx context.Context, input AddSignersInput) ([]domain.Signer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// A failed statement aborts the transaction, so a token collision retries
	// the whole batch with fresh tokens.
	var created []domain.Signer
	for attempt := 1; ; attempt++ {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			req, err := s.requests.GetForUpdate(txCtx, input.RequestID)
			if err != nil {
				return fmt.Errorf("get signature request: %w", err)
			}
			if req.Status != domain.RequestStatusDraft {
				return fmt.Errorf("add signers to %s request: %w", req.Status, domain.ErrInvalidTransition)
			}

			areas, err := s.areas.ListByDocument(txCtx, req.DocumentID)
			if err != nil {
				return fmt.Errorf("list signature areas: %w", err)
			}

			batch, err := s.buildSigners(req.ID, input.Signers, areas)
			if err != nil {
				return err
			}
			created, err = s.signers.CreateBatch(txCtx, batch)
			if err != nil {
				return fmt.Errorf("create signers: %w", err)
			}
			return nil
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt >= tokenMintAttempts {
			return nil, err
		}
		s.log.WarnContext(ctx, "access token collision, retrying",
			slog.String("request_id", input.RequestID.String()),
			slog.Int("attempt", attempt),
		)
	}

	s.log.InfoContext(ctx, "signers added",
		slog.String("request_id", input.RequestID.String()),
		slog.Int("count", len(created)),
	)
	return created, nil
}

// buildSigners mints the signer rows. expires_at is provisional: Send
// restarts the window when the request goes out.
func (s *Service) buildSigners(requestID uuid.UUID, inputs []SignerInput, areas []domain.SignatureArea) ([]domain.Signer, error) {
	expiresAt := s.now().Add(s.cfg.TokenTTL)
	out := make([]domain.Signer, 0, len(inputs))
	for i, in := range inputs {
		token, err := s.newToken()
		if err != nil {
			return nil, fmt.Errorf("mint access token: %w", err)
		}
		role := in.Role
		if role == "" {
			role = domain.SignerRoleSigner
		}
		order := in.SigningOrder
		if order == 0 {
			order = i + 1
		}
		out = append(out, domain.Signer{
			SignatureRequestID: requestID,
			Name:               strings.TrimSpace(in.Name),
			Email:              strings.ToLower(strings.TrimSpace(in.Email)),
			Phone:              trimOrNil(in.Phone),
			Role:               role,
			SigningOrder:       order,
			Status:             domain.SignerStatusPending,
			AccessToken:        token,
			ExpiresAt:          expiresAt,
			MaxAttempts:        s.cfg.MaxAttempts + areasFor(role, areas),
		})
	}
	return out, nil
}

// areasFor counts the areas a signer of role may sign. A client signs on
// behalf of any role.
func areasFor(role domain.SignerRole, areas []domain.SignatureArea) int {
	if role == domain.SignerRoleClient {
		return len(areas)
	}
	n := 0
	for _, a := range areas {
		if a.Role == role {
			n++
		}
	}
	return n
}
