package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// GetRequest returns a request with its signers.
func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (RequestView, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return RequestView{}, fmt.Errorf("get signature request: %w", err)
	}
	signers, err := s.signers.ListByRequest(ctx, id)
	if err != nil {
		return RequestView{}, fmt.Errorf("list signers: %w", err)
	}
	return RequestView{Request: req, Signers: signers}, nil
}

// ListRequests returns every request created for a document, newest first.
func (s *Service) ListRequests(ctx context.Context, documentID uuid.UUID) ([]domain.SignatureRequest, error) {
	reqs, err := s.requests.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("list signature requests: %w", err)
	}
	return reqs, nil
}
