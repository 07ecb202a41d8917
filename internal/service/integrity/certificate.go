package integrity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// BuildCertificate assembles the completion record of a document from its
// completed request. It only reads.
func (s *Service) BuildCertificate(ctx context.Context, documentID uuid.UUID) (domain.Certificate, error) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("get document: %w", err)
	}

	reqs, err := s.requests.ListByDocument(ctx, documentID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("list signature requests: %w", err)
	}
	var completed *domain.SignatureRequest
	for i := range reqs {
		if reqs[i].Status == domain.RequestStatusCompleted && reqs[i].CompletedAt != nil {
			completed = &reqs[i]
			break
		}
	}
	if completed == nil {
		return domain.Certificate{}, fmt.Errorf("document %s has no completed request: %w", documentID, domain.ErrInvalidTransition)
	}

	signers, err := s.signers.ListByRequest(ctx, completed.ID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("list signers: %w", err)
	}
	events, err := s.events.ListByDocument(ctx, documentID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("list document events: %w", err)
	}

	cert := domain.Certificate{
		DocumentID:    doc.ID,
		DocumentTitle: doc.Title,
		RequestID:     completed.ID,
		RequestTitle:  completed.Title,
		GeneratedAt:   doc.GeneratedAt,
		CompletedAt:   *completed.CompletedAt,
		Events:        events,
		IssuedAt:      s.now().UTC(),
	}
	if doc.SHA256Hex != nil {
		cert.SHA256Hex = *doc.SHA256Hex
	}
	if doc.ContentSHA256Hex != nil {
		cert.ContentSHA256Hex = *doc.ContentSHA256Hex
	}

	for _, sg := range signers {
		cs := domain.CertificateSigner{
			Name:          sg.Name,
			Email:         sg.Email,
			Phone:         sg.Phone,
			Role:          sg.Role,
			RoleLabel:     sg.Role.Label(),
			SigningOrder:  sg.SigningOrder,
			SignatureType: sg.SignatureType,
			DeviceInfo:    sg.DeviceInfo,
		}
		if sg.SignedAt != nil {
			cs.SignedAt = *sg.SignedAt
		}
		if sg.IPAddress != nil {
			cs.IPAddress = *sg.IPAddress
		}
		if sg.UserAgent != nil {
			cs.UserAgent = *sg.UserAgent
		}
		cert.Signers = append(cert.Signers, cs)
	}
	return cert, nil
}

// ListEvents returns the audit trail of a document, oldest first.
func (s *Service) ListEvents(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentEvent, error) {
	if _, err := s.documents.GetByID(ctx, documentID); err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	events, err := s.events.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document events: %w", err)
	}
	return events, nil
}
