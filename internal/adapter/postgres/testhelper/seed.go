package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/docsign-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDocument creates a draft document with a couple of field values.
func SeedDocument(t *testing.T, pool *pgxpool.Pool) domain.Document {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	tv := uuid.New()
	doc := domain.Document{
		ID:                uuid.New(),
		TemplateVersionID: &tv,
		Title:             "Lease agreement " + suffix,
		FieldValues:       map[string]any{"tenant": "Tenant " + suffix, "rent": "1200"},
		Metadata:          map[string]any{},
		Status:            domain.DocumentStatusDraft,
		CreatedBy:         uuid.New(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO documents (id, template_version_id, title, field_values, metadata, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, '{}'::jsonb, $5, $6, $7, $8)`,
		doc.ID, doc.TemplateVersionID, doc.Title, doc.FieldValues, string(doc.Status), doc.CreatedBy, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument insert: %v", err)
	}

	return doc
}

// SeedRequest creates a signature request for documentID in the given status.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, documentID uuid.UUID, status domain.RequestStatus) domain.SignatureRequest {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	req := domain.SignatureRequest{
		ID:         uuid.New(),
		DocumentID: documentID,
		Title:      "Please sign " + uniqueSuffix(),
		Status:     status,
		CreatedBy:  uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status == domain.RequestStatusCompleted {
		req.CompletedAt = &now
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO signature_requests (id, document_id, title, status, created_by, completed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		req.ID, req.DocumentID, req.Title, string(req.Status), req.CreatedBy, req.CompletedAt, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest insert: %v", err)
	}

	return req
}

// SignerOption customises a seeded signer.
type SignerOption func(*domain.Signer)

// WithSignerStatus sets the seeded signer's status.
func WithSignerStatus(s domain.SignerStatus) SignerOption {
	return func(sg *domain.Signer) { sg.Status = s }
}

// WithSignerRole sets the seeded signer's role.
func WithSignerRole(r domain.SignerRole) SignerOption {
	return func(sg *domain.Signer) { sg.Role = r }
}

// WithTokenExpiry sets the seeded signer's token expiry.
func WithTokenExpiry(at time.Time) SignerOption {
	return func(sg *domain.Signer) { sg.ExpiresAt = at }
}

// WithMaxAttempts sets the seeded signer's attempt budget.
func WithMaxAttempts(n int) SignerOption {
	return func(sg *domain.Signer) { sg.MaxAttempts = n }
}

// SeedSigner creates a signer on requestID. By default the signer is in
// status sent, has role signer, a 72h token and the default attempt budget.
func SeedSigner(t *testing.T, pool *pgxpool.Pool, requestID uuid.UUID, opts ...SignerOption) domain.Signer {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Signer{
		ID:                 uuid.New(),
		SignatureRequestID: requestID,
		Name:               "Signer " + suffix,
		Email:              "signer-" + suffix + "@example.com",
		Role:               domain.SignerRoleSigner,
		SigningOrder:       1,
		Status:             domain.SignerStatusSent,
		AccessToken:        "tok-" + uuid.New().String(),
		ExpiresAt:          now.Add(72 * time.Hour),
		MaxAttempts:        domain.DefaultMaxAttempts,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	var signatureData *string
	var signedAt *time.Time
	if s.Status == domain.SignerStatusSigned {
		data := "data:image/png;base64,iVBORw0KGgo="
		signatureData, signedAt = &data, &now
		s.SignatureData, s.SignedAt = signatureData, signedAt
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO signers (id, signature_request_id, name, email, role, signing_order, status,
		                      access_token, expires_at, max_attempts, signature_data, signed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		s.ID, s.SignatureRequestID, s.Name, s.Email, string(s.Role), s.SigningOrder, string(s.Status),
		s.AccessToken, s.ExpiresAt, s.MaxAttempts, signatureData, signedAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSigner insert: %v", err)
	}

	return s
}

// SeedArea creates a required signature area for role on documentID.
func SeedArea(t *testing.T, pool *pgxpool.Pool, documentID uuid.UUID, role domain.SignerRole) domain.SignatureArea {
	t.Helper()
	ctx := context.Background()

	a := domain.SignatureArea{
		ID:         uuid.New(),
		DocumentID: &documentID,
		Page:       1,
		X:          72,
		Y:          640,
		Width:      180,
		Height:     48,
		Role:       role,
		Kind:       domain.SignatureKindElectronic,
		IsRequired: true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO signature_areas (id, document_id, page, x, y, width, height, role, kind, is_required)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.DocumentID, a.Page, a.X, a.Y, a.Width, a.Height, string(a.Role), string(a.Kind), a.IsRequired,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArea insert: %v", err)
	}

	return a
}
