// Package document implements the Document repository using PostgreSQL.
package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/docsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docsign-backend/internal/domain"
)

const table = "documents"

var columns = []string{
	"id", "template_version_id", "title", "field_values", "metadata",
	"sha256_hex", "content_sha256_hex", "generated_at", "status",
	"created_by", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a document and returns the persisted row.
func (r *Repo) Create(ctx context.Context, doc domain.Document) (domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.Status == "" {
		doc.Status = domain.DocumentStatusDraft
	}

	fieldValues, err := postgres.MarshalJSONB(doc.FieldValues)
	if err != nil {
		return domain.Document{}, fmt.Errorf("document field_values: %w", err)
	}
	metadata, err := postgres.MarshalJSONB(doc.Metadata)
	if err != nil {
		return domain.Document{}, fmt.Errorf("document metadata: %w", err)
	}

	stmt := postgres.Builder.Insert(table).
		Columns("id", "template_version_id", "title", "field_values", "metadata", "status", "created_by").
		Values(doc.ID, doc.TemplateVersionID, doc.Title, fieldValues, metadata, string(doc.Status), doc.CreatedBy).
		Suffix(returning)

	got, err := scanDocument(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.Document{}, postgres.MapError(err, "document", doc.ID)
	}
	return got, nil
}

// GetByID returns a document by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	doc, err := scanDocument(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.Document{}, postgres.MapError(err, "document", id)
	}
	return doc, nil
}

// UpdateIntegrity persists the hash material of a render in a single
// statement and moves a draft document to generated.
func (r *Repo) UpdateIntegrity(ctx context.Context, id uuid.UUID, in domain.DocumentIntegrity) (domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	fieldValues, err := postgres.MarshalJSONB(in.FieldValues)
	if err != nil {
		return domain.Document{}, fmt.Errorf("document field_values: %w", err)
	}
	metadata, err := postgres.MarshalJSONB(in.Metadata)
	if err != nil {
		return domain.Document{}, fmt.Errorf("document metadata: %w", err)
	}

	stmt := postgres.Builder.Update(table).
		Set("template_version_id", sq.Expr("COALESCE(?, template_version_id)", in.TemplateVersionID)).
		Set("sha256_hex", in.SHA256Hex).
		Set("content_sha256_hex", in.ContentSHA256Hex).
		Set("generated_at", in.GeneratedAt).
		Set("field_values", fieldValues).
		Set("metadata", sq.Expr("metadata || ?::jsonb", metadata)).
		Set("status", sq.Expr("CASE WHEN status = ? THEN ? ELSE status END",
			string(domain.DocumentStatusDraft), string(domain.DocumentStatusGenerated))).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	doc, err := scanDocument(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.Document{}, postgres.MapError(err, "document", id)
	}
	return doc, nil
}

// UpdateStatus sets the document status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	tag, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanDocument(row postgres.Scanner) (domain.Document, error) {
	var (
		d           domain.Document
		fieldValues []byte
		metadata    []byte
		status      string
		generatedAt *time.Time
	)
	err := row.Scan(
		&d.ID, &d.TemplateVersionID, &d.Title, &fieldValues, &metadata,
		&d.SHA256Hex, &d.ContentSHA256Hex, &generatedAt, &status,
		&d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return domain.Document{}, err
	}
	if d.FieldValues, err = postgres.UnmarshalJSONB(fieldValues); err != nil {
		return domain.Document{}, err
	}
	if d.Metadata, err = postgres.UnmarshalJSONB(metadata); err != nil {
		return domain.Document{}, err
	}
	d.GeneratedAt = generatedAt
	d.Status = domain.DocumentStatus(status)
	return d, nil
}
