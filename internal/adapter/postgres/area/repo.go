// Package area implements signature area and area binding persistence
// using PostgreSQL.
package area

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/docsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docsign-backend/internal/domain"
)

const (
	areaTable    = "signature_areas"
	bindingTable = "signature_area_bindings"
)

var columns = []string{
	"id", "document_id", "template_version_id", "page", "x", "y", "width", "height",
	"role", "kind", "is_required", "label",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var bindingColumns = []string{"area_id", "signer_id", "signed_at"}

// Repo provides signature area persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new signature area repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a signature area.
func (r *Repo) Create(ctx context.Context, a domain.SignatureArea) (domain.SignatureArea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Kind == "" {
		a.Kind = domain.SignatureKindElectronic
	}

	stmt := postgres.Builder.Insert(areaTable).
		Columns(columns...).
		Values(a.ID, a.DocumentID, a.TemplateVersionID, a.Page, a.X, a.Y, a.Width, a.Height,
			string(a.Role), string(a.Kind), a.IsRequired, a.Label).
		Suffix(returning)

	got, err := scanArea(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.SignatureArea{}, postgres.MapError(err, "signature_area", a.ID)
	}
	return got, nil
}

// GetByID returns a signature area by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.SignatureArea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(areaTable).Where(sq.Eq{"id": id})

	a, err := scanArea(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.SignatureArea{}, postgres.MapError(err, "signature_area", id)
	}
	return a, nil
}

// ListByDocument returns the areas placed on a document, by page then position.
func (r *Repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.SignatureArea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(areaTable).
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("page", "y", "x")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list signature_areas by document: %w", err)
	}
	defer rows.Close()

	var out []domain.SignatureArea
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signature_area: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate signature_areas: %w", err)
	}
	return out, nil
}

// Bind records that signer signed the area. The area id is the primary
// key, so a second bind of the same area returns domain.ErrAlreadySigned.
func (r *Repo) Bind(ctx context.Context, b domain.AreaBinding) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Insert(bindingTable).
		Columns(bindingColumns...).
		Values(b.AreaID, b.SignerID, b.SignedAt)

	if _, err := postgres.Exec(ctx, q, stmt); err != nil {
		if postgres.IsUniqueViolationOn(err, "signature_area_bindings_pkey") {
			return fmt.Errorf("signature_area %s: %w", b.AreaID, domain.ErrAlreadySigned)
		}
		return postgres.MapError(err, "signature_area_binding", b.AreaID)
	}
	return nil
}

// GetBinding returns the binding of an area, or domain.ErrNotFound when the
// area is still unsigned.
func (r *Repo) GetBinding(ctx context.Context, areaID uuid.UUID) (domain.AreaBinding, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(bindingColumns...).From(bindingTable).Where(sq.Eq{"area_id": areaID})

	var b domain.AreaBinding
	if err := postgres.QueryRow(ctx, q, stmt).Scan(&b.AreaID, &b.SignerID, &b.SignedAt); err != nil {
		return domain.AreaBinding{}, postgres.MapError(err, "signature_area_binding", areaID)
	}
	return b, nil
}

// ListBindingsByDocument returns the bindings of every area on a document.
func (r *Repo) ListBindingsByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.AreaBinding, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select("b.area_id", "b.signer_id", "b.signed_at").
		From(bindingTable + " b").
		Join(areaTable + " a ON a.id = b.area_id").
		Where(sq.Eq{"a.document_id": documentID}).
		OrderBy("b.signed_at")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list area bindings by document: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AreaBinding, error) {
		var b domain.AreaBinding
		err := row.Scan(&b.AreaID, &b.SignerID, &b.SignedAt)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan area bindings: %w", err)
	}
	return out, nil
}

// CountUnboundRequired returns how many required areas of a document have
// no binding yet.
func (r *Repo) CountUnboundRequired(ctx context.Context, documentID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select("count(*)").
		From(areaTable + " a").
		LeftJoin(bindingTable + " b ON b.area_id = a.id").
		Where(sq.Eq{"a.document_id": documentID, "a.is_required": true, "b.area_id": nil})

	var n int
	if err := postgres.QueryRow(ctx, q, stmt).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "signature_area", documentID)
	}
	return n, nil
}

func scanArea(row postgres.Scanner) (domain.SignatureArea, error) {
	var (
		a          domain.SignatureArea
		role, kind string
	)
	err := row.Scan(
		&a.ID, &a.DocumentID, &a.TemplateVersionID, &a.Page, &a.X, &a.Y, &a.Width, &a.Height,
		&role, &kind, &a.IsRequired, &a.Label,
	)
	if err != nil {
		return domain.SignatureArea{}, err
	}
	a.Role = domain.SignerRole(role)
	a.Kind = domain.SignatureKind(kind)
	return a, nil
}
