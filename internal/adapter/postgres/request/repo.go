// Package request implements the SignatureRequest repository using PostgreSQL.
// Every status write is a guarded UPDATE: the row only changes when its
// current status is one the state graph allows to move to the target.
package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/docsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docsign-backend/internal/domain"
)

const table = "signature_requests"

var columns = []string{
	"id", "document_id", "title", "message", "status", "created_by",
	"expires_at", "completed_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides signature request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new signature request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a request in draft status.
func (r *Repo) Create(ctx context.Context, req domain.SignatureRequest) (domain.SignatureRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	stmt := postgres.Builder.Insert(table).
		Columns("id", "document_id", "title", "message", "status", "created_by", "expires_at").
		Values(req.ID, req.DocumentID, req.Title, req.Message, string(domain.RequestStatusDraft), req.CreatedBy, req.ExpiresAt).
		Suffix(returning)

	got, err := scanRequest(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.SignatureRequest{}, postgres.MapError(err, "signature_request", req.ID)
	}
	return got, nil
}

// GetByID returns a request by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.SignatureRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	got, err := scanRequest(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.SignatureRequest{}, postgres.MapError(err, "signature_request", id)
	}
	return got, nil
}

// GetForUpdate returns a request and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released at once.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.SignatureRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE")

	got, err := scanRequest(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.SignatureRequest{}, postgres.MapError(err, "signature_request", id)
	}
	return got, nil
}

// ListByDocument returns all requests for a document, newest first.
func (r *Repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.SignatureRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("created_at DESC", "id")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list signature_requests by document: %w", err)
	}
	return collect(rows)
}

// Transition moves the request to next when its current status allows it.
// completed_at is stamped only on the transition to completed, so it is
// written exactly once. When no row changes, the current row decides the
// error: ErrNotFound for a missing request, ErrInvalidTransition otherwise.
func (r *Repo) Transition(ctx context.Context, id uuid.UUID, next domain.RequestStatus) (domain.SignatureRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	from := domain.RequestStatusesFrom(next)
	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	stmt := postgres.Builder.Update(table).
		Set("status", string(next)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": allowed}).
		Suffix(returning)
	if next == domain.RequestStatusCompleted {
		stmt = stmt.Set("completed_at", sq.Expr("now()"))
	}

	got, err := scanRequest(postgres.QueryRow(ctx, q, stmt))
	if err == nil {
		return got, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.SignatureRequest{}, postgres.MapError(err, "signature_request", id)
	}

	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return domain.SignatureRequest{}, getErr
	}
	return current, fmt.Errorf("signature_request %s %s -> %s: %w", id, current.Status, next, domain.ErrInvalidTransition)
}

// ListExpirable returns non-terminal requests that should move to expired at
// now: the request deadline has passed, or every signer that has not signed
// has an expired token.
func (r *Repo) ListExpirable(ctx context.Context, now time.Time, limit int) ([]domain.SignatureRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	open := []string{
		string(domain.RequestStatusDraft),
		string(domain.RequestStatusSent),
		string(domain.RequestStatusPartiallySigned),
	}

	allSignersLapsed := sq.Expr(`(
		EXISTS (SELECT 1 FROM signers s WHERE s.signature_request_id = signature_requests.id)
		AND NOT EXISTS (
			SELECT 1 FROM signers s
			WHERE s.signature_request_id = signature_requests.id
			  AND s.status <> 'signed'
			  AND s.is_expired = false
			  AND s.expires_at >= ?
		)
		AND EXISTS (
			SELECT 1 FROM signers s
			WHERE s.signature_request_id = signature_requests.id
			  AND s.status <> 'signed'
		)
	)`, now)

	stmt := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"status": open}).
		Where(sq.Or{
			sq.And{sq.NotEq{"expires_at": nil}, sq.Lt{"expires_at": now}},
			sq.And{sq.NotEq{"status": string(domain.RequestStatusDraft)}, allSignersLapsed},
		}).
		OrderBy("created_at").
		Limit(uint64(limit))

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list expirable signature_requests: %w", err)
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]domain.SignatureRequest, error) {
	defer rows.Close()

	var out []domain.SignatureRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signature_request: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate signature_requests: %w", err)
	}
	return out, nil
}

func scanRequest(row postgres.Scanner) (domain.SignatureRequest, error) {
	var (
		req    domain.SignatureRequest
		status string
	)
	err := row.Scan(
		&req.ID, &req.DocumentID, &req.Title, &req.Message, &status, &req.CreatedBy,
		&req.ExpiresAt, &req.CompletedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return domain.SignatureRequest{}, err
	}
	req.Status = domain.RequestStatus(status)
	return req, nil
}
