// Package signer implements the Signer repository using PostgreSQL.
//
// Token validation relies on ConsumeAttempt: the attempt counter is
// incremented and compared against max_attempts in one statement, so
// concurrent validations of the same token can never push it past the
// budget.
package signer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/docsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docsign-backend/internal/domain"
)

const table = "signers"

// TokenConstraint is the unique constraint on access_token.
const TokenConstraint = "signers_access_token_key"

var columns = []string{
	"id", "signature_request_id", "name", "email", "phone", "role", "signing_order",
	"status", "access_token", "expires_at", "access_attempts", "max_attempts", "is_expired",
	"signature_data", "signature_type", "signed_at", "ip_address", "user_agent", "device_info",
	"declined_at", "decline_reason", "reminded_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// finalStatuses are never mutated again once reached.
var finalStatuses = []string{
	string(domain.SignerStatusSigned),
	string(domain.SignerStatusDeclined),
	string(domain.SignerStatusExpired),
}

// Repo provides signer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new signer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts signers in a single statement. A duplicate access
// token surfaces as domain.ErrAlreadyExists.
func (r *Repo) CreateBatch(ctx context.Context, signers []domain.Signer) ([]domain.Signer, error) {
	if len(signers) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Insert(table).
		Columns("id", "signature_request_id", "name", "email", "phone", "role", "signing_order",
			"status", "access_token", "expires_at", "access_attempts", "max_attempts").
		Suffix(returning)

	for i := range signers {
		s := &signers[i]
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		if s.Status == "" {
			s.Status = domain.SignerStatusPending
		}
		stmt = stmt.Values(s.ID, s.SignatureRequestID, s.Name, s.Email, s.Phone, string(s.Role), s.SigningOrder,
			string(s.Status), s.AccessToken, s.ExpiresAt, s.AccessAttempts, s.MaxAttempts)
	}

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "signer", signers[0].SignatureRequestID)
	}
	out, err := collect(rows)
	if err != nil {
		return nil, postgres.MapError(err, "signer", signers[0].SignatureRequestID)
	}
	return out, nil
}

// ConsumeAttempt atomically spends one access attempt of the token and
// returns the updated signer. It returns domain.ErrNotFound when the token
// is unknown, its budget is used up, or the signer is declined or expired.
func (r *Repo) ConsumeAttempt(ctx context.Context, token string) (domain.Signer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Update(table).
		Set("access_attempts", sq.Expr("access_attempts + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"access_token": token}).
		Where("access_attempts < max_attempts").
		Where(sq.NotEq{"status": []string{string(domain.SignerStatusDeclined), string(domain.SignerStatusExpired)}}).
		Suffix(returning)

	s, err := scanSigner(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.Signer{}, postgres.MapError(err, "signer token", uuid.Nil)
	}
	return s, nil
}

// MarkSent moves every pending signer of a request to sent and starts
// their token window: expires_at becomes expiresAt and the expired flag is
// cleared. It returns the signers it moved.
func (r *Repo) MarkSent(ctx context.Context, requestID uuid.UUID, expiresAt time.Time) ([]domain.Signer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Update(table).
		Set("status", string(domain.SignerStatusSent)).
		Set("expires_at", expiresAt).
		Set("is_expired", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"signature_request_id": requestID, "status": string(domain.SignerStatusPending)}).
		Suffix(returning)

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "signer", requestID)
	}
	sent, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("scan sent signers: %w", err)
	}
	slices.SortFunc(sent, func(a, b domain.Signer) int { return a.SigningOrder - b.SigningOrder })
	return sent, nil
}

// MarkOpened moves a sent signer to opened. It reports whether the row
// changed, which is true only for the first access.
func (r *Repo) MarkOpened(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Update(table).
		Set("status", string(domain.SignerStatusOpened)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": string(domain.SignerStatusSent)})

	tag, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return false, postgres.MapError(err, "signer", id)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkSigned writes the signature and its evidence onto a signer that has
// not reached a final status. A signer that already signed yields
// domain.ErrAlreadySigned; a declined or expired one domain.ErrInvalidTransition.
func (r *Repo) MarkSigned(ctx context.Context, id uuid.UUID, c domain.SignatureCapture) (domain.Signer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	device, err := json.Marshal(c.Evidence.DeviceInfo)
	if err != nil {
		return domain.Signer{}, fmt.Errorf("signer device_info: %w", err)
	}

	stmt := postgres.Builder.Update(table).
		Set("status", string(domain.SignerStatusSigned)).
		Set("signature_data", c.SignatureData).
		Set("signature_type", string(c.SignatureType)).
		Set("signed_at", c.SignedAt).
		Set("ip_address", c.Evidence.IPAddress).
		Set("user_agent", c.Evidence.UserAgent).
		Set("device_info", device).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": finalStatuses}).
		Suffix(returning)

	s, err := scanSigner(postgres.QueryRow(ctx, q, stmt))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Signer{}, postgres.MapError(err, "signer", id)
	}
	return domain.Signer{}, r.finalStatusError(ctx, id)
}

// MarkDeclined records a decline on a signer that has not reached a final status.
func (r *Repo) MarkDeclined(ctx context.Context, id uuid.UUID, reason *string, at time.Time) (domain.Signer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Update(table).
		Set("status", string(domain.SignerStatusDeclined)).
		Set("declined_at", at).
		Set("decline_reason", reason).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": finalStatuses}).
		Suffix(returning)

	s, err := scanSigner(postgres.QueryRow(ctx, q, stmt))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Signer{}, postgres.MapError(err, "signer", id)
	}
	return domain.Signer{}, r.finalStatusError(ctx, id)
}

// MarkReminded stamps reminded_at on the given signers.
func (r *Repo) MarkReminded(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Update(table).
		Set("reminded_at", at).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids})

	if _, err := postgres.Exec(ctx, q, stmt); err != nil {
		return fmt.Errorf("mark signers reminded: %w", err)
	}
	return nil
}

// CleanupExpired flags every token past its window as expired and moves
// signers that never signed to the expired status. Already flagged rows are
// left alone, so repeated runs return 0. Signers of draft requests are
// skipped: their window only starts when the request is sent.
func (r *Repo) CleanupExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Update(table).
		Set("is_expired", true).
		Set("status", sq.Expr("CASE WHEN status IN (?, ?, ?) THEN ? ELSE status END",
			string(domain.SignerStatusPending), string(domain.SignerStatusSent), string(domain.SignerStatusOpened),
			string(domain.SignerStatusExpired))).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Lt{"expires_at": now}).
		Where(sq.Eq{"is_expired": false}).
		Where("signature_request_id NOT IN (SELECT id FROM signature_requests WHERE status = ?)",
			string(domain.RequestStatusDraft))

	tag, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return 0, fmt.Errorf("cleanup expired signer tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a signer by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Signer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	s, err := scanSigner(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.Signer{}, postgres.MapError(err, "signer", id)
	}
	return s, nil
}

// GetByToken returns a signer by access token without spending an attempt.
func (r *Repo) GetByToken(ctx context.Context, token string) (domain.Signer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"access_token": token})

	s, err := scanSigner(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.Signer{}, postgres.MapError(err, "signer token", uuid.Nil)
	}
	return s, nil
}

// ListByRequest returns the signers of a request in signing order.
func (r *Repo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Signer, error) {
	return r.ListByRequestIDs(ctx, []uuid.UUID{requestID})
}

// ListByRequestIDs returns the signers of several requests, ordered by
// request and signing order. Used by the batch loader.
func (r *Repo) ListByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]domain.Signer, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"signature_request_id": requestIDs}).
		OrderBy("signature_request_id", "signing_order", "created_at")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list signers by request: %w", err)
	}
	return collect(rows)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) finalStatusError(ctx context.Context, id uuid.UUID) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == domain.SignerStatusSigned {
		return fmt.Errorf("signer %s: %w", id, domain.ErrAlreadySigned)
	}
	return fmt.Errorf("signer %s is %s: %w", id, current.Status, domain.ErrInvalidTransition)
}

func collect(rows pgx.Rows) ([]domain.Signer, error) {
	defer rows.Close()

	var out []domain.Signer
	for rows.Next() {
		s, err := scanSigner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSigner(row postgres.Scanner) (domain.Signer, error) {
	var (
		s             domain.Signer
		role, status  string
		signatureType *string
		device        []byte
	)
	err := row.Scan(
		&s.ID, &s.SignatureRequestID, &s.Name, &s.Email, &s.Phone, &role, &s.SigningOrder,
		&status, &s.AccessToken, &s.ExpiresAt, &s.AccessAttempts, &s.MaxAttempts, &s.IsExpired,
		&s.SignatureData, &signatureType, &s.SignedAt, &s.IPAddress, &s.UserAgent, &device,
		&s.DeclinedAt, &s.DeclineReason, &s.RemindedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Signer{}, err
	}
	s.Role = domain.SignerRole(role)
	s.Status = domain.SignerStatus(status)
	if signatureType != nil {
		t := domain.SignatureType(*signatureType)
		s.SignatureType = &t
	}
	if len(device) > 0 {
		var info domain.DeviceInfo
		if err := json.Unmarshal(device, &info); err != nil {
			return domain.Signer{}, fmt.Errorf("unmarshal device_info: %w", err)
		}
		s.DeviceInfo = &info
	}
	return s, nil
}
