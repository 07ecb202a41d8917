// Package event implements the append-only document event trail using
// PostgreSQL. Rows are only ever inserted; a database trigger rejects updates.
package event

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/docsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docsign-backend/internal/domain"
)

const table = "document_events"

var columns = []string{
	"id", "document_id", "signature_request_id", "signer_id", "event_type",
	"event_data", "ip_address", "user_agent", `"timestamp"`,
}

// Repo provides document event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts an event. A zero Timestamp is filled by the database.
func (r *Repo) Append(ctx context.Context, e domain.DocumentEvent) (domain.DocumentEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	data, err := postgres.MarshalJSONB(e.EventData)
	if err != nil {
		return domain.DocumentEvent{}, fmt.Errorf("document_event data: %w", err)
	}

	cols := []string{"id", "document_id", "signature_request_id", "signer_id", "event_type",
		"event_data", "ip_address", "user_agent"}
	vals := []any{e.ID, e.DocumentID, e.SignatureRequestID, e.SignerID, string(e.EventType),
		data, e.IPAddress, e.UserAgent}
	if !e.Timestamp.IsZero() {
		cols = append(cols, `"timestamp"`)
		vals = append(vals, e.Timestamp)
	}

	stmt := postgres.Builder.Insert(table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := scanEvent(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.DocumentEvent{}, postgres.MapError(err, "document_event", e.ID)
	}
	return got, nil
}

// ListByDocument returns the trail of a document in chronological order.
func (r *Repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"document_id": documentID}).
		OrderBy(`"timestamp"`, "id")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list document_events: %w", err)
	}
	defer rows.Close()

	var out []domain.DocumentEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document_event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate document_events: %w", err)
	}
	return out, nil
}

func scanEvent(row postgres.Scanner) (domain.DocumentEvent, error) {
	var (
		e         domain.DocumentEvent
		eventType string
		data      []byte
	)
	err := row.Scan(
		&e.ID, &e.DocumentID, &e.SignatureRequestID, &e.SignerID, &eventType,
		&data, &e.IPAddress, &e.UserAgent, &e.Timestamp,
	)
	if err != nil {
		return domain.DocumentEvent{}, err
	}
	e.EventType = domain.EventType(eventType)
	if e.EventData, err = postgres.UnmarshalJSONB(data); err != nil {
		return domain.DocumentEvent{}, err
	}
	return e, nil
}
