// Package notification implements notification log persistence using PostgreSQL.
package notification

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

const table = "notification_logs"

var columns = []string{
	"id", "signature_request_id", "signer_id", "notification_type", "status",
	"message_content", "sent_at", "error_message", "created_at",
}

// Repo provides notification log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a delivery log entry.
func (r *Repo) Create(ctx context.Context, l domain.NotificationLog) (domain.NotificationLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	stmt := postgres.Builder.Insert(table).
		Columns("id", "signature_request_id", "signer_id", "notification_type", "status",
			"message_content", "sent_at", "error_message").
		Values(l.ID, l.SignatureRequestID, l.SignerID, string(l.NotificationType), string(l.Status),
			l.MessageContent, l.SentAt, l.ErrorMessage).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	got, err := scanLog(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return domain.NotificationLog{}, postgres.MapError(err, "notification_log", l.ID)
	}
	return got, nil
}

// ListByRequest returns the delivery logs of a request, oldest first.
func (r *Repo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.NotificationLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"signature_request_id": requestID}).
		OrderBy("created_at", "id")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list notification_logs: %w", err)
	}
	defer rows.Close()

	var out []domain.NotificationLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification_log: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notification_logs: %w", err)
	}
	return out, nil
}

func scanLog(row postgres.Scanner) (domain.NotificationLog, error) {
	var (
		l              domain.NotificationLog
		channel, state string
	)
	err := row.Scan(
		&l.ID, &l.SignatureRequestID, &l.SignerID, &channel, &state,
		&l.MessageContent, &l.SentAt, &l.ErrorMessage, &l.CreatedAt,
	)
	if err != nil {
		return domain.NotificationLog{}, err
	}
	l.NotificationType = domain.NotificationChannel(channel)
	l.Status = domain.NotificationStatus(state)
	return l, nil
}
