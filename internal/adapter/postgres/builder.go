package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// ($1-style placeholders). Repositories build every statement with it.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Exec renders a squirrel statement and executes it on q.
func Exec(ctx context.Context, q Querier, stmt sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build sql: %w", err)
	}
	return q.Exec(ctx, sql, args...)
}

// Query renders a squirrel statement and runs it on q.
func Query(ctx context.Context, q Querier, stmt sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}
	return q.Query(ctx, sql, args...)
}

// QueryRow renders a squirrel statement and runs it on q. A build error is
// reported by the returned row's Scan.
func QueryRow(ctx context.Context, q Querier, stmt sq.Sqlizer) pgx.Row {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build sql: %w", err)}
	}
	return q.QueryRow(ctx, sql, args...)
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
