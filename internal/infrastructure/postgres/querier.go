package postgres

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier operaciones comunes de *pgxpool.Pool, pgx.Tx y pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Beginner abre transacciones (pool o mock).
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// lockedQuerier serializa las sentencias sobre una única conexión: pgx.Tx no admite uso concurrente.
// Las filas de Query mantienen el candado hasta Close.
type lockedQuerier struct {
	mu sync.Mutex
	q  Querier
}

func newLockedQuerier(q Querier) *lockedQuerier {
	return &lockedQuerier{q: q}
}

func (l *lockedQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Exec(ctx, sql, args...)
}

func (l *lockedQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	l.mu.Lock()
	rows, err := l.q.Query(ctx, sql, args...)
	if err != nil {
		l.mu.Unlock()
		return nil, err
	}
	return &lockedRows{Rows: rows, unlock: l.mu.Unlock}, nil
}

func (l *lockedQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	l.mu.Lock()
	return &lockedRow{row: l.q.QueryRow(ctx, sql, args...), unlock: l.mu.Unlock}
}

func (l *lockedQuerier) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.CopyFrom(ctx, tableName, columnNames, rowSrc)
}

type lockedRows struct {
	pgx.Rows
	unlock func()
	once   sync.Once
}

func (r *lockedRows) Close() {
	r.Rows.Close()
	r.once.Do(r.unlock)
}

// Next libera el candado al agotar las filas, igual que pgx cierra Rows.
func (r *lockedRows) Next() bool {
	if r.Rows.Next() {
		return true
	}
	r.once.Do(r.unlock)
	return false
}

type lockedRow struct {
	row    pgx.Row
	unlock func()
}

func (r *lockedRow) Scan(dest ...any) error {
	defer r.unlock()
	return r.row.Scan(dest...)
}
