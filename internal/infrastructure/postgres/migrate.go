package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jhoicas/area-freight/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const migrationLockID = 7305211

// Migrate aplica en orden lexicográfico los .sql de migrations que aún no figuran en schema_migrations.
// Un advisory lock evita ejecuciones simultáneas.
func Migrate(ctx context.Context, q Querier, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("migrate")

	if _, err := q.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		if _, err := q.Exec(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID); err != nil {
			log.Warn().Err(err).Msg("no se pudo liberar el lock de migraciones")
		}
	}()

	if _, err := q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	applied, err := appliedMigrations(ctx, q)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if applied[name] {
			continue
		}
		data, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, "INSERT INTO schema_migrations (filename) VALUES ($1)", name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		log.Info().Str("file", name).Msg("migración aplicada")
	}
	return nil
}

func appliedMigrations(ctx context.Context, q Querier) (map[string]bool, error) {
	rows, err := q.Query(ctx, "SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan migration: %w", err)
		}
		applied[name] = true
	}
	return applied, rows.Err()
}
