package store

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrations embed.FS

const migrationsTable = "schema_migrations"

// Migrations returns the names of the embedded schema migrations in execution order
func Migrations() ([]string, error) {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Migrate applies all embedded migrations that have not been applied yet.
// Each migration runs in its own transaction together with its bookkeeping row.
func (p *Postgres) Migrate(ctx context.Context) ([]string, error) {
	l := p.l.Named("migrate")

	if _, err := p.pool.Exec(ctx, "CREATE TABLE IF NOT EXISTS "+migrationsTable+
		" (version text PRIMARY KEY, applied_at timestamptz NOT NULL DEFAULT now())"); err != nil {
		return nil, errors.Wrap(err, "failed to create migrations table")
	}

	names, err := Migrations()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migrations")
	}

	var applied []string
	for _, name := range names {
		var exists bool
		if err := p.pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM "+migrationsTable+" WHERE version = $1)", name,
		).Scan(&exists); err != nil {
			return applied, errors.Wrapf(err, "failed to check migration %s", name)
		}
		if exists {
			l.Debug("skipping applied migration", zap.String("migration", name))
			continue
		}

		sql, err := migrations.ReadFile("migrations/" + name)
		if err != nil {
			return applied, errors.Wrapf(err, "failed to read migration %s", name)
		}
		err = pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO "+migrationsTable+" (version) VALUES ($1)", name)
			return err
		})
		if err != nil {
			return applied, errors.Wrapf(err, "failed to execute migration %s", name)
		}
		l.Info("applied migration", zap.String("migration", name))
		applied = append(applied, name)
	}
	return applied, nil
}
