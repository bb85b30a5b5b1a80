package sqlite

import (
	"context"
	"database/sql"

	// for database/sql
	_ "github.com/mattn/go-sqlite3"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/interfaces"
)

var _ interfaces.HookRepository = (*HookRepository)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS hooks (
	repo_key   TEXT PRIMARY KEY,
	record     TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// New opens the SQLite database at dsn and creates the schema if needed.
func New(ctx context.Context, dsn string) (*HookRepository, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("dsn", dsn))
	}
	// A single connection serializes writers and keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to initialize sqlite schema", goerr.V("dsn", dsn))
	}

	return &HookRepository{db: db}, nil
}

func (r *HookRepository) Close() error {
	return r.db.Close()
}
