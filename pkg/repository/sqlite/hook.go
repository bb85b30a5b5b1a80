package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/repository"
	"github.com/m-mizutani/vcshook/pkg/utils/safe"
)

type HookRepository struct {
	db *sql.DB
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getHook(ctx context.Context, q queryer, key types.RepositoryKey) (*model.HookRecord, error) {
	var data string
	err := q.QueryRowContext(ctx, `SELECT record FROM hooks WHERE repo_key = ?`, string(key)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "hook not found",
			goerr.V("key", key),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get hook", goerr.V("key", key))
	}

	hook, err := model.DecodeHookRecord(data)
	if err != nil {
		return nil, goerr.Wrap(err, "broken hook record", goerr.V("key", key))
	}
	return hook, nil
}

func (r *HookRepository) GetHook(ctx context.Context, key types.RepositoryKey) (*model.HookRecord, error) {
	return getHook(ctx, r.db, key)
}

func (r *HookRepository) PutHook(ctx context.Context, key types.RepositoryKey, hook *model.HookRecord) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "key is empty")
	}

	data, err := model.EncodeHookRecord(hook)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO hooks (
			repo_key, record, updated_at
		)
		VALUES (?, ?, ?)
		ON CONFLICT (repo_key) DO UPDATE SET
			record = excluded.record,
			updated_at = excluded.updated_at`,
		string(key), data, time.Now().UTC())
	if err != nil {
		return goerr.Wrap(err, "failed to put hook", goerr.V("key", key))
	}

	return nil
}

func (r *HookRepository) DeleteHook(ctx context.Context, key types.RepositoryKey) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hooks WHERE repo_key = ?`, string(key))
	if err != nil {
		return goerr.Wrap(err, "failed to delete hook", goerr.V("key", key))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("key", key))
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "hook not found",
			goerr.V("key", key),
		)
	}

	return nil
}

func (r *HookRepository) ListHooks(ctx context.Context) (map[types.RepositoryKey]*model.HookRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT repo_key, record FROM hooks`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list hooks")
	}
	defer safe.Close(rows)

	hooks := make(map[types.RepositoryKey]*model.HookRecord)
	for rows.Next() {
		var key, data string
		if err := rows.Scan(&key, &data); err != nil {
			return nil, goerr.Wrap(err, "failed to scan hook row")
		}

		hook, err := model.DecodeHookRecord(data)
		if err != nil {
			return nil, goerr.Wrap(err, "broken hook record", goerr.V("key", key))
		}
		hooks[types.RepositoryKey(key)] = hook
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate hooks")
	}

	return hooks, nil
}

func (r *HookRepository) UpdateHook(ctx context.Context, key types.RepositoryKey, fn func(hook *model.HookRecord) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction", goerr.V("key", key))
	}
	defer safe.Rollback(tx)

	hook, err := getHook(ctx, tx, key)
	if err != nil {
		return err
	}
	if err := fn(hook); err != nil {
		return err
	}

	data, err := model.EncodeHookRecord(hook)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE hooks SET record = ?, updated_at = ? WHERE repo_key = ?`,
		data, time.Now().UTC(), string(key)); err != nil {
		return goerr.Wrap(err, "failed to update hook", goerr.V("key", key))
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit hook update", goerr.V("key", key))
	}

	return nil
}
