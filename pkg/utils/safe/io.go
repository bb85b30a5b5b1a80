package safe

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/vcshook/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		if errors.Is(err, io.EOF) {
			return
		}
		logging.Default().Warn("Fail to close resource", slog.Any("error", err))
	}
}

// Rollback safely rolls back the transaction and logs error if any.
// It is meant to be deferred right after BeginTx, so ErrTxDone after a commit is ignored.
func Rollback(tx *sql.Tx) {
	if tx == nil {
		return
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logging.Default().Warn("Fail to rollback transaction", slog.Any("error", err))
	}
}
