package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/interfaces"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/repository/firestore"
	"github.com/m-mizutani/vcshook/pkg/repository/memory"
	"github.com/m-mizutani/vcshook/pkg/repository/sqlite"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"
	"github.com/m-mizutani/vcshook/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

const (
	HookStoreMemory    = "memory"
	HookStoreSQLite    = "sqlite"
	HookStoreFirestore = "firestore"
)

type HookStore struct {
	backend             string
	sqlitePath          string
	firestoreProjectID  string
	firestoreDatabaseID string
}

func (x *HookStore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "hook-store",
			Usage:       "Hook store backend [memory|sqlite|firestore]",
			Category:    "Hook Store",
			Value:       HookStoreMemory,
			Sources:     cli.EnvVars("VCSHOOK_HOOK_STORE"),
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "SQLite database file of hook store",
			Category:    "Hook Store",
			Value:       "vcshook.db",
			Sources:     cli.EnvVars("VCSHOOK_SQLITE_PATH"),
			Destination: &x.sqlitePath,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID",
			Category:    "Hook Store",
			Sources:     cli.EnvVars("VCSHOOK_FIRESTORE_PROJECT_ID"),
			Destination: &x.firestoreProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Hook Store",
			Value:       "(default)",
			Sources:     cli.EnvVars("VCSHOOK_FIRESTORE_DATABASE_ID"),
			Destination: &x.firestoreDatabaseID,
		},
	}
}

func (x *HookStore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("sqlitePath", x.sqlitePath),
		slog.String("firestoreProjectID", x.firestoreProjectID),
		slog.String("firestoreDatabaseID", x.firestoreDatabaseID),
	)
}

// New opens the configured hook store. The returned function releases it.
func (x *HookStore) New(ctx context.Context) (interfaces.HookRepository, func(), error) {
	switch x.backend {
	case "", HookStoreMemory:
		logging.From(ctx).Warn("hook store is in memory, hooks are lost on exit")
		return memory.New(), func() {}, nil

	case HookStoreSQLite:
		repo, err := sqlite.New(ctx, x.sqlitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { safe.Close(repo) }, nil

	case HookStoreFirestore:
		if x.firestoreProjectID == "" {
			return nil, nil, goerr.Wrap(types.ErrInvalidOption, "firestore-project-id is required for firestore hook store")
		}
		repo, err := firestore.New(ctx, x.firestoreProjectID, x.firestoreDatabaseID)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { safe.Close(repo) }, nil

	default:
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "unknown hook store", goerr.V("backend", x.backend))
	}
}
