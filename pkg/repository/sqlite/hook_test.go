package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/repository/sqlite"
	"github.com/m-mizutani/vcshook/pkg/repository/testhelper"
	"github.com/m-mizutani/vcshook/pkg/utils/safe"
)

func TestSQLiteHookRepository(t *testing.T) {
	t.Run("file database", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "hooks.db")
		repo := gt.R1(sqlite.New(context.Background(), dsn)).NoError(t)
		defer safe.Close(repo)

		testhelper.TestAll(t, repo)
	})

	t.Run("in-memory database", func(t *testing.T) {
		repo := gt.R1(sqlite.New(context.Background(), ":memory:")).NoError(t)
		defer safe.Close(repo)

		testhelper.TestAll(t, repo)
	})
}

func TestSQLiteHookRepositoryReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "hooks.db")

	repo := gt.R1(sqlite.New(ctx, dsn)).NoError(t)
	hooks := gt.R1(repo.ListHooks(ctx)).NoError(t)
	gt.V(t, len(hooks)).Equal(0)

	testhelper.TestHookCRUD(t, repo)
	testhelper.TestUpdateHook(t, repo)
	gt.NoError(t, repo.Close())

	reopened := gt.R1(sqlite.New(ctx, dsn)).NoError(t)
	defer safe.Close(reopened)

	hooks = gt.R1(reopened.ListHooks(ctx)).NoError(t)
	gt.V(t, len(hooks)).Equal(1)
}
