package testhelper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/domain/interfaces"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/repository"
)

// TestAll runs all test cases for HookRepository
// This is the main entry point for testing any HookRepository implementation
func TestAll(t *testing.T, repo interfaces.HookRepository) {
	t.Run("HookCRUD", func(t *testing.T) {
		TestHookCRUD(t, repo)
	})
	t.Run("UpdateHook", func(t *testing.T) {
		TestUpdateHook(t, repo)
	})
	t.Run("UpdateHookNotFound", func(t *testing.T) {
		TestUpdateHookNotFound(t, repo)
	})
	t.Run("UpdateHookAborted", func(t *testing.T) {
		TestUpdateHookAborted(t, repo)
	})
	t.Run("ListHooks", func(t *testing.T) {
		TestListHooks(t, repo)
	})
	t.Run("ConcurrentUpdate", func(t *testing.T) {
		TestConcurrentUpdate(t, repo)
	})
}

func newKey() types.RepositoryKey {
	return model.NewRepositoryKey("github.com",
		fmt.Sprintf("owner-%s", uuid.New().String()[:8]),
		fmt.Sprintf("repo-%s", uuid.New().String()[:8]),
	)
}

// TestHookCRUD tests basic CRUD operations for HookRecord
func TestHookCRUD(t *testing.T, repo interfaces.HookRepository) {
	ctx := context.Background()
	key := newKey()

	hook := model.NewHookRecord(10, "https://api.github.com/repos/owner/repo/hooks/10")
	gt.NoError(t, repo.PutHook(ctx, key, hook))

	retrieved, err := repo.GetHook(ctx, key)
	gt.NoError(t, err)
	gt.True(t, retrieved.Equal(hook))

	// Overwrite
	lastUsed := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	hook.Correct = false
	hook.Touch(lastUsed)
	hook.MergeBranchRevisions(map[string]string{"refs/heads/main": "abc"})
	gt.NoError(t, repo.PutHook(ctx, key, hook))

	retrieved, err = repo.GetHook(ctx, key)
	gt.NoError(t, err)
	gt.True(t, retrieved.Equal(hook))
	gt.False(t, retrieved.Correct)
	gt.V(t, retrieved.LastUsed.Equal(lastUsed)).Equal(true)

	// Returned record is a copy
	retrieved.MergeBranchRevisions(map[string]string{"refs/heads/main": "modified"})
	again, err := repo.GetHook(ctx, key)
	gt.NoError(t, err)
	gt.V(t, again.LastBranchRevisions["refs/heads/main"]).Equal("abc")

	// Delete
	gt.NoError(t, repo.DeleteHook(ctx, key))
	_, err = repo.GetHook(ctx, key)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.DeleteHook(ctx, key)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestUpdateHook tests that UpdateHook merges into the stored record
func TestUpdateHook(t *testing.T, repo interfaces.HookRepository) {
	ctx := context.Background()
	key := newKey()

	hook := model.NewHookRecord(20, "url")
	hook.MergeBranchRevisions(map[string]string{"refs/heads/main": "aaa", "refs/heads/dev": "bbb"})
	gt.NoError(t, repo.PutHook(ctx, key, hook))

	now := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)
	gt.NoError(t, repo.UpdateHook(ctx, key, func(hook *model.HookRecord) error {
		hook.Touch(now)
		hook.MergeBranchRevisions(map[string]string{"refs/heads/main": "ccc", "refs/heads/feature/x": "ddd"})
		return nil
	}))

	retrieved, err := repo.GetHook(ctx, key)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(int64(20))
	gt.True(t, retrieved.Correct)
	gt.V(t, retrieved.LastUsed.Equal(now)).Equal(true)
	gt.V(t, retrieved.LastBranchRevisions).Equal(map[string]string{
		"refs/heads/main":      "ccc",
		"refs/heads/dev":       "bbb",
		"refs/heads/feature/x": "ddd",
	})
}

// TestUpdateHookNotFound tests that UpdateHook does not create records
func TestUpdateHookNotFound(t *testing.T, repo interfaces.HookRepository) {
	ctx := context.Background()
	key := newKey()

	called := false
	err := repo.UpdateHook(ctx, key, func(hook *model.HookRecord) error {
		called = true
		return nil
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
	gt.False(t, called)

	_, err = repo.GetHook(ctx, key)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestUpdateHookAborted tests that an error from the update function keeps the stored record
func TestUpdateHookAborted(t *testing.T, repo interfaces.HookRepository) {
	ctx := context.Background()
	key := newKey()

	gt.NoError(t, repo.PutHook(ctx, key, model.NewHookRecord(30, "url")))

	errAbort := errors.New("abort")
	err := repo.UpdateHook(ctx, key, func(hook *model.HookRecord) error {
		hook.Correct = false
		return errAbort
	})
	gt.True(t, errors.Is(err, errAbort))

	retrieved, err := repo.GetHook(ctx, key)
	gt.NoError(t, err)
	gt.True(t, retrieved.Correct)
}

// TestListHooks tests listing all stored hooks
func TestListHooks(t *testing.T, repo interfaces.HookRepository) {
	ctx := context.Background()
	key1, key2 := newKey(), newKey()

	gt.NoError(t, repo.PutHook(ctx, key1, model.NewHookRecord(41, "url1")))
	gt.NoError(t, repo.PutHook(ctx, key2, model.NewHookRecord(42, "url2")))

	hooks, err := repo.ListHooks(ctx)
	gt.NoError(t, err)
	gt.V(t, hooks[key1]).NotEqual((*model.HookRecord)(nil))
	gt.V(t, hooks[key2]).NotEqual((*model.HookRecord)(nil))
	gt.V(t, hooks[key1].ID).Equal(int64(41))
	gt.V(t, hooks[key2].URL).Equal("url2")
}

// TestConcurrentUpdate tests that concurrent merges of distinct refs are all kept
func TestConcurrentUpdate(t *testing.T, repo interfaces.HookRepository) {
	ctx := context.Background()
	key := newKey()
	gt.NoError(t, repo.PutHook(ctx, key, model.NewHookRecord(50, "url")))

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.UpdateHook(ctx, key, func(hook *model.HookRecord) error {
				hook.MergeBranchRevisions(map[string]string{
					fmt.Sprintf("refs/heads/branch-%d", i): fmt.Sprintf("sha-%d", i),
				})
				return nil
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		gt.NoError(t, err)
	}

	retrieved, err := repo.GetHook(ctx, key)
	gt.NoError(t, err)
	gt.V(t, len(retrieved.LastBranchRevisions)).Equal(n)
}
