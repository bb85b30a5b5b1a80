package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/repository"
)

func TestRegisterHook(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	entry := gt.R1(env.uc.RegisterHook(env.ctx, "git@github.com:JetBrains/kotlin.git", 10, "https://api.github.com/repos/JetBrains/kotlin/hooks/10")).NoError(t)
	gt.V(t, entry.Repository).Equal(model.RepositoryInfo{Server: "github.com", Owner: "JetBrains", Name: "kotlin"})
	gt.V(t, entry.Repository.Key()).Equal(types.RepositoryKey("github.com/JetBrains/kotlin"))

	hook := env.hook(t, entry.Repository.Key())
	gt.True(t, hook.Equal(model.NewHookRecord(10, "https://api.github.com/repos/JetBrains/kotlin/hooks/10")))

	t.Run("invalid url", func(t *testing.T) {
		_, err := env.uc.RegisterHook(env.ctx, "https://github.com/JetBrains", 10, "")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := env.uc.RegisterHook(env.ctx, "https://github.com/JetBrains/kotlin", 0, "")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestDeleteHook(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	key := env.register(t, "https://github.com/JetBrains/kotlin.git", 10)

	gt.NoError(t, env.uc.DeleteHook(env.ctx, "https://github.com/JetBrains/kotlin"))
	_, err := env.hooks.GetHook(env.ctx, key)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = env.uc.DeleteHook(env.ctx, "https://github.com/JetBrains/kotlin")
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = env.uc.DeleteHook(env.ctx, "::")
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}

func TestListHooks(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.register(t, "https://github.com/JetBrains/kotlin.git", 10)
	env.register(t, "https://github.com/JetBrains/intellij-community.git", 11)

	entries := gt.R1(env.uc.ListHooks(env.ctx)).NoError(t)
	gt.A(t, entries).Length(2)
	gt.V(t, entries[0].Repository.Name).Equal("intellij-community")
	gt.V(t, entries[1].Repository.Name).Equal("kotlin")
	gt.V(t, entries[1].Hook.ID).Equal(int64(10))
}

func TestListOutdatedHooks(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	fresh := env.register(t, "https://github.com/owner/fresh", 1)
	stale := env.register(t, "https://github.com/owner/stale", 2)
	env.register(t, "https://github.com/owner/unused", 3)
	broken := env.register(t, "https://github.com/owner/broken", 4)

	gt.NoError(t, env.hooks.UpdateHook(env.ctx, fresh, func(hook *model.HookRecord) error {
		hook.Touch(testNow.Add(-time.Hour))
		return nil
	}))
	gt.NoError(t, env.hooks.UpdateHook(env.ctx, stale, func(hook *model.HookRecord) error {
		hook.Touch(testNow.Add(-72 * time.Hour))
		return nil
	}))
	gt.NoError(t, env.hooks.UpdateHook(env.ctx, broken, func(hook *model.HookRecord) error {
		hook.Touch(testNow)
		hook.Correct = false
		return nil
	}))

	entries := gt.R1(env.uc.ListOutdatedHooks(env.ctx, 24*time.Hour)).NoError(t)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Repository.Name)
	}
	gt.V(t, names).Equal([]string{"broken", "stale", "unused"})
}
