package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"
)

// RegisterHook stores a new hook record for the repository of gitURL. An
// existing record of the repository is replaced.
func (x *UseCase) RegisterHook(ctx context.Context, gitURL string, id int64, hookURL string) (*model.HookEntry, error) {
	info, ok := model.ParseGitURL(gitURL)
	if !ok {
		return nil, goerr.Wrap(types.ErrValidationFailed, "invalid repository url", goerr.V("url", gitURL))
	}
	if id <= 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "hook id must be positive", goerr.V("id", id))
	}

	hook := model.NewHookRecord(id, hookURL)
	if err := x.clients.HookRepository().PutHook(ctx, info.Key(), hook); err != nil {
		return nil, goerr.Wrap(err, "failed to put hook", goerr.V("key", info.Key()))
	}

	logging.From(ctx).Info("hook registered", slog.Any("repo", info), slog.Int64("hook_id", id))
	return &model.HookEntry{Repository: info, Hook: hook}, nil
}

// DeleteHook removes the hook record of the repository of gitURL.
func (x *UseCase) DeleteHook(ctx context.Context, gitURL string) error {
	info, ok := model.ParseGitURL(gitURL)
	if !ok {
		return goerr.Wrap(types.ErrValidationFailed, "invalid repository url", goerr.V("url", gitURL))
	}

	if err := x.clients.HookRepository().DeleteHook(ctx, info.Key()); err != nil {
		return goerr.Wrap(err, "failed to delete hook", goerr.V("key", info.Key()))
	}

	logging.From(ctx).Info("hook deleted", slog.Any("repo", info))
	return nil
}

// ListHooks returns all stored hooks sorted by repository key.
func (x *UseCase) ListHooks(ctx context.Context) ([]*model.HookEntry, error) {
	hooks, err := x.clients.HookRepository().ListHooks(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list hooks")
	}

	entries := make([]*model.HookEntry, 0, len(hooks))
	for key, hook := range hooks {
		info, ok := model.ParseRepositoryKey(key)
		if !ok {
			logging.From(ctx).Warn("skip hook with invalid key", slog.Any("key", key))
			continue
		}
		entries = append(entries, &model.HookEntry{Repository: info, Hook: hook})
	}

	slices.SortFunc(entries, func(a, b *model.HookEntry) int {
		return strings.Compare(string(a.Repository.Key()), string(b.Repository.Key()))
	})
	return entries, nil
}

// ListOutdatedHooks returns hooks that are marked incorrect, have never
// received a delivery or have not received one within threshold.
func (x *UseCase) ListOutdatedHooks(ctx context.Context, threshold time.Duration) ([]*model.HookEntry, error) {
	entries, err := x.ListHooks(ctx)
	if err != nil {
		return nil, err
	}

	deadline := logging.CtxTime(ctx).Add(-threshold)
	var outdated []*model.HookEntry
	for _, entry := range entries {
		if entry.Hook.IsOutdated(deadline) {
			outdated = append(outdated, entry)
		}
	}
	return outdated, nil
}
