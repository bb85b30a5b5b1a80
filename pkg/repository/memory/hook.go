package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/repository"
)

// hookRepository keeps records in their encoded form, the same way the
// persistent stores do, so that callers never share a record instance.
type hookRepository struct {
	mu    sync.RWMutex
	hooks map[string]string
}

func (r *hookRepository) GetHook(ctx context.Context, key types.RepositoryKey) (*model.HookRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.hooks[string(key)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "hook not found",
			goerr.V("key", key),
		)
	}

	return model.DecodeHookRecord(data)
}

func (r *hookRepository) PutHook(ctx context.Context, key types.RepositoryKey, hook *model.HookRecord) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "key is empty")
	}

	data, err := model.EncodeHookRecord(hook)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[string(key)] = data

	return nil
}

func (r *hookRepository) DeleteHook(ctx context.Context, key types.RepositoryKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.hooks[string(key)]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "hook not found",
			goerr.V("key", key),
		)
	}
	delete(r.hooks, string(key))

	return nil
}

func (r *hookRepository) ListHooks(ctx context.Context) (map[types.RepositoryKey]*model.HookRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hooks := make(map[types.RepositoryKey]*model.HookRecord, len(r.hooks))
	for key, data := range r.hooks {
		hook, err := model.DecodeHookRecord(data)
		if err != nil {
			return nil, goerr.Wrap(err, "broken hook record", goerr.V("key", key))
		}
		hooks[types.RepositoryKey(key)] = hook
	}

	return hooks, nil
}

func (r *hookRepository) UpdateHook(ctx context.Context, key types.RepositoryKey, fn func(hook *model.HookRecord) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.hooks[string(key)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "hook not found",
			goerr.V("key", key),
		)
	}

	hook, err := model.DecodeHookRecord(data)
	if err != nil {
		return goerr.Wrap(err, "broken hook record", goerr.V("key", key))
	}
	if err := fn(hook); err != nil {
		return err
	}

	updated, err := model.EncodeHookRecord(hook)
	if err != nil {
		return err
	}
	r.hooks[string(key)] = updated

	return nil
}
