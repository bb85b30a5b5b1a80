package interfaces

import (
	"context"

	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

//go:generate moq -out ../mock/hook_repository_mock.go -pkg mock . HookRepository

// HookRepository stores webhook bookkeeping keyed by repository key.
// Implementations must be safe for concurrent use.
type HookRepository interface {
	GetHook(ctx context.Context, key types.RepositoryKey) (*model.HookRecord, error)
	PutHook(ctx context.Context, key types.RepositoryKey, hook *model.HookRecord) error
	DeleteHook(ctx context.Context, key types.RepositoryKey) error
	ListHooks(ctx context.Context) (map[types.RepositoryKey]*model.HookRecord, error)

	// UpdateHook applies fn to the stored record and saves the result atomically.
	// It returns repository.ErrNotFound if no hook is stored for key.
	UpdateHook(ctx context.Context, key types.RepositoryKey, fn func(hook *model.HookRecord) error) error
}
