package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ProjectManager VcsManager ModificationChecker

import (
	"context"
	"time"

	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

// ProjectManager enumerates build configurations. The returned slice is a
// snapshot and may be modified concurrently by the owner.
type ProjectManager interface {
	ListBuildConfigurations(ctx context.Context) ([]*model.BuildConfiguration, error)
}

type VcsManager interface {
	ListVcsRoots(ctx context.Context) ([]*model.VcsRoot, error)
	SetModificationCheckInterval(ctx context.Context, id types.VcsRootID, interval time.Duration) error
}

// ModificationChecker polls VCS root instances for new commits. The call
// must not block on the check itself.
type ModificationChecker interface {
	CheckForModificationsAsync(ctx context.Context, roots []*model.VcsRootInstance)
}
