package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

// FindSuitableVcsRootInstances returns VCS root instances of build
// configurations in non-archived projects that point to the repository. If
// vcsRootID is not empty, instances of other VCS roots are dropped. Each
// instance appears once; order is not significant.
func (x *UseCase) FindSuitableVcsRootInstances(ctx context.Context, info model.RepositoryInfo, vcsRootID types.VcsRootID) ([]*model.VcsRootInstance, error) {
	configs, err := x.clients.ProjectManager().ListBuildConfigurations(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list build configurations")
	}

	seen := make(map[int64]struct{})
	var found []*model.VcsRootInstance
	for _, bc := range configs {
		if bc.ProjectArchived {
			continue
		}

		for _, inst := range bc.VcsRootInstances {
			if _, ok := seen[inst.ID]; ok {
				continue
			}
			seen[inst.ID] = struct{}{}

			if vcsRootID != "" && inst.ParentExternalID != vcsRootID {
				continue
			}
			if instInfo, ok := inst.RepositoryInfo(); !ok || !instInfo.Matches(info) {
				continue
			}
			found = append(found, inst)
		}
	}

	return found, nil
}
