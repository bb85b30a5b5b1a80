package registry

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/interfaces"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"
	"gopkg.in/yaml.v3"
)

var (
	_ interfaces.ProjectManager = (*Registry)(nil)
	_ interfaces.VcsManager     = (*Registry)(nil)
)

// Registry is a file based catalog of VCS roots and the projects using them.
type Registry struct {
	mu        sync.RWMutex
	roots     []*model.VcsRoot
	rootIndex map[types.VcsRootID]*model.VcsRoot
	configs   []*model.BuildConfiguration
}

type file struct {
	VcsRoots []*model.VcsRoot `yaml:"vcs_roots"`
	Projects []struct {
		ID                  string `yaml:"id"`
		Archived            bool   `yaml:"archived"`
		BuildConfigurations []struct {
			ID       string `yaml:"id"`
			VcsRoots []struct {
				ID     types.VcsRootID `yaml:"id"`
				Branch string          `yaml:"branch"`
			} `yaml:"vcs_roots"`
		} `yaml:"build_configurations"`
	} `yaml:"projects"`
}

// Load reads a registry file
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read registry file", goerr.V("path", path))
	}

	reg, err := Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load registry file", goerr.V("path", path))
	}
	return reg, nil
}

// Parse builds a registry from YAML. VCS root instances are shared between
// build configurations that use the same root on the same branch.
func Parse(raw []byte) (*Registry, error) {
	var f file
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse registry", goerr.V("error", err.Error()))
	}

	reg := &Registry{
		rootIndex: make(map[types.VcsRootID]*model.VcsRoot),
	}

	for _, root := range f.VcsRoots {
		if root.ExternalID == "" || root.URL == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "vcs root requires id and url", goerr.V("root", root))
		}
		if _, exists := reg.rootIndex[root.ExternalID]; exists {
			return nil, goerr.Wrap(types.ErrInvalidOption, "duplicated vcs root id", goerr.V("id", root.ExternalID))
		}
		reg.roots = append(reg.roots, root)
		reg.rootIndex[root.ExternalID] = root
	}

	type instanceKey struct {
		root   types.VcsRootID
		branch string
	}
	instances := make(map[instanceKey]*model.VcsRootInstance)

	for _, project := range f.Projects {
		for _, bc := range project.BuildConfigurations {
			config := &model.BuildConfiguration{
				ExternalID:      bc.ID,
				ProjectID:       project.ID,
				ProjectArchived: project.Archived,
			}

			for _, ref := range bc.VcsRoots {
				root, ok := reg.rootIndex[ref.ID]
				if !ok {
					return nil, goerr.Wrap(types.ErrInvalidOption, "unknown vcs root",
						goerr.V("id", ref.ID),
						goerr.V("build_configuration", bc.ID),
					)
				}

				key := instanceKey{root: ref.ID, branch: ref.Branch}
				inst, ok := instances[key]
				if !ok {
					inst = &model.VcsRootInstance{
						ID:               int64(len(instances) + 1),
						ParentExternalID: root.ExternalID,
						URL:              root.URL,
						Branch:           ref.Branch,
					}
					instances[key] = inst
				}
				config.VcsRootInstances = append(config.VcsRootInstances, inst)
			}

			reg.configs = append(reg.configs, config)
		}
	}

	return reg, nil
}

func (x *Registry) ListBuildConfigurations(ctx context.Context) ([]*model.BuildConfiguration, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	configs := make([]*model.BuildConfiguration, len(x.configs))
	for i, c := range x.configs {
		cpy := *c
		cpy.VcsRootInstances = make([]*model.VcsRootInstance, len(c.VcsRootInstances))
		for j, inst := range c.VcsRootInstances {
			instCpy := *inst
			cpy.VcsRootInstances[j] = &instCpy
		}
		configs[i] = &cpy
	}

	return configs, nil
}

func (x *Registry) ListVcsRoots(ctx context.Context) ([]*model.VcsRoot, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	roots := make([]*model.VcsRoot, len(x.roots))
	for i, root := range x.roots {
		cpy := *root
		roots[i] = &cpy
	}

	return roots, nil
}

func (x *Registry) SetModificationCheckInterval(ctx context.Context, id types.VcsRootID, interval time.Duration) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	root, ok := x.rootIndex[id]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "unknown vcs root", goerr.V("id", id))
	}

	logging.From(ctx).Info("update modification check interval",
		slog.Any("vcs_root", id),
		slog.Duration("old", root.ModificationCheckInterval),
		slog.Bool("was_default", root.UseDefaultModificationCheckInterval),
		slog.Duration("new", interval),
	)
	root.ModificationCheckInterval = interval
	root.UseDefaultModificationCheckInterval = false

	return nil
}
