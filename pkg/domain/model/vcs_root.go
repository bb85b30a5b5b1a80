package model

import (
	"time"

	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

// MinWebhookCheckInterval is the polling interval applied to VCS roots that receive webhook deliveries.
const MinWebhookCheckInterval = 12 * time.Hour

// VcsRoot is a registered VCS root with its own modification check interval.
type VcsRoot struct {
	ExternalID                          types.VcsRootID `yaml:"id"`
	URL                                 string          `yaml:"url"`
	ModificationCheckInterval           time.Duration   `yaml:"modification_check_interval"`
	UseDefaultModificationCheckInterval bool            `yaml:"use_default_interval"`
}

func (x *VcsRoot) RepositoryInfo() (RepositoryInfo, bool) {
	return ParseGitURL(x.URL)
}

// NeedsIntervalRaise reports whether the root polls more often than interval.
// A root on the default interval always needs an explicit value.
func (x *VcsRoot) NeedsIntervalRaise(interval time.Duration) bool {
	return x.UseDefaultModificationCheckInterval || x.ModificationCheckInterval < interval
}

// VcsRootInstance is a VcsRoot resolved for one build configuration.
type VcsRootInstance struct {
	ID               int64
	ParentExternalID types.VcsRootID
	URL              string
	Branch           string
}

func (x *VcsRootInstance) RepositoryInfo() (RepositoryInfo, bool) {
	return ParseGitURL(x.URL)
}

type BuildConfiguration struct {
	ExternalID       string
	ProjectID        string
	ProjectArchived  bool
	VcsRootInstances []*VcsRootInstance
}
