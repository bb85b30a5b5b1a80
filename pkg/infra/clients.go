package infra

import (
	"github.com/m-mizutani/vcshook/pkg/domain/interfaces"
)

type Clients struct {
	hookRepository      interfaces.HookRepository
	projectManager      interfaces.ProjectManager
	vcsManager          interfaces.VcsManager
	modificationChecker interfaces.ModificationChecker
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) HookRepository() interfaces.HookRepository {
	return x.hookRepository
}
func (x *Clients) ProjectManager() interfaces.ProjectManager {
	return x.projectManager
}
func (x *Clients) VcsManager() interfaces.VcsManager {
	return x.vcsManager
}
func (x *Clients) ModificationChecker() interfaces.ModificationChecker {
	return x.modificationChecker
}

func WithHookRepository(repo interfaces.HookRepository) Option {
	return func(x *Clients) {
		x.hookRepository = repo
	}
}

func WithProjectManager(mgr interfaces.ProjectManager) Option {
	return func(x *Clients) {
		x.projectManager = mgr
	}
}

func WithVcsManager(mgr interfaces.VcsManager) Option {
	return func(x *Clients) {
		x.vcsManager = mgr
	}
}

func WithModificationChecker(checker interfaces.ModificationChecker) Option {
	return func(x *Clients) {
		x.modificationChecker = checker
	}
}
