package memory

import "github.com/m-mizutani/vcshook/pkg/domain/interfaces"

// New creates a new in-memory hook repository
func New() interfaces.HookRepository {
	return &hookRepository{
		hooks: make(map[string]string),
	}
}
