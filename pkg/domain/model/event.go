package model

import "github.com/google/go-github/v53/github"

// PingEvent is the payload of a "ping" delivery of a repository webhook.
// github.PingEvent does not carry the repository, so it is declared here.
type PingEvent struct {
	Zen        *string            `json:"zen,omitempty"`
	HookID     *int64             `json:"hook_id,omitempty"`
	Hook       *github.Hook       `json:"hook,omitempty"`
	Repository *github.Repository `json:"repository,omitempty"`
}

func (x *PingEvent) GetHookID() int64 {
	if x == nil || x.HookID == nil {
		return 0
	}
	return *x.HookID
}

func (x *PingEvent) GetHook() *github.Hook {
	if x == nil {
		return nil
	}
	return x.Hook
}

func (x *PingEvent) GetRepository() *github.Repository {
	if x == nil {
		return nil
	}
	return x.Repository
}

// HookEntry is a stored hook together with its repository.
type HookEntry struct {
	Repository RepositoryInfo
	Hook       *HookRecord
}
