package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

type UseCase interface {
	HandlePing(ctx context.Context, event *model.PingEvent) error
	HandlePush(ctx context.Context, event *github.PushEvent, vcsRootID types.VcsRootID) error
}
