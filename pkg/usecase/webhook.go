package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/repository"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"
)

// HandlePing records that the webhook of the repository is alive and slows
// down polling of VCS roots pointing to it.
func (x *UseCase) HandlePing(ctx context.Context, event *model.PingEvent) error {
	repo := event.GetRepository()
	logging.From(ctx).Info("received ping payload",
		slog.Int64("hook_id", event.GetHookID()),
		slog.String("hook_url", event.GetHook().GetURL()),
		slog.String("owner", repo.GetOwner().GetLogin()),
		slog.String("name", repo.GetName()),
	)

	info, err := extractRepositoryInfo(repo.GetGitURL())
	if err != nil {
		return err
	}

	if err := x.updateHook(ctx, info, func(hook *model.HookRecord) error {
		hook.Touch(logging.CtxTime(ctx))
		return nil
	}); err != nil {
		return err
	}

	return x.raiseModificationCheckInterval(ctx, info)
}

// HandlePush records the pushed revision and schedules a modification check
// of the VCS root instances pointing to the repository. If vcsRootID is not
// empty, only instances of that VCS root are checked.
func (x *UseCase) HandlePush(ctx context.Context, event *github.PushEvent, vcsRootID types.VcsRootID) error {
	repo := event.GetRepo()
	logging.From(ctx).Info("received push payload",
		slog.String("owner", repo.GetOwner().GetLogin()),
		slog.String("name", repo.GetName()),
		slog.String("ref", event.GetRef()),
		slog.String("after", event.GetAfter()),
		slog.Any("vcs_root_id", vcsRootID),
	)

	info, err := extractRepositoryInfo(repo.GetGitURL())
	if err != nil {
		return err
	}

	if err := x.updateHook(ctx, info, func(hook *model.HookRecord) error {
		hook.Touch(logging.CtxTime(ctx))
		if ref := event.GetRef(); ref != "" {
			hook.MergeBranchRevisions(map[string]string{ref: event.GetAfter()})
		}
		return nil
	}); err != nil {
		return err
	}

	roots, err := x.FindSuitableVcsRootInstances(ctx, info, vcsRootID)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		logging.From(ctx).Info("no VCS root instance for repository", slog.Any("repo", info))
		return nil
	}

	x.clients.ModificationChecker().CheckForModificationsAsync(ctx, roots)
	return nil
}

func extractRepositoryInfo(url string) (model.RepositoryInfo, error) {
	if url == "" {
		return model.RepositoryInfo{}, goerr.Wrap(types.ErrMissingRepositoryURL, "no repository url in payload")
	}

	info, ok := model.ParseGitURL(url)
	if !ok {
		return model.RepositoryInfo{}, goerr.Wrap(types.ErrUnresolvableRepository, "failed to parse repository url", goerr.V("url", url))
	}
	return info, nil
}

// updateHook applies fn to the hook of the repository. A repository without
// registered hook is skipped.
func (x *UseCase) updateHook(ctx context.Context, info model.RepositoryInfo, fn func(hook *model.HookRecord) error) error {
	err := x.clients.HookRepository().UpdateHook(ctx, info.Key(), fn)
	if errors.Is(err, repository.ErrNotFound) {
		logging.From(ctx).Info("no hook registered for repository", slog.Any("repo", info))
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to update hook", goerr.V("key", info.Key()))
	}
	return nil
}

func (x *UseCase) raiseModificationCheckInterval(ctx context.Context, info model.RepositoryInfo) error {
	roots, err := x.clients.VcsManager().ListVcsRoots(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list VCS roots")
	}

	for _, root := range roots {
		rootInfo, ok := root.RepositoryInfo()
		if !ok || !rootInfo.Matches(info) {
			continue
		}
		if !root.NeedsIntervalRaise(model.MinWebhookCheckInterval) {
			continue
		}

		if err := x.clients.VcsManager().SetModificationCheckInterval(ctx, root.ExternalID, model.MinWebhookCheckInterval); err != nil {
			return goerr.Wrap(err, "failed to set modification check interval", goerr.V("vcs_root", root.ExternalID))
		}
	}

	return nil
}
