package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/m-mizutani/vcshook/pkg/cli/config"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/infra"
	"github.com/m-mizutani/vcshook/pkg/usecase"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func hookCommand() *cli.Command {
	var hookStore config.HookStore

	// withUseCase opens the hook store for one command run.
	withUseCase := func(ctx context.Context, fn func(uc *usecase.UseCase) error) error {
		repo, closeStore, err := hookStore.New(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		return fn(usecase.New(infra.New(infra.WithHookRepository(repo))))
	}

	return &cli.Command{
		Name:  "hook",
		Usage: "Manage registered webhooks",
		Flags: hookStore.Flags(),
		Commands: []*cli.Command{
			hookListCommand(withUseCase),
			hookRegisterCommand(withUseCase),
			hookDeleteCommand(withUseCase),
		},
	}
}

type useCaseRunner func(ctx context.Context, fn func(uc *usecase.UseCase) error) error

func hookListCommand(run useCaseRunner) *cli.Command {
	var outdated time.Duration

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List registered webhooks",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:        "outdated",
				Usage:       "Show only hooks that are incorrect or not used within the duration",
				Destination: &outdated,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, func(uc *usecase.UseCase) error {
				var entries []*model.HookEntry
				var err error
				if outdated > 0 {
					entries, err = uc.ListOutdatedHooks(ctx, outdated)
				} else {
					entries, err = uc.ListHooks(ctx)
				}
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(c.Root().Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "REPOSITORY\tHOOK ID\tCORRECT\tLAST USED\tBRANCHES")
				for _, e := range entries {
					lastUsed := "never"
					if e.Hook.LastUsed != nil {
						lastUsed = e.Hook.LastUsed.Format(time.RFC3339)
					}
					fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\n",
						e.Repository.Key(),
						e.Hook.ID,
						strconv.FormatBool(e.Hook.Correct),
						lastUsed,
						len(e.Hook.LastBranchRevisions),
					)
				}
				return w.Flush()
			})
		},
	}
}

func hookRegisterCommand(run useCaseRunner) *cli.Command {
	var (
		gitURL  string
		hookID  int64
		hookURL string
	)

	return &cli.Command{
		Name:  "register",
		Usage: "Register a webhook of a repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "git-url",
				Usage:       "Git URL of the repository. Taken from origin of the current directory if empty",
				Destination: &gitURL,
			},
			&cli.Int64Flag{
				Name:        "hook-id",
				Usage:       "ID of the webhook on GitHub",
				Required:    true,
				Destination: &hookID,
			},
			&cli.StringFlag{
				Name:        "hook-url",
				Usage:       "API URL of the webhook on GitHub",
				Destination: &hookURL,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if gitURL == "" {
				url, err := detectOriginURL(".")
				if err != nil {
					return err
				}
				gitURL = url
			}

			return run(ctx, func(uc *usecase.UseCase) error {
				entry, err := uc.RegisterHook(ctx, gitURL, hookID, hookURL)
				if err != nil {
					return err
				}
				logging.From(ctx).Info("registered", slog.Any("key", entry.Repository.Key()))
				return nil
			})
		},
	}
}

func hookDeleteCommand(run useCaseRunner) *cli.Command {
	var gitURL string

	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a webhook record of a repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "git-url",
				Usage:       "Git URL of the repository",
				Required:    true,
				Destination: &gitURL,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, func(uc *usecase.UseCase) error {
				return uc.DeleteHook(ctx, gitURL)
			})
		},
	}
}
