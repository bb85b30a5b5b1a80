package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/vcshook/pkg/cli/config"
	"github.com/m-mizutani/vcshook/pkg/controller/server"
	"github.com/m-mizutani/vcshook/pkg/infra"
	"github.com/m-mizutani/vcshook/pkg/infra/ghapp"
	"github.com/m-mizutani/vcshook/pkg/usecase"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		webhook   config.Webhook
		hookStore config.HookStore
		registry  config.Registry
		checker   config.Checker
		githubApp config.GitHubApp
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("VCSHOOK_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			webhook.Flags(),
			hookStore.Flags(),
			registry.Flags(),
			checker.Flags(),
			githubApp.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Webhook", webhook),
				slog.Any("HookStore", &hookStore),
				slog.Any("Registry", &registry),
				slog.Any("Checker", &checker),
				slog.Any("GitHubApp", &githubApp),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush()

			hookRepo, closeStore, err := hookStore.New(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			reg, err := registry.New()
			if err != nil {
				return err
			}

			var app *ghapp.Client
			if githubApp.Enabled() {
				if app, err = githubApp.New(); err != nil {
					return err
				}
			}

			modChecker := checker.New(app)
			defer modChecker.Wait()

			clients := infra.New(
				infra.WithHookRepository(hookRepo),
				infra.WithProjectManager(reg),
				infra.WithVcsManager(reg),
				infra.WithModificationChecker(modChecker),
			)

			uc := usecase.New(clients)
			s := server.New(uc, server.WithWebhookSecret(webhook.Secret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
