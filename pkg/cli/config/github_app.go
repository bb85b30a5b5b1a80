package config

import (
	"log/slog"

	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

// GitHubApp authenticates remote listing as a GitHub App installation
// instead of a personal access token.
type GitHubApp struct {
	id         types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	apiURL     string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("VCSHOOK_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "Installation ID of the GitHub App",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("VCSHOOK_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("VCSHOOK_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API URL, for GitHub Enterprise Server",
			Category:    "GitHub App",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("VCSHOOK_GITHUB_API_URL"),
		},
	}
}

func (x *GitHubApp) Enabled() bool {
	return x.id != 0
}

func (x *GitHubApp) New() (*ghapp.Client, error) {
	var options []ghapp.Option
	if x.apiURL != "" {
		options = append(options, ghapp.WithBaseURL(x.apiURL))
	}
	return ghapp.New(x.id, x.installID, x.privateKey, options...)
}

func (x *GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("apiURL", x.apiURL),
	)
}
