package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/infra/checker"
	"github.com/m-mizutani/vcshook/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

type Checker struct {
	concurrency int
	maxRetries  int
	timeout     time.Duration
	token       types.GitHubToken `masq:"secret"`
}

func (x *Checker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "check-concurrency",
			Usage:       "Max number of remote repositories listed at once",
			Category:    "Modification Check",
			Value:       4,
			Sources:     cli.EnvVars("VCSHOOK_CHECK_CONCURRENCY"),
			Destination: &x.concurrency,
		},
		&cli.IntFlag{
			Name:        "check-max-retries",
			Usage:       "Max retries of listing a remote repository",
			Category:    "Modification Check",
			Value:       3,
			Sources:     cli.EnvVars("VCSHOOK_CHECK_MAX_RETRIES"),
			Destination: &x.maxRetries,
		},
		&cli.DurationFlag{
			Name:        "check-timeout",
			Usage:       "Timeout of one modification check",
			Category:    "Modification Check",
			Value:       5 * time.Minute,
			Sources:     cli.EnvVars("VCSHOOK_CHECK_TIMEOUT"),
			Destination: &x.timeout,
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token to list private repositories",
			Category:    "Modification Check",
			Sources:     cli.EnvVars("VCSHOOK_GITHUB_TOKEN"),
			Destination: (*string)(&x.token),
		},
	}
}

func (x *Checker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("concurrency", x.concurrency),
		slog.Int("maxRetries", x.maxRetries),
		slog.Duration("timeout", x.timeout),
		slog.Int("token.len", len(x.token)),
	)
}

// New builds a checker. Remote listing authenticates with app when it is
// given, otherwise with the personal access token if any.
func (x *Checker) New(app *ghapp.Client) *checker.Checker {
	var options []checker.Option
	if x.concurrency > 0 {
		options = append(options, checker.WithConcurrency(x.concurrency))
	}
	if x.maxRetries >= 0 {
		options = append(options, checker.WithMaxRetries(uint64(x.maxRetries)))
	}
	if x.timeout > 0 {
		options = append(options, checker.WithTimeout(x.timeout))
	}

	return checker.New(checker.NewGitLister(x.tokenSource(app)), options...)
}

func (x *Checker) tokenSource(app *ghapp.Client) checker.TokenSource {
	if app != nil {
		return app
	}
	if x.token != "" {
		return checker.StaticToken(x.token)
	}
	return nil
}
