package config

import (
	"log/slog"

	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Webhook struct {
	secret types.GitHubWebhookSecret `masq:"secret"`
}

func (x *Webhook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "Secret of GitHub webhook. Signature of deliveries is not verified if empty",
			Category:    "Webhook",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("VCSHOOK_GITHUB_WEBHOOK_SECRET"),
		},
	}
}

func (x Webhook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Secret.len", len(x.secret)),
	)
}

func (x Webhook) Secret() types.GitHubWebhookSecret {
	return x.secret
}
