package config_test

import (
	"context"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
	gt.True(t, flagNames["sentry-release"])
}

func TestSentryConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("no DSN leaves sentry disabled", func(t *testing.T) {
		var s config.Sentry
		parse(t, s.Flags(), "--sentry-env", "staging")
		gt.NoError(t, s.Configure(ctx))
		s.Flush()
	})

	t.Run("invalid DSN", func(t *testing.T) {
		var s config.Sentry
		parse(t, s.Flags(), "--sentry-dsn", "not a dsn")
		gt.Error(t, s.Configure(ctx))
	})

	t.Run("client carries service tag and drops payload", func(t *testing.T) {
		var s config.Sentry
		parse(t, s.Flags(),
			"--sentry-dsn", "https://public@127.0.0.1/1",
			"--sentry-env", "staging",
			"--sentry-release", "v1.2.3",
		)
		gt.NoError(t, s.Configure(ctx))
		t.Cleanup(func() { sentry.CurrentHub().BindClient(nil) })

		opts := sentry.CurrentHub().Client().Options()
		gt.V(t, opts.Environment).Equal("staging")
		gt.V(t, opts.Release).Equal("v1.2.3")
		gt.V(t, opts.Tags["service"]).Equal("vcshook")

		event := &sentry.Event{Request: &sentry.Request{Data: `{"ref":"refs/heads/main"}`}}
		event = opts.BeforeSend(event, nil)
		gt.V(t, event.Request.Data).Equal("")
	})
}
