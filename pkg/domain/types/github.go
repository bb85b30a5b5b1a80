package types

import "log/slog"

type (
	GitHubEventType     string
	GitHubWebhookSecret string
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	RepositoryKey       string
	VcsRootID           string
)

const (
	GitHubEventHeader = "X-GitHub-Event"

	GitHubEventPing GitHubEventType = "ping"
	GitHubEventPush GitHubEventType = "push"
)

func (x RepositoryKey) String() string {
	return string(x)
}

func (x GitHubWebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubWebhookSecret) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
