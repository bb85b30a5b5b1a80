package ghapp

import (
	"context"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/infra/checker"
)

// Client issues installation access tokens of a GitHub App. Tokens are
// cached and refreshed before they expire.
type Client struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	tr        *ghinstallation.Transport
}

var _ checker.TokenSource = (*Client)(nil)

type Option func(*ghinstallation.Transport)

// WithBaseURL sets the REST API endpoint, e.g. https://ghe.example.com/api/v3
func WithBaseURL(baseURL string) Option {
	return func(tr *ghinstallation.Transport) {
		tr.BaseURL = baseURL
	}
}

func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	tr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport",
			goerr.V("appID", appID),
			goerr.V("installID", installID),
		)
	}
	for _, opt := range options {
		opt(tr)
	}

	return &Client{
		appID:     appID,
		installID: installID,
		tr:        tr,
	}, nil
}

// Token returns an installation access token usable as a git password.
func (x *Client) Token(ctx context.Context) (string, error) {
	token, err := x.tr.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to issue installation token",
			goerr.V("appID", x.appID),
			goerr.V("installID", x.installID),
		)
	}
	return token, nil
}
