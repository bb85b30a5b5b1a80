package checker

import (
	"context"
	"errors"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

// TokenSource supplies the access token sent to http(s) remotes.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource of a personal access token.
type StaticToken types.GitHubToken

func (x StaticToken) Token(ctx context.Context) (string, error) {
	return string(x), nil
}

// NewGitLister returns a RemoteLister that runs the equivalent of
// `git ls-remote`. The token is sent as basic auth to http(s) remotes.
func NewGitLister(tokens TokenSource) RemoteLister {
	return func(ctx context.Context, url string) (map[string]string, error) {
		remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
			Name: "origin",
			URLs: []string{url},
		})

		opts := &git.ListOptions{}
		if tokens != nil && strings.HasPrefix(url, "http") {
			token, err := tokens.Token(ctx)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to get access token", goerr.V("url", url))
			}
			if token != "" {
				opts.Auth = &githttp.BasicAuth{
					Username: "x-access-token",
					Password: token,
				}
			}
		}

		refs, err := remote.ListContext(ctx, opts)
		switch {
		case errors.Is(err, transport.ErrEmptyRemoteRepository):
			return map[string]string{}, nil
		case errors.Is(err, transport.ErrAuthenticationRequired),
			errors.Is(err, transport.ErrAuthorizationFailed),
			errors.Is(err, transport.ErrRepositoryNotFound):
			return nil, backoff.Permanent(goerr.Wrap(err, "remote is not accessible", goerr.V("url", url)))
		case err != nil:
			return nil, goerr.Wrap(err, "failed to list remote", goerr.V("url", url))
		}

		revisions := make(map[string]string, len(refs))
		for _, ref := range refs {
			if ref.Type() != plumbing.HashReference {
				continue
			}
			revisions[ref.Name().String()] = ref.Hash().String()
		}
		return revisions, nil
	}
}
