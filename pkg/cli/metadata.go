package cli

import (
	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// detectOriginURL returns the URL of "origin" remote of the git repository in dir.
func detectOriginURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	return remote.Config().URLs[0], nil
}

// DetectOriginURLForTest is exported for testing
var DetectOriginURLForTest = detectOriginURL
