package cli_test

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/cli"
)

func TestDetectOriginURL(t *testing.T) {
	t.Run("origin of repository", func(t *testing.T) {
		dir := t.TempDir()
		repo := gt.R1(git.PlainInit(dir, false)).NoError(t)
		gt.R1(repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:JetBrains/kotlin.git"},
		})).NoError(t)

		url := gt.R1(cli.DetectOriginURLForTest(dir)).NoError(t)
		gt.V(t, url).Equal("git@github.com:JetBrains/kotlin.git")
	})

	t.Run("repository without origin", func(t *testing.T) {
		dir := t.TempDir()
		gt.R1(git.PlainInit(dir, false)).NoError(t)

		_, err := cli.DetectOriginURLForTest(dir)
		gt.Error(t, err)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := cli.DetectOriginURLForTest(t.TempDir())
		gt.Error(t, err)
	})
}
