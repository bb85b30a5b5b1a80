package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/domain/mock"
	"github.com/m-mizutani/vcshook/pkg/infra"
	"github.com/m-mizutani/vcshook/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HookRepository()).Equal(nil)
		gt.V(t, clients.ProjectManager()).Equal(nil)
		gt.V(t, clients.VcsManager()).Equal(nil)
		gt.V(t, clients.ModificationChecker()).Equal(nil)
	})

	t.Run("WithHookRepository option sets hook repository", func(t *testing.T) {
		repo := memory.New()
		clients := infra.New(infra.WithHookRepository(repo))
		gt.V(t, clients.HookRepository()).Equal(repo)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockPM := &mock.ProjectManagerMock{}
		mockVM := &mock.VcsManagerMock{}
		mockMC := &mock.ModificationCheckerMock{}

		clients := infra.New(
			infra.WithProjectManager(mockPM),
			infra.WithVcsManager(mockVM),
			infra.WithModificationChecker(mockMC),
		)

		gt.V(t, clients.ProjectManager()).Equal(mockPM)
		gt.V(t, clients.VcsManager()).Equal(mockVM)
		gt.V(t, clients.ModificationChecker()).Equal(mockMC)
	})
}
