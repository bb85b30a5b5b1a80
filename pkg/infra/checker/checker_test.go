package checker_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/infra/checker"
)

func fastBackOff() backoff.BackOff {
	return backoff.NewConstantBackOff(time.Millisecond)
}

type fakeRemote struct {
	mu    sync.Mutex
	refs  map[string]map[string]string
	calls map[string]int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		refs:  make(map[string]map[string]string),
		calls: make(map[string]int),
	}
}

func (x *fakeRemote) set(url string, refs map[string]string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.refs[url] = refs
}

func (x *fakeRemote) count(url string) int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.calls[url]
}

func (x *fakeRemote) list(ctx context.Context, url string) (map[string]string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.calls[url]++
	refs, ok := x.refs[url]
	if !ok {
		return nil, errors.New("no such remote")
	}
	out := make(map[string]string, len(refs))
	for k, v := range refs {
		out[k] = v
	}
	return out, nil
}

func TestCheckForModificationsAsync(t *testing.T) {
	remote := newFakeRemote()
	remote.set("https://github.com/JetBrains/kotlin.git", map[string]string{
		"refs/heads/master": "aaa",
		"refs/heads/dev":    "bbb",
	})

	c := checker.New(remote.list, checker.WithBackOff(fastBackOff))
	roots := []*model.VcsRootInstance{
		{ID: 1, ParentExternalID: "Kotlin_GitHub", URL: "https://github.com/JetBrains/kotlin.git"},
		{ID: 2, ParentExternalID: "Kotlin_GitHub", URL: "https://github.com/JetBrains/kotlin.git", Branch: "refs/heads/dev"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.CheckForModificationsAsync(ctx, roots)
	cancel()
	c.Wait()

	gt.V(t, c.Revisions(1)).Equal(map[string]string{
		"refs/heads/master": "aaa",
		"refs/heads/dev":    "bbb",
	})
	gt.V(t, c.Revisions(2)).Equal(map[string]string{
		"refs/heads/dev": "bbb",
	})

	remote.set("https://github.com/JetBrains/kotlin.git", map[string]string{
		"refs/heads/master": "ccc",
		"refs/heads/dev":    "bbb",
	})
	c.CheckForModificationsAsync(context.Background(), roots)
	c.Wait()

	gt.V(t, c.Revisions(1)["refs/heads/master"]).Equal("ccc")
	gt.V(t, c.Revisions(2)).Equal(map[string]string{
		"refs/heads/dev": "bbb",
	})
	gt.V(t, remote.count("https://github.com/JetBrains/kotlin.git")).Equal(4)
}

func TestCheckForModificationsAsyncEmpty(t *testing.T) {
	var called atomic.Int32
	c := checker.New(func(ctx context.Context, url string) (map[string]string, error) {
		called.Add(1)
		return nil, nil
	})

	c.CheckForModificationsAsync(context.Background(), nil)
	c.Wait()
	gt.V(t, called.Load()).Equal(int32(0))
}

func TestRetry(t *testing.T) {
	t.Run("transient errors are retried", func(t *testing.T) {
		var calls atomic.Int32
		c := checker.New(func(ctx context.Context, url string) (map[string]string, error) {
			if calls.Add(1) < 3 {
				return nil, errors.New("connection reset")
			}
			return map[string]string{"refs/heads/main": "abc"}, nil
		}, checker.WithBackOff(fastBackOff), checker.WithMaxRetries(3))

		c.CheckForModificationsAsync(context.Background(), []*model.VcsRootInstance{
			{ID: 10, URL: "https://github.com/owner/repo"},
		})
		c.Wait()

		gt.V(t, calls.Load()).Equal(int32(3))
		gt.V(t, c.Revisions(10)).Equal(map[string]string{"refs/heads/main": "abc"})
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		c := checker.New(func(ctx context.Context, url string) (map[string]string, error) {
			calls.Add(1)
			return nil, backoff.Permanent(errors.New("repository not found"))
		}, checker.WithBackOff(fastBackOff), checker.WithMaxRetries(3))

		c.CheckForModificationsAsync(context.Background(), []*model.VcsRootInstance{
			{ID: 11, URL: "https://github.com/owner/missing"},
		})
		c.Wait()

		gt.V(t, calls.Load()).Equal(int32(1))
		gt.V(t, len(c.Revisions(11))).Equal(0)
	})

	t.Run("retries are bounded", func(t *testing.T) {
		var calls atomic.Int32
		c := checker.New(func(ctx context.Context, url string) (map[string]string, error) {
			calls.Add(1)
			return nil, errors.New("timeout")
		}, checker.WithBackOff(fastBackOff), checker.WithMaxRetries(2))

		c.CheckForModificationsAsync(context.Background(), []*model.VcsRootInstance{
			{ID: 12, URL: "https://github.com/owner/flaky"},
		})
		c.Wait()

		gt.V(t, calls.Load()).Equal(int32(3))
	})
}

func TestMissingBranch(t *testing.T) {
	remote := newFakeRemote()
	remote.set("https://github.com/owner/repo", map[string]string{"refs/heads/main": "abc"})

	c := checker.New(remote.list, checker.WithBackOff(fastBackOff), checker.WithMaxRetries(0))
	c.CheckForModificationsAsync(context.Background(), []*model.VcsRootInstance{
		{ID: 20, URL: "https://github.com/owner/repo", Branch: "refs/heads/gone"},
	})
	c.Wait()

	gt.V(t, len(c.Revisions(20))).Equal(0)
}

func TestConcurrencyLimit(t *testing.T) {
	var running, peak atomic.Int32
	c := checker.New(func(ctx context.Context, url string) (map[string]string, error) {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return map[string]string{}, nil
	}, checker.WithConcurrency(2))

	var roots []*model.VcsRootInstance
	for i := range 8 {
		roots = append(roots, &model.VcsRootInstance{ID: int64(i), URL: "https://github.com/owner/repo"})
	}
	c.CheckForModificationsAsync(context.Background(), roots)
	c.Wait()

	gt.True(t, peak.Load() <= 2)
	gt.True(t, peak.Load() >= 1)
}
