package checker

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/interfaces"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vcshook",
	Name:      "modification_checks_total",
	Help:      "Number of modification checks of VCS root instances by result.",
}, []string{"result"})

// RemoteLister returns ref name to revision of a remote repository.
type RemoteLister func(ctx context.Context, url string) (map[string]string, error)

// Checker polls remote repositories of VCS root instances and records the
// revisions of their refs. Checks run in the background.
type Checker struct {
	lister      RemoteLister
	concurrency int
	maxRetries  uint64
	timeout     time.Duration
	newBackOff  func() backoff.BackOff

	wg        sync.WaitGroup
	mu        sync.Mutex
	revisions map[int64]map[string]string
}

var _ interfaces.ModificationChecker = (*Checker)(nil)

type Option func(*Checker)

func WithConcurrency(n int) Option {
	return func(x *Checker) {
		x.concurrency = n
	}
}

func WithMaxRetries(n uint64) Option {
	return func(x *Checker) {
		x.maxRetries = n
	}
}

// WithBackOff replaces the exponential backoff between retries.
func WithBackOff(f func() backoff.BackOff) Option {
	return func(x *Checker) {
		x.newBackOff = f
	}
}

// WithTimeout bounds one background run over a set of roots.
func WithTimeout(d time.Duration) Option {
	return func(x *Checker) {
		x.timeout = d
	}
}

func New(lister RemoteLister, options ...Option) *Checker {
	x := &Checker{
		lister:      lister,
		concurrency: 4,
		maxRetries:  3,
		timeout:     5 * time.Minute,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
		revisions: make(map[int64]map[string]string),
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// CheckForModificationsAsync starts a check of roots and returns immediately.
// The check outlives ctx but keeps its logger and request values.
func (x *Checker) CheckForModificationsAsync(ctx context.Context, roots []*model.VcsRootInstance) {
	if len(roots) == 0 {
		return
	}

	bgCtx := logging.Detach(ctx)
	x.wg.Add(1)
	go func() {
		defer x.wg.Done()
		x.checkAll(bgCtx, roots)
	}()
}

// Wait blocks until all started checks are finished.
func (x *Checker) Wait() {
	x.wg.Wait()
}

// Revisions returns the last observed revisions of a VCS root instance.
func (x *Checker) Revisions(instanceID int64) map[string]string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return maps.Clone(x.revisions[instanceID])
}

func (x *Checker) checkAll(ctx context.Context, roots []*model.VcsRootInstance) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	var eg errgroup.Group
	eg.SetLimit(x.concurrency)

	for _, root := range roots {
		eg.Go(func() error {
			logger := logging.From(ctx).With(
				slog.Int64("instance_id", root.ID),
				slog.Any("vcs_root", root.ParentExternalID),
			)

			changed, err := x.check(ctx, root)
			if err != nil {
				checksTotal.WithLabelValues("failed").Inc()
				logger.Warn("modification check failed", slog.Any("error", err))
				return nil
			}

			if len(changed) > 0 {
				checksTotal.WithLabelValues("changed").Inc()
				logger.Info("modifications detected", slog.Any("refs", changed))
			} else {
				checksTotal.WithLabelValues("unchanged").Inc()
				logger.Debug("no modification")
			}
			return nil
		})
	}

	_ = eg.Wait()
}

// check lists the remote and returns refs whose revision differs from the last observation.
func (x *Checker) check(ctx context.Context, root *model.VcsRootInstance) (map[string]string, error) {
	var refs map[string]string
	op := func() error {
		var err error
		refs, err = x.lister(ctx, root.URL)
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(x.newBackOff(), x.maxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return nil, goerr.Wrap(err, "failed to list remote refs", goerr.V("url", root.URL))
	}

	if root.Branch != "" {
		rev, ok := refs[root.Branch]
		if !ok {
			return nil, goerr.New("branch not found in remote",
				goerr.V("url", root.URL),
				goerr.V("branch", root.Branch),
			)
		}
		refs = map[string]string{root.Branch: rev}
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	prev := x.revisions[root.ID]
	changed := make(map[string]string)
	for ref, rev := range refs {
		if prev[ref] != rev {
			changed[ref] = rev
		}
	}
	x.revisions[root.ID] = refs

	return changed, nil
}
