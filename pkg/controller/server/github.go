package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/interfaces"
	"github.com/m-mizutani/vcshook/pkg/domain/model"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
	"github.com/m-mizutani/vcshook/pkg/utils/errutil"
	"github.com/m-mizutani/vcshook/pkg/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vcshook",
	Name:      "webhook_deliveries_total",
	Help:      "Number of received GitHub webhook deliveries by event type and response status.",
}, []string{"event", "status"})

func countDelivery(eventType types.GitHubEventType, code int) {
	label := "other"
	switch eventType {
	case types.GitHubEventPing, types.GitHubEventPush:
		label = string(eventType)
	case "":
		label = "none"
	}
	deliveriesTotal.WithLabelValues(label, strconv.Itoa(code)).Inc()
}

// handleGitHubWebhook accepts repository webhook deliveries. The optional
// trailing path segment restricts push handling to one VCS root.
func handleGitHubWebhook(uc interfaces.UseCase, secret types.GitHubWebhookSecret) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		eventType := types.GitHubEventType(r.Header.Get(types.GitHubEventHeader))
		if eventType == "" {
			countDelivery(eventType, http.StatusBadRequest)
			safeWrite(w, http.StatusBadRequest, []byte("'"+types.GitHubEventHeader+"' header is missing"))
			return
		}

		vcsRootID := types.VcsRootID(chi.URLParam(r, "*"))
		if vcsRootID != "" {
			logging.From(ctx).Debug("received hook event with VCS root id in path", slog.Any("vcs_root_id", vcsRootID))
		}

		code := processEvent(ctx, uc, r, eventType, secret, vcsRootID)
		countDelivery(eventType, code)
		w.WriteHeader(code)
	}
}

func processEvent(ctx context.Context, uc interfaces.UseCase, r *http.Request, eventType types.GitHubEventType, secret types.GitHubWebhookSecret, vcsRootID types.VcsRootID) (code int) {
	defer func() {
		if rec := recover(); rec != nil {
			errutil.HandleError(ctx, "panic while processing webhook",
				goerr.New("panic", goerr.V("recover", rec), goerr.V("event", eventType)))
			code = http.StatusServiceUnavailable
		}
	}()

	if eventType != types.GitHubEventPing && eventType != types.GitHubEventPush {
		logging.From(ctx).Info("received unknown event type, ignoring", slog.Any("event", eventType))
		return http.StatusAccepted
	}

	payload, err := readPayload(r, secret)
	if err != nil {
		logging.From(ctx).Warn("invalid webhook payload", slog.Any("event", eventType), slog.Any("error", err))
		return http.StatusBadRequest
	}

	return statusOf(ctx, eventType, dispatchEvent(ctx, uc, eventType, payload, vcsRootID))
}

// readPayload returns the payload of a delivery. Signed deliveries are
// verified and must be JSON or form encoded. Unsigned ones are read as JSON
// whatever the Content-Type is.
func readPayload(r *http.Request, secret types.GitHubWebhookSecret) ([]byte, error) {
	if secret != "" {
		return github.ValidatePayload(r, []byte(secret))
	}

	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, goerr.Wrap(err, "failed to parse form payload")
		}
		return []byte(r.PostFormValue("payload")), nil
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read payload")
	}
	return payload, nil
}

func dispatchEvent(ctx context.Context, uc interfaces.UseCase, eventType types.GitHubEventType, payload []byte, vcsRootID types.VcsRootID) error {
	switch eventType {
	case types.GitHubEventPing:
		var event model.PingEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return goerr.Wrap(err, "failed to parse ping payload")
		}
		return uc.HandlePing(ctx, &event)

	case types.GitHubEventPush:
		raw, err := github.ParseWebHook(string(eventType), payload)
		if err != nil {
			return goerr.Wrap(err, "failed to parse push payload")
		}
		event, ok := raw.(*github.PushEvent)
		if !ok {
			return goerr.New("unexpected push payload type")
		}
		return uc.HandlePush(ctx, event, vcsRootID)
	}

	return nil
}

func statusOf(ctx context.Context, eventType types.GitHubEventType, err error) int {
	logger := logging.From(ctx).With(slog.Any("event", eventType))

	switch {
	case err == nil:
		return http.StatusAccepted

	case errors.Is(err, types.ErrMissingRepositoryURL):
		logger.Warn("event payload has no repository url", slog.Any("error", err))
		return http.StatusBadRequest

	case errors.Is(err, types.ErrUnresolvableRepository):
		logger.Warn("cannot determine repository info", slog.Any("error", err))
		return http.StatusServiceUnavailable

	default:
		errutil.HandleError(ctx, "failed to process webhook", err)
		return http.StatusServiceUnavailable
	}
}
