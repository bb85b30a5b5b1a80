package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vcshook/pkg/controller/server"
	"github.com/m-mizutani/vcshook/pkg/domain/mock"
	"github.com/m-mizutani/vcshook/pkg/infra"
	"github.com/m-mizutani/vcshook/pkg/usecase"
	"github.com/m-mizutani/vcshook/pkg/utils/testutil"
)

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("GET /metrics exposes delivery counter", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, testutil.NewWebhookRequest(t, "/app/hooks/github", "star", []byte(`{}`), ""))
		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec = httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`vcshook_webhook_deliveries_total{event="other",status="202"}`)
	})

	t.Run("unknown path returns 404", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}
