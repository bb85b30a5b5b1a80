package testutil

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

// NewWebhookRequest builds a GitHub webhook delivery. eventType is omitted
// from the headers when empty. If secret is not empty, the body is signed
// with X-Hub-Signature-256 the way GitHub does.
func NewWebhookRequest(t *testing.T, path string, eventType types.GitHubEventType, body []byte, secret types.GitHubWebhookSecret) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Delivery", "72d3162e-cc78-11e3-81ab-4c9367dc0958")
	if eventType != "" {
		req.Header.Set(types.GitHubEventHeader, string(eventType))
	}

	if secret != "" {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
	}

	return req
}
