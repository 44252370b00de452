package webhook_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devpulse/internal/http/api"
	"devpulse/internal/http/handlers"
	"devpulse/internal/http/handlers/mocks"
	webhookh "devpulse/internal/http/handlers/webhook"
	"devpulse/internal/service/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const secret = "webhook-secret"

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func decode(w *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(w.Body).Decode(v)
}

func newPushRequest(body []byte, event, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(body))
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-Hub-Signature-256", signature)
	return req
}

func TestWebhookHandler_ValidPush(t *testing.T) {
	mockService := mocks.NewMockPushProcessor(t)
	h := webhookh.NewWebhookHandler(handlers.NewLogger(), secret, mockService)

	body := []byte(`{"repository":{"id":42,"full_name":"octocat/hello"},"commits":[{"id":"abc1234"}]}`)

	expected := webhook.PushEvent{
		Repository: webhook.PushRepository{ID: 42, FullName: "octocat/hello"},
		Commits:    []webhook.PushCommit{{ID: "abc1234"}},
	}
	mockService.On("ProcessPush", mock.Anything, expected).Once()

	w := httptest.NewRecorder()
	h.HandlePush(w, newPushRequest(body, "push", sign(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.WebhookAck
	assert.NoError(t, decode(w, &resp))
	assert.Equal(t, "Webhook received", resp.Msg)
}

func TestWebhookHandler_TamperedBody(t *testing.T) {
	mockService := mocks.NewMockPushProcessor(t)
	h := webhookh.NewWebhookHandler(handlers.NewLogger(), secret, mockService)

	body := []byte(`{"repository":{"id":42}}`)
	signature := sign(body)
	tampered := []byte(`{"repository":{"id":43}}`)

	w := httptest.NewRecorder()
	h.HandlePush(w, newPushRequest(tampered, "push", signature))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeUnauthorized, resp.Error.Code)
	mockService.AssertNotCalled(t, "ProcessPush", mock.Anything, mock.Anything)
}

func TestWebhookHandler_MissingSignature(t *testing.T) {
	mockService := mocks.NewMockPushProcessor(t)
	h := webhookh.NewWebhookHandler(handlers.NewLogger(), secret, mockService)

	body := []byte(`{"repository":{"id":42}}`)

	w := httptest.NewRecorder()
	h.HandlePush(w, newPushRequest(body, "push", ""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "ProcessPush", mock.Anything, mock.Anything)
}

func TestWebhookHandler_NonPushEventAcked(t *testing.T) {
	mockService := mocks.NewMockPushProcessor(t)
	h := webhookh.NewWebhookHandler(handlers.NewLogger(), secret, mockService)

	body := []byte(`{"zen":"Keep it logically awesome."}`)

	w := httptest.NewRecorder()
	h.HandlePush(w, newPushRequest(body, "ping", sign(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertNotCalled(t, "ProcessPush", mock.Anything, mock.Anything)
}

func TestWebhookHandler_InvalidJSONStillAcked(t *testing.T) {
	mockService := mocks.NewMockPushProcessor(t)
	h := webhookh.NewWebhookHandler(handlers.NewLogger(), secret, mockService)

	body := []byte(`{invalid json`)

	w := httptest.NewRecorder()
	h.HandlePush(w, newPushRequest(body, "push", sign(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.WebhookAck
	assert.NoError(t, decode(w, &resp))
	assert.Equal(t, "Webhook received", resp.Msg)
	mockService.AssertNotCalled(t, "ProcessPush", mock.Anything, mock.Anything)
}
