package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"devpulse/internal/http/api"
	"devpulse/internal/lib/sl"
	"devpulse/internal/service/webhook"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const signatureHeader = "X-Hub-Signature-256"

type pushProcessor interface {
	ProcessPush(ctx context.Context, ev webhook.PushEvent)
}

type WebhookHandler struct {
	log     *slog.Logger
	secret  string
	service pushProcessor
}

func NewWebhookHandler(log *slog.Logger, secret string, s pushProcessor) *WebhookHandler {
	return &WebhookHandler{
		log:     log,
		secret:  secret,
		service: s,
	}
}

// HandlePush verifies the delivery signature over the raw body, then hands
// push events to the service. Every authenticated delivery is acknowledged
// with 200, processing failures never surface to the sender.
func (h *WebhookHandler) HandlePush(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.webhook.HandlePush"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if !h.verifySignature(body, r.Header.Get(signatureHeader)) {
		log.Warn("invalid webhook signature")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid signature"))
		return
	}

	if event := r.Header.Get("X-GitHub-Event"); event != "push" {
		log.Info("ignoring event", slog.String("event", event))
		render.JSON(w, r, api.WebhookAck{Msg: "Webhook received"})
		return
	}

	var ev webhook.PushEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		// authenticated deliveries are always acked
		log.Error("failed to decode push payload", sl.Err(err))
		render.JSON(w, r, api.WebhookAck{Msg: "Webhook received"})
		return
	}

	h.service.ProcessPush(r.Context(), ev)

	render.JSON(w, r, api.WebhookAck{Msg: "Webhook received"})
}

func (h *WebhookHandler) verifySignature(body []byte, header string) bool {
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}
