// Package handler provides HTTP handlers for the Triage Warden application.
package handler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/triage-warden/internal/core"
)

// maxPayloadBytes matches the largest payload GitHub will deliver.
const maxPayloadBytes = 25 << 20

// WebhookHandler processes incoming webhooks from GitHub.
type WebhookHandler struct {
	secret     []byte
	dispatcher core.DeliveryDispatcher
	logger     *slog.Logger
}

// NewWebhookHandler creates a webhook handler. An empty secret disables
// signature verification.
func NewWebhookHandler(secret string, dispatcher core.DeliveryDispatcher, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		secret:     []byte(secret),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes GitHub webhook requests. Accepted deliveries, including
// ones that need no action, get 204 with an empty body.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	deliveryID := github.DeliveryID(r)
	logger := h.logger.With("delivery", deliveryID, "event", github.WebHookType(r))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("webhook payload too large", "limit", tooLarge.Limit)
			http.Error(w, "Payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		logger.Warn("failed to read webhook payload", "error", err)
		http.Error(w, "Failed to read payload", http.StatusBadRequest)
		return
	}

	payload, err := h.verify(r, body)
	if err != nil {
		logger.Error("invalid webhook payload signature", "error", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), deliveryID, payload)
	if err != nil {
		if errors.Is(err, core.ErrMalformedPayload) {
			logger.Warn("rejecting malformed webhook payload", "error", err)
			http.Error(w, "Malformed payload", http.StatusBadRequest)
			return
		}
		logger.Error("failed to dispatch webhook delivery", "error", err)
		http.Error(w, "Failed to process delivery", http.StatusInternalServerError)
		return
	}

	if result != nil && len(result.Failed()) > 0 {
		logger.Warn("delivery accepted with handler failures", "repo", result.Repo, "failed", len(result.Failed()))
	}
	w.WriteHeader(http.StatusNoContent)
}

// verify checks the signature over body when a secret is configured.
func (h *WebhookHandler) verify(r *http.Request, body []byte) ([]byte, error) {
	if len(h.secret) == 0 {
		return body, nil
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return github.ValidatePayload(r, h.secret)
}
