package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ProxyHandler demonstrates outbound HTTP calls re-wrapped in the standard
// response envelope.
type ProxyHandler struct {
	client  *http.Client
	baseURL string
}

// NewProxyHandler creates a ProxyHandler talking to the given upstream.
func NewProxyHandler(baseURL string) *ProxyHandler {
	return &ProxyHandler{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// GetPosts fetches the upstream post collection and forwards it.
func (h *ProxyHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.client.Get(h.baseURL + "/posts")
	if err != nil {
		log.Error().Err(err).Msg("Upstream GET failed")
		fail(w, http.StatusInternalServerError, "Upstream request failed")
		return
	}
	defer resp.Body.Close()

	var data interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Error().Err(err).Msg("Failed to decode upstream response")
		fail(w, http.StatusInternalServerError, "Invalid upstream response")
		return
	}

	successData(w, http.StatusOK, data)
}

// PostTodo posts a fixed example payload upstream and forwards the reply.
func (h *ProxyHandler) PostTodo(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"body":   "hello from stockpoint",
		"id":     100,
		"title":  "stockpoint http example",
		"userId": 100,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to encode payload")
		return
	}

	resp, err := h.client.Post(h.baseURL+"/todos", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("Upstream POST failed")
		fail(w, http.StatusInternalServerError, "Upstream request failed")
		return
	}
	defer resp.Body.Close()

	var data interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Error().Err(err).Msg("Failed to decode upstream response")
		fail(w, http.StatusInternalServerError, "Invalid upstream response")
		return
	}

	successData(w, http.StatusOK, data)
}
