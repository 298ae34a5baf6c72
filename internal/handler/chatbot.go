// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/olegiv/evreg-go/internal/chatbot"
	"github.com/olegiv/evreg-go/internal/metrics"
)

// ChatbotHandler serves the rule-based chat endpoint.
type ChatbotHandler struct{}

// NewChatbotHandler creates a new ChatbotHandler.
func NewChatbotHandler() *ChatbotHandler {
	return &ChatbotHandler{}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Reply answers a chat message. A missing or malformed body is treated as an
// empty message and answered with the fallback reply.
func (h *ChatbotHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	metrics.ChatbotReplies.Inc()
	writeJSON(w, http.StatusOK, chatResponse{Reply: chatbot.Reply(req.Message)})
}
