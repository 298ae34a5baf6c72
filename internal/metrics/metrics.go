// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics exposes Prometheus counters for the registration flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// UserRegistrations counts successful user sign-ups.
	UserRegistrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evreg_user_registrations_total",
		Help: "The number of successful user registrations",
	})

	// EventRegistrations counts successful participant sign-ups.
	EventRegistrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evreg_event_registrations_total",
		Help: "The number of successful event sign-ups",
	})

	// FeedbackSubmissions counts accepted feedback messages.
	FeedbackSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evreg_feedback_submissions_total",
		Help: "The number of accepted feedback submissions",
	})

	// ChatbotReplies counts chatbot exchanges.
	ChatbotReplies = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evreg_chatbot_replies_total",
		Help: "The number of chatbot replies served",
	})
)

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
