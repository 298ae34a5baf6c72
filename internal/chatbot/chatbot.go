// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package chatbot implements the rule-based event assistant. Replies come
// from an ordered keyword table; the first matching rule wins, so rule order
// is part of the contract (a message containing both "event" and "register"
// gets the events reply).
package chatbot

import "strings"

// rule pairs a keyword group with its canned reply.
type rule struct {
	keywords []string
	reply    string
}

// rules is evaluated top to bottom; first match wins. Keep the order stable:
// greeting, events, registration, admin, thanks.
var rules = []rule{
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hi! I'm the event assistant. Ask me about events, registration or feedback.",
	},
	{
		keywords: []string{"events", "event"},
		reply:    "You can view events on the Events page. Which event are you interested in?",
	},
	{
		keywords: []string{"register", "signup"},
		reply:    "To register, go to the Events page and click Register on the event you want.",
	},
	{
		keywords: []string{"admin"},
		reply:    "Admin can login at /admin-login. Only admins can add events or view participants.",
	},
	{
		keywords: []string{"thanks", "thank"},
		reply:    "You're welcome! 😊",
	},
}

// fallbackReply is returned when no rule matches.
const fallbackReply = "Sorry, I didn't understand. Try asking 'What events are there?' or 'How to register?'"

// Reply maps a free-text message to a canned reply. It is a pure function:
// no state is retained between calls.
func Reply(message string) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}
	return fallbackReply
}
