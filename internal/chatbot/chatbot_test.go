package chatbot

import (
	"strings"
	"testing"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"greeting", "Hello there", rules[0].reply},
		{"greeting uppercase", "HEY BOT", rules[0].reply},
		{"events question", "What events are there?", rules[1].reply},
		{"singular event", "tell me about the hackathon event", rules[1].reply},
		{"registration", "how do I signup", rules[2].reply},
		{"admin", "where is the admin page", rules[3].reply},
		{"thanks", "thanks a lot", rules[4].reply},
		{"thank singular", "thank you", rules[4].reply},
		{"fallback", "what is the weather like", fallbackReply},
		{"empty message", "", fallbackReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reply(tt.message); got != tt.want {
				t.Errorf("Reply(%q) = %q; want %q", tt.message, got, tt.want)
			}
		})
	}
}

// Rule order is part of the contract: earlier rules beat later ones when a
// message matches several keyword groups.
func TestReplyTieBreaks(t *testing.T) {
	// "event" is tested before "register", so the events reply wins.
	if got := Reply("how do I register for an event"); got != rules[1].reply {
		t.Errorf("events rule should win over registration: got %q", got)
	}

	// "admin" is tested before "thanks".
	if got := Reply("thanks admin"); got != rules[3].reply {
		t.Errorf("admin rule should win over thanks: got %q", got)
	}

	// Greeting beats everything it co-occurs with.
	if got := Reply("hello, how do I register?"); got != rules[0].reply {
		t.Errorf("greeting rule should win: got %q", got)
	}
}

func TestReplyIsPure(t *testing.T) {
	first := Reply("hello")
	for i := 0; i < 3; i++ {
		if got := Reply("hello"); got != first {
			t.Fatal("Reply must be deterministic across calls")
		}
	}
}

func TestRuleTableShape(t *testing.T) {
	if len(rules) != 5 {
		t.Fatalf("expected 5 rules, got %d", len(rules))
	}
	for i, r := range rules {
		if len(r.keywords) == 0 || r.reply == "" {
			t.Errorf("rule %d incomplete", i)
		}
		for _, kw := range r.keywords {
			if kw != strings.ToLower(kw) {
				t.Errorf("rule %d keyword %q must be lowercase", i, kw)
			}
		}
	}
}
