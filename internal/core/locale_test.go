package core

import (
	"testing"

	"github.com/astrochat/astrochat/internal/types"
)

func TestSenderLabels(t *testing.T) {
	l := NewLocalizer("en")
	tests := []struct {
		sender types.Sender
		want   string
	}{
		{types.SenderUser, "You"},
		{types.SenderAIAstrologer, "AI Astrologer"},
		{types.SenderHumanAstrologer, "Astrologer"},
		{types.SenderSystem, "System"},
		{types.Sender("bot"), "System"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sender), func(t *testing.T) {
			if got := l.SenderLabel(tt.sender); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestLocalizerHindi(t *testing.T) {
	l := NewLocalizer("hi-IN")
	if got := l.SenderLabel(types.SenderUser); got != "आप" {
		t.Fatalf("expected hindi label, got %q", got)
	}
	// Untranslated keys fall back to English.
	if got := l.Text(KeyThankYouDetail); got == "" || got == KeyThankYouDetail {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestLocalizerUnknownLanguageFallsBack(t *testing.T) {
	l := NewLocalizer("xx")
	if got := l.SenderLabel(types.SenderAIAstrologer); got != "AI Astrologer" {
		t.Fatalf("got %q", got)
	}
}

func TestReasonLabelUsesTableForUnknownKey(t *testing.T) {
	l := NewLocalizer("en")
	custom := FeedbackReasonConfig{Key: "rude", Label: "Rude", I18nKey: "feedback.reasons.rude"}
	if got := l.ReasonLabel(custom); got != "Rude" {
		t.Fatalf("got %q", got)
	}
	reason, _ := DefaultReasons().Lookup(types.ReasonVague)
	if got := l.ReasonLabel(reason); got != "Too Vague" {
		t.Fatalf("got %q", got)
	}
}
