package core

import "github.com/astrochat/astrochat/internal/types"

// FeedbackReasonConfig describes one reason chip.
type FeedbackReasonConfig struct {
	Key     types.FeedbackReason
	Label   string
	I18nKey string
}

// ReasonTable is an ordered, read-only set of feedback reasons.
type ReasonTable struct {
	reasons []FeedbackReasonConfig
}

var defaultReasons = NewReasonTable(
	FeedbackReasonConfig{Key: types.ReasonInaccurate, Label: "Inaccurate", I18nKey: "feedback.reasons.inaccurate"},
	FeedbackReasonConfig{Key: types.ReasonVague, Label: "Too Vague", I18nKey: "feedback.reasons.tooVague"},
	FeedbackReasonConfig{Key: types.ReasonLong, Label: "Too Long", I18nKey: "feedback.reasons.tooLong"},
)

// DefaultReasons returns the process-wide reason table.
func DefaultReasons() ReasonTable {
	return defaultReasons
}

// NewReasonTable builds a table in the given order.
func NewReasonTable(reasons ...FeedbackReasonConfig) ReasonTable {
	copied := make([]FeedbackReasonConfig, len(reasons))
	copy(copied, reasons)
	return ReasonTable{reasons: copied}
}

// All returns the reasons in display order.
func (t ReasonTable) All() []FeedbackReasonConfig {
	out := make([]FeedbackReasonConfig, len(t.reasons))
	copy(out, t.reasons)
	return out
}

// Len returns the number of reasons.
func (t ReasonTable) Len() int {
	return len(t.reasons)
}

// At returns the reason at index i (0-based) in display order.
func (t ReasonTable) At(i int) (FeedbackReasonConfig, bool) {
	if i < 0 || i >= len(t.reasons) {
		return FeedbackReasonConfig{}, false
	}
	return t.reasons[i], true
}

// Lookup finds the config for key.
func (t ReasonTable) Lookup(key types.FeedbackReason) (FeedbackReasonConfig, bool) {
	for _, reason := range t.reasons {
		if reason.Key == key {
			return reason, true
		}
	}
	return FeedbackReasonConfig{}, false
}

// LabelFor returns the display label for key, or "" when unknown.
func (t ReasonTable) LabelFor(key types.FeedbackReason) string {
	reason, ok := t.Lookup(key)
	if !ok {
		return ""
	}
	return reason.Label
}
