package core

import (
	"testing"

	"github.com/astrochat/astrochat/internal/types"
)

func TestDefaultReasonsOrder(t *testing.T) {
	reasons := DefaultReasons().All()
	want := []types.FeedbackReason{types.ReasonInaccurate, types.ReasonVague, types.ReasonLong}
	if len(reasons) != len(want) {
		t.Fatalf("expected %d reasons, got %d", len(want), len(reasons))
	}
	for i, key := range want {
		if reasons[i].Key != key {
			t.Fatalf("reason %d: got %q want %q", i, reasons[i].Key, key)
		}
	}
}

func TestReasonLabelFor(t *testing.T) {
	table := DefaultReasons()
	tests := []struct {
		key  types.FeedbackReason
		want string
	}{
		{types.ReasonInaccurate, "Inaccurate"},
		{types.ReasonVague, "Too Vague"},
		{types.ReasonLong, "Too Long"},
		{types.ReasonNone, ""},
		{types.FeedbackReason("rude"), ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := table.LabelFor(tt.key); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestReasonTableIsReadOnly(t *testing.T) {
	table := DefaultReasons()
	all := table.All()
	all[0].Label = "changed"
	if table.LabelFor(types.ReasonInaccurate) != "Inaccurate" {
		t.Fatalf("mutating All() leaked into the table")
	}
}
