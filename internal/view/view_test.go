package view

import (
	"strings"
	"testing"
	"time"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/store"
	"github.com/astrochat/astrochat/internal/types"
)

func snapshotOf(msgs ...types.Message) store.Snapshot {
	return store.New(msgs).Snapshot()
}

func TestReplyPreviewResolves(t *testing.T) {
	snap := snapshotOf(
		types.Message{ID: "1", Text: "first", Sender: types.SenderHumanAstrologer},
		types.Message{ID: "2", Text: "second", Sender: types.SenderUser, ReplyTo: "1"},
	)
	msg, _ := snap.Find("2")
	v := ProjectMessage(snap, msg, core.DefaultReasons(), Options{})
	if v.Reply == nil {
		t.Fatalf("expected reply preview")
	}
	if v.Reply.TargetID != "1" || v.Reply.Text != "first" || v.Reply.SenderLabel != "Astrologer" {
		t.Fatalf("unexpected preview %+v", v.Reply)
	}
}

func TestReplyPreviewDanglingTarget(t *testing.T) {
	snap := snapshotOf(types.Message{ID: "2", Text: "orphan", Sender: types.SenderUser, ReplyTo: "99"})
	msg, _ := snap.Find("2")
	v := ProjectMessage(snap, msg, core.DefaultReasons(), Options{})
	if v.Reply != nil {
		t.Fatalf("expected no preview, got %+v", v.Reply)
	}
}

func TestReasonChipsOnlyWhenDisliked(t *testing.T) {
	tests := []struct {
		name      string
		msg       types.Message
		wantChips int
		selected  types.FeedbackReason
	}{
		{
			name: "liked ai",
			msg:  types.Message{ID: "a", Sender: types.SenderAIAstrologer, Feedback: types.FeedbackLiked},
		},
		{
			name:      "disliked ai without reason",
			msg:       types.Message{ID: "a", Sender: types.SenderAIAstrologer, Feedback: types.FeedbackDisliked},
			wantChips: 3,
		},
		{
			name:      "disliked ai with reason",
			msg:       types.Message{ID: "a", Sender: types.SenderAIAstrologer, Feedback: types.FeedbackDisliked, FeedbackReason: types.ReasonVague},
			wantChips: 3,
			selected:  types.ReasonVague,
		},
		{
			name: "disliked human message has no affordance",
			msg:  types.Message{ID: "a", Sender: types.SenderHumanAstrologer, Feedback: types.FeedbackDisliked},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshotOf(tt.msg)
			v := ProjectMessage(snap, tt.msg, core.DefaultReasons(), Options{})
			if len(v.Chips) != tt.wantChips {
				t.Fatalf("chips: got %d want %d", len(v.Chips), tt.wantChips)
			}
			for _, chip := range v.Chips {
				if chip.Selected != (chip.Key == tt.selected) {
					t.Fatalf("chip %s selected=%v", chip.Key, chip.Selected)
				}
			}
		})
	}
}

func TestProjectOrderAndLabels(t *testing.T) {
	seed := core.SeedMessages()
	views := Project(store.New(seed).Snapshot(), core.DefaultReasons(), Options{Location: time.UTC})
	if len(views) != len(seed) {
		t.Fatalf("got %d views", len(views))
	}
	for i, v := range views {
		if v.ID != seed[i].ID {
			t.Fatalf("view %d is %s", i, v.ID)
		}
	}
	if views[0].Align != AlignCenter || views[1].Align != AlignRight || views[2].Align != AlignLeft {
		t.Fatalf("unexpected alignment %v %v %v", views[0].Align, views[1].Align, views[2].Align)
	}
	if views[0].Time != "07:58 AM" {
		t.Fatalf("time: got %q", views[0].Time)
	}
	if !views[2].ShowFeedback || views[3].ShowFeedback {
		t.Fatalf("feedback affordance on wrong senders")
	}
	if views[4].Reply == nil || views[4].Reply.TargetID != "4" {
		t.Fatalf("seeded reply not resolved")
	}
}

func TestProjectionDoesNotMutateTimestamp(t *testing.T) {
	s := store.New(core.SeedMessages())
	before, _ := s.Snapshot().At(0)
	Project(s.Snapshot(), core.DefaultReasons(), Options{})
	after, _ := s.Snapshot().At(0)
	if before.TS != after.TS {
		t.Fatalf("timestamp changed")
	}
}

func TestTruncateLines(t *testing.T) {
	text, cut := TruncateLines("one\ntwo\nthree", 2, 0)
	if !cut || text != "one\ntwo…" {
		t.Fatalf("got %q cut=%v", text, cut)
	}
	text, cut = TruncateLines("short", 2, 0)
	if cut || text != "short" {
		t.Fatalf("got %q cut=%v", text, cut)
	}
	long := strings.Repeat("word ", 40)
	text, cut = TruncateLines(long, 2, 20)
	if !cut {
		t.Fatalf("expected wrapped text to be cut")
	}
	if n := len(strings.Split(text, "\n")); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
}
