package interact

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/store"
	"github.com/astrochat/astrochat/internal/types"
)

var testNow = time.Date(2024, 12, 20, 8, 0, 0, 0, time.UTC)

func newTestController(t *testing.T, cfg Config) (*Controller, *store.Store) {
	t.Helper()
	st := store.New(core.SeedMessages())
	n := 100
	if cfg.IDs == nil {
		cfg.IDs = core.IDFunc(func() string {
			n++
			return fmt.Sprint(n)
		})
	}
	return NewController(st, cfg), st
}

func find(t *testing.T, st *store.Store, id string) types.Message {
	t.Helper()
	msg, ok := st.Snapshot().Find(id)
	if !ok {
		t.Fatalf("message %s not found", id)
	}
	return msg
}

func TestSwipeRequestsReplyOnce(t *testing.T) {
	var replies []types.ReplyTarget
	c, st := newTestController(t, Config{OnReply: func(r types.ReplyTarget) { replies = append(replies, r) }})

	c.BeginSwipe("4")
	c.UpdateSwipe("4", 100)
	if !c.EndSwipe("4") {
		t.Fatalf("expected reply request")
	}
	for c.StepSwipes() {
	}
	if len(replies) != 1 || replies[0].ID != "4" {
		t.Fatalf("unexpected replies %+v", replies)
	}
	if got := c.View("4", testNow).Offset; got != 0 {
		t.Fatalf("offset did not return to 0: %v", got)
	}
	reply, ok := c.Reply()
	if !ok || reply.ID != "4" || reply.Text != find(t, st, "4").Text {
		t.Fatalf("composer reply pointer %+v", reply)
	}
}

func TestSwipeStartClosesPicker(t *testing.T) {
	c, st := newTestController(t, Config{})
	c.OpenPicker("3")
	c.BeginSwipe("2")
	if c.Picker().IsOpen() {
		t.Fatalf("swipe should close picker")
	}
	if find(t, st, "3").Reaction != "" {
		t.Fatalf("closing picker must not react")
	}
}

func TestLongPressOpensPickerAnchoredBySender(t *testing.T) {
	c, _ := newTestController(t, Config{})

	seq := c.PressMessage("2", testNow)
	if c.LongPressElapsed("2", seq, testNow.Add(100*time.Millisecond)) {
		t.Fatalf("opened before hold duration")
	}
	if !c.LongPressElapsed("2", seq, testNow.Add(c.HoldDuration())) {
		t.Fatalf("expected picker to open")
	}
	if c.Picker().MessageID() != "2" || c.Picker().Side() != SideRight {
		t.Fatalf("user message picker should anchor right")
	}

	c.DismissPicker()
	seq = c.PressMessage("4", testNow)
	c.LongPressElapsed("4", seq, testNow.Add(time.Second))
	if c.Picker().Side() != SideLeft {
		t.Fatalf("astrologer message picker should anchor left")
	}
}

func TestLongPressCancelledByDrag(t *testing.T) {
	c, _ := newTestController(t, Config{})
	seq := c.PressMessage("4", testNow)
	c.MovePress("4", 30)
	if c.LongPressElapsed("4", seq, testNow.Add(time.Second)) || c.Picker().IsOpen() {
		t.Fatalf("moved press opened picker")
	}
}

func TestReactionToggle(t *testing.T) {
	c, st := newTestController(t, Config{})

	c.OpenPicker("4")
	c.SelectReaction("🌙")
	if got := find(t, st, "4").Reaction; got != "🌙" {
		t.Fatalf("reaction: got %q", got)
	}
	if c.Picker().IsOpen() {
		t.Fatalf("picker should close after selection")
	}

	c.OpenPicker("4")
	c.SelectReaction("✨")
	if got := find(t, st, "4").Reaction; got != "✨" {
		t.Fatalf("reaction replace: got %q", got)
	}

	c.OpenPicker("4")
	c.SelectReaction("✨")
	if got := find(t, st, "4").Reaction; got != "" {
		t.Fatalf("reaction toggle off: got %q", got)
	}
}

func TestSelectReactionWithoutPickerIsNoOp(t *testing.T) {
	c, st := newTestController(t, Config{})
	before := st.Snapshot().Version()
	c.SelectReaction("🙏")
	if st.Snapshot().Version() != before {
		t.Fatalf("closed picker changed the store")
	}
}

func TestLikeClearsReason(t *testing.T) {
	c, st := newTestController(t, Config{})
	st.SetFeedback("6", types.FeedbackDisliked, types.ReasonVague)

	c.Like("6")
	msg := find(t, st, "6")
	if msg.Feedback != types.FeedbackLiked || msg.FeedbackReason != types.ReasonNone {
		t.Fatalf("got %v/%q", msg.Feedback, msg.FeedbackReason)
	}
	if c.View("6", testNow).PanelExpanded {
		t.Fatalf("like should collapse the reason panel")
	}
}

func TestDislikeFlow(t *testing.T) {
	c, st := newTestController(t, Config{})

	c.Dislike("6", testNow)
	msg := find(t, st, "6")
	if msg.Feedback != types.FeedbackDisliked || msg.FeedbackReason != types.ReasonNone {
		t.Fatalf("dislike: got %v/%q", msg.Feedback, msg.FeedbackReason)
	}
	if !c.View("6", testNow).PanelExpanded {
		t.Fatalf("dislike should open the reason panel")
	}

	c.SelectReason("6", types.ReasonVague)
	c.SelectReason("6", types.ReasonLong)
	msg = find(t, st, "6")
	if msg.Feedback != types.FeedbackDisliked || msg.FeedbackReason != types.ReasonLong {
		t.Fatalf("reason: got %v/%q", msg.Feedback, msg.FeedbackReason)
	}

	// A repeated dislike re-applies the same state.
	c.Dislike("6", testNow.Add(time.Second))
	msg = find(t, st, "6")
	if msg.Feedback != types.FeedbackDisliked || msg.FeedbackReason != types.ReasonLong {
		t.Fatalf("repeat dislike: got %v/%q", msg.Feedback, msg.FeedbackReason)
	}
}

func TestReasonPanelAnimation(t *testing.T) {
	c, _ := newTestController(t, Config{})
	if c.View("6", testNow).PanelAnimating {
		t.Fatalf("unknown item should not animate")
	}

	c.Dislike("6", testNow)
	tests := []struct {
		at        time.Duration
		animating bool
		progress  float64
	}{
		{0, true, 0},
		{150 * time.Millisecond, true, 0.5},
		{DefaultPanelDuration, false, 1},
		{time.Second, false, 1},
	}
	for _, tt := range tests {
		iv := c.View("6", testNow.Add(tt.at))
		if iv.PanelAnimating != tt.animating || iv.PanelProgress != tt.progress {
			t.Fatalf("at %v: animating=%v progress=%v, want %v/%v", tt.at, iv.PanelAnimating, iv.PanelProgress, tt.animating, tt.progress)
		}
	}

	c.Like("6")
	if iv := c.View("6", testNow); iv.PanelExpanded || iv.PanelAnimating {
		t.Fatalf("like should collapse the panel, got %+v", iv)
	}
}

func TestDislikeRetainsPreviousReason(t *testing.T) {
	c, st := newTestController(t, Config{})
	st.SetFeedback("6", types.FeedbackUnset, types.ReasonInaccurate)
	c.Dislike("6", testNow)
	if got := find(t, st, "6").FeedbackReason; got != types.ReasonInaccurate {
		t.Fatalf("reason: got %q", got)
	}
}

func TestFeedbackIgnoredForNonAIMessages(t *testing.T) {
	c, st := newTestController(t, Config{})
	before := st.Snapshot().Version()
	c.Like("4")
	c.Dislike("2", testNow)
	c.SelectReason("1", types.ReasonLong)
	if st.Snapshot().Version() != before {
		t.Fatalf("feedback applied to a non-AI message")
	}
}

func TestSelectReasonAtRequiresDislike(t *testing.T) {
	c, st := newTestController(t, Config{})
	if c.SelectReasonAt("6", 0) {
		t.Fatalf("chips are hidden until disliked")
	}
	c.Dislike("6", testNow)
	if !c.SelectReasonAt("6", 2) {
		t.Fatalf("expected chip selection")
	}
	if got := find(t, st, "6").FeedbackReason; got != types.ReasonLong {
		t.Fatalf("reason: got %q", got)
	}
	if c.SelectReasonAt("6", 3) {
		t.Fatalf("out of range chip accepted")
	}
}

func TestSendRejectsWhitespace(t *testing.T) {
	c, st := newTestController(t, Config{})
	before := st.Snapshot().Len()
	c.SetInput("  ")
	if _, ok := c.Send(testNow); ok {
		t.Fatalf("whitespace message sent")
	}
	if st.Snapshot().Len() != before {
		t.Fatalf("store length changed")
	}
}

func TestSendWithReply(t *testing.T) {
	c, st := newTestController(t, Config{})
	before := st.Snapshot().Len()
	c.RequestReply("3")
	c.SetInput("Hello")

	msg, ok := c.Send(testNow)
	if !ok {
		t.Fatalf("expected send")
	}
	if st.Snapshot().Len() != before+1 {
		t.Fatalf("expected one appended message")
	}
	last, _ := st.Snapshot().At(before)
	if last.ID != msg.ID || last.Sender != types.SenderUser || last.Text != "Hello" || last.ReplyTo != "3" {
		t.Fatalf("unexpected message %+v", last)
	}
	if last.TS != testNow.UnixMilli() {
		t.Fatalf("timestamp: got %d", last.TS)
	}
	if _, pending := c.Reply(); pending {
		t.Fatalf("reply pointer not cleared")
	}
	if c.Input() != "" {
		t.Fatalf("input not cleared")
	}
}

func TestSendUsesFreshIDs(t *testing.T) {
	c, _ := newTestController(t, Config{})
	c.SetInput("a")
	first, _ := c.Send(testNow)
	c.SetInput("b")
	second, _ := c.Send(testNow)
	if first.ID == second.ID {
		t.Fatalf("ids reused: %s", first.ID)
	}
}

func TestRatingFlow(t *testing.T) {
	closed := 0
	var got []types.SessionRating
	sink := RatingSinkFunc(func(_ context.Context, r types.SessionRating) error {
		got = append(got, r)
		return nil
	})
	c, _ := newTestController(t, Config{Sink: sink, Session: "vikram", OnRatingClosed: func() { closed++ }})

	c.ShowRating()
	d := c.Rating()
	if !d.Visible() || d.CanSubmit() {
		t.Fatalf("fresh dialog should be visible and not submittable")
	}
	if err := c.SubmitRating(context.Background(), testNow); err != nil {
		t.Fatalf("submit at 0 stars: %v", err)
	}
	if d.State() != RatingPicking || len(got) != 0 {
		t.Fatalf("submit at 0 stars should be ignored")
	}

	c.SelectStars(4)
	if err := c.SubmitRating(context.Background(), testNow); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if d.State() != RatingSubmitted {
		t.Fatalf("expected submitted state")
	}
	if len(got) != 1 || got[0].Stars != 4 || got[0].Session != "vikram" {
		t.Fatalf("sink got %+v", got)
	}

	c.CloseRating()
	if d.Rating() != 0 || d.State() != RatingPicking || d.Visible() {
		t.Fatalf("close did not reset the dialog")
	}
	if closed != 1 {
		t.Fatalf("parent notified %d times", closed)
	}
}

func TestRatingSinkErrorKeepsSubmittedState(t *testing.T) {
	boom := errors.New("boom")
	c, _ := newTestController(t, Config{Sink: RatingSinkFunc(func(context.Context, types.SessionRating) error { return boom })})
	c.ShowRating()
	c.SelectStars(5)
	if err := c.SubmitRating(context.Background(), testNow); !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if c.Rating().State() != RatingSubmitted {
		t.Fatalf("sink error should not undo the submission")
	}
}

func TestRatingSelectBounds(t *testing.T) {
	d := NewRatingDialog(nil)
	for _, stars := range []int{0, -1, 6} {
		if d.Select(stars) {
			t.Fatalf("accepted %d stars", stars)
		}
	}
	if !d.Select(1) || !d.Select(5) || d.Rating() != 5 {
		t.Fatalf("valid selections rejected")
	}
	d.Submit()
	if d.Select(2) {
		t.Fatalf("selection after submit accepted")
	}
	d.Close()
	if d.State() != RatingPicking || d.Rating() != 0 {
		t.Fatalf("close from submitted did not reset")
	}
}
