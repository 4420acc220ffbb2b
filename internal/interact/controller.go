// Package interact turns chat gestures into store operations and transient
// view state: swipe to reply, long press reactions, feedback, compose and the
// session rating dialog.
package interact

import (
	"context"
	"log/slog"
	"time"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/store"
	"github.com/astrochat/astrochat/internal/types"
)

// Store is the mutation surface the controller needs.
type Store interface {
	Add(msg types.Message)
	SetReaction(id, reaction string)
	SetFeedback(id string, feedback types.Feedback, reason types.FeedbackReason)
	Snapshot() store.Snapshot
}

// Config tunes a Controller. Zero values select defaults.
type Config struct {
	SwipeThreshold float64
	HoldDuration   time.Duration
	MoveSlop       float64
	PanelDuration  time.Duration
	Reactions      []string
	Reasons        core.ReasonTable
	Session        string
	IDs            core.IDSource
	Sink           RatingSink
	Logger         *slog.Logger
	// OnReply observes reply requests after the composer picked them up.
	OnReply func(types.ReplyTarget)
	// OnRatingClosed runs when the rating dialog closes.
	OnRatingClosed func()
}

// Item is the gesture state of one message.
type Item struct {
	Swipe *SwipeTracker
	Press *LongPress
	Panel *FeedbackPanel
}

// ItemView is a read-only copy of an item's visual state.
type ItemView struct {
	Offset         float64
	IndicatorShift float64
	SwipeProgress  float64
	Dragging       bool
	PanelExpanded  bool
	PanelProgress  float64
	PanelAnimating bool
}

// Controller owns the per-message gesture state, the picker, the composer and
// the rating dialog. It is not safe for concurrent use; drive it from the UI
// update loop.
type Controller struct {
	store    Store
	cfg      Config
	logger   *slog.Logger
	items    map[string]*Item
	picker   *ReactionPicker
	composer *Composer
	rating   *RatingDialog
}

// NewController wires a controller to st.
func NewController(st Store, cfg Config) *Controller {
	if cfg.Reactions == nil {
		cfg.Reactions = core.ReactionOptions()
	}
	if cfg.Reasons.Len() == 0 {
		cfg.Reasons = core.DefaultReasons()
	}
	if cfg.Sink == nil {
		cfg.Sink = NopRatingSink{}
	}
	if cfg.IDs == nil {
		cfg.IDs = core.IDFunc(func() string {
			return time.Now().Format("20060102150405.000000000")
		})
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		store:    st,
		cfg:      cfg,
		logger:   logger,
		items:    make(map[string]*Item),
		picker:   NewReactionPicker(cfg.Reactions),
		composer: &Composer{},
	}
	c.rating = NewRatingDialog(func() {
		if cfg.OnRatingClosed != nil {
			cfg.OnRatingClosed()
		}
	})
	return c
}

// Item returns the gesture state for id, creating it on first use.
func (c *Controller) Item(id string) *Item {
	if item, ok := c.items[id]; ok {
		return item
	}
	item := &Item{
		Swipe: NewSwipeTracker(c.cfg.SwipeThreshold, func() { c.requestReply(id) }),
		Press: NewLongPress(c.cfg.HoldDuration, c.cfg.MoveSlop),
		Panel: NewFeedbackPanel(c.cfg.PanelDuration),
	}
	c.items[id] = item
	return item
}

// View returns the visual state of id without creating it.
func (c *Controller) View(id string, now time.Time) ItemView {
	item, ok := c.items[id]
	if !ok {
		return ItemView{IndicatorShift: IndicatorHiddenShift}
	}
	return ItemView{
		Offset:         item.Swipe.Offset(),
		IndicatorShift: item.Swipe.IndicatorShift(),
		SwipeProgress:  item.Swipe.Progress(),
		Dragging:       item.Swipe.Dragging(),
		PanelExpanded:  item.Panel.Expanded(),
		PanelProgress:  item.Panel.Progress(now),
		PanelAnimating: item.Panel.Animating(now),
	}
}

// Swipe-to-reply.

// BeginSwipe starts a drag on id. Starting a swipe closes any open picker.
func (c *Controller) BeginSwipe(id string) {
	c.picker.Close()
	c.Item(id).Swipe.Begin()
}

// UpdateSwipe records the horizontal translation since BeginSwipe.
func (c *Controller) UpdateSwipe(id string, translation float64) {
	c.Item(id).Swipe.Update(translation)
}

// EndSwipe releases the drag and reports whether a reply was requested.
func (c *Controller) EndSwipe(id string) bool {
	return c.Item(id).Swipe.End()
}

// StepSwipes advances every settling swipe one frame and reports whether any
// is still moving.
func (c *Controller) StepSwipes() bool {
	moving := false
	for _, item := range c.items {
		if item.Swipe.Settling() && item.Swipe.Step() {
			moving = true
		}
	}
	return moving
}

// RequestReply is the keyboard path to a committed swipe.
func (c *Controller) RequestReply(id string) {
	c.requestReply(id)
}

func (c *Controller) requestReply(id string) {
	msg, ok := c.store.Snapshot().Find(id)
	if !ok {
		return
	}
	target := types.ReplyTarget{ID: msg.ID, Text: msg.Text}
	c.composer.StartReply(target)
	c.logger.Debug("reply requested", "id", id)
	if c.cfg.OnReply != nil {
		c.cfg.OnReply(target)
	}
}

// Long press and reactions.

// PressMessage starts a hold on id and returns the token to pass to
// LongPressElapsed once the hold duration has passed.
func (c *Controller) PressMessage(id string, now time.Time) uint64 {
	return c.Item(id).Press.Press(now)
}

// MovePress reports pointer travel during a hold.
func (c *Controller) MovePress(id string, distance float64) {
	c.Item(id).Press.Move(distance)
}

// ReleasePress ends a hold.
func (c *Controller) ReleasePress(id string) {
	c.Item(id).Press.Release()
}

// HoldDuration is how long a press must last.
func (c *Controller) HoldDuration() time.Duration {
	if c.cfg.HoldDuration > 0 {
		return c.cfg.HoldDuration
	}
	return DefaultHoldDuration
}

// LongPressElapsed opens the picker if the hold identified by seq completed.
func (c *Controller) LongPressElapsed(id string, seq uint64, now time.Time) bool {
	item, ok := c.items[id]
	if !ok || !item.Press.Fire(seq, now) {
		return false
	}
	return c.OpenPicker(id)
}

// OpenPicker anchors the reaction picker to id.
func (c *Controller) OpenPicker(id string) bool {
	msg, ok := c.store.Snapshot().Find(id)
	if !ok {
		return false
	}
	c.picker.Open(msg)
	return true
}

// DismissPicker closes the picker without side effects.
func (c *Controller) DismissPicker() {
	c.picker.Close()
}

// Picker exposes the picker for rendering.
func (c *Controller) Picker() *ReactionPicker {
	return c.picker
}

// SelectReaction toggles emoji on the picker's message and closes the picker.
func (c *Controller) SelectReaction(emoji string) {
	if !c.picker.IsOpen() {
		return
	}
	id := c.picker.MessageID()
	c.picker.Close()
	msg, ok := c.store.Snapshot().Find(id)
	if !ok {
		return
	}
	c.store.SetReaction(id, NextReaction(msg.Reaction, emoji))
}

// SelectReactionAt picks the i-th picker option.
func (c *Controller) SelectReactionAt(i int) bool {
	emoji, ok := c.picker.Option(i)
	if !ok || !c.picker.IsOpen() {
		return false
	}
	c.SelectReaction(emoji)
	return true
}

// Feedback.

// Like records liked, clears the reason and collapses the reason panel.
func (c *Controller) Like(id string) {
	msg, ok := c.feedbackTarget(id)
	if !ok {
		return
	}
	c.Item(msg.ID).Panel.Collapse()
	c.store.SetFeedback(msg.ID, types.FeedbackLiked, types.ReasonNone)
}

// Dislike records disliked immediately, keeping the previous reason until a
// chip is chosen, and opens the reason panel when it was not disliked yet.
func (c *Controller) Dislike(id string, now time.Time) {
	msg, ok := c.feedbackTarget(id)
	if !ok {
		return
	}
	if msg.Feedback != types.FeedbackDisliked {
		c.Item(msg.ID).Panel.Expand(now)
	}
	c.store.SetFeedback(msg.ID, types.FeedbackDisliked, msg.FeedbackReason)
}

// SelectReason stores reason on a disliked message.
func (c *Controller) SelectReason(id string, reason types.FeedbackReason) {
	msg, ok := c.feedbackTarget(id)
	if !ok {
		return
	}
	if _, known := c.cfg.Reasons.Lookup(reason); !known {
		return
	}
	c.store.SetFeedback(msg.ID, types.FeedbackDisliked, reason)
}

// SelectReasonAt picks the i-th reason chip.
func (c *Controller) SelectReasonAt(id string, i int) bool {
	reason, ok := c.cfg.Reasons.At(i)
	if !ok {
		return false
	}
	msg, found := c.store.Snapshot().Find(id)
	if !found || msg.Feedback != types.FeedbackDisliked {
		return false
	}
	c.SelectReason(id, reason.Key)
	return true
}

func (c *Controller) feedbackTarget(id string) (types.Message, bool) {
	msg, ok := c.store.Snapshot().Find(id)
	if !ok || !msg.AcceptsFeedback() {
		return types.Message{}, false
	}
	return msg, true
}

// Compose and send.

func (c *Controller) SetInput(text string) { c.composer.SetText(text) }
func (c *Controller) Input() string        { return c.composer.Text() }
func (c *Controller) CanSend() bool        { return c.composer.CanSend() }
func (c *Controller) CancelReply()         { c.composer.CancelReply() }

// Reply returns the pending reply pointer.
func (c *Controller) Reply() (types.ReplyTarget, bool) {
	return c.composer.Reply()
}

// Send appends the composed message and clears the input and reply pointer.
// Whitespace-only input is rejected.
func (c *Controller) Send(now time.Time) (types.Message, bool) {
	msg, ok := c.composer.Compose(c.cfg.IDs.NextID(), now)
	if !ok {
		return types.Message{}, false
	}
	c.store.Add(msg)
	c.composer.Clear()
	c.logger.Debug("message sent", "id", msg.ID, "reply_to", msg.ReplyTo)
	return msg, true
}

// Session rating.

// Rating exposes the dialog for rendering.
func (c *Controller) Rating() *RatingDialog {
	return c.rating
}

// ShowRating opens the rating dialog.
func (c *Controller) ShowRating() {
	c.picker.Close()
	c.rating.Show()
}

// SelectStars sets the pending rating.
func (c *Controller) SelectStars(stars int) bool {
	return c.rating.Select(stars)
}

// SubmitRating moves the dialog to its thank-you state and hands the rating
// to the sink. A sink error is returned but does not undo the submission.
func (c *Controller) SubmitRating(ctx context.Context, now time.Time) error {
	stars := c.rating.Rating()
	if !c.rating.Submit() {
		return nil
	}
	rating := types.SessionRating{
		ID:          c.cfg.IDs.NextID(),
		Session:     c.cfg.Session,
		Stars:       stars,
		SubmittedAt: now.UnixMilli(),
	}
	if err := c.cfg.Sink.SubmitRating(ctx, rating); err != nil {
		c.logger.Error("rating submit failed", "err", err, "stars", stars)
		return err
	}
	c.logger.Info("rating submitted", "stars", stars, "session", c.cfg.Session)
	return nil
}

// CloseRating resets and hides the dialog.
func (c *Controller) CloseRating() {
	c.rating.Close()
}
