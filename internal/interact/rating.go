package interact

import (
	"context"

	"github.com/astrochat/astrochat/internal/types"
	"github.com/cockroachdb/errors"
)

// MaxStars is the top of the rating scale.
const MaxStars = 5

// RatingState is the dialog phase.
type RatingState int

const (
	RatingPicking RatingState = iota
	RatingSubmitted
)

// RatingSink receives submitted session ratings.
type RatingSink interface {
	SubmitRating(ctx context.Context, rating types.SessionRating) error
}

// NopRatingSink discards ratings.
type NopRatingSink struct{}

func (NopRatingSink) SubmitRating(context.Context, types.SessionRating) error { return nil }

// RatingSinkFunc adapts a function to RatingSink.
type RatingSinkFunc func(ctx context.Context, rating types.SessionRating) error

func (f RatingSinkFunc) SubmitRating(ctx context.Context, rating types.SessionRating) error {
	return f(ctx, rating)
}

// MultiSink hands each rating to every sink in order. All sinks run; their
// errors are combined.
type MultiSink []RatingSink

func (m MultiSink) SubmitRating(ctx context.Context, rating types.SessionRating) error {
	var combined error
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.SubmitRating(ctx, rating); err != nil {
			combined = errors.CombineErrors(combined, err)
		}
	}
	return combined
}

// RatingDialog is the post-session star rating modal.
type RatingDialog struct {
	visible bool
	rating  int
	state   RatingState
	onClose func()
}

// NewRatingDialog creates a hidden dialog; onClose runs whenever it closes.
func NewRatingDialog(onClose func()) *RatingDialog {
	return &RatingDialog{onClose: onClose}
}

// Show makes the dialog visible.
func (d *RatingDialog) Show() { d.visible = true }

func (d *RatingDialog) Visible() bool      { return d.visible }
func (d *RatingDialog) Rating() int        { return d.rating }
func (d *RatingDialog) State() RatingState { return d.state }

// Select sets the pending star count. Values outside 1..MaxStars and
// selections after submit are ignored.
func (d *RatingDialog) Select(stars int) bool {
	if d.state != RatingPicking || stars < 1 || stars > MaxStars {
		return false
	}
	d.rating = stars
	return true
}

// CanSubmit is false until a star is picked.
func (d *RatingDialog) CanSubmit() bool {
	return d.state == RatingPicking && d.rating > 0
}

// Submit moves to the thank-you state.
func (d *RatingDialog) Submit() bool {
	if !d.CanSubmit() {
		return false
	}
	d.state = RatingSubmitted
	return true
}

// Close resets the dialog and notifies the parent.
func (d *RatingDialog) Close() {
	d.rating = 0
	d.state = RatingPicking
	d.visible = false
	if d.onClose != nil {
		d.onClose()
	}
}
