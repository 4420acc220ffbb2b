package interact

import "time"

// DefaultPanelDuration is the reason panel open animation length.
const DefaultPanelDuration = 300 * time.Millisecond

// FeedbackPanel tracks the reason-chip panel animation of one message.
type FeedbackPanel struct {
	duration time.Duration
	expanded bool
	start    time.Time
}

// NewFeedbackPanel creates a collapsed panel.
func NewFeedbackPanel(duration time.Duration) *FeedbackPanel {
	if duration <= 0 {
		duration = DefaultPanelDuration
	}
	return &FeedbackPanel{duration: duration}
}

// Expand starts the open animation at now.
func (p *FeedbackPanel) Expand(now time.Time) {
	p.expanded = true
	p.start = now
}

// Collapse closes the panel immediately.
func (p *FeedbackPanel) Collapse() {
	p.expanded = false
}

func (p *FeedbackPanel) Expanded() bool { return p.expanded }

// Progress is the animation position in [0, 1].
func (p *FeedbackPanel) Progress(now time.Time) float64 {
	if !p.expanded {
		return 0
	}
	return Interpolate(float64(now.Sub(p.start)), 0, float64(p.duration), 0, 1)
}

// Animating reports whether the open animation is still running at now.
func (p *FeedbackPanel) Animating(now time.Time) bool {
	return p.expanded && now.Sub(p.start) < p.duration
}
