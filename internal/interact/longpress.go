package interact

import "time"

const (
	// DefaultHoldDuration is how long a press must last to open the picker.
	DefaultHoldDuration = 500 * time.Millisecond
	// DefaultMoveSlop is the movement that cancels a pending long press.
	DefaultMoveSlop = 10.0
)

// LongPress detects a hold with no cancelling movement. Each Press returns a
// token; a timer that fires with a stale token is ignored.
type LongPress struct {
	hold      time.Duration
	slop      float64
	seq       uint64
	pressed   bool
	cancelled bool
	fired     bool
	start     time.Time
}

// NewLongPress creates a detector. Zero values select the defaults.
func NewLongPress(hold time.Duration, slop float64) *LongPress {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	if slop <= 0 {
		slop = DefaultMoveSlop
	}
	return &LongPress{hold: hold, slop: slop}
}

// Press starts a hold at now and returns its token.
func (l *LongPress) Press(now time.Time) uint64 {
	l.seq++
	l.pressed = true
	l.cancelled = false
	l.fired = false
	l.start = now
	return l.seq
}

// Move cancels the hold once the pointer travelled further than the slop.
func (l *LongPress) Move(distance float64) {
	if !l.pressed {
		return
	}
	if distance < 0 {
		distance = -distance
	}
	if distance > l.slop {
		l.cancelled = true
	}
}

// Release ends the hold.
func (l *LongPress) Release() {
	l.pressed = false
}

// Fire reports whether the hold identified by seq has completed at now. It
// returns true at most once per press.
func (l *LongPress) Fire(seq uint64, now time.Time) bool {
	if seq != l.seq || !l.pressed || l.cancelled || l.fired {
		return false
	}
	if now.Sub(l.start) < l.hold {
		return false
	}
	l.fired = true
	return true
}
