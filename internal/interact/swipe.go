package interact

// DefaultSwipeThreshold is the drag distance that turns a swipe into a reply.
const DefaultSwipeThreshold = 80.0

// IndicatorHiddenShift is the reply indicator position before a drag starts.
const IndicatorHiddenShift = -40.0

const (
	settleFactor = 0.55
	settleSnap   = 0.5
)

// SwipeTracker follows one horizontal drag. It owns only interpolation state;
// the single commit callback is the only way a swipe reaches the store.
type SwipeTracker struct {
	threshold   float64
	translation float64
	offset      float64
	dragging    bool
	commit      func()
}

// NewSwipeTracker creates a tracker that calls commit when a drag released
// past threshold. A non-positive threshold uses DefaultSwipeThreshold.
func NewSwipeTracker(threshold float64, commit func()) *SwipeTracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeTracker{threshold: threshold, commit: commit}
}

// Begin starts a drag from the current position.
func (s *SwipeTracker) Begin() {
	s.dragging = true
	s.translation = 0
	s.offset = 0
}

// Update records the translation since Begin. Leftward drags are captured
// but produce no visual offset.
func (s *SwipeTracker) Update(translation float64) {
	if !s.dragging {
		return
	}
	s.translation = translation
	s.offset = max(translation, 0)
}

// End releases the drag. It reports whether the reply was committed; either
// way the offset starts settling back to zero.
func (s *SwipeTracker) End() bool {
	if !s.dragging {
		return false
	}
	s.dragging = false
	committed := s.translation > s.threshold
	s.translation = 0
	if committed && s.commit != nil {
		s.commit()
	}
	return committed
}

// Cancel abandons the drag without committing.
func (s *SwipeTracker) Cancel() {
	s.dragging = false
	s.translation = 0
}

// Step advances the settle animation one frame and reports whether the
// tracker is still moving.
func (s *SwipeTracker) Step() bool {
	if s.dragging {
		return false
	}
	s.offset *= settleFactor
	if s.offset < settleSnap {
		s.offset = 0
	}
	return s.offset > 0
}

// Dragging reports whether a drag is in progress.
func (s *SwipeTracker) Dragging() bool { return s.dragging }

// Settling reports whether a released drag is still animating home.
func (s *SwipeTracker) Settling() bool { return !s.dragging && s.offset > 0 }

// Offset is the current visual translation, never negative.
func (s *SwipeTracker) Offset() float64 { return s.offset }

// Progress maps the offset onto [0, 1] relative to the threshold.
func (s *SwipeTracker) Progress() float64 {
	return Interpolate(s.offset, 0, s.threshold, 0, 1)
}

// IndicatorShift is the reply indicator position: hidden at -40, resting at 0
// once the drag reaches the threshold.
func (s *SwipeTracker) IndicatorShift() float64 {
	return Interpolate(s.offset, 0, s.threshold, IndicatorHiddenShift, 0)
}

// Interpolate maps x from [inMin, inMax] onto [outMin, outMax], clamped.
func Interpolate(x, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	t := (x - inMin) / (inMax - inMin)
	t = min(max(t, 0), 1)
	return outMin + t*(outMax-outMin)
}
