package chat

import (
	"fmt"
	"math"
	"time"

	"github.com/astrochat/astrochat/internal/interact"
	"github.com/astrochat/astrochat/internal/types"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Shift {
		return m, nil
	}
	if m.ctrl.Rating().Visible() {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.handleRatingClick(msg)
			return m, m.afterRating()
		}
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.drag != nil {
			m.handleDragMotion(msg)
			return m, nil
		}
	case tea.MouseActionRelease:
		if m.drag != nil {
			return m, m.handleDragRelease()
		}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m, m.handleMouseClick(msg)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleMouseClick(msg tea.MouseMsg) tea.Cmd {
	m.logger.Debug("mouse click", "x", msg.X, "y", msg.Y)
	picker := m.ctrl.Picker()
	if picker.IsOpen() {
		for i := range picker.Options() {
			if m.zoneManager.Get(reactionZoneID(picker.MessageID(), i)).InBounds(msg) {
				m.ctrl.SelectReactionAt(i)
				m.refreshViewport(false)
				return nil
			}
		}
		// Outside the picker a tap only closes it; a press on a bubble
		// still starts a gesture, which closes it too.
		for _, v := range m.views {
			if m.zoneManager.Get(messageZoneID(v.ID)).InBounds(msg) {
				return m.beginGesture(v.ID, msg)
			}
		}
		m.ctrl.DismissPicker()
		m.refreshViewport(false)
		return nil
	}
	if m.hasReply() && m.zoneManager.Get(zoneReplyCancel).InBounds(msg) {
		m.clearReply()
		return nil
	}
	if m.zoneManager.Get(zoneHeaderBack).InBounds(msg) {
		m.openRating()
		return nil
	}
	if m.zoneManager.Get(zoneSend).InBounds(msg) {
		return m.submit()
	}

	now := m.now()
	for _, v := range m.views {
		if v.ShowFeedback {
			if m.zoneManager.Get(likeZoneID(v.ID)).InBounds(msg) {
				m.ctrl.Like(v.ID)
				m.refreshViewport(false)
				return nil
			}
			if m.zoneManager.Get(dislikeZoneID(v.ID)).InBounds(msg) {
				m.ctrl.Dislike(v.ID, now)
				m.refreshViewport(false)
				return m.startFrames()
			}
			if v.Feedback == types.FeedbackDisliked && m.ctrl.View(v.ID, now).PanelExpanded {
				for _, chip := range v.Chips {
					if m.zoneManager.Get(reasonZoneID(v.ID, chip.Key)).InBounds(msg) {
						m.ctrl.SelectReason(v.ID, chip.Key)
						m.refreshViewport(false)
						return nil
					}
				}
			}
		}
		if m.zoneManager.Get(messageZoneID(v.ID)).InBounds(msg) {
			return m.beginGesture(v.ID, msg)
		}
	}
	return nil
}

// beginGesture starts both the swipe and the long press on id. The returned
// command delivers the hold timeout.
func (m *Model) beginGesture(id string, msg tea.MouseMsg) tea.Cmd {
	m.ctrl.BeginSwipe(id)
	seq := m.ctrl.PressMessage(id, m.now())
	m.drag = &dragState{id: id, seq: seq, startX: msg.X, startY: msg.Y}
	if m.focus == focusMessages {
		m.selectedID = id
	}
	m.refreshViewport(false)
	return tea.Tick(m.ctrl.HoldDuration(), func(_ time.Time) tea.Msg {
		return longPressMsg{id: id, seq: seq}
	})
}

func (m *Model) handleDragMotion(msg tea.MouseMsg) {
	dx := float64(msg.X-m.drag.startX) * m.unitsPerCell
	dy := float64(msg.Y-m.drag.startY) * m.unitsPerCell
	m.ctrl.MovePress(m.drag.id, math.Hypot(dx, dy))
	m.ctrl.UpdateSwipe(m.drag.id, dx)
	m.refreshViewport(false)
}

func (m *Model) handleDragRelease() tea.Cmd {
	id := m.drag.id
	m.drag = nil
	m.ctrl.ReleasePress(id)
	if m.ctrl.EndSwipe(id) {
		m.logger.Debug(fmt.Sprintf("swipe committed reply to %s", id))
	}
	m.refreshViewport(false)
	return m.startFrames()
}

func (m *Model) handleRatingClick(msg tea.MouseMsg) {
	dialog := m.ctrl.Rating()
	if dialog.State() == interact.RatingPicking {
		for n := 1; n <= interact.MaxStars; n++ {
			if m.zoneManager.Get(starZoneID(n)).InBounds(msg) {
				m.ctrl.SelectStars(n)
				return
			}
		}
		if m.zoneManager.Get(zoneSubmit).InBounds(msg) {
			m.submitRating()
			return
		}
	}
	if m.zoneManager.Get(zoneClose).InBounds(msg) {
		m.ctrl.CloseRating()
	}
}
