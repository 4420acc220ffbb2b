package chat

import (
	"fmt"
	"strconv"

	"github.com/astrochat/astrochat/internal/interact"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Rating().Visible() {
		return m.handleRatingKeys(msg)
	}
	if m.focus == focusMessages {
		return m.handleSelectionKeys(msg)
	}
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.input.InsertString(normalizeNewlines(string(msg.Runes)))
		m.syncInput()
		m.resize()
		return m, nil
	}
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() != "" || m.hasReply() {
			// Clear input and reply silently
			m.ctrl.CancelReply()
			m.resetInput()
			m.status = ""
			return m, nil
		}
		m.openRating()
		return m, nil
	case tea.KeyEsc:
		if m.ctrl.Picker().IsOpen() {
			m.ctrl.DismissPicker()
			m.refreshViewport(false)
			return m, nil
		}
		if m.hasReply() {
			m.clearReply()
			return m, nil
		}
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		// Backspace at position 0 with reply set: clear reply
		if m.hasReply() && m.inputCursorPos() == 0 {
			m.clearReply()
			return m, nil
		}
	case tea.KeyEnter:
		return m, m.submit()
	case tea.KeyUp:
		if m.input.Value() == "" {
			m.enterSelection()
			return m, nil
		}
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.syncInput()
	m.resize()
	return m, cmd
}

// submit sends the composed message. Whitespace-only input is refused.
func (m *Model) submit() tea.Cmd {
	m.syncInput()
	if !m.ctrl.CanSend() {
		m.status = "type a message to send"
		return nil
	}
	if _, ok := m.ctrl.Send(m.now()); !ok {
		return nil
	}
	m.status = ""
	m.input.Reset()
	m.resize()
	m.refreshViewport(true)
	return nil
}

func (m *Model) handleSelectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	picker := m.ctrl.Picker()
	if picker.IsOpen() {
		if n, ok := digitKey(key); ok {
			m.ctrl.SelectReactionAt(n - 1)
			m.refreshViewport(false)
			return m, nil
		}
		// Any other key, esc included, only closes the picker
		m.ctrl.DismissPicker()
		m.refreshViewport(false)
		return m, nil
	}

	id := m.selectedID
	var cmd tea.Cmd
	switch key {
	case "ctrl+c":
		m.openRating()
		return m, nil
	case "esc", "i", "tab":
		m.exitSelection()
		return m, nil
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		if m.moveSelection(1) == "" {
			m.exitSelection()
			return m, nil
		}
	case "home", "g":
		m.selectAt(0)
	case "end", "G":
		m.selectAt(len(m.views) - 1)
	case "r", "enter":
		m.ctrl.RequestReply(id)
	case "e", " ":
		m.ctrl.OpenPicker(id)
	case "+", "l":
		m.ctrl.Like(id)
	case "-", "d":
		m.ctrl.Dislike(id, m.now())
		cmd = m.startFrames()
	case "y":
		m.copyMessage(id)
	default:
		if n, ok := digitKey(key); ok {
			m.ctrl.SelectReasonAt(id, n-1)
		}
	}
	m.refreshViewport(false)
	m.ensureVisible(m.selectedID)
	return m, cmd
}

func (m *Model) handleRatingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dialog := m.ctrl.Rating()
	switch key := msg.String(); key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.ctrl.CloseRating()
	case "left", "h":
		m.ctrl.SelectStars(dialog.Rating() - 1)
	case "right", "l":
		m.ctrl.SelectStars(dialog.Rating() + 1)
	case "enter":
		if dialog.State() == interact.RatingSubmitted {
			m.ctrl.CloseRating()
		} else {
			m.submitRating()
		}
	default:
		if n, ok := digitKey(key); ok {
			m.ctrl.SelectStars(n)
		}
	}
	return m, m.afterRating()
}

func (m *Model) submitRating() {
	if !m.ctrl.Rating().CanSubmit() {
		return
	}
	err := m.ctrl.SubmitRating(m.ctx, m.now())
	if m.ctrl.Rating().State() == interact.RatingSubmitted {
		m.sessionRated = true
	}
	if err != nil {
		m.status = fmt.Sprintf("rating not saved: %v", err)
	}
}

// afterRating returns focus to the input once the dialog is gone and quits
// when a rated session was closed.
func (m *Model) afterRating() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	if !m.ctrl.Rating().Visible() && m.focus == focusInput {
		m.input.Focus()
	}
	return nil
}

func (m *Model) enterSelection() {
	if len(m.views) == 0 {
		return
	}
	m.focus = focusMessages
	m.input.Blur()
	if _, ok := m.messageLines[m.selectedID]; !ok {
		m.selectedID = m.views[len(m.views)-1].ID
	}
	m.refreshViewport(false)
	m.ensureVisible(m.selectedID)
}

func (m *Model) exitSelection() {
	m.focus = focusInput
	m.selectedID = ""
	m.ctrl.DismissPicker()
	m.input.Focus()
	m.refreshViewport(false)
}

// moveSelection steps the selection and returns the new id, or "" when the
// step leaves the list.
func (m *Model) moveSelection(delta int) string {
	idx := m.selectedIndex()
	next := idx + delta
	if idx < 0 || next < 0 {
		return m.selectedID
	}
	if next >= len(m.views) {
		return ""
	}
	m.selectedID = m.views[next].ID
	return m.selectedID
}

func (m *Model) selectAt(idx int) {
	if idx < 0 || idx >= len(m.views) {
		return
	}
	m.selectedID = m.views[idx].ID
}

func (m *Model) selectedIndex() int {
	for i, v := range m.views {
		if v.ID == m.selectedID {
			return i
		}
	}
	return -1
}

func (m *Model) copyMessage(id string) {
	msg, ok := m.store.Snapshot().Find(id)
	if !ok {
		return
	}
	if err := m.clipboard(msg.Text); err != nil {
		m.logger.Warn("clipboard copy failed", "err", err)
		m.status = "copy failed"
		return
	}
	m.status = fmt.Sprintf("copied message from %s", m.localizer.SenderLabel(msg.Sender))
}

func digitKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
