package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = 16 * time.Millisecond

// longPressMsg fires once the hold duration of press seq has passed.
type longPressMsg struct {
	id  string
	seq uint64
}

// frameMsg drives swipe settling and the reason panel animation.
type frameMsg struct{}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case longPressMsg:
		return m.handleLongPressMsg(msg)
	case frameMsg:
		return m.handleFrameMsg()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.resize()
	return m, nil
}

func (m *Model) handleLongPressMsg(msg longPressMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.LongPressElapsed(msg.id, msg.seq, m.now()) {
		m.selectedID = msg.id
		m.refreshViewport(false)
	}
	return m, nil
}

func (m *Model) handleFrameMsg() (tea.Model, tea.Cmd) {
	moving := m.ctrl.StepSwipes()
	animating := m.panelsAnimating()
	m.refreshViewport(false)
	if moving || animating {
		return m, frameTick()
	}
	m.frameActive = false
	return m, nil
}

// startFrames begins the frame loop unless one is already running.
func (m *Model) startFrames() tea.Cmd {
	if m.frameActive {
		return nil
	}
	m.frameActive = true
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) panelsAnimating() bool {
	now := m.now()
	for _, v := range m.views {
		if m.ctrl.View(v.ID, now).PanelAnimating {
			return true
		}
	}
	return false
}
