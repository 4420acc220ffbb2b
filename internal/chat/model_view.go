package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

func (m *Model) View() string {
	if m.ctrl.Rating().Visible() {
		return m.zoneManager.Scan(m.renderRatingModal())
	}
	statusLine := lipgloss.NewStyle().Foreground(statusColor).Render(m.statusLine())
	lines := []string{
		m.renderHeader(),
		m.viewport.View(),
		"", // margin above input
		m.renderInput(),
		statusLine,
	}
	return m.zoneManager.Scan(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderHeader shows the back control, the session title and presence, and
// how long ago the last message arrived.
func (m *Model) renderHeader() string {
	fg := contrastTextColor(headerBg)
	base := lipgloss.NewStyle().Foreground(fg).Background(headerBg)
	back := m.zoneManager.Mark(zoneHeaderBack, base.Bold(true).Render("‹ "))
	left := back + base.Bold(true).Render(m.title) + base.Render("  ") + base.Faint(true).Render(m.subtitle)

	right := ""
	snap := m.store.Snapshot()
	if last, ok := snap.At(snap.Len() - 1); ok {
		right = base.Faint(true).Render(humanize.RelTime(time.UnixMilli(last.TS), m.now(), "ago", "from now"))
	}
	width := m.mainWidth()
	style := base.Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
		return style.Render(alignStatusLine(left, right, max(width-2, 1)))
	}
	return style.Render(left)
}

func (m *Model) statusLine() string {
	left := m.status
	var right string
	switch {
	case m.focus == focusMessages && m.ctrl.Picker().IsOpen():
		right = "1-5 react · esc close"
	case m.focus == focusMessages:
		right = "r reply · e react · +/- feedback · 1-3 reason · y copy · esc back"
	case strings.TrimSpace(m.input.Value()) == "":
		right = "↑ select messages · ctrl+c end session"
	default:
		right = "enter send"
	}
	return alignStatusLine(left, right, m.mainWidth())
}

func alignStatusLine(left, right string, width int) string {
	if width <= 0 || right == "" {
		if left == "" {
			return right
		}
		return left
	}
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	if leftWidth+rightWidth+1 > width {
		if leftWidth >= width {
			return ansi.Truncate(left, width, "…")
		}
		return left + " " + ansi.Truncate(right, width-leftWidth-1, "…")
	}
	return left + strings.Repeat(" ", width-leftWidth-rightWidth) + right
}
