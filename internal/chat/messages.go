package chat

import (
	"math"
	"strings"

	"github.com/astrochat/astrochat/internal/interact"
	"github.com/astrochat/astrochat/internal/types"
	"github.com/astrochat/astrochat/internal/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	metaStyle    = lipgloss.NewStyle().Foreground(metaColor)
	eventStyle   = lipgloss.NewStyle().Foreground(metaColor).Italic(true)
	replyQuote   = lipgloss.NewStyle().BorderLeft(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(accentColor).PaddingLeft(1)
	reactionPill = lipgloss.NewStyle().Background(lipgloss.Color("238")).Padding(0, 1)
	chipStyle    = lipgloss.NewStyle().Foreground(textColor).Background(lipgloss.Color("238")).Padding(0, 1)
	chipSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accentColor).Bold(true).Padding(0, 1)
	feedbackIdle = lipgloss.NewStyle().Foreground(metaColor).Padding(0, 1)
	feedbackOn   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accentColor).Padding(0, 1)
	pickerBar    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(metaColor).Padding(0, 1)
	pickerActive = lipgloss.NewStyle().Background(accentColor).Padding(0, 0)
	indicator    = lipgloss.NewStyle().Foreground(metaColor)
	indicatorOn  = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	selectMarker = lipgloss.NewStyle().Foreground(selectedColor).Render("▌")
)

// refreshViewport re-projects the store and replaces the viewport content.
// New messages and scrollBottom pin the view to the newest message.
func (m *Model) refreshViewport(scrollBottom bool) {
	content := m.renderMessages()
	m.viewport.SetContent(content)
	if scrollBottom || len(m.views) > m.renderedCount {
		m.viewport.GotoBottom()
	}
	m.renderedCount = len(m.views)
}

func (m *Model) renderMessages() string {
	snap := m.store.Snapshot()
	width := m.mainWidth()
	if width <= 0 {
		width = 80
	}
	bubbleWidth := m.bubbleMaxWidth()
	m.views = view.Project(snap, m.reasons, view.Options{
		Location:     m.location,
		Localizer:    m.localizer,
		PreviewWidth: max(bubbleWidth-6, 1),
	})

	now := m.now()
	lines := make([]string, 0, len(m.views)*4)
	spans := make(map[string]lineSpan, len(m.views))
	for i, v := range m.views {
		if i > 0 {
			lines = append(lines, "")
		}
		block := m.renderMessage(v, m.ctrl.View(v.ID, now), width, bubbleWidth)
		start := len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		spans[v.ID] = lineSpan{start: start, end: len(lines)}
	}
	m.messageLines = spans
	return strings.Join(lines, "\n")
}

func (m *Model) renderMessage(v view.MessageView, iv interact.ItemView, width, bubbleWidth int) string {
	selected := m.focus == focusMessages && v.ID == m.selectedID
	if v.Align == view.AlignCenter {
		return m.renderEvent(v, width, selected)
	}

	bubble := m.zoneManager.Mark(messageZoneID(v.ID), m.renderBubble(v, bubbleWidth))
	rows := []string{bubble}
	if v.Reaction != "" {
		rows = append(rows, reactionPill.Render(v.Reaction))
	}
	if v.ShowFeedback {
		rows = append(rows, m.renderFeedbackRow(v))
		if v.Feedback == types.FeedbackDisliked && iv.PanelExpanded {
			if chips := m.renderChips(v, iv.PanelProgress); chips != "" {
				rows = append(rows, chips)
			}
		}
	}
	picker := m.ctrl.Picker()
	if picker.IsOpen() && picker.MessageID() == v.ID {
		rows = append(rows, m.renderPicker(v, picker, lipgloss.Width(bubble)))
	}

	align := lipgloss.Left
	if v.Align == view.AlignRight {
		align = lipgloss.Right
	}
	block := lipgloss.JoinVertical(align, rows...)
	return m.placeBlock(block, align, iv, width, selected)
}

// placeBlock positions a message block in the row, shifted right by the
// swipe offset, with the reply indicator and selection marker in the gutter.
func (m *Model) placeBlock(block string, align lipgloss.Position, iv interact.ItemView, width int, selected bool) string {
	available := max(width-gutterWidth, 1)
	blockWidth := lipgloss.Width(block)
	left := 0
	if align == lipgloss.Right {
		left = max(available-blockWidth, 0)
	}
	shift := int(iv.Offset / m.unitsPerCell)
	left += shift

	gutter := strings.Repeat(" ", gutterWidth)
	if selected {
		gutter = selectMarker + " "
	}

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		pad := strings.Repeat(" ", left)
		if i == 0 && iv.SwipeProgress > 0 && shift > 0 {
			pad = m.replyIndicator(iv, shift) + strings.Repeat(" ", left-shift)
		}
		lines[i] = gutter + ansi.Truncate(pad+line, available, "")
	}
	return strings.Join(lines, "\n")
}

// replyIndicator draws the reply arrow inside the shift area at the position
// interpolated from the swipe offset.
func (m *Model) replyIndicator(iv interact.ItemView, shift int) string {
	col := int((iv.IndicatorShift - interact.IndicatorHiddenShift) / m.unitsPerCell)
	col = min(max(col, 0), shift-1)
	style := indicator
	if iv.SwipeProgress >= 1 {
		style = indicatorOn
	}
	return strings.Repeat(" ", col) + style.Render("↩") + strings.Repeat(" ", shift-col-1)
}

func (m *Model) renderEvent(v view.MessageView, width int, selected bool) string {
	text := ansi.Wrap(v.Text, max(width-8, 10), "")
	body := eventStyle.Render(text) + "\n" + metaStyle.Render(v.Time)
	body = m.zoneManager.Mark(messageZoneID(v.ID), lipgloss.NewStyle().Align(lipgloss.Center).Render(body))
	placed := lipgloss.PlaceHorizontal(max(width-gutterWidth, 1), lipgloss.Center, body)
	gutter := strings.Repeat(" ", gutterWidth)
	if selected {
		gutter = selectMarker + " "
	}
	lines := strings.Split(placed, "\n")
	for i := range lines {
		lines[i] = gutter + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBubble(v view.MessageView, maxWidth int) string {
	bg := bubbleColor(v.Sender)
	fg := contrastTextColor(bg)
	inner := max(maxWidth-2, 1)

	var parts []string
	header := lipgloss.NewStyle().Foreground(fg).Background(bg).Bold(true).Render(v.SenderLabel) +
		lipgloss.NewStyle().Foreground(fg).Background(bg).Faint(true).Render("  "+v.Time)
	parts = append(parts, header)
	if v.Reply != nil {
		quote := lipgloss.NewStyle().Bold(true).Render(v.Reply.SenderLabel) + "\n" + v.Reply.Text
		parts = append(parts, replyQuote.Foreground(fg).Background(bg).Render(quote))
	}
	parts = append(parts, ansi.Wrap(v.Text, inner, ""))

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Render(strings.Join(parts, "\n"))
}

func (m *Model) renderFeedbackRow(v view.MessageView) string {
	likeStyle, dislikeStyle := feedbackIdle, feedbackIdle
	switch v.Feedback {
	case types.FeedbackLiked:
		likeStyle = feedbackOn
	case types.FeedbackDisliked:
		dislikeStyle = feedbackOn
	}
	row := m.zoneManager.Mark(likeZoneID(v.ID), likeStyle.Render("👍")) +
		" " + m.zoneManager.Mark(dislikeZoneID(v.ID), dislikeStyle.Render("👎"))
	for _, chip := range v.Chips {
		if chip.Selected {
			row += metaStyle.Render(" · " + chip.Label)
		}
	}
	return row
}

// renderChips reveals reason chips in proportion to the panel animation.
func (m *Model) renderChips(v view.MessageView, progress float64) string {
	count := int(math.Ceil(progress * float64(len(v.Chips))))
	count = min(max(count, 0), len(v.Chips))
	parts := make([]string, 0, count)
	for _, chip := range v.Chips[:count] {
		style := chipStyle
		if chip.Selected {
			style = chipSelected
		}
		parts = append(parts, m.zoneManager.Mark(reasonZoneID(v.ID, chip.Key), style.Render(chip.Label)))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderPicker(v view.MessageView, picker *interact.ReactionPicker, width int) string {
	options := picker.Options()
	parts := make([]string, 0, len(options))
	for i, emoji := range options {
		cell := emoji
		if emoji == v.Reaction {
			cell = pickerActive.Render(emoji)
		}
		parts = append(parts, m.zoneManager.Mark(reactionZoneID(v.ID, i), cell))
	}
	bar := pickerBar.Render(strings.Join(parts, " "))
	side := lipgloss.Left
	if picker.Side() == interact.SideRight {
		side = lipgloss.Right
	}
	return lipgloss.PlaceHorizontal(max(width, lipgloss.Width(bar)), side, bar)
}
