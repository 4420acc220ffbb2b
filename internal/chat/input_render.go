package chat

import (
	"fmt"
	"strings"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/view"
	"github.com/charmbracelet/lipgloss"
)

var (
	sendStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accentColor).Bold(true).Padding(0, 1)
	sendIdleStyle = lipgloss.NewStyle().Foreground(blurText).Background(lipgloss.Color("238")).Padding(0, 1)
)

func (m *Model) renderInput() string {
	var parts []string

	// Add reply preview if replying
	if replyPreview := m.renderReplyPreview(); replyPreview != "" {
		parts = append(parts, replyPreview)
	}

	send := sendIdleStyle.Render("Send")
	if m.ctrl.CanSend() {
		send = sendStyle.Render("Send")
	}
	send = m.zoneManager.Mark(zoneSend, send)

	content := lipgloss.JoinHorizontal(lipgloss.Bottom, m.input.View(), " ", send)
	style := lipgloss.NewStyle().Background(inputBg).Padding(0, inputPadding, 0, 0)
	if width := m.mainWidth(); width > 0 {
		style = style.Width(width)
	}
	blank := style.Render("")
	parts = append(parts, blank, style.Render(content), blank)
	return strings.Join(parts, "\n")
}

// renderReplyPreview renders the reply bar above the input when replying.
func (m *Model) renderReplyPreview() string {
	target, ok := m.ctrl.Reply()
	if !ok {
		return ""
	}

	previewStyle := lipgloss.NewStyle().Foreground(metaColor).Italic(true)
	cancelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	width := m.mainWidth()
	cancel := m.zoneManager.Mark(zoneReplyCancel, cancelStyle.Render(" [x]"))
	label := fmt.Sprintf("↪ %s: ", m.localizer.Text(core.KeyReplyingTo))
	textWidth := 0
	if width > 0 {
		textWidth = max(width-lipgloss.Width(label)-lipgloss.Width(cancel)-1, 1)
	}
	text, _ := view.TruncateLines(strings.ReplaceAll(target.Text, "\n", " "), 1, textWidth)
	preview := previewStyle.Render(label + text)

	if width > 0 {
		// Right-align the cancel button
		padding := width - lipgloss.Width(preview) - lipgloss.Width(cancel)
		if padding > 0 {
			return preview + strings.Repeat(" ", padding) + cancel
		}
	}
	return preview + " " + cancel
}
