package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

func newInputModel(placeholder string) textarea.Model {
	input := textarea.New()
	input.Placeholder = placeholder
	input.Prompt = "› "
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(1)
	input.KeyMap.InsertNewline.SetEnabled(false)
	applyInputStyles(&input, textColor, blurText)
	input.Focus()
	return input
}

// applyInputStyles paints both textarea states on the input background.
func applyInputStyles(input *textarea.Model, focusedText, blurredText lipgloss.Color) {
	base := lipgloss.NewStyle().Background(inputBg)
	paint := func(style *textarea.Style, fg lipgloss.Color) {
		style.Base = base.Foreground(fg)
		style.Text = base.Foreground(fg)
		style.Prompt = base.Foreground(caretColor)
		style.CursorLine = base
		style.Placeholder = base.Foreground(blurText)
	}
	paint(&input.FocusedStyle, focusedText)
	paint(&input.BlurredStyle, blurredText)
}

// syncInput hands the textarea value to the composer.
func (m *Model) syncInput() {
	m.ctrl.SetInput(m.input.Value())
}

func (m *Model) resetInput() {
	m.input.Reset()
	m.syncInput()
	m.resize()
}

func (m *Model) inputCursorPos() int {
	value := m.input.Value()
	if value == "" {
		return 0
	}
	lines := strings.Split(value, "\n")
	row := min(max(m.input.Line(), 0), len(lines)-1)
	col := min(max(m.input.LineInfo().ColumnOffset, 0), len([]rune(lines[row])))

	pos := col
	for _, line := range lines[:row] {
		pos += len([]rune(line)) + 1
	}
	return min(pos, len([]rune(value)))
}

func normalizeNewlines(value string) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	value = strings.ReplaceAll(value, "\r", "\n")
	return value
}
