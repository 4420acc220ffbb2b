package chat

const inputMaxHeight = 6
const inputPadding = 1
const sendButtonWidth = 8
const gutterWidth = 2

// bubbleMaxWidth caps bubbles at roughly three quarters of the screen.
func (m *Model) bubbleMaxWidth() int {
	width := m.mainWidth()
	if width <= 0 {
		return 60
	}
	return max(width*3/4, 16)
}

func (m *Model) mainWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(m.width, 1)
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	width := m.mainWidth()
	m.input.SetWidth(max(width-inputPadding-sendButtonWidth, 1))
	lineCount := min(max(m.input.LineCount(), 1), inputMaxHeight)
	m.input.SetHeight(lineCount)
	inputHeight := m.input.Height() + 2
	if m.hasReply() {
		inputHeight++
	}

	headerHeight := 1
	statusHeight := 1
	marginHeight := 1
	m.viewport.Width = width
	m.viewport.Height = max(m.height-headerHeight-inputHeight-statusHeight-marginHeight, 1)
	if m.initialScroll {
		m.refreshViewport(true)
		m.initialScroll = false
		return
	}
	m.refreshViewport(false)
}

// ensureVisible scrolls the viewport so the selected message is on screen.
func (m *Model) ensureVisible(id string) {
	span, ok := m.messageLines[id]
	if !ok || m.viewport.Height <= 0 {
		return
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	switch {
	case span.start < top:
		m.viewport.SetYOffset(span.start)
	case span.end > bottom:
		m.viewport.SetYOffset(max(span.end-m.viewport.Height, span.start))
	}
}
