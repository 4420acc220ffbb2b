package chat

import (
	"strconv"
	"strings"

	"github.com/astrochat/astrochat/internal/types"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor   = lipgloss.Color("35") // brand green
	textColor     = lipgloss.Color("252")
	blurText      = lipgloss.Color("243")
	metaColor     = lipgloss.Color("245")
	statusColor   = lipgloss.Color("220")
	caretColor    = lipgloss.Color("35")
	inputBg       = lipgloss.Color("236")
	headerBg      = lipgloss.Color("29")
	selectedColor = lipgloss.Color("214")
)

var senderPalette = map[types.Sender]lipgloss.Color{
	types.SenderUser:            lipgloss.Color("29"),
	types.SenderAIAstrologer:    lipgloss.Color("60"),
	types.SenderHumanAstrologer: lipgloss.Color("238"),
	types.SenderSystem:          lipgloss.Color("240"),
}

func bubbleColor(sender types.Sender) lipgloss.Color {
	if color, ok := senderPalette[sender]; ok {
		return color
	}
	return senderPalette[types.SenderSystem]
}

func contrastTextColor(color lipgloss.Color) lipgloss.Color {
	code, ok := parseColorCode(color)
	if !ok {
		return lipgloss.Color("231")
	}
	r, g, b := colorCodeToRGB(code)
	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance > 128 {
		return lipgloss.Color("16")
	}
	return lipgloss.Color("231")
}

func parseColorCode(color lipgloss.Color) (int, bool) {
	trimmed := strings.TrimSpace(string(color))
	if trimmed == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// colorCodeToRGB approximates an ANSI 256 color code.
func colorCodeToRGB(code int) (int, int, int) {
	switch {
	case code < 16:
		standard := [16][3]int{
			{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
			{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
			{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		}
		values := standard[max(code, 0)]
		return values[0], values[1], values[2]
	case code <= 231:
		index := code - 16
		toRGB := func(value int) int {
			if value == 0 {
				return 0
			}
			return 55 + value*40
		}
		return toRGB(index / 36), toRGB((index % 36) / 6), toRGB(index % 6)
	case code <= 255:
		gray := 8 + (code-232)*10
		return gray, gray, gray
	default:
		return 128, 128, 128
	}
}
