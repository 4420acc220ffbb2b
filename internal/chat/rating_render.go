package chat

import (
	"strings"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/interact"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const modalWidth = 44

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 3).
			Width(modalWidth)
	modalTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
	starOn        = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	starOff       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accentColor).Bold(true).Padding(0, 2)
	buttonIdle    = lipgloss.NewStyle().Foreground(blurText).Background(lipgloss.Color("238")).Padding(0, 2)
	buttonOutline = lipgloss.NewStyle().Foreground(textColor).Background(lipgloss.Color("238")).Padding(0, 2)
)

func (m *Model) renderRatingModal() string {
	dialog := m.ctrl.Rating()
	inner := modalWidth - 6
	closeButton := m.zoneManager.Mark(zoneClose, buttonOutline.Render(m.localizer.Text(core.KeyClose)))

	var body []string
	if dialog.State() == interact.RatingSubmitted {
		detail := ansi.Wrap(m.localizer.Text(core.KeyThankYouDetail), inner, "")
		body = []string{
			modalTitle.Render(m.localizer.Text(core.KeyThankYou)),
			"",
			metaStyle.Render(detail),
			"",
			closeButton,
		}
	} else {
		stars := make([]string, 0, interact.MaxStars)
		for n := 1; n <= interact.MaxStars; n++ {
			glyph := starOff.Render("☆")
			if n <= dialog.Rating() {
				glyph = starOn.Render("★")
			}
			stars = append(stars, m.zoneManager.Mark(starZoneID(n), glyph))
		}
		submit := buttonIdle.Render(m.localizer.Text(core.KeySubmit))
		if dialog.CanSubmit() {
			submit = buttonStyle.Render(m.localizer.Text(core.KeySubmit))
		}
		submit = m.zoneManager.Mark(zoneSubmit, submit)
		body = []string{
			modalTitle.Render(m.localizer.Text(core.KeyRateSession)),
			metaStyle.Render(m.title),
			"",
			strings.Join(stars, "  "),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, submit, "  ", closeButton),
		}
	}

	box := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center, body...))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
