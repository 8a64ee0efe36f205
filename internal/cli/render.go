package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/piececube/internal/facelet"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerColors = map[facelet.Color]lipgloss.Color{
	facelet.White:  lipgloss.Color("15"),
	facelet.Red:    lipgloss.Color("196"),
	facelet.Green:  lipgloss.Color("40"),
	facelet.Yellow: lipgloss.Color("226"),
	facelet.Orange: lipgloss.Color("208"),
	facelet.Blue:   lipgloss.Color("27"),
}

func stickerStyle(c facelet.Color) lipgloss.Style {
	bg, ok := stickerColors[c]
	if !ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	}
	return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("0"))
}

// renderNet draws the unfolded cube. Without color it is the plain letter
// net.
func renderNet(g facelet.Grid, color bool) string {
	if !color {
		return g.String()
	}
	var b strings.Builder
	g.Render(&b, func(c facelet.Color) string {
		return stickerStyle(c).Render(c.String())
	})
	return b.String()
}

func styled(s lipgloss.Style, text string) string {
	if flags.noColor {
		return text
	}
	return s.Render(text)
}
