package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-snake/internal/display"
)

var (
	litStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	darkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

const (
	litPixel  = "●"
	darkPixel = "·"
)

// RenderMatrix draws the LED matrix with the top row first. Runs of equal
// pixels are styled together to keep escape sequences short.
func RenderMatrix(m *display.Matrix) string {
	var sb strings.Builder
	sb.Grow(m.Width() * m.Height() * 4)

	for y, row := range m.Rows() {
		if y < m.Height()-1 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(row) {
			lit := row[x]
			n := 0
			for x < len(row) && row[x] == lit {
				n++
				x++
			}

			if x > n {
				sb.WriteByte(' ')
			}
			style, px := darkStyle, darkPixel
			if lit {
				style, px = litStyle, litPixel
			}
			sb.WriteString(style.Render(strings.Repeat(px+" ", n-1) + px))
		}
	}
	return sb.String()
}

// render composes the whole device view.
func (m Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.ToUpper(m.game.Title())))
	b.WriteString("\n\n")
	b.WriteString(frameStyle.Render(RenderMatrix(m.matrix)))
	b.WriteString("\n")

	status := fmt.Sprintf("steps %d  wins %d  deaths %d  resets %d  last %s",
		m.stats.steps, m.stats.wins, m.stats.deaths, m.stats.resets, m.stats.last)
	if m.anim != nil {
		status = fmt.Sprintf("%s  [%s]", status, m.anim.Name())
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
