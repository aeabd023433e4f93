package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	shimmerInterval = 120 * time.Millisecond
	shimmerWidth    = 3 // glyphs in the bright band
	shimmerPause    = 8 // frames between sweeps
)

// shimmerTickMsg advances the shimmer by one frame
type shimmerTickMsg struct{}

func shimmerTick() tea.Cmd {
	return tea.Tick(shimmerInterval, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

var (
	shimmerBase   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	shimmerBright = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorShimmer)).Bold(true)
)

// shimmerBand returns the [start, end) rune range lit at frame for a text of
// n runes. The band enters from the left, leaves on the right, then pauses.
func shimmerBand(n, frame int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	if frame < 0 {
		frame = 0
	}
	cycle := n + shimmerWidth + shimmerPause
	start := frame%cycle - shimmerWidth
	end := start + shimmerWidth

	start = max(start, 0)
	end = min(end, n)
	if start >= end {
		return 0, 0
	}
	return start, end
}

// renderShimmer renders text with the band for frame lit.
func renderShimmer(text string, frame int) string {
	runes := []rune(text)
	start, end := shimmerBand(len(runes), frame)
	if start == end {
		return shimmerBase.Render(text)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(shimmerBase.Render(string(runes[:start])))
	}
	b.WriteString(shimmerBright.Render(string(runes[start:end])))
	if end < len(runes) {
		b.WriteString(shimmerBase.Render(string(runes[end:])))
	}
	return b.String()
}
