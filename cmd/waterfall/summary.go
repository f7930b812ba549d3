package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lixenwraith/waterfall/engine"
	"github.com/lixenwraith/waterfall/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
)

// renderSummary formats the session counters and particle history printed by -stats
func renderSummary(st engine.SessionStats, elapsed time.Duration) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("WATERFALL SESSION") + "\n")

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Duration", elapsed.Round(time.Second).String())
	row("Frames", fmt.Sprintf("%d", st.Frames))
	if secs := elapsed.Seconds(); secs > 0 {
		row("Avg FPS", fmt.Sprintf("%.1f", float64(st.Frames)/secs))
	}
	row("Spawned", fmt.Sprintf("%d", st.Spawned))
	row("Collisions", fmt.Sprintf("%d", st.Collisions))
	row("Overflows", fmt.Sprintf("%d", st.Overflows))
	row("Removed", fmt.Sprintf("%d", st.Removed))
	row("Peak", fmt.Sprintf("%d particles", st.PeakParticles))

	// asciigraph needs at least two points to draw a line
	if len(st.History) > 1 {
		chart := asciigraph.Plot(st.History, asciigraph.Height(6), asciigraph.Width(48), asciigraph.Caption("particles on screen"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	return boxStyle.Render(strings.TrimRight(s.String(), "\n")) + "\n"
}

// renderHowto formats the controls printed by -howto
func renderHowto() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("WATERFALL") + "\n")
	s.WriteString(valueStyle.Render("Characters of a text fall down a waterfall and bounce off rocks you place.") + "\n\n")
	for _, l := range render.HelpLines {
		s.WriteString("  " + valueStyle.Render(l) + "\n")
	}
	return boxStyle.Render(strings.TrimRight(s.String(), "\n")) + "\n"
}
