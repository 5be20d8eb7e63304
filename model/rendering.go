package model

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-lifesim/utils"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	panelGap   = 2
	panelWidth = 32
)

var trendLevels = []rune("▁▂▃▄▅▆▇█")

// TerminalRenderer draws a session and its stats panel on a tcell screen
type TerminalRenderer struct {
	screen     tcell.Screen
	aliveStyle tcell.Style
	deadStyle  tcell.Style
	textStyle  tcell.Style
	trendStyle tcell.Style
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return &TerminalRenderer{
		screen:     screen,
		aliveStyle: base.Foreground(tcell.ColorGreen),
		deadStyle:  base,
		textStyle:  base.Foreground(tcell.ColorWhite),
		trendStyle: base.Foreground(tcell.ColorGreen),
	}
}

// Draw renders the grid on the left and the statistics panel on the right
func (r *TerminalRenderer) Draw(s *Session, stats *utils.Stats) {
	r.screen.Clear()

	g := s.Grid()
	for row := range g.Size() {
		for col := range g.Size() {
			if g.Get(row, col) {
				r.drawText(col*2, row, gridPosBlock, r.aliveStyle)
			} else {
				r.drawText(col*2, row, gridPosEmpty, r.deadStyle)
			}
		}
	}

	x := g.Size()*2 + panelGap
	lines := []string{
		fmt.Sprintf("Generation: %d", s.Generation()),
		fmt.Sprintf("Population: %d", s.Population()),
		fmt.Sprintf("Pattern: %s", patternLabel(s.Pattern())),
		fmt.Sprintf("Status: %s", statusLabel(s)),
		fmt.Sprintf("Speed: %.1f gen/sec", stats.GenerationsPerSecond),
		fmt.Sprintf("Avg Pop: %.1f", stats.AveragePopulation),
		"",
		"Population trend",
	}
	for i, line := range lines {
		r.drawText(x, i, line, r.textStyle)
	}
	r.drawText(x, len(lines), TrendLine(s.History(), s.PeakPopulation(), panelWidth), r.trendStyle)
	r.drawText(x, len(lines)+2, "space pause | r reset | p perturb | q quit", r.textStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func patternLabel(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

func statusLabel(s *Session) string {
	status := s.State().String()
	switch {
	case s.Generation() > 0 && s.Population() == 0:
		status += " (Extinct)"
	case s.Stagnant():
		status += " (Stagnant)"
	}
	return status
}

// TrendLine renders the last width samples of history as a sparkline scaled to peak.
// A peak of 0 is treated as 1 so an empty or extinct run draws a flat line.
func TrendLine(history []int, peak, width int) string {
	if width <= 0 || len(history) == 0 {
		return ""
	}
	if peak <= 0 {
		peak = 1
	}
	if len(history) > width {
		history = history[len(history)-width:]
	}

	top := len(trendLevels) - 1
	out := make([]rune, len(history))
	for i, v := range history {
		level := min(v*top/peak, top)
		out[i] = trendLevels[max(level, 0)]
	}
	return string(out)
}
