package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/core"
)

// cellColors is the style key for a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// Renderer converts a Screen to a styled string, caching one lipgloss style
// per color pair.
type Renderer struct {
	styles map[cellColors]lipgloss.Style
	base   *lipgloss.Renderer
}

// NewRenderer creates a screen renderer. A nil lipgloss renderer uses the
// process default; SSH sessions pass one bound to their own output.
func NewRenderer(base *lipgloss.Renderer) *Renderer {
	if base == nil {
		base = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		styles: make(map[cellColors]lipgloss.Style),
		base:   base,
	}
}

func (r *Renderer) style(c cellColors) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := r.base.NewStyle().
		Foreground(lipgloss.Color(c.fg.Hex())).
		Background(lipgloss.Color(c.bg.Hex()))
	r.styles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
