package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/apetrov-dev/flappy-tui/internal/core"
)

// fgColors maps core.Color foreground values to terminal colors.
var fgColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightBlue:   lipgloss.Color("12"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorSky:          lipgloss.Color("117"),
}

// bgColors maps core.Color background values to terminal colors.
// The sky uses a darker shade than its foreground counterpart so
// sprites stay readable on top of it.
var bgColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightBlue:   lipgloss.Color("12"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorSky:          lipgloss.Color("24"),
}

// styleKey identifies a foreground/background color pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair. Styles are built
// lazily because most frames only use a handful of combinations.
var styleCache = map[styleKey]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := styleKey{fg, bg}
	if style, ok := styleCache[key]; ok {
		return style
	}

	style := lipgloss.NewStyle()
	if c, ok := fgColors[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := bgColors[bg]; ok {
		style = style.Background(c)
	}
	styleCache[key] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startFg, startBg := cell.Fg, cell.Bg

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != startFg || cell.Bg != startBg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startFg, startBg).Render(run.String()))
		}
	}
	return sb.String()
}
