package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// BRANCHWISE_COLORS defines the color palette for branch visualization,
// cycled by depth in the plan tree.
var BRANCHWISE_COLORS = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{244, 98, 81},   // Red
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
	{80, 132, 243},  // Blue
}

// ColorsEnabled reports whether stdout is a color-capable terminal.
// BRANCHWISE_NO_COLOR forces colors off.
func ColorsEnabled() bool {
	if os.Getenv("BRANCHWISE_NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// ColorForDepth returns text styled with the palette color for the given
// tree depth, or unstyled text when colors are disabled.
func ColorForDepth(text string, depth int) string {
	if !ColorsEnabled() || len(BRANCHWISE_COLORS) == 0 {
		return text
	}

	color := BRANCHWISE_COLORS[depth%len(BRANCHWISE_COLORS)]
	hexColor := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2]))

	return lipgloss.NewStyle().Foreground(hexColor).Render(text)
}

// Dim returns text styled faint, or unstyled when colors are disabled
func Dim(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().Faint(true).Render(text)
}
