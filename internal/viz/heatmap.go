package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/binarylab/internal/dynamo"
)

// Ramp orders shading characters from low to high.
const Ramp = " .:-=+*#%@"

var heatColors = []lipgloss.Color{"#1a1a4d", "#2244aa", "#22aacc", "#44dd88", "#dddd44", "#ff8833", "#ff3344"}

// Shade maps a normalised value in [0, 1] onto Ramp. Values outside the
// range are clamped.
func Shade(norm float64) byte {
	idx := int(norm * float64(len(Ramp)-1))
	idx = min(max(idx, 0), len(Ramp)-1)
	return Ramp[idx]
}

// Heatmap renders g as width x height characters with the largest y on
// the first line. Each character samples the nearest grid cell.
func Heatmap(g *dynamo.Grid, width, height int) []string {
	if g.Rows() == 0 || g.Cols() == 0 || width <= 0 || height <= 0 {
		return nil
	}

	lo, hi := g.Bounds()
	span := hi - lo

	lines := make([]string, height)
	for r := 0; r < height; r++ {
		row := sample(g.Rows(), height, height-1-r)
		var b strings.Builder
		for c := 0; c < width; c++ {
			v := g.At(row, sample(g.Cols(), width, c))
			norm := 0.0
			if span > 0 {
				norm = (v - lo) / span
			}
			b.WriteByte(Shade(norm))
		}
		lines[r] = b.String()
	}
	return lines
}

// ColorHeatmap is Heatmap with each character tinted by its level.
func ColorHeatmap(g *dynamo.Grid, width, height int) string {
	lines := Heatmap(g, width, height)
	var b strings.Builder
	for _, line := range lines {
		for i := 0; i < len(line); i++ {
			level := strings.IndexByte(Ramp, line[i])
			color := heatColors[level*(len(heatColors)-1)/(len(Ramp)-1)]
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(line[i])))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sample maps output index i of n onto one of size source indices.
func sample(size, n, i int) int {
	if n <= 1 {
		return 0
	}
	return i * (size - 1) / (n - 1)
}
