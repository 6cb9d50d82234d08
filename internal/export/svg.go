package export

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/viz"
)

// CanvasToSVG draws every lit braille dot of canvas as a circle, scale
// pixels apart.
func CanvasToSVG(canvas *viz.Canvas, scale float64, theme viz.Theme) string {
	if canvas == nil {
		return ""
	}

	w, h := canvas.Dots()
	width, height := float64(w)*scale, float64(h)*scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, theme.Background, theme.Accent)

	r := scale * 0.4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if canvas.IsSet(x, y) {
				fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
					float64(x)*scale+scale/2, float64(y)*scale+scale/2, r)
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TrailsToSVG draws one polyline per body, coloured by theme, inside a
// shared bounding box padded by 10%. Bodies with fewer than two points are
// skipped; the result is empty when nothing can be drawn.
func TrailsToSVG(trails map[orbit.BodyID][]mgl64.Vec2, width, height int, theme viz.Theme) string {
	first := true
	var lo, hi mgl64.Vec2
	drawable := 0
	for _, pts := range trails {
		if len(pts) < 2 {
			continue
		}
		drawable++
		for _, p := range pts {
			if first {
				lo, hi = p, p
				first = false
				continue
			}
			lo = mgl64.Vec2{min(lo[0], p[0]), min(lo[1], p[1])}
			hi = mgl64.Vec2{max(hi[0], p[0]), max(hi[1], p[1])}
		}
	}
	if drawable == 0 {
		return ""
	}

	span := hi.Sub(lo)
	for i := range span {
		if span[i] == 0 {
			span[i] = 1
		}
	}
	lo = lo.Sub(span.Mul(0.1))
	span = span.Mul(1.2)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background)

	for _, id := range orbit.AllBodies() {
		pts := trails[id]
		if len(pts) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `<path id="%s" fill="none" stroke="%s" stroke-width="1.5" d="`, id, theme.BodyColor(id))
		for i, p := range pts {
			x := (p[0] - lo[0]) / span[0] * float64(width)
			y := float64(height) - (p[1]-lo[1])/span[1]*float64(height)
			if i == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
