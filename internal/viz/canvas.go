package viz

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Each cell is a braille rune holding a 2x4 block of dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
const brailleBase = 0x2800

var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot matrix of Width x Height cells, giving
// 2*Width x 4*Height addressable dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, bit rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, dotBits[y%4][x%2], true
}

// Set turns on the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= bit
	}
}

func (c *Canvas) Unset(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= bit
	}
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	row, col, bit, ok := c.cell(x, y)
	return ok && c.Grid[row][col]&bit != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
}

// DrawLine uses Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Disc fills a small square blob of the given radius around (x, y).
func (c *Canvas) Disc(x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r+r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

// Circle outlines a circle of radius r dots. A dashed circle leaves every
// other arc segment blank.
func (c *Canvas) Circle(x, y int, r float64, dashed bool) {
	if r <= 0 {
		return
	}
	n := int(2*math.Pi*r) + 8
	for i := 0; i < n; i++ {
		if dashed && (i/4)%2 == 1 {
			continue
		}
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		c.Set(x+int(math.Round(r*cos)), y+int(math.Round(r*sin)))
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Viewport maps world coordinates onto canvas dots with y pointing up and
// the world origin at the canvas centre.
type Viewport struct {
	Scale  float64 // dots per world unit
	Center mgl64.Vec2
	cx, cy int
}

// FitViewport scales extent world units from the centre to fill the
// smaller canvas dimension.
func FitViewport(c *Canvas, extent float64) Viewport {
	w, h := c.Dots()
	half := math.Min(float64(w), float64(h)) / 2
	scale := 1.0
	if extent > 0 {
		scale = (half - 2) / extent
	}
	return Viewport{Scale: scale, cx: w / 2, cy: h / 2}
}

func (v Viewport) Project(p mgl64.Vec2) (int, int) {
	d := p.Sub(v.Center)
	return v.cx + int(math.Round(d[0]*v.Scale)), v.cy - int(math.Round(d[1]*v.Scale))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
