package viz

import "strings"

// Canvas is a rune grid the point set and tour edges draw onto.
type Canvas struct {
	Width  int
	Height int
	cells  [][]rune
}

func NewCanvas(width, height int) *Canvas {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = make([]rune, width)
	}
	c := &Canvas{Width: width, Height: height, cells: cells}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

func (c *Canvas) Set(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.cells[y][x] = r
	}
}

func (c *Canvas) At(x, y int) rune {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		return c.cells[y][x]
	}
	return ' '
}

// Line draws with Bresenham's algorithm, clipping at the edges.
func (c *Canvas) Line(x1, y1, x2, y2 int, r rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x1, y1, r)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.cells {
		sb.WriteString(string(c.cells[y]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
