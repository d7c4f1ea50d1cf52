package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(3, 2, 'x')
	if c.At(3, 2) != 'x' {
		t.Error("set cell not readable")
	}
	c.Clear()
	if c.At(3, 2) != ' ' {
		t.Error("clear did not reset cell")
	}
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(-1, 0, 'x')
	c.Set(0, 99, 'x')
	if strings.ContainsRune(c.String(), 'x') {
		t.Error("out-of-bounds set leaked onto the canvas")
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 9, 9, '*')
	if c.At(0, 0) != '*' || c.At(9, 9) != '*' {
		t.Error("line endpoints missing")
	}
	if c.At(5, 5) != '*' {
		t.Error("diagonal midpoint missing")
	}
}

func TestCanvasLineReversed(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(9, 3, 0, 3, '-')
	for x := 0; x < 10; x++ {
		if c.At(x, 3) != '-' {
			t.Errorf("horizontal line missing cell %d", x)
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	got := c.String()
	if got != "   \n   \n" {
		t.Errorf("render = %q", got)
	}
}
