package export

import (
	"strings"
	"testing"

	"github.com/san-kum/toursim/internal/geom"
)

func TestTourSVG(t *testing.T) {
	points := geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 100, Y: 0},
		{ID: 2, X: 100, Y: 100},
	}
	svg := TourSVG(points, []int{0, 1, 2, 0}, 640, 480)

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML prolog")
	}
	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("got %d circles, want 3", got)
	}
	if !strings.Contains(svg, `<path fill="none"`) {
		t.Error("missing tour path element")
	}
	// Closed tour: the path command list has one M plus len(path)-1 Ls.
	if got := strings.Count(svg, " L"); got != 3 {
		t.Errorf("got %d line segments, want 3", got)
	}
}

func TestTourSVGNoPath(t *testing.T) {
	points := geom.PointSet{{ID: 0, X: 5, Y: 5}}
	svg := TourSVG(points, nil, 640, 480)
	if strings.Contains(svg, "<path") {
		t.Error("pathless render should omit the path element")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("points not rendered")
	}
}
