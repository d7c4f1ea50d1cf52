// Package export renders a point set and tour to standalone SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/toursim/internal/geom"
)

// TourSVG draws the points with their ids and, when path is non-empty,
// the tour polyline through them. Path ids must index into points; a
// partial path renders just as well as a closed tour.
func TourSVG(points geom.PointSet, path []int, width, height float64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if len(path) >= 2 {
		sb.WriteString(`<path fill="none" stroke="#00ff00" stroke-width="1.5" d="M`)
		for i, id := range path {
			p := points[id]
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString(`<g fill="#ffffff" font-family="monospace" font-size="12">` + "\n")
	for _, p := range points {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#86e1fc"/>
<text x="%.1f" y="%.1f">%d</text>
`, p.X, p.Y, p.X+7, p.Y-7, p.ID))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
