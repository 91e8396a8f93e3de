package export

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Series is one named curve on a chart. X and Y are parallel slices.
type Series struct {
	Label  string
	X      []float64
	Y      []float64
	Color  string
	Dotted bool
	Marks  bool
}

type bounds struct {
	minX, maxX float64
	minY, maxY float64
}

func computeBounds(series []Series) bounds {
	b := bounds{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
	}

	for _, s := range series {
		for i := range s.X {
			if !finite(s.X[i]) || !finite(s.Y[i]) {
				continue
			}
			b.minX = math.Min(b.minX, s.X[i])
			b.maxX = math.Max(b.maxX, s.X[i])
			b.minY = math.Min(b.minY, s.Y[i])
			b.maxY = math.Max(b.maxY, s.Y[i])
		}
	}

	if b.minX > b.maxX {
		b = bounds{minX: 0, maxX: 1, minY: 0, maxY: 1}
	}

	// Pad so curves do not touch the frame.
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * 0.05
	b.maxX += rangeX * 0.05
	b.minY -= rangeY * 0.1
	b.maxY += rangeY * 0.1

	return b
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (b bounds) project(x, y float64, width, height int) (float64, float64) {
	px := (x - b.minX) / (b.maxX - b.minX) * float64(width)
	py := float64(height) - (y-b.minY)/(b.maxY-b.minY)*float64(height)
	return px, py
}

// LineChart renders the series onto a dark-background SVG chart with a
// title, min/max axis labels, and a legend. Non-finite samples break the
// path and resume at the next finite point.
func LineChart(title string, series []Series, width, height int) string {
	b := computeBounds(series)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height+40, width, height+40))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="18" fill="#cccccc" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
`, width/2, title))

	sb.WriteString(`<g transform="translate(0,30)">
`)

	for _, s := range series {
		writePath(&sb, s, b, width, height)
		if s.Marks {
			writeMarks(&sb, s, b, width, height)
		}
	}

	// Axis extents.
	sb.WriteString(fmt.Sprintf(`<text x="4" y="%d" fill="#888888" font-family="monospace" font-size="10">%.4g</text>
`, height-4, b.minY))
	sb.WriteString(fmt.Sprintf(`<text x="4" y="12" fill="#888888" font-family="monospace" font-size="10">%.4g</text>
`, b.maxY))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#888888" font-family="monospace" font-size="10" text-anchor="end">t=%.4g .. %.4g</text>
`, width-4, height-4, b.minX, b.maxX))

	// Legend, top right.
	for i, s := range series {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="11" text-anchor="end">%s</text>
`, width-4, 14+i*14, s.Color, s.Label))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func writePath(sb *strings.Builder, s Series, b bounds, width, height int) {
	if len(s.X) < 2 {
		return
	}

	dash := ""
	if s.Dotted {
		dash = ` stroke-dasharray="5,4"`
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5"%s d="`, s.Color, dash))

	pen := false
	for i := range s.X {
		if !finite(s.X[i]) || !finite(s.Y[i]) {
			pen = false
			continue
		}
		px, py := b.project(s.X[i], s.Y[i], width, height)
		if pen {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", px, py))
			pen = true
		}
	}

	sb.WriteString("\"/>\n")
}

func writeMarks(sb *strings.Builder, s Series, b bounds, width, height int) {
	for i := range s.X {
		if !finite(s.X[i]) || !finite(s.Y[i]) {
			continue
		}
		px, py := b.project(s.X[i], s.Y[i], width, height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3.5" fill="%s"/>
`, px, py, s.Color))
	}
}

// WriteFile writes a rendered chart to path.
func WriteFile(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
