package krinkle

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
)

// svgWriter accumulates the first write error so the emit helpers can
// be chained without per-call checks.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err == nil {
		_, s.err = fmt.Fprintf(s.w, format, a...)
	}
}

// WriteSVG writes the polygons as a standalone SVG document. The
// viewBox is fitted to the polygon bounds with a small margin, so the
// output needs no further scaling.
func WriteSVG(w io.Writer, polys []Polygon) error {
	min, max := Bounds(polys)
	margin := (max.X - min.X + max.Y - min.Y) * 0.02

	s := &svgWriter{w: w}
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%g %g %g %g"
     xmlns="http://www.w3.org/2000/svg">
`, min.X-margin, min.Y-margin, max.X-min.X+2*margin, max.Y-min.Y+2*margin)

	for _, poly := range polys {
		if len(poly.Path) == 0 {
			continue
		}
		s.printf(`<path d="M%g,%g`, poly.Path[0].X, poly.Path[0].Y)
		for _, pt := range poly.Path[1:] {
			s.printf(" L%g,%g", pt.X, pt.Y)
		}
		s.printf(` Z" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			svgColor(poly.Color), svgColor(poly.Stroke))
	}

	s.printf("</svg>\n")
	return s.err
}

// svgColor formats a colour as an SVG hex value. Alpha is dropped;
// tiling fills are opaque.
func svgColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp01(c.R)*255+0.5),
		uint8(clamp01(c.G)*255+0.5),
		uint8(clamp01(c.B)*255+0.5))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
