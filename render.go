package krinkle

import "github.com/gogpu/gg"

// Draw renders a polygon list into a gg drawing context, filling then
// stroking each path. The caller owns the context transform: translate
// to the desired disc centre (and scale, if needed) before calling.
func Draw(dc *gg.Context, polys []Polygon) {
	for _, poly := range polys {
		if len(poly.Path) == 0 {
			continue
		}
		dc.MoveTo(poly.Path[0].X, poly.Path[0].Y)
		for _, pt := range poly.Path[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.ClosePath()
		dc.SetColor(poly.Color.Color())
		dc.FillPreserve()
		dc.SetColor(poly.Stroke.Color())
		dc.Stroke()
	}
}

// Bounds returns the min and max corners over every polygon path.
// Both are zero when the list holds no points.
func Bounds(polys []Polygon) (min, max gg.Point) {
	first := true
	for _, poly := range polys {
		for _, pt := range poly.Path {
			if first {
				min, max = pt, pt
				first = false
				continue
			}
			if pt.X < min.X {
				min.X = pt.X
			}
			if pt.Y < min.Y {
				min.Y = pt.Y
			}
			if pt.X > max.X {
				max.X = pt.X
			}
			if pt.Y > max.Y {
				max.Y = pt.Y
			}
		}
	}
	return min, max
}
