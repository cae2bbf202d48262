package krinkle

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// Tiling places rotated copies of the wedge around the origin until they
// close a full disc, using front tracking: a mutable sequence of open
// boundary directions, initialised from the upper boundary sequence, is
// scanned for each new wedge's attachment direction and extended in
// place as the wedge is placed.
//
// With offset false, n wedge copies are placed, wedge i rotated by
// i*2*pi/n. With offset true, only n/2 copies are placed and the half
// disc is completed by a 180-degree point reflection about
// direction(0)/2; reflected tiles carry Meta.IsCopy and a WedgeIndex
// raised by ReflectedWedgeOffset.
//
// A rotation index whose attachment direction never appears on the
// front is skipped with a warning and reported in Result.SkippedWedges;
// the remaining wedges are still placed.
func Tiling(m, k, n, rows int, offset bool, opts ...Option) (Result, error) {
	p := Params{M: m, K: k, N: n}
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	if rows < 0 {
		return Result{}, fmt.Errorf("krinkle: rows must be non-negative, got %d", rows)
	}
	o := applyOptions(p, opts)

	base := buildPrototile(p, &o)
	wedge := buildWedge(p, &o, base, rows)
	_, upper, _ := boundarySequences(p.M, p.K)

	wLimit := p.N
	if offset {
		wLimit = p.N / 2
	}

	// The front starts as the upper boundary sequence without its
	// trailing sentinel 0.
	front := slices.Clone(upper[:len(upper)-1])

	polys := make([]Polygon, 0, wLimit*len(wedge))
	polys = append(polys, wedge...)

	var skipped []int
	for i := 1; i < wLimit; i++ {
		j := slices.Index(front, i)
		if j < 0 {
			Logger().Warn("front tracking: no attachment direction for wedge, leaving a gap",
				"wedge", i, "front", front)
			skipped = append(skipped, i)
			continue
		}

		var off gg.Point
		for _, v := range front[:j] {
			off = off.Add(p.direction(v, o.unit))
		}
		tf := gg.Translate(off.X, off.Y).Multiply(gg.Rotate(2 * math.Pi * float64(i) / float64(p.N)))

		for _, tile := range wedge {
			path := make([]gg.Point, len(tile.Path))
			for pi, pt := range tile.Path {
				path[pi] = tf.TransformPoint(pt)
			}
			meta := tile.Meta
			meta.WedgeIndex = i
			polys = append(polys, Polygon{
				Path:   path,
				Color:  o.fill(colorIndex(meta.Row, meta.Col, i, o.count, o.rules)),
				Stroke: o.stroke,
				Meta:   meta,
			})
		}

		// The placed wedge extends the front at the attachment position
		// by the modulus, exposing the next attachment direction.
		front[j] = i + p.K
		Logger().Debug("placed wedge", "wedge", i, "attach", j, "offset", off)
	}

	if offset {
		pivot := p.direction(0, o.unit).Mul(0.5)
		primary := len(polys)
		for t := range primary {
			src := polys[t]
			path := make([]gg.Point, len(src.Path))
			for pi, pt := range src.Path {
				path[pi] = pivot.Mul(2).Sub(pt)
			}
			meta := src.Meta
			meta.IsCopy = true
			meta.WedgeIndex += ReflectedWedgeOffset
			polys = append(polys, Polygon{
				Path:   path,
				Color:  src.Color,
				Stroke: src.Stroke,
				Meta:   meta,
			})
		}
	}

	return Result{Polygons: polys, SkippedWedges: skipped}, nil
}
