package krinkle

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Wedge tiles a triangular arrangement of rows*(rows+1)/2 prototile
// copies: one per (r, c) with 0 <= c <= r < rows, in row-major order
// with sequential tile indices starting at 0.
//
// Tile (r, c) is the prototile translated by r*d0 + c*d1, where d0 is
// the vector sum of the lower boundary steps (sentinel excluded) and
// d1 is the diagonal shift direction(k) - direction(0). The shift
// lattice makes the arrangement gap- and overlap-free by construction.
func Wedge(m, k, n, rows int, opts ...Option) ([]Polygon, error) {
	p := Params{M: m, K: k, N: n}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if rows < 0 {
		return nil, fmt.Errorf("krinkle: rows must be non-negative, got %d", rows)
	}
	o := applyOptions(p, opts)
	base := buildPrototile(p, &o)
	return buildWedge(p, &o, base, rows), nil
}

// buildWedge translates base copies onto the wedge lattice.
func buildWedge(p Params, o *genOptions, base Polygon, rows int) []Polygon {
	d0, d1 := shiftVectors(p, o.unit)

	tiles := make([]Polygon, 0, rows*(rows+1)/2)
	idx := 0
	for r := range rows {
		for c := 0; c <= r; c++ {
			off := d0.Mul(float64(r)).Add(d1.Mul(float64(c)))
			path := make([]gg.Point, len(base.Path))
			for i, pt := range base.Path {
				path[i] = pt.Add(off)
			}
			tiles = append(tiles, Polygon{
				Path:   path,
				Color:  o.fill(colorIndex(r, c, 0, o.count, o.rules)),
				Stroke: o.stroke,
				Meta: Meta{
					Row:            r,
					Col:            c,
					TileIndex:      idx,
					HasShortPeriod: base.Meta.HasShortPeriod,
				},
			})
			idx++
		}
	}
	return tiles
}

// shiftVectors returns the two constant lattice offsets for wedge
// assembly.
func shiftVectors(p Params, unit float64) (d0, d1 gg.Point) {
	lower, _, _ := boundarySequences(p.M, p.K)
	for _, v := range lower[:len(lower)-1] {
		d0 = d0.Add(p.direction(v, unit))
	}
	d1 = p.direction(p.K, unit).Sub(p.direction(0, unit))
	return d0, d1
}
