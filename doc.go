// Package krinkle generates "Modulo Krinkle" plane tilings.
//
// # Overview
//
// A Modulo Krinkle tiling is built from a single polygonal prototile whose
// boundary follows two modular arithmetic sequences. Copies of the prototile
// are stacked into a triangular "wedge", and rotated copies of the wedge are
// placed around the origin by a front-tracking algorithm until they close a
// full disc. The package is part of the GoGPU family and produces plain
// polygon lists ([]Polygon) that render directly through gogpu/gg or the
// bundled SVG writer.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/gogpu/krinkle"
//	)
//
//	n := krinkle.DirectionCount(3, 7, 2, false) // n = k*t = 14
//	res, err := krinkle.Tiling(3, 7, n, 6, false)
//	if err != nil {
//		// n < k: invalid parameters
//	}
//
//	dc := gg.NewContext(1024, 1024)
//	dc.Translate(512, 512)
//	krinkle.Draw(dc, res.Polygons)
//	dc.SavePNG("krinkle.png")
//
// # Determinism
//
// Generation is a pure function of its parameters: the same (m, k, n, rows,
// offset) and options always produce the same polygons in the same order.
// Tiles are emitted row-major within a wedge, wedges in increasing rotation
// order, and offset-mode reflections after all primary wedges.
//
// # Degenerate inputs
//
// When m and k share structure the boundary sequence closes early ("short
// period"). This is not an error: the prototile is still produced, flagged
// via Meta.HasShortPeriod, and may self-overlap. When the front-tracking
// placement cannot attach a wedge the rotation index is reported in
// Result.SkippedWedges and the tiling is left with a gap.
//
// # Coordinate System
//
// Matches gg: X increases right, Y increases down, angles in radians.
// Direction index i maps to a unit-length step at angle 2*pi*i/n.
package krinkle
