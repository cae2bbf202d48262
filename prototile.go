package krinkle

import "github.com/gogpu/gg"

// Prototile builds the single closed polygon whose copies tile the
// plane. It fails with ErrSymmetryOrder when n < k.
//
// The path starts at the origin, walks one unit step per entry of the
// lower boundary sequence (sentinel included), then walks the upper
// sequence in reverse subtracting each step, returning to the origin.
// The distance between the final computed point and the origin is
// recorded in Meta.ClosureError; for coprime (m, k) it is zero up to
// floating point.
func Prototile(m, k, n int, opts ...Option) (Polygon, error) {
	p := Params{M: m, K: k, N: n}
	if err := p.validate(); err != nil {
		return Polygon{}, err
	}
	o := applyOptions(p, opts)
	return buildPrototile(p, &o), nil
}

// buildPrototile walks the boundary sequences into a closed path.
// Parameters are assumed validated.
func buildPrototile(p Params, o *genOptions) Polygon {
	lower, upper, short := boundarySequences(p.M, p.K)
	if short {
		Logger().Warn("short period: boundary sequence closed early, prototile may self-overlap",
			"m", p.M, "k", p.K)
	}

	path := make([]gg.Point, 0, len(lower)+len(upper))
	pos := gg.Pt(0, 0)
	path = append(path, pos)
	for _, v := range lower {
		pos = pos.Add(p.direction(v, o.unit))
		path = append(path, pos)
	}
	for i := len(upper) - 1; i >= 0; i-- {
		pos = pos.Sub(p.direction(upper[i], o.unit))
		path = append(path, pos)
	}

	closure := pos.Length()
	if closure > closureTolerance*o.unit {
		Logger().Warn("prototile does not close",
			"m", p.M, "k", p.K, "n", p.N, "closure", closure)
	}

	// The final step lands back on the origin; drop the duplicate point
	// since the path is implicitly closed.
	path = path[:len(path)-1]

	return Polygon{
		Path:   path,
		Color:  o.fill(colorIndex(0, 0, 0, o.count, o.rules)),
		Stroke: o.stroke,
		Meta: Meta{
			ClosureError:   closure,
			HasShortPeriod: short,
		},
	}
}
