package krinkle

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// DefaultUnitLength is the length of a single directional step. It only
// sets the rendering scale of the output; the tiling geometry is uniform
// in it.
const DefaultUnitLength = 50.0

// closureTolerance bounds the acceptable prototile closure error,
// relative to the unit length.
const closureTolerance = 1e-6

// ReflectedWedgeOffset is added to WedgeIndex on tiles produced by the
// offset-mode point reflection, keeping them outside the index space of
// any primary wedge.
const ReflectedWedgeOffset = 10000

// ErrSymmetryOrder reports that the symmetry order n is smaller than the
// modulus k. The construction needs at least k distinct directions.
var ErrSymmetryOrder = errors.New("krinkle: symmetry order n must be at least the modulus k")

// Params holds the three integers defining a Modulo Krinkle construction:
// step m, modulus k, and symmetry order n (the number of discrete
// directions spanning a full turn).
type Params struct {
	M, K, N int
}

// validate rejects non-positive parameters and n < k.
func (p Params) validate() error {
	if p.M < 1 || p.K < 1 || p.N < 1 {
		return fmt.Errorf("krinkle: parameters must be positive, got m=%d k=%d n=%d", p.M, p.K, p.N)
	}
	if p.N < p.K {
		return fmt.Errorf("%w (n=%d, k=%d)", ErrSymmetryOrder, p.N, p.K)
	}
	return nil
}

// direction returns the step vector for direction index i: a vector of
// the given unit length at angle 2*pi*i/n.
func (p Params) direction(i int, unit float64) gg.Point {
	angle := 2 * math.Pi * float64(i) / float64(p.N)
	return gg.Pt(unit*math.Cos(angle), unit*math.Sin(angle))
}

// DirectionCount derives the symmetry order n from the period coefficient
// t: n = k*t for a plain tiling, n = 2*(t*k - m) for an offset tiling.
func DirectionCount(m, k, t int, offset bool) int {
	if offset {
		return 2 * (t*k - m)
	}
	return t * k
}

// Meta carries per-polygon metadata.
//
// Prototiles record ClosureError and HasShortPeriod. Tiles inside a wedge
// or tiling additionally record their lattice position (Row, Col), the
// owning wedge copy (WedgeIndex) and their sequential index within the
// wedge (TileIndex). IsCopy marks tiles produced by the offset-mode
// point reflection.
type Meta struct {
	Row, Col   int
	WedgeIndex int
	TileIndex  int
	IsCopy     bool

	// ClosureError is the distance between the prototile path's final
	// point and the origin. Near zero for valid coprime (m, k).
	ClosureError float64

	// HasShortPeriod is set when the boundary sequence closed on itself
	// before reaching its full length. The polygon may self-overlap.
	HasShortPeriod bool
}

// Polygon is a closed polygonal path with fill and stroke colours. The
// last point is not repeated; the path is implicitly closed.
type Polygon struct {
	Path   []gg.Point
	Color  gg.RGBA
	Stroke gg.RGBA
	Meta   Meta
}

// Result is the outcome of a Tiling call.
type Result struct {
	Polygons []Polygon

	// SkippedWedges lists rotation indices for which front tracking
	// found no attachment direction. The tiling has a gap at each.
	SkippedWedges []int
}

// Option configures a generation call.
// Use functional options to customize output colours and scale.
//
// Example:
//
//	res, err := krinkle.Tiling(3, 7, 14, 6, false,
//		krinkle.WithPalette(krinkle.Palette(krinkle.SchemeWarm, 5)))
type Option func(*genOptions)

// genOptions holds optional configuration for a generation call.
type genOptions struct {
	unit    float64
	palette []gg.RGBA
	stroke  gg.RGBA
	config  ColorConfig

	// resolved per call, see resolve
	count int
	rules map[int]WedgeRule
}

// defaultGenOptions returns the default generation options.
func defaultGenOptions() genOptions {
	return genOptions{
		unit:    DefaultUnitLength,
		palette: Palette(SchemeRainbow, 4),
		stroke:  gg.RGB(0.13, 0.13, 0.13),
	}
}

// applyOptions builds the effective options for one generation call and
// resolves the colour configuration against the call's parameters.
func applyOptions(p Params, opts []Option) genOptions {
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve(p)
	return o
}

// WithUnitLength sets the length of a single directional step,
// uniformly scaling all output geometry. Default is DefaultUnitLength.
func WithUnitLength(unit float64) Option {
	return func(o *genOptions) {
		o.unit = unit
	}
}

// WithPalette sets the fill palette. Colour indices produced by the
// colour configuration wrap around its length.
func WithPalette(palette []gg.RGBA) Option {
	return func(o *genOptions) {
		o.palette = palette
	}
}

// WithStroke sets the stroke colour for every generated polygon.
func WithStroke(c gg.RGBA) Option {
	return func(o *genOptions) {
		o.stroke = c
	}
}

// WithColorConfig supplies the colouring configuration consulted by the
// colour indexer. The config is read-only for the duration of the call.
func WithColorConfig(cfg ColorConfig) Option {
	return func(o *genOptions) {
		o.config = cfg
	}
}

// fill returns the palette colour for a colour index, wrapping around
// the palette length.
func (o *genOptions) fill(idx int) gg.RGBA {
	if len(o.palette) == 0 {
		return gg.RGB(0.5, 0.5, 0.5)
	}
	return o.palette[mod(idx, len(o.palette))]
}

// mod is the non-negative remainder of a by n. n must be positive.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
