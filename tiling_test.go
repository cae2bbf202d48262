package krinkle

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

func TestTilingWedgeGroups(t *testing.T) {
	// n = 14, rows = 2: 14 wedge copies of 3 tiles each, none skipped.
	res, err := Tiling(3, 7, 14, 2, false)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	if len(res.SkippedWedges) != 0 {
		t.Fatalf("SkippedWedges = %v, want none", res.SkippedWedges)
	}
	if got, want := len(res.Polygons), 14*3; got != want {
		t.Fatalf("%d polygons, want %d", got, want)
	}

	seen := make(map[int]int)
	for _, poly := range res.Polygons {
		seen[poly.Meta.WedgeIndex]++
		if poly.Meta.IsCopy {
			t.Error("IsCopy set on a primary tile")
		}
	}
	for i := range 14 {
		if seen[i] != 3 {
			t.Errorf("wedge %d: %d tiles, want 3", i, seen[i])
		}
	}
}

func TestTilingWedgeOrdering(t *testing.T) {
	res, err := Tiling(3, 7, 14, 2, false)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	// Wedges in increasing rotation order, tiles row-major inside each.
	for i, poly := range res.Polygons {
		if got, want := poly.Meta.WedgeIndex, i/3; got != want {
			t.Fatalf("polygon %d: WedgeIndex = %d, want %d", i, got, want)
		}
		if got, want := poly.Meta.TileIndex, i%3; got != want {
			t.Fatalf("polygon %d: TileIndex = %d, want %d", i, got, want)
		}
	}
}

func TestTilingHalfTurnWedge(t *testing.T) {
	// For (3, 7, 14) wedge 7 attaches at the head of the front with a
	// zero translation, so its tiles are exactly the base wedge rotated
	// by pi about the origin.
	res, err := Tiling(3, 7, 14, 2, false)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	base := res.Polygons[:3]
	var half []Polygon
	for _, poly := range res.Polygons {
		if poly.Meta.WedgeIndex == 7 {
			half = append(half, poly)
		}
	}
	if len(half) != 3 {
		t.Fatalf("wedge 7 has %d tiles, want 3", len(half))
	}
	for ti := range half {
		for pi := range half[ti].Path {
			want := base[ti].Path[pi].Mul(-1)
			if !almostEqualPt(half[ti].Path[pi], want) {
				t.Fatalf("wedge 7 tile %d point %d = %v, want %v (half-turn of base)",
					ti, pi, half[ti].Path[pi], want)
			}
		}
	}
}

func TestTilingRotationPreservesShape(t *testing.T) {
	// Rotation plus translation preserves pairwise distances within a
	// tile, for every wedge copy.
	res, err := Tiling(3, 7, 14, 2, false)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	base := res.Polygons[0]
	for _, poly := range res.Polygons {
		if poly.Meta.TileIndex != 0 {
			continue
		}
		for pi := 1; pi < len(poly.Path); pi++ {
			got := poly.Path[pi].Distance(poly.Path[pi-1])
			want := base.Path[pi].Distance(base.Path[pi-1])
			if math.Abs(got-want) > 1e-8 {
				t.Fatalf("wedge %d: edge %d length %g, want %g",
					poly.Meta.WedgeIndex, pi, got, want)
			}
		}
	}
}

func TestTilingOffsetReflection(t *testing.T) {
	// Offset mode doubles the polygon count; every reflected tile is
	// the exact point reflection of its source about direction(0)/2.
	res, err := Tiling(3, 7, 22, 2, true)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	if len(res.SkippedWedges) != 0 {
		t.Fatalf("SkippedWedges = %v, want none", res.SkippedWedges)
	}
	// wLimit = n/2 = 11 wedges of 3 tiles, doubled by reflection.
	if got, want := len(res.Polygons), 2*11*3; got != want {
		t.Fatalf("%d polygons, want %d", got, want)
	}

	primary := len(res.Polygons) / 2
	pivotX := DefaultUnitLength // 2 * direction(0)/2 = (unit, 0)
	for i := range primary {
		src := res.Polygons[i]
		ref := res.Polygons[primary+i]
		if !ref.Meta.IsCopy {
			t.Fatalf("reflected polygon %d: IsCopy = false", i)
		}
		if got, want := ref.Meta.WedgeIndex, src.Meta.WedgeIndex+ReflectedWedgeOffset; got != want {
			t.Fatalf("reflected polygon %d: WedgeIndex = %d, want %d", i, got, want)
		}
		if ref.Color != src.Color || ref.Stroke != src.Stroke {
			t.Fatalf("reflected polygon %d: colours not copied from source", i)
		}
		for pi := range src.Path {
			want := gg.Pt(pivotX-src.Path[pi].X, -src.Path[pi].Y)
			if !almostEqualPt(ref.Path[pi], want) {
				t.Fatalf("reflected polygon %d point %d = %v, want %v", i, pi, ref.Path[pi], want)
			}
		}
	}
}

func TestTilingDeterminism(t *testing.T) {
	a, err := Tiling(3, 7, 14, 3, false)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	b, err := Tiling(3, 7, 14, 3, false)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two identical Tiling calls produced different results")
	}
}

func TestTilingRowsZero(t *testing.T) {
	res, err := Tiling(3, 7, 14, 0, false)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	if len(res.Polygons) != 0 {
		t.Errorf("%d polygons, want 0", len(res.Polygons))
	}
}

func TestTilingErrors(t *testing.T) {
	if _, err := Tiling(3, 7, 6, 2, false); !errors.Is(err, ErrSymmetryOrder) {
		t.Errorf("Tiling with n < k: error = %v, want ErrSymmetryOrder", err)
	}
	if _, err := Tiling(3, 7, 14, -2, false); err == nil {
		t.Error("Tiling with negative rows: expected error")
	}
}

func TestTilingShortPeriodSkipsWedges(t *testing.T) {
	// (2, 4, 8): the truncated upper sequence leaves a front of [4, 2],
	// so odd rotation indices never appear on it. Those wedges are
	// skipped, the rest are still placed, and the short-period flag is
	// carried on every tile.
	res, err := Tiling(2, 4, 8, 2, false)
	if err != nil {
		t.Fatalf("Tiling() error: %v", err)
	}
	if want := []int{1, 3, 5, 7}; !slices.Equal(res.SkippedWedges, want) {
		t.Errorf("SkippedWedges = %v, want %v", res.SkippedWedges, want)
	}
	// 4 placed wedges of 3 tiles.
	if got, want := len(res.Polygons), 4*3; got != want {
		t.Errorf("%d polygons, want %d", got, want)
	}
	for _, poly := range res.Polygons {
		if !poly.Meta.HasShortPeriod {
			t.Fatal("HasShortPeriod not propagated to tiles")
		}
	}
}
