package krinkle

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestPrototileClosure(t *testing.T) {
	// For coprime (m, k) with n >= k the path must return to the origin
	// within floating-point tolerance.
	coprime := []struct{ m, k int }{
		{1, 2}, {1, 3}, {2, 3}, {2, 5}, {3, 5}, {4, 5}, {3, 7}, {5, 8}, {5, 9}, {7, 12}, {5, 13},
	}
	for _, p := range coprime {
		for _, n := range []int{p.k, 2 * p.k, 3 * p.k} {
			poly, err := Prototile(p.m, p.k, n)
			if err != nil {
				t.Fatalf("Prototile(%d, %d, %d) error: %v", p.m, p.k, n, err)
			}
			if poly.Meta.ClosureError > 1e-6 {
				t.Errorf("Prototile(%d, %d, %d): closure error %g, want < 1e-6",
					p.m, p.k, n, poly.Meta.ClosureError)
			}
			if poly.Meta.HasShortPeriod {
				t.Errorf("Prototile(%d, %d, %d): HasShortPeriod = true for coprime pair", p.m, p.k, n)
			}
		}
	}
}

func TestPrototileReference(t *testing.T) {
	// (3, 7, 14): both boundary sequences have 8 entries, so the path
	// holds 1 + 8 + 8 - 1 points (start, forward walk, backward walk,
	// minus the dropped closing duplicate).
	poly, err := Prototile(3, 7, 14)
	if err != nil {
		t.Fatalf("Prototile() error: %v", err)
	}
	if got, want := len(poly.Path), 16; got != want {
		t.Errorf("len(Path) = %d, want %d", got, want)
	}
	if !almostEqualPt(poly.Path[0], gg.Pt(0, 0)) {
		t.Errorf("Path[0] = %v, want origin", poly.Path[0])
	}
	if poly.Meta.ClosureError > 1e-6 {
		t.Errorf("ClosureError = %g, want < 1e-6", poly.Meta.ClosureError)
	}
	if poly.Meta.HasShortPeriod {
		t.Error("HasShortPeriod = true, want false")
	}
}

func TestPrototileShortPeriod(t *testing.T) {
	tests := []struct {
		name     string
		m, k, n  int
		wantPath int
	}{
		// lower/upper truncate to 3 entries each: 1 + 3 + 3 - 1 points.
		{"m=2 k=4", 2, 4, 8, 6},
		// truncate to 4 entries each.
		{"m=2 k=6", 2, 6, 12, 8},
		{"m=3 k=9", 3, 9, 9, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly, err := Prototile(tt.m, tt.k, tt.n)
			if err != nil {
				t.Fatalf("Prototile() error: %v", err)
			}
			if !poly.Meta.HasShortPeriod {
				t.Error("HasShortPeriod = false, want true")
			}
			if len(poly.Path) != tt.wantPath {
				t.Errorf("len(Path) = %d, want %d", len(poly.Path), tt.wantPath)
			}
		})
	}
}

func TestPrototileParameterViolation(t *testing.T) {
	if _, err := Prototile(3, 7, 6); !errors.Is(err, ErrSymmetryOrder) {
		t.Errorf("Prototile(3, 7, 6) error = %v, want ErrSymmetryOrder", err)
	}
	for _, bad := range [][3]int{{0, 7, 14}, {3, 0, 14}, {3, 7, 0}, {-1, 7, 14}} {
		if _, err := Prototile(bad[0], bad[1], bad[2]); err == nil {
			t.Errorf("Prototile(%d, %d, %d): expected error", bad[0], bad[1], bad[2])
		}
	}
}
