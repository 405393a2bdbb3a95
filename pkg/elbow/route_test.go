package elbow

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/elbow/pkg/errors"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name string
		a, b Anchor
		opts []Option
		want Path
	}{
		{
			name: "unconstrained midline",
			a:    NewAnchor(0, 0, None),
			b:    NewAnchor(3, 2, None),
			want: Path{Pt(0, 0), Pt(1.5, 0), Pt(1.5, 2), Pt(3, 2)},
		},
		{
			name: "approach collapses into L-turn",
			a:    NewAnchor(0, 0, YPos),
			b:    NewAnchor(3, 2, XNeg),
			want: Path{Pt(0, 0), Pt(0, 2), Pt(3, 2)},
		},
		{
			name: "x+ to y+",
			a:    NewAnchor(100, 100, XPos),
			b:    NewAnchor(300, 200, YPos),
			opts: []Option{WithClearance(50)},
			want: Path{Pt(100, 100), Pt(200, 100), Pt(200, 250), Pt(300, 250), Pt(300, 200)},
		},
		{
			name: "collinear x forces detour",
			a:    NewAnchor(200, 100, XPos),
			b:    NewAnchor(200, 300, YNeg),
			opts: []Option{WithClearance(50)},
			want: Path{Pt(200, 100), Pt(250, 100), Pt(250, 200), Pt(200, 200), Pt(200, 300)},
		},
		{
			name: "coincident anchors",
			a:    NewAnchor(5, 5, None),
			b:    NewAnchor(5, 5, None),
			want: Path{Pt(5, 5)},
		},
		{
			name: "facing each other",
			a:    NewAnchor(0, 0, XPos),
			b:    NewAnchor(10, 0, XNeg),
			opts: []Option{WithClearance(2)},
			want: Path{Pt(0, 0), Pt(10, 0)},
		},
		{
			name: "target directly behind",
			a:    NewAnchor(10, 0, XPos),
			b:    NewAnchor(0, 0, None),
			opts: []Option{WithClearance(2)},
			want: Path{Pt(10, 0), Pt(12, 0), Pt(12, 2), Pt(5, 2), Pt(5, 0), Pt(0, 0)},
		},
		{
			name: "target behind facing away",
			a:    NewAnchor(10, 0, XPos),
			b:    NewAnchor(0, 5, XNeg),
			opts: []Option{WithClearance(2)},
			want: Path{Pt(10, 0), Pt(12, 0), Pt(12, 2.5), Pt(-2, 2.5), Pt(-2, 5), Pt(0, 5)},
		},
		{
			name: "both facing x+",
			a:    NewAnchor(0, 0, XPos),
			b:    NewAnchor(10, 5, XPos),
			opts: []Option{WithClearance(2)},
			want: Path{Pt(0, 0), Pt(12, 0), Pt(12, 5), Pt(10, 5)},
		},
		{
			name: "both facing x+ on one row",
			a:    NewAnchor(0, 0, XPos),
			b:    NewAnchor(10, 0, XPos),
			opts: []Option{WithClearance(2)},
			want: Path{Pt(0, 0), Pt(5, 0), Pt(5, 2), Pt(12, 2), Pt(12, 0), Pt(10, 0)},
		},
		{
			name: "start facing x-",
			a:    NewAnchor(0, 0, XNeg),
			b:    NewAnchor(10, 5, None),
			opts: []Option{WithClearance(2)},
			want: Path{Pt(0, 0), Pt(-2, 0), Pt(-2, 5), Pt(10, 5)},
		},
		{
			name: "both facing y-",
			a:    NewAnchor(0, 0, YNeg),
			b:    NewAnchor(10, -20, YNeg),
			opts: []Option{WithClearance(2)},
			want: Path{Pt(0, 0), Pt(0, -22), Pt(10, -22), Pt(10, -20)},
		},
		{
			name: "zero clearance",
			a:    NewAnchor(0, 0, XPos),
			b:    NewAnchor(-4, 3, YPos),
			opts: []Option{WithClearance(0)},
			want: Path{Pt(0, 0), Pt(0, 3), Pt(-4, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Route(tt.a, tt.b, tt.opts...)
			if err != nil {
				t.Fatalf("Route(%v, %v) error: %v", tt.a, tt.b, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Route(%v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

func TestRouteBias(t *testing.T) {
	tests := []struct {
		name string
		a, b Anchor
		bias float64
		want Path
	}{
		{
			name: "bias 0 runs on first anchor",
			a:    NewAnchor(0, 0, None),
			b:    NewAnchor(4, 2, None),
			bias: 0,
			want: Path{Pt(0, 0), Pt(0, 2), Pt(4, 2)},
		},
		{
			name: "bias 1 runs on second anchor",
			a:    NewAnchor(0, 0, None),
			b:    NewAnchor(4, 2, None),
			bias: 1,
			want: Path{Pt(0, 0), Pt(4, 0), Pt(4, 2)},
		},
		{
			name: "bias follows caller order",
			a:    NewAnchor(4, 2, None),
			b:    NewAnchor(0, 0, None),
			bias: 0,
			want: Path{Pt(4, 2), Pt(4, 0), Pt(0, 0)},
		},
		{
			name: "quarter",
			a:    NewAnchor(0, 0, None),
			b:    NewAnchor(8, 2, None),
			bias: 0.25,
			want: Path{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(8, 2)},
		},
		{
			name: "ignored with facing",
			a:    NewAnchor(0, 0, XPos),
			b:    NewAnchor(10, 5, None),
			bias: 0,
			want: Path{Pt(0, 0), Pt(10, 0), Pt(10, 5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Route(tt.a, tt.b, WithBias(tt.bias))
			if err != nil {
				t.Fatalf("Route() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Route(bias=%g) mismatch (-want +got):\n%s", tt.bias, diff)
			}
		})
	}
}

func TestRouteDefaultClearance(t *testing.T) {
	pairs := [][2]Anchor{
		{NewAnchor(0, 0, YPos), NewAnchor(3, 2, XNeg)},
		{NewAnchor(200, 100, XPos), NewAnchor(200, 300, YNeg)},
		{NewAnchor(-5, 7, XNeg), NewAnchor(12, -3, YPos)},
		{NewAnchor(1, 1, YNeg), NewAnchor(1, 1, XPos)},
	}
	for _, p := range pairs {
		implicit, err := Route(p[0], p[1])
		if err != nil {
			t.Fatalf("Route(%v, %v) error: %v", p[0], p[1], err)
		}
		explicit, err := Route(p[0], p[1], WithClearance(DefaultClearance(p[0].Point, p[1].Point)))
		if err != nil {
			t.Fatalf("Route(%v, %v) error: %v", p[0], p[1], err)
		}
		if diff := cmp.Diff(explicit, implicit); diff != "" {
			t.Errorf("Route(%v, %v) default clearance mismatch (-explicit +implicit):\n%s", p[0], p[1], diff)
		}
	}
}

func TestDefaultClearance(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Pt(0, 0), Pt(3, 2), 0.30000000000000004},
		{Pt(100, 100), Pt(300, 200), 20},
		{Pt(0, 0), Pt(0, -50), 5},
		{Pt(1, 1), Pt(1, 1), 0},
	}
	for _, tt := range tests {
		if got := DefaultClearance(tt.a, tt.b); got != tt.want {
			t.Errorf("DefaultClearance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRouteDetourClearance(t *testing.T) {
	// The detour leaves the start and enters the end by exactly one clearance.
	got, err := Route(NewAnchor(200, 100, XPos), NewAnchor(200, 300, YNeg), WithClearance(50))
	if err != nil {
		t.Fatal(err)
	}
	if first := got[1].X - got[0].X; first != 50 {
		t.Errorf("first segment = %v, want 50", first)
	}

	got, err = Route(NewAnchor(10, 0, XPos), NewAnchor(0, 5, XNeg), WithClearance(2))
	if err != nil {
		t.Fatal(err)
	}
	n := len(got)
	if first := got[1].X - got[0].X; first != 2 {
		t.Errorf("first segment = %v, want 2", first)
	}
	if last := got[n-1].X - got[n-2].X; last != 2 {
		t.Errorf("last segment = %v, want 2", last)
	}
}

func TestRouteErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b Anchor
		opts []Option
		code errs.Code
	}{
		{
			name: "negative clearance",
			a:    NewAnchor(0, 0, None),
			b:    NewAnchor(1, 1, None),
			opts: []Option{WithClearance(-1)},
			code: errs.ErrCodeInvalidClearance,
		},
		{
			name: "NaN clearance",
			a:    NewAnchor(0, 0, None),
			b:    NewAnchor(1, 1, None),
			opts: []Option{WithClearance(math.NaN())},
			code: errs.ErrCodeInvalidClearance,
		},
		{
			name: "NaN coordinate",
			a:    NewAnchor(math.NaN(), 0, None),
			b:    NewAnchor(1, 1, None),
			code: errs.ErrCodeInvalidCoordinate,
		},
		{
			name: "infinite coordinate",
			a:    NewAnchor(0, 0, None),
			b:    NewAnchor(1, math.Inf(-1), None),
			code: errs.ErrCodeInvalidCoordinate,
		},
		{
			name: "span overflows",
			a:    NewAnchor(-math.MaxFloat64, 0, None),
			b:    NewAnchor(math.MaxFloat64, 0, None),
			code: errs.ErrCodeInvalidCoordinate,
		},
		{
			name: "direction out of range",
			a:    NewAnchor(0, 0, Direction(9)),
			b:    NewAnchor(1, 1, None),
			code: errs.ErrCodeInvalidDirection,
		},
		{
			name: "bias out of range",
			a:    NewAnchor(0, 0, None),
			b:    NewAnchor(1, 1, None),
			opts: []Option{WithBias(1.5)},
			code: errs.ErrCodeInvalidBias,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Route(tt.a, tt.b, tt.opts...)
			if err == nil {
				t.Fatalf("Route() = %v, want error %s", got, tt.code)
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("Route() error code = %s, want %s (%v)", errs.GetCode(err), tt.code, err)
			}
		})
	}
}

var gridCoords = []float64{-7, -2, 0, 0.5, 1, 3, 10}

// gridClearances uses -1 for "no explicit clearance".
var gridClearances = []float64{-1, 0, 0.5, 1, 5, 20}

// forEachGridCase calls fn for every combination of grid coordinates, facing
// directions and clearances.
func forEachGridCase(fn func(a, b Anchor, opts []Option, c float64)) {
	for _, ax := range gridCoords {
		for _, ay := range gridCoords {
			for _, bx := range gridCoords {
				for _, by := range gridCoords {
					for _, ad := range Directions {
						for _, bd := range Directions {
							a, b := NewAnchor(ax, ay, ad), NewAnchor(bx, by, bd)
							for _, c := range gridClearances {
								var opts []Option
								eff := DefaultClearance(a.Point, b.Point)
								if c >= 0 {
									opts = []Option{WithClearance(c)}
									eff = c
								}
								fn(a, b, opts, eff)
							}
						}
					}
				}
			}
		}
	}
}

// segmentDirection returns the direction of travel from p to q.
func segmentDirection(p, q Point) Direction {
	return directionOf(Pt(q.X-p.X, q.Y-p.Y))
}

func TestRouteProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("grid sweep")
	}
	failures := 0
	report := func(format string, args ...any) {
		failures++
		if failures <= 20 {
			t.Errorf(format, args...)
		}
	}

	forEachGridCase(func(a, b Anchor, opts []Option, c float64) {
		p, err := Route(a, b, opts...)
		if err != nil {
			report("Route(%v, %v, c=%g) error: %v", a, b, c, err)
			return
		}
		if len(p) == 0 || p.Start() != a.Point || p.End() != b.Point {
			report("Route(%v, %v, c=%g) = %v, endpoints do not match", a, b, c, p)
			return
		}
		if !p.Orthogonal() {
			report("Route(%v, %v, c=%g) = %v, not orthogonal", a, b, c, p)
		}
		for i := 2; i < len(p); i++ {
			if collinear(p[i-2], p[i-1], p[i]) {
				report("Route(%v, %v, c=%g) = %v, collinear at %d", a, b, c, p, i-1)
			}
		}

		rev, err := Route(b, a, opts...)
		if err != nil {
			report("Route(%v, %v, c=%g) error: %v", b, a, c, err)
			return
		}
		if !slices.Equal(p.Reversed(), rev) {
			report("Route(%v, %v, c=%g) is not the reverse of Route(%v, %v):\n%s", b, a, c, a, b, cmp.Diff(p.Reversed(), rev))
		}

		if a.Point == b.Point {
			if a.Facing == None && b.Facing == None && len(p) != 1 {
				report("Route(%v, %v) = %v, want single point", a, b, p)
			}
			return
		}
		if c == 0 {
			return
		}
		if a.Facing != None {
			if got := segmentDirection(p[0], p[1]); got != a.Facing {
				report("Route(%v, %v, c=%g) = %v, departs %s, want %s", a, b, c, p, got, a.Facing)
			}
		}
		if b.Facing != None {
			n := len(p)
			if got, want := segmentDirection(p[n-2], p[n-1]), b.Facing.Opposite(); got != want {
				report("Route(%v, %v, c=%g) = %v, arrives %s, want %s", a, b, c, p, got, want)
			}
		}
	})

	if failures > 20 {
		t.Errorf("%d failures in total", failures)
	}
}

func TestRouteReturnsFreshSlices(t *testing.T) {
	a, b := NewAnchor(0, 0, XPos), NewAnchor(10, 10, YNeg)
	p1, _ := Route(a, b)
	p1[1] = Pt(99, 99)
	p2, _ := Route(a, b)
	if p2[1] == Pt(99, 99) {
		t.Error("Route() shares state between calls")
	}
}
