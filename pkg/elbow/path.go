package elbow

import (
	"math"
	"strings"
)

// Path is an ordered sequence of bend points. Paths returned by Route are
// never empty.
type Path []Point

// Start returns the first point.
func (p Path) Start() Point { return p[0] }

// End returns the last point.
func (p Path) End() Point { return p[len(p)-1] }

// Length returns the total length of all segments. For orthogonal paths this
// is the sum of the Manhattan lengths of the segments.
func (p Path) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += math.Abs(p[i].X-p[i-1].X) + math.Abs(p[i].Y-p[i-1].Y)
	}
	return total
}

// Bends returns the number of interior points, each of which is a turn in
// a cleaned path.
func (p Path) Bends() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 2
}

// Reversed returns a reversed copy of p.
func (p Path) Reversed() Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// Orthogonal reports whether every segment is purely horizontal or vertical
// and has non-zero length.
func (p Path) Orthogonal() bool {
	for i := 1; i < len(p); i++ {
		a, b := p[i-1], p[i]
		if (a.X == b.X) == (a.Y == b.Y) {
			return false
		}
	}
	return true
}

// String formats p as space-separated points.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = pt.String()
	}
	return strings.Join(parts, " ")
}
