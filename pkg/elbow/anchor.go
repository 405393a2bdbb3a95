package elbow

import "fmt"

// Anchor is one end of a connector: a position and an optional facing
// direction. It encodes to JSON as {"x":..,"y":..,"facingDirection":"x+"},
// with facingDirection omitted for None.
type Anchor struct {
	Point
	Facing Direction `json:"facingDirection,omitempty"`
}

// NewAnchor returns an anchor at (x, y) facing d.
func NewAnchor(x, y float64, d Direction) Anchor {
	return Anchor{Point: Pt(x, y), Facing: d}
}

func (a Anchor) String() string {
	if a.Facing == None {
		return a.Point.String()
	}
	return fmt.Sprintf("%s %s", a.Point, a.Facing)
}

// approach returns the point at distance c along the facing direction. A
// connector ending at a runs its final segment from there to a. For None it
// is the anchor itself.
func (a Anchor) approach(c float64) Point {
	if a.Facing == None {
		return a.Point
	}
	return a.Point.Add(a.Facing.unit(), c)
}
