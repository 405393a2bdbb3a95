package elbow

import (
	"strings"

	errs "github.com/matzehuels/elbow/pkg/errors"
)

// Direction is an anchor's facing direction. The zero value, None, means the
// anchor places no constraint on the connector.
//
// The declaration order doubles as the tie-break rank used to order
// coincident anchors.
type Direction uint8

const (
	None Direction = iota
	XPos           // x+
	XNeg           // x-
	YPos           // y+
	YNeg           // y-
)

var directionLabels = [...]string{
	None: "",
	XPos: "x+",
	XNeg: "x-",
	YPos: "y+",
	YNeg: "y-",
}

// Directions lists the facing directions, None first.
var Directions = []Direction{None, XPos, XNeg, YPos, YNeg}

// ParseDirection parses a facing label. Labels are case-insensitive; the
// empty string and "none" both yield None.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "x+":
		return XPos, nil
	case "x-":
		return XNeg, nil
	case "y+":
		return YPos, nil
	case "y-":
		return YNeg, nil
	}
	return None, errs.New(errs.ErrCodeInvalidDirection,
		"unknown facing direction %q (want x+, x-, y+, y- or none)", s)
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool {
	return d <= YNeg
}

// String returns the facing label, "none" for None.
func (d Direction) String() string {
	if d == None {
		return "none"
	}
	if !d.Valid() {
		return "invalid"
	}
	return directionLabels[d]
}

// MarshalText encodes None as the empty string so it can be omitted.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errs.New(errs.ErrCodeInvalidDirection, "invalid facing direction %d", uint8(d))
	}
	return []byte(directionLabels[d]), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Opposite returns the reverse direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case XPos:
		return XNeg
	case XNeg:
		return XPos
	case YPos:
		return YNeg
	case YNeg:
		return YPos
	}
	return d
}

// Horizontal reports whether d lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == XPos || d == XNeg
}

// Vertical reports whether d lies on the y axis.
func (d Direction) Vertical() bool {
	return d == YPos || d == YNeg
}

// unit returns the unit vector of d, the zero vector for None.
func (d Direction) unit() Point {
	switch d {
	case XPos:
		return Point{X: 1}
	case XNeg:
		return Point{X: -1}
	case YPos:
		return Point{Y: 1}
	case YNeg:
		return Point{Y: -1}
	}
	return Point{}
}

// directionOf maps a unit axis vector back to its Direction.
func directionOf(v Point) Direction {
	switch {
	case v.X > 0:
		return XPos
	case v.X < 0:
		return XNeg
	case v.Y > 0:
		return YPos
	case v.Y < 0:
		return YNeg
	}
	return None
}
