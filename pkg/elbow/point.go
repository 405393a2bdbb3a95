package elbow

import "fmt"

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add returns pt offset by scale times v.
func (pt Point) Add(v Point, scale float64) Point {
	return Point{X: pt.X + v.X*scale, Y: pt.Y + v.Y*scale}
}
