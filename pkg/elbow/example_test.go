package elbow_test

import (
	"fmt"

	"github.com/matzehuels/elbow/pkg/elbow"
)

func ExampleRoute() {
	path, err := elbow.Route(
		elbow.NewAnchor(100, 100, elbow.XPos),
		elbow.NewAnchor(300, 200, elbow.YPos),
		elbow.WithClearance(50),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(path)
	fmt.Println("bends:", path.Bends(), "length:", path.Length())
	// Output:
	// (100, 100) (200, 100) (200, 250) (300, 250) (300, 200)
	// bends: 3 length: 400
}

func ExampleRoute_unconstrained() {
	path, _ := elbow.Route(elbow.NewAnchor(0, 0, elbow.None), elbow.NewAnchor(3, 2, elbow.None))
	fmt.Println(path)
	// Output:
	// (0, 0) (1.5, 0) (1.5, 2) (3, 2)
}

func ExampleWithBias() {
	a, b := elbow.NewAnchor(0, 0, elbow.None), elbow.NewAnchor(4, 2, elbow.None)
	for _, bias := range []float64{0, 0.5, 1} {
		path, _ := elbow.Route(a, b, elbow.WithBias(bias))
		fmt.Println(path)
	}
	// Output:
	// (0, 0) (0, 2) (4, 2)
	// (0, 0) (2, 0) (2, 2) (4, 2)
	// (0, 0) (4, 0) (4, 2)
}

func ExampleParseDirection() {
	d, err := elbow.ParseDirection("y-")
	fmt.Println(d, d.Opposite(), err)
	_, err = elbow.ParseDirection("up")
	fmt.Println(err)
	// Output:
	// y- y+ <nil>
	// INVALID_DIRECTION: unknown facing direction "up" (want x+, x-, y+, y- or none)
}
