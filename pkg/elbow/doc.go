// Package elbow computes orthogonal "elbow" connector paths between two
// anchors in the plane.
//
// # Overview
//
// An [Anchor] is a [Point] plus an optional facing [Direction]. The facing
// direction constrains how a connector leaves the anchor when it is the
// start of the path, and from which side it arrives when it is the end. A
// start anchor facing [XPos] departs travelling right; an end anchor facing
// [YPos] is entered from above, by a final segment travelling down.
//
// [Route] returns the minimal ordered sequence of axis-aligned bend points
// joining the two anchors:
//
//	path, err := elbow.Route(
//	    elbow.NewAnchor(100, 100, elbow.XPos),
//	    elbow.NewAnchor(300, 200, elbow.YPos),
//	    elbow.WithClearance(50),
//	)
//	// path: (100, 100) (200, 100) (200, 250) (300, 250) (300, 200)
//
// # Clearance
//
// The clearance (sometimes called overshoot) is the distance a connector
// travels along an anchor's facing direction before it may turn. When no
// clearance is given, [DefaultClearance] uses a tenth of the larger of the
// horizontal and vertical spans between the anchors.
//
// # Pipeline
//
// Routing runs in four stages:
//
//   - Order normalization: anchors are sorted by (x, y, facing) so the
//     synthesizer only reasons about one relative ordering. The path is
//     reversed at the end when the caller's order was flipped.
//   - Symmetry transform: an axis swap and/or mirror maps the first anchor's
//     facing to [XPos] or [None]. The transform consists of sign flips and
//     coordinate swaps, so it is exact in floating point and its inverse
//     restores every coordinate bit for bit.
//   - Bend synthesis: a case analysis over the second anchor's facing and its
//     position relative to the first produces the raw bend points.
//   - Cleaning: [Clean] drops zero-length segments and collinear interior
//     points.
//
// Because of the order normalization, Route(b, a) is always the exact
// reverse of Route(a, b).
//
// # Errors
//
// Invalid input is rejected with a structured error from
// [github.com/matzehuels/elbow/pkg/errors]: an unknown facing direction,
// a negative clearance, a bias outside [0, 1], or a non-finite coordinate.
// Every other input produces a valid path; coincident anchors without facing
// directions yield a single-point path.
//
// # Concurrency
//
// Route holds no state between calls and is safe for concurrent use.
package elbow
