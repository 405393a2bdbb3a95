package elbow

import (
	"math"
	"slices"

	errs "github.com/matzehuels/elbow/pkg/errors"
)

// DefaultBias places the vertical leg of an unconstrained route halfway
// between the anchors.
const DefaultBias = 0.5

// DefaultClearance returns the clearance used when none is given: a tenth of
// max(|dx|, |dy|) between a and b.
func DefaultClearance(a, b Point) float64 {
	return 0.1 * math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}

type options struct {
	clearance    float64
	hasClearance bool
	bias         float64
}

// Option configures a call to Route.
type Option func(*options)

// WithClearance sets the distance a connector travels along an anchor's
// facing direction before turning. It must be finite and non-negative.
func WithClearance(c float64) Option {
	return func(o *options) {
		o.clearance = c
		o.hasClearance = true
	}
}

// WithBias positions the vertical leg of a route between two anchors without
// facing directions: 0 runs it through the first anchor's x, 1 through the
// second's. It has no effect when either anchor has a facing direction.
func WithBias(b float64) Option {
	return func(o *options) { o.bias = b }
}

// Route computes the orthogonal connector path from a to b.
//
// The returned path starts at a's position and ends at b's. Consecutive
// points differ in exactly one coordinate, and no three consecutive points
// are collinear. Route(b, a) returns the reverse of Route(a, b).
func Route(a, b Anchor, opts ...Option) (Path, error) {
	o := options{bias: DefaultBias}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateAnchor("from", a); err != nil {
		return nil, err
	}
	if err := validateAnchor("to", b); err != nil {
		return nil, err
	}
	if err := errs.ValidateBias(o.bias); err != nil {
		return nil, err
	}

	c := o.clearance
	if o.hasClearance {
		if err := errs.ValidateClearance(c); err != nil {
			return nil, err
		}
	} else {
		c = DefaultClearance(a.Point, b.Point)
		if math.IsInf(c, 0) {
			return nil, errs.New(errs.ErrCodeInvalidCoordinate, "anchors %s and %s are too far apart", a.Point, b.Point)
		}
	}

	first, second, flipped := normalizeOrder(a, b)
	bias := o.bias
	if flipped {
		bias = 1 - bias
	}

	sym := symmetryFor(first.Facing)
	pts := synthesize(sym.applyAnchor(first), sym.applyAnchor(second), c, bias)
	for i, p := range pts {
		p = sym.invert(p)
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return nil, errs.New(errs.ErrCodeInvalidCoordinate, "route from %s to %s overflows float64", a.Point, b.Point)
		}
		pts[i] = p
	}
	if flipped {
		slices.Reverse(pts)
	}
	return Path(pts), nil
}

func validateAnchor(name string, a Anchor) error {
	if err := errs.ValidateFinite(name+".x", a.X); err != nil {
		return err
	}
	if err := errs.ValidateFinite(name+".y", a.Y); err != nil {
		return err
	}
	if !a.Facing.Valid() {
		return errs.New(errs.ErrCodeInvalidDirection, "%s: invalid facing direction %d", name, uint8(a.Facing))
	}
	return nil
}
