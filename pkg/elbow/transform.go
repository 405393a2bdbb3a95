package elbow

// symmetry is an isometry of the plane built from an axis swap followed by a
// mirror of the x axis. Both steps only move or negate coordinates, so
// invert(apply(p)) == p exactly for every finite p.
//
// Mirroring through the origin rather than through the first anchor differs
// from the anchor-centred transform by a translation, which the synthesizer
// never observes.
type symmetry struct {
	swap   bool
	mirror bool
}

// symmetryFor returns the transform that maps d onto XPos, or the identity
// when d is XPos or None.
//
//	x+, none  identity
//	x-        mirror
//	y+        swap
//	y-        swap, then mirror
func symmetryFor(d Direction) symmetry {
	return symmetry{
		swap:   d.Vertical(),
		mirror: d == XNeg || d == YNeg,
	}
}

func (s symmetry) apply(p Point) Point {
	if s.swap {
		p.X, p.Y = p.Y, p.X
	}
	if s.mirror {
		p.X = -p.X
	}
	return p
}

func (s symmetry) invert(p Point) Point {
	if s.mirror {
		p.X = -p.X
	}
	if s.swap {
		p.X, p.Y = p.Y, p.X
	}
	return p
}

func (s symmetry) applyDir(d Direction) Direction {
	if d == None {
		return None
	}
	return directionOf(s.apply(d.unit()))
}

func (s symmetry) invertDir(d Direction) Direction {
	if d == None {
		return None
	}
	return directionOf(s.invert(d.unit()))
}

func (s symmetry) applyAnchor(a Anchor) Anchor {
	return Anchor{Point: s.apply(a.Point), Facing: s.applyDir(a.Facing)}
}
