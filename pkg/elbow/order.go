package elbow

// precedes orders anchors by x, then y, then facing rank.
func precedes(a, b Anchor) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Facing < b.Facing
}

// normalizeOrder returns the anchors in canonical order and whether they had
// to be swapped. A flipped result must be reversed before it is returned to
// the caller.
func normalizeOrder(a, b Anchor) (first, second Anchor, flipped bool) {
	if precedes(b, a) {
		return b, a, true
	}
	return a, b, false
}
