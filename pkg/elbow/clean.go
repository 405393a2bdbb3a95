package elbow

// Clean returns a copy of pts with zero-length segments and redundant
// collinear points removed. The first and last points are preserved.
func Clean(pts []Point) Path {
	return clean(append([]Point(nil), pts...))
}

// clean filters pts in place. Each incoming point is compared against the
// top of a stack: duplicates are skipped and a stack top made redundant by
// the new point is popped, repeatedly, so a single sweep reaches the fixed
// point.
func clean(pts []Point) []Point {
	out := pts[:0]
	for _, p := range pts {
		for {
			n := len(out)
			if n > 0 && out[n-1] == p {
				break
			}
			if n >= 2 && collinear(out[n-2], out[n-1], p) {
				out = out[:n-1]
				continue
			}
			out = append(out, p)
			break
		}
	}
	return out
}

// collinear reports whether a, b and c lie on one horizontal or vertical line.
func collinear(a, b, c Point) bool {
	return (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y)
}
