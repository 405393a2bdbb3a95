package elbow

import "math"

// pathBuilder accumulates bend points, skipping any point equal to the
// previous one.
type pathBuilder struct {
	pts []Point
}

func (b *pathBuilder) push(pts ...Point) {
	for _, p := range pts {
		if n := len(b.pts); n > 0 && b.pts[n-1] == p {
			continue
		}
		b.pts = append(b.pts, p)
	}
}

// synthesize returns the cleaned bend points from start to end in canonical
// space, where start faces XPos or None. The route always passes through the
// end's approach point and finishes with the straight run into end.
//
// Notation used below: s is the start, e the end, q the end's approach
// point, c the clearance. A "detour" first runs c ahead of s before turning.
func synthesize(start, end Anchor, c, bias float64) []Point {
	s, e := start.Point, end.Point
	q := end.approach(c)
	ox := s.X + c
	mx := (s.X + e.X) / 2
	my := (s.Y + e.Y) / 2
	free := start.Facing == None

	var b pathBuilder
	b.push(s)

	switch end.Facing {
	case None:
		switch {
		case free:
			m := s.X*(1-bias) + e.X*bias
			b.push(Pt(m, s.Y), Pt(m, e.Y))
		case e.X > s.X:
			b.push(Pt(e.X, s.Y))
		case e.Y != s.Y:
			b.push(Pt(ox, s.Y), Pt(ox, e.Y))
		case e.X < s.X:
			// Directly behind on the same row: leave the row on a lane.
			lane := s.Y + c
			b.push(Pt(ox, s.Y), Pt(ox, lane), Pt(e.X, lane))
		}

	case XNeg:
		// Arrival travels x+.
		if free || q.X > s.X {
			m := math.Min(mx, q.X)
			b.push(Pt(m, s.Y), Pt(m, e.Y))
		} else {
			row := my
			if e.Y == s.Y {
				row = s.Y + c
			}
			b.push(Pt(ox, s.Y), Pt(ox, row), Pt(q.X, row), Pt(q.X, e.Y))
		}

	case XPos:
		// Arrival travels x-, so the connector has to get past q first.
		m := q.X
		if !free {
			m = math.Max(ox, q.X)
		}
		if e.Y != s.Y {
			b.push(Pt(m, s.Y), Pt(m, e.Y))
		} else {
			lane := s.Y + c
			turn := ox
			if e.X > s.X {
				turn = mx
			}
			b.push(Pt(turn, s.Y), Pt(turn, lane), Pt(q.X, lane), Pt(q.X, e.Y))
		}

	default:
		// Vertical arrival. sgn is the sense of travel into the end.
		sgn := -end.Facing.unit().Y
		arrivable := (q.Y-s.Y)*sgn >= 0
		switch {
		case (e.X > s.X || free) && arrivable:
			b.push(Pt(e.X, s.Y))
		case e.X > s.X:
			b.push(Pt(mx, s.Y), Pt(mx, q.Y), Pt(e.X, q.Y))
		default:
			var row float64
			if sgn > 0 {
				row = math.Min(my, q.Y)
			} else {
				row = math.Max(my, q.Y)
			}
			if row == s.Y {
				row = s.Y - sgn*c
			}
			b.push(Pt(ox, s.Y), Pt(ox, row), Pt(e.X, row))
		}
	}

	b.push(q, e)
	return clean(b.pts)
}
