package geom

import "github.com/katalvlaran/trapseq/exact"

// LineSegment is the closed segment between P0 and P1.
type LineSegment[S exact.Scalar[S]] struct {
	P0, P1 Point[S]
}

// Seg returns the segment [p0, p1].
func Seg[S exact.Scalar[S]](p0, p1 Point[S]) LineSegment[S] {
	return LineSegment[S]{P0: p0, P1: p1}
}

// Dir returns P1−P0.
func (s LineSegment[S]) Dir() Vector[S] { return s.P1.Sub(s.P0) }

// HasBetween reports whether p lies in the slab bounded by the two lines
// perpendicular to s through its endpoints. Points on either boundary line
// are included.
func (s LineSegment[S]) HasBetween(p Point[S]) bool {
	e := s.Dir()

	return p.Sub(s.P0).Dot(e).Sign() >= 0 && p.Sub(s.P1).Dot(e).Sign() <= 0
}

// DistanceSq returns the squared distance from p to s. Inside the slab it is
// cross²/|e|², which divides; the endpoint distances do not.
func (s LineSegment[S]) DistanceSq(p Point[S]) S {
	e := s.Dir()
	if !e.IsZero() && s.HasBetween(p) {
		c := e.Cross(p.Sub(s.P0))

		return c.Mul(c).Div(e.Hypot2())
	}

	return exact.Min(p.DistanceSq(s.P0), p.DistanceSq(s.P1))
}

// sides returns the side of each endpoint relative to the line through a
// with direction d.
func (s LineSegment[S]) sides(a Point[S], d Vector[S]) (s0, s1 int) {
	return d.Cross(s.P0.Sub(a)).Sign(), d.Cross(s.P1.Sub(a)).Sign()
}

// IntersectsInfiniteLine reports whether s meets the line through a and b:
// its endpoints are strictly on opposite sides, or one lies on the line.
func (s LineSegment[S]) IntersectsInfiniteLine(a, b Point[S]) bool {
	s0, s1 := s.sides(a, b.Sub(a))

	return s0 == 0 || s1 == 0 || s0 != s1
}

// IntersectsSemiInfiniteLine reports whether s meets the closed ray that
// starts at origin and passes through through.
//
// When s lies on the ray's line, the answer is whether some endpoint is at or
// ahead of origin, i.e. the segment overlaps the ray or lies ahead of it.
func (s LineSegment[S]) IntersectsSemiInfiniteLine(origin, through Point[S]) bool {
	d := through.Sub(origin)
	s0, s1 := s.sides(origin, d)
	ahead := func(p Point[S]) bool { return d.Dot(p.Sub(origin)).Sign() >= 0 }
	switch {
	case s0 == 0 && s1 == 0:
		return ahead(s.P0) || ahead(s.P1)
	case s0 == 0:
		return ahead(s.P0)
	case s1 == 0:
		return ahead(s.P1)
	case s0 == s1:
		return false
	}
	// origin + t·d = P0 + u·e  ⇒  t = (P0−origin)×e / d×e.
	e := s.Dir()

	return e.Cross(s.P0.Sub(origin)).Sign()*e.Cross(d).Sign() >= 0
}

// Intersects reports whether the closed segments s and o share a point.
func (s LineSegment[S]) Intersects(o LineSegment[S]) bool {
	o1 := Orientation(s.P0, s.P1, o.P0)
	o2 := Orientation(s.P0, s.P1, o.P1)
	o3 := Orientation(o.P0, o.P1, s.P0)
	o4 := Orientation(o.P0, o.P1, s.P1)
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	return (o1 == 0 && s.spans(o.P0)) ||
		(o2 == 0 && s.spans(o.P1)) ||
		(o3 == 0 && o.spans(s.P0)) ||
		(o4 == 0 && o.spans(s.P1))
}

// spans reports whether p, known to be collinear with s, lies on s.
func (s LineSegment[S]) spans(p Point[S]) bool {
	return p.Sub(s.P0).Dot(p.Sub(s.P1)).Sign() <= 0
}

// Contains reports whether p lies on s.
func (s LineSegment[S]) Contains(p Point[S]) bool {
	return Orientation(s.P0, s.P1, p) == 0 && s.spans(p)
}
