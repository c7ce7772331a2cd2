// Package geom provides the plane primitives used by the trapezoid engine:
// Point, Vector and LineSegment, generic over any exact.Scalar family, plus a
// float64 Rect for drawing.
//
// 🚀 What is geom?
//
//	Small immutable value types whose predicates (betweenness, side-of-line,
//	ray and segment intersection) are decided with exact signs only. No
//	predicate ever divides, so every answer is exact for Int, Quadratic and
//	Fraction alike; only DistanceSq divides, and only when the projection of a
//	point falls inside a segment.
//
// ✨ Conventions
//
//   - Boundaries are inclusive: a point on a line, a touching endpoint or a
//     zero half-plane score all count as "inside" or "intersecting".
//   - Cross(a, b) = a.X·b.Y − a.Y·b.X; positive means b is counter-clockwise of a.
//   - Arithmetic failures (overflow, insufficient precision) panic with
//     *exact.Error, exactly like the scalar methods themselves.
//
// ⚙️ Usage
//
//	a := geom.Pt(exact.Q(0, 0), exact.Q(0, 0))
//	b := geom.Pt(exact.Q(4, 0), exact.Q(0, 0))
//	s := geom.Seg(a, b)
//	s.IntersectsInfiniteLine(geom.Pt(exact.Q(1, 0), exact.Q(0, -1)), geom.Pt(exact.Q(1, 0), exact.Q(0, 1)))
package geom
