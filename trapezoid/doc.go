// Package trapezoid realizes the symbol sequence as a chain of congruent
// half-hexagon trapezoids and answers geometric questions about the chain.
//
// 🚀 What is the chain?
//
//	Symbol i becomes a trapezoid of Type symseq.Direction(seq[i]): the base
//	shape (0,0) (1,√3) (3,√3) (4,0) rotated by 60°·Type. Vertex 0 is the
//	entry, vertex 3 the exit, and every trapezoid starts at the exit of the
//	previous one. All coordinates are built from the scalar family's named
//	constants, so the geometry is exact and identical for every exact family.
//
// ✨ Queries
//
//   - PositioningCanonicalString, IndexOfLastNewRelativePositioning and
//     CollinearSearchIntervals: the recurrence analysis of symseq applied to
//     orientation-free runs of types.
//   - CountCollinear: reference O(n·k²) maximum number of trapezoids, within
//     any k+1 consecutive indices, met by one line.
//   - RadialSweepCountCollinear: the same answer by rotating a line around
//     every vertex, O(n·k·log k) in total, with a lazy segment tree.
//   - MaxCollinear: the answer over the whole infinite chain.
//   - MinDistanceSq, MaxDistanceSq and the Assert* family: how distance
//     between trapezoids g positions apart scales with g.
//
// ⚙️ Scalar families
//
//	Counting needs ring operations and exact signs only, so exact.Quadratic
//	is enough and fastest. Distances divide; use
//	exact.Fraction[exact.Quadratic]. exact.Float is for drawing. Int cannot
//	hold √3 and is rejected with exact.ErrNotRepresentable.
//
// ⚠️ Errors
//
//	Every exported Sequence method returns arithmetic failures (overflow,
//	inexact division, insufficient precision) as errors matching the exact
//	sentinels; symseq sentinels pass through unchanged.
//
// A Sequence is not safe for concurrent use.
package trapezoid
