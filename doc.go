// Package trapseq explores, in exact arithmetic, the infinite word generated
// by a 12-letter, 7-symbol morphism and its realization as a chain of
// congruent trapezoids.
//
// 🚀 What is trapseq?
//
//	A small family of single-threaded libraries and one command:
//		• exact    : Scalar capability set; Int, Quadratic (a+b√3), Fraction, Float
//		• geom     : points, vectors, segments and exact side tests
//		• segtree  : lazy max/sum interval tree
//		• symseq   : the 12-letter morphism, its fixed point, subword recurrence
//		• trapezoid: the trapezoid chain, collinearity counts, distance bounds
//		• render   : PNG pictures of a chain
//		• cmd/trapseq: CLI and REPL over all of the above
//
// ✨ Questions it answers
//
//   - How soon does every subword of length L recur?
//   - How many trapezoids, pairwise at most k apart, can one line meet?
//   - How do distances between trapezoids g apart grow with g?
//
// Every comparison is exact. A value the chosen family cannot hold makes
// the query fail with an exact.ErrX sentinel instead of rounding.
//
// Quick example, the first seven trapezoids:
//
//	A0 A5 B3 B4 B0 A0 B1   →   types 0 5 3 4 0 0 1
//
//	one line meets 5 of them (CountCollinear(0, 6, 6) == 5)
//
//	go install github.com/katalvlaran/trapseq/cmd/trapseq@latest
package trapseq
