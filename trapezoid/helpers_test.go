package trapezoid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trapseq/exact"
	"github.com/katalvlaran/trapseq/geom"
	"github.com/katalvlaran/trapseq/trapezoid"
)

type (
	Q  = exact.Quadratic
	FQ = exact.Fraction[exact.Quadratic]
)

// q returns the point (a, b√3).
func q(a, b int64) geom.Point[Q] { return geom.Pt(exact.Q(a, 0), exact.Q(0, b)) }

func origin[S exact.Scalar[S]]() geom.Point[S] {
	var z S

	return geom.Pt(z.Const(exact.Zero), z.Const(exact.Zero))
}

func newSeq[S exact.Scalar[S]](t *testing.T, n int, opts ...trapezoid.Option) *trapezoid.Sequence[S] {
	t.Helper()
	s, err := trapezoid.New(n, origin[S](), opts...)
	require.NoError(t, err)

	return s
}
