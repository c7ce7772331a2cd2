package segtree

import "errors"

var (
	// ErrRange indicates an index or interval outside the tree, or an
	// interval with l > r.
	ErrRange = errors.New("segtree: range out of bounds")
)
