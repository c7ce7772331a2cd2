// Package segtree provides the range structure behind the radial
// collinearity sweep.
//
// 🚀 Lazy
//
//	An arena-allocated lazy-propagating interval tree over a closed index
//	range [lo, hi]. Nodes live in flat slices in heap layout (root 1,
//	children 2i and 2i+1); each node caches the sum and the max of its span
//	plus a pending delta that has not yet been pushed to its children.
//
//	  Update(l, r, δ)  add δ to every position in [l, r]
//	  Max(l, r)        maximum over [l, r]
//	  Sum(l, r)        sum over [l, r]
//	  MaxAll()         maximum over the whole range, O(1)
//
// ⚙️ Complexity
//
//	Construction O(n); every update and query O(log n); memory O(n).
//
// A Lazy is not safe for concurrent use.
package segtree
