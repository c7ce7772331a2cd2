package segtree

import "math"

// Lazy is a range-add / range-max / range-sum interval tree over [lo, hi].
type Lazy struct {
	lo, hi int
	sum    []int64
	max    []int64
	lazy   []int64
}

// New returns a tree over [lo, hi] with every position zero.
func New(lo, hi int) (*Lazy, error) {
	if hi < lo {
		return nil, ErrRange
	}
	t := alloc(lo, hi)

	return t, nil
}

// NewFrom returns a tree over [lo, lo+len(values)-1] holding values. The
// build is bottom-up in O(n).
func NewFrom(lo int, values []int64) (*Lazy, error) {
	if len(values) == 0 {
		return nil, ErrRange
	}
	t := alloc(lo, lo+len(values)-1)
	t.build(1, t.lo, t.hi, values)

	return t, nil
}

func alloc(lo, hi int) *Lazy {
	n := 4 * (hi - lo + 1)

	return &Lazy{
		lo:   lo,
		hi:   hi,
		sum:  make([]int64, n),
		max:  make([]int64, n),
		lazy: make([]int64, n),
	}
}

func (t *Lazy) build(node, l, r int, values []int64) {
	if l == r {
		t.sum[node] = values[l-t.lo]
		t.max[node] = values[l-t.lo]

		return
	}
	mid := l + (r-l)/2
	t.build(2*node, l, mid, values)
	t.build(2*node+1, mid+1, r, values)
	t.pull(node)
}

// Len returns the number of positions.
func (t *Lazy) Len() int { return t.hi - t.lo + 1 }

// Lo returns the first position.
func (t *Lazy) Lo() int { return t.lo }

// Hi returns the last position.
func (t *Lazy) Hi() int { return t.hi }

// Reset zeroes every position without reallocating.
func (t *Lazy) Reset() {
	clear(t.sum)
	clear(t.max)
	clear(t.lazy)
}

func (t *Lazy) check(l, r int) error {
	if l > r || l < t.lo || r > t.hi {
		return ErrRange
	}

	return nil
}

// apply adds delta to every position under node, which spans width positions.
func (t *Lazy) apply(node, width int, delta int64) {
	t.sum[node] += delta * int64(width)
	t.max[node] += delta
	t.lazy[node] += delta
}

// push hands node's pending delta to its children.
func (t *Lazy) push(node, l, r int) {
	d := t.lazy[node]
	if d == 0 {
		return
	}
	mid := l + (r-l)/2
	t.apply(2*node, mid-l+1, d)
	t.apply(2*node+1, r-mid, d)
	t.lazy[node] = 0
}

func (t *Lazy) pull(node int) {
	t.sum[node] = t.sum[2*node] + t.sum[2*node+1]
	t.max[node] = max(t.max[2*node], t.max[2*node+1])
}

// Update adds delta to every position in [l, r].
func (t *Lazy) Update(l, r int, delta int64) error {
	if err := t.check(l, r); err != nil {
		return err
	}
	t.update(1, t.lo, t.hi, l, r, delta)

	return nil
}

func (t *Lazy) update(node, nl, nr, l, r int, delta int64) {
	if r < nl || nr < l {
		return
	}
	if l <= nl && nr <= r {
		t.apply(node, nr-nl+1, delta)

		return
	}
	t.push(node, nl, nr)
	mid := nl + (nr-nl)/2
	t.update(2*node, nl, mid, l, r, delta)
	t.update(2*node+1, mid+1, nr, l, r, delta)
	t.pull(node)
}

// Max returns the maximum over [l, r].
func (t *Lazy) Max(l, r int) (int64, error) {
	if err := t.check(l, r); err != nil {
		return 0, err
	}

	return t.queryMax(1, t.lo, t.hi, l, r), nil
}

// MaxAll returns the maximum over the whole range.
func (t *Lazy) MaxAll() int64 { return t.max[1] }

func (t *Lazy) queryMax(node, nl, nr, l, r int) int64 {
	if r < nl || nr < l {
		return math.MinInt64
	}
	if l <= nl && nr <= r {
		return t.max[node]
	}
	t.push(node, nl, nr)
	mid := nl + (nr-nl)/2

	return max(t.queryMax(2*node, nl, mid, l, r), t.queryMax(2*node+1, mid+1, nr, l, r))
}

// Sum returns the sum over [l, r].
func (t *Lazy) Sum(l, r int) (int64, error) {
	if err := t.check(l, r); err != nil {
		return 0, err
	}

	return t.querySum(1, t.lo, t.hi, l, r), nil
}

func (t *Lazy) querySum(node, nl, nr, l, r int) int64 {
	if r < nl || nr < l {
		return 0
	}
	if l <= nl && nr <= r {
		return t.sum[node]
	}
	t.push(node, nl, nr)
	mid := nl + (nr-nl)/2

	return t.querySum(2*node, nl, mid, l, r) + t.querySum(2*node+1, mid+1, nr, l, r)
}
