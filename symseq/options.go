package symseq

// Progress reports one completed recurrence scan.
type Progress struct {
	Length int // word length L
	Bound  int // last start scanned
	Last   int // IndexOfLastNewSubword(L)
	Words  int // distinct words of length L
}

// Option configures a Sequence.
type Option func(*options)

type options struct {
	onScan func(Progress)
	base   int // base-case window; BaseWindow when zero
}

func (o *options) window() int {
	if o.base > 0 {
		return o.base
	}

	return BaseWindow
}

// WithProgress installs fn, called once per newly memoized word length.
// Panics if fn is nil.
func WithProgress(fn func(Progress)) Option {
	if fn == nil {
		panic("symseq: WithProgress(nil)")
	}

	return func(o *options) { o.onScan = fn }
}
