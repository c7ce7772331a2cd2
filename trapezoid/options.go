package trapezoid

import "github.com/katalvlaran/trapseq/symseq"

// Progress reports advancement of a long-running query.
type Progress struct {
	Op    string // "count", "sweep", "max", "assert"
	Done  int
	Total int
}

// Option configures a Sequence.
type Option func(*options)

type options struct {
	onProgress func(Progress)
	symOpts    []symseq.Option
}

// WithProgress installs fn, called as long queries advance. Panics if fn is nil.
func WithProgress(fn func(Progress)) Option {
	if fn == nil {
		panic("trapezoid: WithProgress(nil)")
	}

	return func(o *options) { o.onProgress = fn }
}

// WithSymbolOptions forwards opts to the underlying symbol sequence.
func WithSymbolOptions(opts ...symseq.Option) Option {
	return func(o *options) { o.symOpts = append(o.symOpts, opts...) }
}

func (o *options) report(op string, done, total int) {
	if o.onProgress != nil {
		o.onProgress(Progress{Op: op, Done: done, Total: total})
	}
}
