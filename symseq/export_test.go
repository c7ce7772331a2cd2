package symseq

// WithBaseWindow replaces BaseWindow for the length-1 and length-2 scans.
func WithBaseWindow(n int) Option { return func(o *options) { o.base = n } }
