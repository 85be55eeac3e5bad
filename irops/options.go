package irops

import "github.com/signadot/yamlops/ir"

type Option func(*Ops)

// WithMaxDepth bounds the overlay chains built by merges. Chains reaching n
// levels are flattened before the next merge. The default is
// ir.MaxOverlayDepth.
func WithMaxDepth(n int) Option {
	return func(o *Ops) {
		if n < 1 {
			n = ir.MaxOverlayDepth
		}
		o.maxDepth = n
	}
}
