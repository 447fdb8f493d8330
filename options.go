package sfcgo

// DefaultTableBudget is the default ceiling on MaxDistance for the 4-byte
// precomputed table tier. Curves up to 2^16 points always materialize tables;
// curves between 2^16 and the budget materialize 4-byte tables; larger curves
// recompute every query through the bit algorithm.
const DefaultTableBudget = int64(1) << 21

type options struct {
	tableBudget int64
}

// Option configures curve construction.
type Option func(*options)

// WithTableBudget overrides the ceiling on MaxDistance below which a curve
// materializes 4-byte lookup tables. The 1- and 2-byte tiers (up to 2^8 and
// 2^16 points) are cheap enough that they materialize regardless of the
// budget. Values below 2^16 therefore only disable the 4-byte tier.
func WithTableBudget(n int64) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.tableBudget = n
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		tableBudget: DefaultTableBudget,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
