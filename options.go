package coerce

// Options is the per-call coercion policy. The zero value is the default
// policy: booleans accepted, floats never rounded, negative and zero
// integer results accepted.
//
// RoundFloats, RejectNegative, and RejectZero are meaningful only for
// integer coercion. RejectBool applies to every target except bool, where
// supplying it is a caller error (see ToBool).
type Options struct {
	// RejectBool causes boolean inputs to fail instead of coercing to
	// "true"/"false", 1/0, or 1.0/0.0.
	RejectBool bool

	// RoundFloats allows fractional floats to coerce to int by rounding
	// half away from zero. Without it, only floats with no fractional part
	// coerce.
	RoundFloats bool

	// RejectNegative fails integer coercion when the result is negative.
	RejectNegative bool

	// RejectZero fails integer coercion when the result is zero.
	RejectZero bool
}

// Option adjusts a single named field of Options.
type Option func(*Options)

// WithRejectBool rejects boolean inputs.
func WithRejectBool() Option {
	return func(o *Options) {
		o.RejectBool = true
	}
}

// WithRoundFloats rounds fractional floats to the nearest integer, half
// away from zero, instead of failing.
func WithRoundFloats() Option {
	return func(o *Options) {
		o.RoundFloats = true
	}
}

// WithRejectNegative fails integer coercion for negative results.
func WithRejectNegative() Option {
	return func(o *Options) {
		o.RejectNegative = true
	}
}

// WithRejectZero fails integer coercion for zero results.
func WithRejectZero() Option {
	return func(o *Options) {
		o.RejectZero = true
	}
}

// NewOptions applies opts to the default policy and returns the result.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
