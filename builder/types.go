package builder

import "errors"

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewVertices indicates n below the shape's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices for shape")

	// ErrBadWeightRange indicates min > max.
	ErrBadWeightRange = errors.New("builder: invalid weight range")

	// ErrBadDensity indicates a density outside (0, 1].
	ErrBadDensity = errors.New("builder: density must be in (0, 1]")
)

// Default generator knobs.
const (
	defaultMinWeight = 1
	defaultMaxWeight = 100
	defaultPrefix    = "v"
)

// Options configures a generator call.
//
// Seed       - drives all random topology and weight choices; 0 is a valid,
// fixed stream (reproducible defaults).
// MinWeight,
// MaxWeight  - inclusive integer bounds for random edge weights.
// Prefix     - vertex ID prefix; IDs are Prefix+"1" … Prefix+"n".
type Options struct {
	Seed      int64
	MinWeight int
	MaxWeight int
	Prefix    string
}

// Option is a functional option for generators.
type Option func(*Options)

// WithSeed freezes the random stream for topology and weight choices.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWeightRange sets the inclusive integer bounds for random weights.
func WithWeightRange(min, max int) Option {
	return func(o *Options) {
		o.MinWeight = min
		o.MaxWeight = max
	}
}

// WithPrefix overrides the vertex ID prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// resolve applies opts over deterministic defaults.
func resolve(opts []Option) Options {
	o := Options{
		Seed:      0,
		MinWeight: defaultMinWeight,
		MaxWeight: defaultMaxWeight,
		Prefix:    defaultPrefix,
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
