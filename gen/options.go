// SPDX-License-Identifier: MIT

package gen

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed seeds every generator unless WithSeed overrides it.
	DefaultSeed int64 = 42

	// DefaultCount is the number of containers a generator yields.
	DefaultCount = 100

	// DefaultMaxAbs bounds Ints to [-DefaultMaxAbs, DefaultMaxAbs).
	DefaultMaxAbs = 1 << 30
)

// DefaultLengths are the vector lengths drawn from when WithLengths is absent.
// Zero is included on purpose: empty vectors are legal operands.
var DefaultLengths = []int{0, 1, 2, 3, 5, 8, 13}

// DefaultShapes are the matrix shapes drawn from when WithShapes is absent.
var DefaultShapes = []Shape{{0, 0}, {0, 3}, {3, 0}, {1, 1}, {1, 4}, {4, 1}, {2, 2}, {2, 3}, {3, 2}, {5, 5}}

// ---------- Internal panic messages ----------

const (
	panicCountInvalid   = "gen: WithCount: count must be >= 0"
	panicLengthsInvalid = "gen: WithLengths: need at least one length, all >= 0"
	panicShapesInvalid  = "gen: WithShapes: need at least one shape, all dimensions >= 0"
	panicMaxAbsInvalid  = "gen: WithMaxAbs: bound must be > 0"
)

// Shape is a matrix shape.
type Shape struct {
	Rows, Columns int
}

// Items returns Rows*Columns.
func (s Shape) Items() int { return s.Rows * s.Columns }

// String renders the shape as RxC.
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Columns) }

// Option mutates Options. Constructors panic on nonsensical values, which are
// programmer errors.
type Option func(*Options)

// Options is the effective generator configuration.
type Options struct {
	seed    int64
	count   int
	lengths []int
	shapes  []Shape
	maxAbs  int
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithCount sets how many containers (or ints) are produced.
func WithCount(n int) Option {
	if n < 0 {
		panic(panicCountInvalid)
	}

	return func(o *Options) { o.count = n }
}

// WithLengths sets the vector lengths to draw from uniformly.
func WithLengths(lengths ...int) Option {
	if len(lengths) == 0 {
		panic(panicLengthsInvalid)
	}
	for _, l := range lengths {
		if l < 0 {
			panic(panicLengthsInvalid)
		}
	}
	cp := append([]int(nil), lengths...)

	return func(o *Options) { o.lengths = cp }
}

// WithShapes sets the matrix shapes to draw from uniformly.
func WithShapes(shapes ...Shape) Option {
	if len(shapes) == 0 {
		panic(panicShapesInvalid)
	}
	for _, s := range shapes {
		if s.Rows < 0 || s.Columns < 0 {
			panic(panicShapesInvalid)
		}
	}
	cp := append([]Shape(nil), shapes...)

	return func(o *Options) { o.shapes = cp }
}

// WithMaxAbs bounds the absolute value of generated ints.
func WithMaxAbs(bound int) Option {
	if bound <= 0 {
		panic(panicMaxAbsInvalid)
	}

	return func(o *Options) { o.maxAbs = bound }
}

// defaultOptions returns a fresh Options with all defaults applied.
func defaultOptions() Options {
	return Options{
		seed:    DefaultSeed,
		count:   DefaultCount,
		lengths: DefaultLengths,
		shapes:  DefaultShapes,
		maxAbs:  DefaultMaxAbs,
	}
}

// gatherOptions applies opts over the defaults, left to right.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
