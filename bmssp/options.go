package bmssp

// defaultLoopGuard bounds the number of pull/recurse iterations a single
// BMSSP frame's main loop may perform before it force-breaks. It is a
// belt-and-braces defence against pathological inputs, not a correctness
// mechanism: every well-formed query drains D long before this many
// iterations. The constant has no derivation beyond "large enough that no
// realistic sparse graph hits it" — implementations may raise it.
const defaultLoopGuard = 20000

// Counters holds diagnostic relaxation and heap-operation tallies. Its
// semantics are purely diagnostic: nothing in the algorithm's correctness
// contract depends on these values, and callers must not compare counter
// values across implementations or runs as a correctness check.
type Counters struct {
	Relaxations int64
	HeapOps     int64
}

func (c *Counters) addRelaxation() {
	if c != nil {
		c.Relaxations++
	}
}

func (c *Counters) addHeapOp() {
	if c != nil {
		c.HeapOps++
	}
}

// Options configures a ShortestPaths or BMSSP invocation.
type Options struct {
	counters  *Counters
	loopGuard int
}

// Option mutates an Options value; see WithInstrumentation and
// WithLoopGuard.
type Option func(*Options)

// WithInstrumentation attaches a Counters value that the engine increments
// as it runs. Passing nil is equivalent to omitting the option.
func WithInstrumentation(c *Counters) Option {
	return func(o *Options) { o.counters = c }
}

// WithLoopGuard overrides the default per-frame main-loop iteration cap.
// n <= 0 is ignored (the default is kept).
func WithLoopGuard(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.loopGuard = n
		}
	}
}

func newOptions(opts ...Option) Options {
	o := Options{loopGuard: defaultLoopGuard}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
