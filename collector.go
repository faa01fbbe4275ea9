package sigslot

// Collector accumulates the slot results of a single emission.
type Collector[R, V any] interface {
	// Collect records the result of one slot and reports whether the
	// emission should go on with the next one.
	Collect(result R) bool

	// Result returns what Emit returns.
	Result() V
}

// CollectorFunc creates the collector of one emission. It is called once per Emit.
type CollectorFunc[R, V any] func() Collector[R, V]

// LastCollector keeps the latest result. See Last.
type LastCollector[R any] struct {
	result R
}

// Collect stores result and never stops the emission.
func (c *LastCollector[R]) Collect(result R) bool {
	c.result = result
	return true
}

// Result returns the latest result, or the zero value.
func (c *LastCollector[R]) Result() R { return c.result }

// Last makes Emit return the result of the last slot invoked.
// This is the collector used by New.
func Last[R any]() CollectorFunc[R, R] {
	return func() Collector[R, R] {
		return &LastCollector[R]{}
	}
}

// VectorCollector keeps every result. See Vector.
type VectorCollector[R any] struct {
	results []R
}

// Collect appends result and never stops the emission.
func (c *VectorCollector[R]) Collect(result R) bool {
	c.results = append(c.results, result)
	return true
}

// Result returns the results in invocation order, nil if there were none.
func (c *VectorCollector[R]) Result() []R { return c.results }

// Vector makes Emit return the results of all slots, in invocation order.
func Vector[R any]() CollectorFunc[R, []R] {
	return func() Collector[R, []R] {
		return &VectorCollector[R]{}
	}
}

// ReduceCollector folds results into one value. See Reduce.
type ReduceCollector[R any] struct {
	result R
	reduce func(acc, result R) R
}

// Collect folds result into the accumulator and never stops the emission.
func (c *ReduceCollector[R]) Collect(result R) bool {
	c.result = c.reduce(c.result, result)
	return true
}

// Result returns the accumulator.
func (c *ReduceCollector[R]) Result() R { return c.result }

// Reduce folds the slot results with reduce, starting from the zero value of R.
func Reduce[R any](reduce func(acc, result R) R) CollectorFunc[R, R] {
	var zero R
	return ReduceFrom(zero, reduce)
}

// ReduceFrom folds the slot results with reduce, starting from seed.
// The seed is shared by every emission, so it should not be a reference to
// mutable state.
func ReduceFrom[R any](seed R, reduce func(acc, result R) R) CollectorFunc[R, R] {
	if reduce == nil {
		panic("sigslot: nil reducer")
	}

	return func() Collector[R, R] {
		return &ReduceCollector[R]{result: seed, reduce: reduce}
	}
}

// UntilCollector stops at the first result failing its test. See Until.
type UntilCollector[R any] struct {
	result R
	test   func(R) bool
}

// Collect stores result and reports whether it passes the test.
func (c *UntilCollector[R]) Collect(result R) bool {
	c.result = result
	return c.test(result)
}

// Result returns the latest result.
func (c *UntilCollector[R]) Result() R { return c.result }

// Until keeps the emission going while test returns true for each result.
// Emit returns the last result, which is the one that stopped the emission
// if any did.
func Until[R any](test func(R) bool) CollectorFunc[R, R] {
	if test == nil {
		panic("sigslot: nil predicate")
	}

	return func() Collector[R, R] {
		return &UntilCollector[R]{test: test}
	}
}

// VoidCollector is the collector of VoidSignal. Slots without a result
// never stop an emission.
type VoidCollector struct{}

// Collect reports that the emission goes on.
func (VoidCollector) Collect() bool { return true }

// Result does nothing, void emissions return nothing.
func (VoidCollector) Result() {}
