// Package sigslot provides typed signals: ordered lists of callbacks (slots)
// sharing one signature, invoked together by Emit.
//
// The value returned by Emit is decided by the signal's Collector, which
// also decides whether an emission stops early:
//
//	clicked := sigslot.NewCollected[Click](sigslot.Until(sigslot.NotZero[bool]))
//	conn := clicked.Connect(func(c Click) bool { return handle(c) })
//	handled := clicked.Emit(Click{X: 1, Y: 2})
//	clicked.Disconnect(conn)
//
// Slots can connect and disconnect slots (themselves included) and emit
// signals again while an emission is running. A signal is meant to be used
// by one goroutine at a time, callers sharing one between goroutines must
// serialize access themselves.
package sigslot

import "github.com/AnatoleLucet/sigslot/internal"

// noCopy makes go vet report copies of the signals embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Signal is a list of slots taking an A and returning an R. Emit returns
// the V built by the collector from the slot results.
//
// A Signal must be created with New or NewCollected and must not be copied.
type Signal[A, R, V any] struct {
	_ noCopy

	slots   internal.Slots[func(A) R]
	collect CollectorFunc[R, V]
}

// New creates a signal whose Emit returns the result of the last slot.
func New[A, R any](opts ...Option) *Signal[A, R, R] {
	return NewCollected[A](Last[R](), opts...)
}

// NewCollected creates a signal whose emissions are collected by a new
// collector from collect.
func NewCollected[A, R, V any](collect CollectorFunc[R, V], opts ...Option) *Signal[A, R, V] {
	if collect == nil {
		panic("sigslot: nil collector")
	}

	s := &Signal[A, R, V]{collect: collect}
	newOptions(opts).apply(&s.slots.Name, &s.slots.Logger)

	return s
}

// Connect appends fn to the slots. The returned connection disconnects it.
func (s *Signal[A, R, V]) Connect(fn func(A) R) *Connection {
	if fn == nil {
		panic("sigslot: nil slot")
	}

	return &Connection{link: s.slots.Insert(fn)}
}

// Disconnect removes the slot of c and reports whether it was still
// connected. The connection is spent afterwards, so disconnecting it again
// returns false. Connections of other signals are left untouched.
func (s *Signal[A, R, V]) Disconnect(c *Connection) bool {
	return c.disconnectFrom(&s.slots)
}

// DisconnectAll removes every slot.
func (s *Signal[A, R, V]) DisconnectAll() {
	s.slots.Clear()
}

// Emit calls every slot in connection order with arg, until the collector
// asks to stop, and returns the collected value.
//
// Slots connected during the emission are not called by it. Slots
// disconnected during the emission are not called if they were not yet.
// A panicking slot stops the emission and the panic reaches the caller.
func (s *Signal[A, R, V]) Emit(arg A) V {
	if s.collect == nil {
		panic("sigslot: Signal must be created with New or NewCollected")
	}

	c := s.collect()
	if s.slots.Len() == 0 {
		return c.Result()
	}

	t := internal.AcquireTracker()
	defer internal.ReleaseTracker(t)

	s.slots.Each(func(slot *internal.Slot[func(A) R]) bool {
		return c.Collect(internal.Invoke(t, slot, arg))
	})

	return c.Result()
}

// Size returns the number of connected slots.
func (s *Signal[A, R, V]) Size() int {
	return s.slots.Len()
}

// Name returns the name given with WithName.
func (s *Signal[A, R, V]) Name() string {
	return s.slots.Name
}

// VoidSignal is a list of slots taking an A and returning nothing.
// The zero value is ready to use. A VoidSignal must not be copied.
type VoidSignal[A any] struct {
	_ noCopy

	slots internal.Slots[func(A)]
}

// NewVoid creates a signal whose slots return nothing.
func NewVoid[A any](opts ...Option) *VoidSignal[A] {
	s := &VoidSignal[A]{}
	newOptions(opts).apply(&s.slots.Name, &s.slots.Logger)

	return s
}

// Connect appends fn to the slots. The returned connection disconnects it.
func (s *VoidSignal[A]) Connect(fn func(A)) *Connection {
	if fn == nil {
		panic("sigslot: nil slot")
	}

	return &Connection{link: s.slots.Insert(fn)}
}

// Disconnect works like Signal.Disconnect.
func (s *VoidSignal[A]) Disconnect(c *Connection) bool {
	return c.disconnectFrom(&s.slots)
}

// DisconnectAll removes every slot.
func (s *VoidSignal[A]) DisconnectAll() {
	s.slots.Clear()
}

// Emit calls every slot in connection order with arg. It follows the same
// rules as Signal.Emit.
func (s *VoidSignal[A]) Emit(arg A) {
	if s.slots.Len() == 0 {
		return
	}

	var c VoidCollector

	t := internal.AcquireTracker()
	defer internal.ReleaseTracker(t)

	s.slots.Each(func(slot *internal.Slot[func(A)]) bool {
		internal.InvokeVoid(t, slot, arg)

		return c.Collect()
	})

	c.Result()
}

// Size returns the number of connected slots.
func (s *VoidSignal[A]) Size() int {
	return s.slots.Len()
}

// Name returns the name given with WithName.
func (s *VoidSignal[A]) Name() string {
	return s.slots.Name
}
