package internal

import (
	"log/slog"

	list "github.com/bahlo/generic-list-go"
)

// Link is the position of one registered callback, independent of its type.
type Link interface {
	// Unlink removes the callback, returning false if it was already removed.
	Unlink() bool

	// Linked reports whether the callback is still registered.
	Linked() bool

	// Owner returns the container the callback was registered in.
	Owner() any
}

type Slot[F any] struct {
	Fn F

	owner  *Slots[F]
	elem   *list.Element[*Slot[F]]
	linked bool
}

func (s *Slot[F]) Unlink() bool {
	if s == nil {
		return false
	}

	if !s.linked {
		s.owner.debug("stale connection")
		return false
	}

	return s.owner.remove(s)
}

func (s *Slot[F]) Linked() bool {
	return s != nil && s.linked
}

func (s *Slot[F]) Owner() any {
	return s.owner
}

// Slots is an ordered list of callbacks. The zero value is ready to use.
//
// While a walk is in progress, removed slots stay in the list (unlinked)
// so that no cursor of any walk can be invalidated. They are swept once
// the outermost walk returns.
type Slots[F any] struct {
	Name   string
	Logger *slog.Logger

	list list.List[*Slot[F]]

	// number of linked slots
	live int

	// number of walks in progress, nested walks included
	walking int

	// number of unlinked slots still in the list
	stale int
}

func (s *Slots[F]) Insert(fn F) *Slot[F] {
	slot := &Slot[F]{Fn: fn, owner: s, linked: true}
	slot.elem = s.list.PushBack(slot)
	s.live++

	s.debug("slot connected")

	return slot
}

func (s *Slots[F]) remove(slot *Slot[F]) bool {
	slot.linked = false
	s.live--

	if s.walking > 0 {
		s.stale++
	} else {
		s.list.Remove(slot.elem)
		slot.elem = nil
	}

	s.debug("slot disconnected")

	return true
}

// Clear unlinks every slot.
func (s *Slots[F]) Clear() {
	for e := s.list.Front(); e != nil; {
		next := e.Next()
		if e.Value.linked {
			s.remove(e.Value)
		}
		e = next
	}
}

func (s *Slots[F]) Len() int {
	return s.live
}

// Each calls visit for every linked slot in insertion order until visit
// returns false. Slots inserted during the walk are not visited.
func (s *Slots[F]) Each(visit func(*Slot[F]) bool) {
	last := s.list.Back()
	if last == nil {
		return
	}

	s.walking++
	defer s.done()

	for e := s.list.Front(); e != nil; {
		// step first, visit may unlink e
		next := e.Next()
		if e == last {
			next = nil
		}

		if e.Value.linked && !visit(e.Value) {
			return
		}

		e = next
	}
}

func (s *Slots[F]) done() {
	s.walking--
	if s.walking == 0 && s.stale > 0 {
		s.sweep()
	}
}

func (s *Slots[F]) sweep() {
	for e := s.list.Front(); e != nil && s.stale > 0; {
		next := e.Next()
		if !e.Value.linked {
			s.list.Remove(e)
			e.Value.elem = nil
			s.stale--
		}
		e = next
	}
}

func (s *Slots[F]) debug(msg string) {
	if s.Logger == nil {
		return
	}

	s.Logger.Debug(msg, "signal", s.Name, "slots", s.live)
}
