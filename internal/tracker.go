package internal

// Tracker records, for one goroutine, the stack of slots being invoked.
type Tracker struct {
	gid int64

	// number of emissions in progress, nested ones included
	refs int

	stack []Link
}

func NewTracker(gid int64) *Tracker {
	return &Tracker{gid: gid, stack: make([]Link, 0, 4)}
}

// Push makes link the current slot until the matching Pop.
func (t *Tracker) Push(link Link) {
	t.stack = append(t.stack, link)
}

func (t *Tracker) Pop() {
	t.stack[len(t.stack)-1] = nil
	t.stack = t.stack[:len(t.stack)-1]
}

// Invoke calls slot with arg, as the current slot.
func Invoke[A, R any](t *Tracker, slot *Slot[func(A) R], arg A) R {
	t.Push(slot)
	defer t.Pop()

	return slot.Fn(arg)
}

// InvokeVoid is Invoke for slots returning nothing.
func InvokeVoid[A any](t *Tracker, slot *Slot[func(A)], arg A) {
	t.Push(slot)
	defer t.Pop()

	slot.Fn(arg)
}

// Current returns the innermost slot being invoked, or nil.
func (t *Tracker) Current() Link {
	if len(t.stack) == 0 {
		return nil
	}

	return t.stack[len(t.stack)-1]
}

func (t *Tracker) Depth() int {
	return len(t.stack)
}
