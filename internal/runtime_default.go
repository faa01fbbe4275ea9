//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var (
	trackers sync.Map

	// released trackers, reused by the next outermost emission
	trackerPool = sync.Pool{
		New: func() any { return NewTracker(0) },
	}
)

// AcquireTracker returns the tracker of the calling goroutine, creating it if
// needed. Every call must be paired with a call to ReleaseTracker.
func AcquireTracker() *Tracker {
	gid := goid.Get()

	var t *Tracker
	if v, ok := trackers.Load(gid); ok {
		t = v.(*Tracker)
	} else {
		t = trackerPool.Get().(*Tracker)
		t.gid = gid
		trackers.Store(gid, t)
	}

	t.refs++
	return t
}

func ReleaseTracker(t *Tracker) {
	t.refs--
	if t.refs == 0 {
		trackers.Delete(t.gid)
		t.stack = t.stack[:0]
		trackerPool.Put(t)
	}
}

// LookupTracker returns the tracker of the calling goroutine, or nil when it
// is not emitting.
func LookupTracker() *Tracker {
	if v, ok := trackers.Load(goid.Get()); ok {
		return v.(*Tracker)
	}

	return nil
}
