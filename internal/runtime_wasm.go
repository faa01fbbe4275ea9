//go:build wasm

package internal

var globalTracker = NewTracker(0)

func AcquireTracker() *Tracker {
	globalTracker.refs++
	return globalTracker
}

func ReleaseTracker(t *Tracker) {
	t.refs--
}

func LookupTracker() *Tracker {
	if globalTracker.refs == 0 {
		return nil
	}

	return globalTracker
}
