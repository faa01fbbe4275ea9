package sigslot

import "github.com/AnatoleLucet/sigslot/internal"

// Connection identifies one slot of one signal. It is returned by Connect
// and spent by Disconnect. The zero value is a spent connection.
//
// A connection does not keep its slot alive: once spent it holds nothing.
type Connection struct {
	link internal.Link
}

// Connected reports whether the slot of c is still connected.
func (c *Connection) Connected() bool {
	return c != nil && c.link != nil && c.link.Linked()
}

// Disconnect removes the slot of c from its signal and reports whether it
// was still connected. The connection is spent afterwards.
func (c *Connection) Disconnect() bool {
	if c == nil || c.link == nil {
		return false
	}

	ok := c.link.Unlink()
	c.link = nil

	return ok
}

func (c *Connection) disconnectFrom(owner any) bool {
	if c == nil || c.link == nil || c.link.Owner() != owner {
		return false
	}

	return c.Disconnect()
}

// Current returns a new connection to the slot being invoked by the calling
// goroutine, or nil when called outside of a slot. During nested emissions
// it is the innermost slot.
//
//	sig.Connect(func(n int) int {
//		sigslot.Current().Disconnect() // run once
//		return n
//	})
func Current() *Connection {
	t := internal.LookupTracker()
	if t == nil {
		return nil
	}

	link := t.Current()
	if link == nil {
		return nil
	}

	return &Connection{link: link}
}
