package sigslot

import "github.com/AnatoleLucet/sigslot/internal"

// Scope groups connections, possibly of different signals, so they can be
// disconnected together. The zero value is not usable, use NewScope.
type Scope struct {
	owner *internal.Owner
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{internal.NewOwner()}
}

// Add puts connections in the scope. Spent connections are ignored, and
// connections disconnected elsewhere are eventually forgotten.
func (s *Scope) Add(conns ...*Connection) {
	for _, c := range conns {
		if c != nil && c.link != nil {
			s.owner.Add(c.link)
		}
	}
}

// Child creates a scope disposed along with s. Disposing the child on its
// own detaches it from s.
func (s *Scope) Child() *Scope {
	child := NewScope()
	s.owner.AddChild(child.owner)

	return child
}

// Dispose disconnects the connections of the child scopes, newest child
// first, then its own in reverse order of addition. It returns how many
// slots were disconnected. The scope is empty afterwards and can be reused.
func (s *Scope) Dispose() int {
	return s.owner.Dispose()
}
