package internal

import (
	"iter"
	"slices"
)

// Owner holds links to unlink together, and child owners disposed with it.
type Owner struct {
	links []Link

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

func NewOwner() *Owner {
	return &Owner{}
}

// Add records link. Links unlinked elsewhere are dropped when the slice is
// full, so an owner only grows with the links it still holds.
func (n *Owner) Add(link Link) {
	if len(n.links) == cap(n.links) {
		n.links = slices.DeleteFunc(n.links, func(l Link) bool { return !l.Linked() })
	}

	n.links = append(n.links, link)
}

func (parent *Owner) AddChild(child *Owner) {
	child.detach()

	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

// detach removes n from the children of its parent.
func (n *Owner) detach() {
	if n.parent == nil {
		return
	}

	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	} else {
		n.parent.childrenHead = n.nextSibling
	}

	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	}

	n.parent = nil
	n.prevSibling = nil
	n.nextSibling = nil
}

func (n *Owner) Children() iter.Seq[*Owner] {
	return func(yield func(*Owner) bool) {
		child := n.childrenHead

		for child != nil {
			if !yield(child) {
				return
			}

			child = child.nextSibling
		}
	}
}

// Len returns the number of links held, unlinked ones not yet dropped included.
func (n *Owner) Len() int {
	return len(n.links)
}

// Dispose disposes the children, newest first, then unlinks the links in
// reverse order and detaches n from its parent. It returns how many links
// were still linked.
func (n *Owner) Dispose() int {
	unlinked := n.DisposeChildren()

	for i := len(n.links) - 1; i >= 0; i-- {
		if n.links[i].Unlink() {
			unlinked++
		}
	}
	n.links = nil

	n.detach()

	return unlinked
}

func (n *Owner) DisposeChildren() int {
	unlinked := 0

	// each child detaches itself
	for n.childrenHead != nil {
		unlinked += n.childrenHead.Dispose()
	}

	return unlinked
}
