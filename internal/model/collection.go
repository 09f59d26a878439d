package model

import "github.com/modeledge/msl/internal/xmltree"

// collection is the untyped view of a declared child collection the base
// machinery operates on.
type collection interface {
	localName() string
	ownerBase() *ElementBase
	parseChild(ctx *Context, n *xmltree.Node)
	removeMember(child Element) bool
	clear()
	each(yield func(Object) bool) bool
}

// Collection is an ordered, typed child collection. Members keep document
// order; membership is by identity. A collection exclusively owns its
// members: clearing or removing a member detaches it from the model.
type Collection[T Element] struct {
	owner *ElementBase
	local string
	make  func(n *xmltree.Node) T
	items []T
}

// DeclareCollection registers a child collection on b accepting child
// elements named local, constructed by make. Collections enumerate in
// declaration order.
func DeclareCollection[T Element](b *ElementBase, local string, make func(n *xmltree.Node) T) *Collection[T] {
	c := &Collection[T]{owner: b, local: local, make: make}
	b.cols = append(b.cols, c)
	return c
}

// Items returns the members in document order. The returned slice aliases
// the collection; do not modify it.
func (c *Collection[T]) Items() []T { return c.items }

// Len returns the number of members.
func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) localName() string       { return c.local }
func (c *Collection[T]) ownerBase() *ElementBase { return c.owner }

func (c *Collection[T]) parseChild(ctx *Context, n *xmltree.Node) {
	child := c.make(n)
	child.base().membership = c
	c.items = append(c.items, child)
	Parse(ctx, child)
}

func (c *Collection[T]) removeMember(child Element) bool {
	for i, item := range c.items {
		if Element(item) == child {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) clear() {
	for _, item := range c.items {
		item.base().markDetached()
	}
	// A fresh slice, not a truncation: slices previously handed out by
	// Items must keep seeing the old members.
	c.items = nil
}

func (c *Collection[T]) each(yield func(Object) bool) bool {
	for _, item := range c.items {
		if !yield(item) {
			return false
		}
	}
	return true
}
