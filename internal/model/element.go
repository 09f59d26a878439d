package model

import (
	"fmt"
	"iter"
	"slices"

	"github.com/modeledge/msl/internal/xmltree"
)

// ElementBase carries the shared element machinery: the tree node
// back-reference, lifecycle state, and the collections, bindings, and
// scalars a concrete type declares at construction. Concrete element types
// embed it and call Init from their constructor.
type ElementBase struct {
	self   Element
	parent Element
	node   *xmltree.Node
	state  State

	// membership is the collection this element belongs to in its parent,
	// recorded once at insertion so removal never needs type inspection.
	membership collection

	cols         []collection
	wrappers     []wrapper
	bindings     []rebinder
	attrs        []string
	unrecognized []string
}

// Init wires the base to the concrete element, its parent, and its tree
// node. It must be called before any Declare call.
func (b *ElementBase) Init(self Element, parent Element, n *xmltree.Node) {
	b.self = self
	b.parent = parent
	b.node = n
	b.state = StateNone
}

func (b *ElementBase) sealed()            {}
func (b *ElementBase) base() *ElementBase { return b }

// Parent returns the owning element, or nil for the root.
func (b *ElementBase) Parent() Element { return b.parent }

// XMLNode returns the underlying tree node.
func (b *ElementBase) XMLNode() *xmltree.Node { return b.node }

// State returns the lifecycle state.
func (b *ElementBase) State() State { return b.state }

// LocalName returns the local name of the underlying tree node.
func (b *ElementBase) LocalName() string { return b.node.LocalName() }

// Children yields every directly owned object: collection members in
// declaration then document order, then the scalar/reference wrappers in
// declaration order.
func (b *ElementBase) Children() iter.Seq[Object] {
	return func(yield func(Object) bool) {
		for _, c := range b.cols {
			if !c.each(yield) {
				return
			}
		}
		for _, w := range b.wrappers {
			if !yield(w) {
				return
			}
		}
	}
}

// PreParse clears every derived field ahead of a re-derivation: every
// collection is emptied (each contained child notified of detachment) and
// every binding reverts to unknown. It is idempotent on an already-empty
// element. Calling it while the element is still parsed or resolved is a
// programming error: the driver must downgrade the state first.
func (b *ElementBase) PreParse() {
	if b.state == StateParsed || b.state == StateResolved {
		panic(fmt.Sprintf("model: PreParse on %s element %s", b.state, b.node.Path()))
	}
	for _, c := range b.cols {
		c.clear()
	}
	for _, w := range b.wrappers {
		w.reset()
	}
	b.unrecognized = b.unrecognized[:0]
}

// ParseSingleElement matches n's local name against the declared
// collections; on a match the collection constructs the typed child,
// appends it in document order, parses it recursively, and the node is
// consumed. An unmatched name is recorded for diagnostics.
func (b *ElementBase) ParseSingleElement(ctx *Context, n *xmltree.Node) bool {
	for _, c := range b.cols {
		if c.localName() == n.LocalName() {
			c.parseChild(ctx, n)
			return true
		}
	}
	b.unrecognized = append(b.unrecognized, n.LocalName())
	return false
}

// OnChildDeleted removes child from the one collection that claims it and
// reports whether anything was removed. A second notification for the same
// child is a no-op. A child owned by a different element is a programming
// error.
func (b *ElementBase) OnChildDeleted(child Element) bool {
	cb := child.base()
	m := cb.membership
	if m == nil {
		return false
	}
	if m.ownerBase() != b {
		panic(fmt.Sprintf("model: OnChildDeleted: %s is owned by a different element", child.XMLNode().Path()))
	}
	if !m.removeMember(child) {
		return false
	}
	cb.markDetached()
	return true
}

// ResolveBindings re-resolves every declared binding against set and
// reports whether all of them resolved to a known element.
func (b *ElementBase) ResolveBindings(set *ArtifactSet) bool {
	all := true
	for _, bd := range b.bindings {
		if bd.Rebind(set) != BindingKnown {
			all = false
		}
	}
	return all
}

// SetResolved advances a parsed element to resolved, or demotes a
// previously resolved element back to parsed. It has no effect on elements
// that are not parsed yet.
func (b *ElementBase) SetResolved(ok bool) {
	switch {
	case b.state != StateParsed && b.state != StateResolved:
	case ok:
		b.state = StateResolved
	default:
		b.state = StateParsed
	}
}

// DoResolve re-binds every declared reference, then advances to resolved
// only if all of them are known. Concrete types may shadow this with a
// stricter predicate.
func (b *ElementBase) DoResolve(set *ArtifactSet) {
	b.SetResolved(b.ResolveBindings(set))
}

// RecognizedAttributes lists the attribute names declared via bindings and
// defaultable scalars.
func (b *ElementBase) RecognizedAttributes() []string {
	return slices.Clone(b.attrs)
}

// RecognizedChildren lists the child local names the declared collections
// accept.
func (b *ElementBase) RecognizedChildren() []string {
	out := make([]string, 0, len(b.cols))
	for _, c := range b.cols {
		out = append(out, c.localName())
	}
	return out
}

// UnrecognizedChildren lists the child local names seen during the last
// parse that no collection accepted.
func (b *ElementBase) UnrecognizedChildren() []string {
	return slices.Clone(b.unrecognized)
}

// markDetached flags the element and its whole subtree as deleted. The
// elements keep no link back into the model afterwards.
func (b *ElementBase) markDetached() {
	if b.state == StateDeleted {
		return
	}
	b.state = StateDeleted
	b.membership = nil
	for _, c := range b.cols {
		c.clear()
	}
	for _, w := range b.wrappers {
		w.reset()
	}
}
