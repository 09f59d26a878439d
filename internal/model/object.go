// Package model implements the element framework: typed in-memory elements
// mirroring nodes of an XML-like tree, with declared child collections,
// lazily resolved references between elements, and attribute-backed scalar
// values with defaults.
//
// Parsing and resolution are two distinct phases. A parse pass re-derives
// elements from the tree; a resolve pass then re-binds every reference
// against an artifact set built from the fully parsed model. The two are
// never collapsed, because resolution needs a globally consistent artifact
// set that may include elements parsed after any individual element.
package model

import (
	"iter"

	"github.com/modeledge/msl/internal/xmltree"
)

// Object is anything directly owned by an element: child elements and the
// scalar/reference wrappers declared on it.
type Object interface {
	// Parent returns the owning element, or nil for the root.
	Parent() Element

	sealed()
}

// Element is a typed model node mirroring one node of the underlying tree.
// Concrete element types embed ElementBase and declare their collections,
// bindings, and scalars at construction time.
type Element interface {
	Object

	// XMLNode returns the underlying tree node.
	XMLNode() *xmltree.Node
	// State returns the lifecycle state.
	State() State
	// Children yields every directly owned object: each declared
	// collection's members in declaration then document order, followed
	// by the declared scalar/reference wrappers. The sequence is stable
	// across calls as long as no structural change occurred.
	Children() iter.Seq[Object]
	// PreParse clears all derived state ahead of a re-derivation.
	PreParse()
	// ParseSingleElement dispatches one child tree node to the matching
	// declared collection and reports whether it was consumed.
	ParseSingleElement(ctx *Context, n *xmltree.Node) bool
	// OnChildDeleted removes a child that is gone from the tree and
	// reports whether a collection claimed it.
	OnChildDeleted(child Element) bool
	// DoResolve re-binds every declared reference and advances the state.
	DoResolve(set *ArtifactSet)
	// RecognizedAttributes lists the attribute names this element reads.
	RecognizedAttributes() []string
	// RecognizedChildren lists the child local names this element parses.
	RecognizedChildren() []string

	base() *ElementBase
}

// Referenceable is an element that can be the target of a Binding: it
// carries a symbolic name other elements refer to it by.
type Referenceable interface {
	Element

	// SymbolicName returns the name the element is looked up by.
	SymbolicName() string
}

// Elements yields root and every descendant element in pre-order, visiting
// each element's declared collections in declaration order.
func Elements(root Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		yieldElements(root, yield)
	}
}

func yieldElements(e Element, yield func(Element) bool) bool {
	if !yield(e) {
		return false
	}
	for child := range e.Children() {
		ce, ok := child.(Element)
		if !ok {
			continue
		}
		if !yieldElements(ce, yield) {
			return false
		}
	}
	return true
}
