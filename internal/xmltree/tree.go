// Package xmltree provides a small mutable tree of XML-like elements with
// ordered children and named attributes. It is the host representation the
// model layer mirrors; the model never owns tree nodes, it only observes
// them and is notified when a subtree changed.
package xmltree

import "strings"

// Attr is a named attribute on a node.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the tree. Children are ordered and attributes keep
// their document order. A node has at most one parent.
type Node struct {
	local    string
	text     string
	attrs    []Attr
	children []*Node
	parent   *Node
}

// NewElement creates a detached element with the given local name.
func NewElement(local string) *Node {
	return &Node{local: local}
}

// LocalName returns the element local name.
func (n *Node) LocalName() string {
	if n == nil {
		return ""
	}
	return n.local
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns a read-only view of the element children in document
// order. The returned slice aliases the node; do not modify it.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// ChildCount returns the number of element children.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Attributes returns a read-only view of the attributes in document order.
func (n *Node) Attributes() []Attr {
	if n == nil {
		return nil
	}
	return n.attrs
}

// Attribute returns the value of the named attribute and whether it is
// present.
func (n *Node) Attribute(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the named attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.Attribute(name)
	return ok
}

// SetAttribute sets or replaces the named attribute.
func (n *Node) SetAttribute(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// RemoveAttribute removes the named attribute and reports whether it was
// present.
func (n *Node) RemoveAttribute(name string) bool {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Text returns the direct text content of the element.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// SetText sets the direct text content of the element.
func (n *Node) SetText(text string) {
	n.text = text
}

// AppendChild appends child as the last child of n. A child already attached
// elsewhere is detached first.
func (n *Node) AppendChild(child *Node) {
	n.InsertChildAt(len(n.children), child)
}

// InsertChildAt inserts child at position i, shifting later siblings. An
// index past the end appends.
func (n *Node) InsertChildAt(i int, child *Node) {
	if child == nil {
		return
	}
	child.Detach()
	if i < 0 {
		i = 0
	}
	if i > len(n.children) {
		i = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	child.parent = n
}

// RemoveChild removes child from n and reports whether it was a child.
// The removed node keeps its own subtree and becomes detached.
func (n *Node) RemoveChild(child *Node) bool {
	if n == nil || child == nil || child.parent != n {
		return false
	}
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	if n == nil || n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// Path returns a slash-separated path of local names from the root to n,
// for diagnostics.
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.local)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}
