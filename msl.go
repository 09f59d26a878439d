// Package msl maintains a typed, mutable, in-memory model mirroring a
// mapping document and keeps cross-references between model elements
// consistent as the document is edited incrementally.
//
// Loading builds the element tree from the document tree (phase one), then
// Resolve re-binds every symbolic reference against an artifact set built
// from the fully parsed model (phase two). After an incremental edit,
// Reparse re-derives only the changed subtree and re-runs resolution.
package msl

import (
	"fmt"
	"io"
	"os"

	mslerrors "github.com/modeledge/msl/errors"
	"github.com/modeledge/msl/internal/check"
	"github.com/modeledge/msl/internal/edmx"
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

// Document wraps the model built over one mapping document.
type Document struct {
	tree *xmltree.Node
	root *edmx.Document
	ctx  *model.Context
	opts LoadOptions
}

// LoadOptions configures document loading.
type LoadOptions struct {
	structuralCheck bool
}

// NewLoadOptions returns a default, valid load options value.
func NewLoadOptions() LoadOptions {
	return LoadOptions{}
}

// WithStructuralCheck controls whether the structural self-check pass runs
// after each parse and resolve, recording diagnostics for unrecognized
// attributes and child elements and for duplicate names.
func (o LoadOptions) WithStructuralCheck(value bool) LoadOptions {
	o.structuralCheck = value
	return o
}

// Load parses a mapping document and builds its model. References are not
// resolved yet; call Resolve once, after loading, for the resolution pass.
func Load(r io.Reader) (*Document, error) {
	return LoadWithOptions(r, LoadOptions{})
}

// LoadWithOptions parses a mapping document with explicit configuration.
func LoadWithOptions(r io.Reader, opts LoadOptions) (*Document, error) {
	tree, err := xmltree.Parse(r)
	if err != nil {
		return nil, mslerrors.New(mslerrors.CodeXMLParse, "", "load document: %v", err)
	}
	return FromTree(tree, opts), nil
}

// LoadFile parses a mapping document from a file path.
func LoadFile(path string) (*Document, error) {
	return LoadFileWithOptions(path, LoadOptions{})
}

// LoadFileWithOptions parses a mapping document from a file path with
// explicit configuration.
func LoadFileWithOptions(path string, opts LoadOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer f.Close()

	doc, err := LoadWithOptions(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", path, err)
	}
	return doc, nil
}

// FromTree builds the model over an already-parsed tree. The tree remains
// owned by the caller; the model mirrors it.
func FromTree(tree *xmltree.Node, opts LoadOptions) *Document {
	d := &Document{
		tree: tree,
		root: edmx.New(tree),
		ctx:  model.NewContext(),
		opts: opts,
	}
	model.Parse(d.ctx, d.root)
	return d
}

// Tree returns the underlying document tree.
func (d *Document) Tree() *xmltree.Node { return d.tree }

// Root returns the root model element.
func (d *Document) Root() *edmx.Document { return d.root }

// Resolve rebuilds the artifact set from the current model and re-runs the
// resolution pass over every element. It must be re-run after any
// structural change; outcomes are never cached across changes.
func (d *Document) Resolve() {
	set := model.CollectArtifacts(d.root)
	model.ResolveAll(d.ctx, d.root, set)
	if d.opts.structuralCheck {
		for _, diag := range check.Document(d.root) {
			d.ctx.Report(diag)
		}
	}
}

// Reparse re-derives the element whose subtree changed, leaving its
// siblings untouched, then re-runs resolution.
func (d *Document) Reparse(e model.Element) {
	model.Reparse(d.ctx, e)
	d.Resolve()
}

// NotifyDeleted tells the model that child's tree node was removed. The
// child is detached from the one collection owning it and resolution is
// re-run. A repeated notification is a no-op.
func (d *Document) NotifyDeleted(child model.Element) bool {
	parent := child.Parent()
	if parent == nil {
		return false
	}
	if !parent.OnChildDeleted(child) {
		return false
	}
	d.Resolve()
	return true
}

// ElementFor returns the model element mirroring the given tree node.
func (d *Document) ElementFor(n *xmltree.Node) (model.Element, bool) {
	for e := range model.Elements(d.root) {
		if e.XMLNode() == n {
			return e, true
		}
	}
	return nil, false
}

// ContainerMappings returns every container mapping in document order.
func (d *Document) ContainerMappings() []*ContainerMapping {
	return d.root.ContainerMappings()
}

// Resolved reports whether every element in the model reached the
// resolved state.
func (d *Document) Resolved() bool {
	for e := range model.Elements(d.root) {
		if e.State() != model.StateResolved {
			return false
		}
	}
	return true
}

// Diagnostics returns the diagnostics recorded so far.
func (d *Document) Diagnostics() []mslerrors.Diagnostic {
	return d.ctx.Diagnostics()
}

// ClearDiagnostics drops all recorded diagnostics, typically before a
// re-parse of an edited document.
func (d *Document) ClearDiagnostics() {
	d.ctx.Reset()
}
