package model

import (
	"fmt"
	"slices"

	mslerrors "github.com/modeledge/msl/errors"
)

// Context carries the diagnostics sink shared by the parse and resolve
// passes. The model is single-threaded: one pass runs to completion before
// the next begins.
type Context struct {
	diags mslerrors.DiagnosticList
}

// NewContext returns an empty context.
func NewContext() *Context { return &Context{} }

// Report records a diagnostic.
func (c *Context) Report(d mslerrors.Diagnostic) {
	c.diags = append(c.diags, d)
}

// Diagnostics returns the diagnostics recorded so far.
func (c *Context) Diagnostics() []mslerrors.Diagnostic {
	return slices.Clone(c.diags)
}

// Reset drops all recorded diagnostics.
func (c *Context) Reset() {
	c.diags = c.diags[:0]
}

// Parse derives e from its current tree node: derived state is fully
// cleared first, then every child node is dispatched through
// ParseSingleElement, then declared attributes are validated. Parsing an
// element that is already parsed without an intervening Reparse is a
// programming error and panics.
//
// Parse is phase one of the two-phase protocol; run ResolveAll once the
// whole document is parsed.
func Parse(ctx *Context, e Element) {
	b := e.base()
	if b.node == nil {
		panic(fmt.Sprintf("model: Parse: %T has no tree node", e))
	}
	e.PreParse()
	b.state = StateParsing
	for _, n := range b.node.Children() {
		e.ParseSingleElement(ctx, n)
	}
	for _, w := range b.wrappers {
		w.check(ctx)
	}
	b.state = StateParsed
}

// Reparse re-derives an element whose subtree changed, leaving siblings
// untouched. The caller re-runs a resolve pass afterwards, since the
// artifact set may have changed.
func Reparse(ctx *Context, e Element) {
	b := e.base()
	if b.state == StateParsed || b.state == StateResolved {
		b.state = StateNone
	}
	Parse(ctx, e)
}

// ResolveAll runs the resolve pass over the subtree rooted at root,
// recording a diagnostic for every reference that does not resolve to a
// known element.
func ResolveAll(ctx *Context, root Element, set *ArtifactSet) {
	for e := range Elements(root) {
		e.DoResolve(set)
		b := e.base()
		for _, bd := range b.bindings {
			switch bd.Status() {
			case BindingUndefined:
				ctx.Report(mslerrors.New(mslerrors.CodeUnresolvedReference, b.node.Path(),
					"%s=%q does not resolve", bd.AttrName(), bd.RefName()))
			case BindingAmbiguous:
				ctx.Report(mslerrors.New(mslerrors.CodeAmbiguousReference, b.node.Path(),
					"%s=%q matches more than one element", bd.AttrName(), bd.RefName()))
			}
		}
	}
}
