package model

import (
	"strconv"

	mslerrors "github.com/modeledge/msl/errors"
)

// wrapper is the untyped view of a declared scalar or reference wrapper.
type wrapper interface {
	Object
	AttrName() string
	reset()
	check(ctx *Context)
}

// Defaultable is a typed view over a single attribute with a declared
// default when the attribute is absent. Values are read live from the
// tree, so an attribute edit is visible immediately.
type Defaultable[T any] struct {
	owner *ElementBase
	attr  string
	def   T
	parse func(string) (T, error)
}

// DeclareDefaultable registers a defaultable scalar on b backed by the
// named attribute, with the declared default and parse function.
func DeclareDefaultable[T any](b *ElementBase, attr string, def T, parse func(string) (T, error)) *Defaultable[T] {
	d := &Defaultable[T]{owner: b, attr: attr, def: def, parse: parse}
	b.wrappers = append(b.wrappers, d)
	b.attrs = append(b.attrs, attr)
	return d
}

// DeclareBool registers a boolean defaultable scalar.
func DeclareBool(b *ElementBase, attr string, def bool) *Defaultable[bool] {
	return DeclareDefaultable(b, attr, def, strconv.ParseBool)
}

// DeclareString registers a string defaultable scalar.
func DeclareString(b *ElementBase, attr, def string) *Defaultable[string] {
	return DeclareDefaultable(b, attr, def, func(s string) (string, error) { return s, nil })
}

func (d *Defaultable[T]) sealed() {}

// Parent returns the owning element.
func (d *Defaultable[T]) Parent() Element { return d.owner.self }

// AttrName returns the backing attribute name.
func (d *Defaultable[T]) AttrName() string { return d.attr }

// IsExplicit reports whether the attribute is present in the tree.
func (d *Defaultable[T]) IsExplicit() bool {
	return d.owner.node.HasAttribute(d.attr)
}

// Value returns the parsed attribute value when present and well-formed,
// and the declared default otherwise. A malformed value never fails hard;
// the parse pass records a diagnostic for it.
func (d *Defaultable[T]) Value() T {
	raw, ok := d.owner.node.Attribute(d.attr)
	if !ok {
		return d.def
	}
	v, err := d.parse(raw)
	if err != nil {
		return d.def
	}
	return v
}

// Default returns the declared default.
func (d *Defaultable[T]) Default() T { return d.def }

func (d *Defaultable[T]) reset() {
	// Values are read live from the tree; nothing is cached.
}

func (d *Defaultable[T]) check(ctx *Context) {
	raw, ok := d.owner.node.Attribute(d.attr)
	if !ok {
		return
	}
	if _, err := d.parse(raw); err != nil {
		ctx.Report(mslerrors.New(mslerrors.CodeMalformedAttribute, d.owner.node.Path(),
			"attribute %s: cannot parse %q: %v; default applies", d.attr, raw, err))
	}
}
