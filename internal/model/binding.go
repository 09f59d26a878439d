package model

// BindingStatus is the outcome of attempting to resolve a binding.
type BindingStatus int

const (
	// BindingUnknown means resolution has not been attempted, or the
	// underlying attribute changed since the last attempt.
	BindingUnknown BindingStatus = iota
	// BindingKnown means the reference resolved to exactly one element.
	BindingKnown
	// BindingUndefined means the name resolved to no element.
	BindingUndefined
	// BindingAmbiguous means the name resolved to more than one element.
	// Ambiguity is observable, never collapsed into undefined or silently
	// broken by picking a candidate.
	BindingAmbiguous
)

func (s BindingStatus) String() string {
	switch s {
	case BindingUnknown:
		return "unknown"
	case BindingKnown:
		return "known"
	case BindingUndefined:
		return "undefined"
	case BindingAmbiguous:
		return "ambiguous"
	default:
		return "invalid"
	}
}

// rebinder is the untyped view of a binding the resolve machinery uses.
type rebinder interface {
	wrapper
	Rebind(set *ArtifactSet) BindingStatus
	Status() BindingStatus
	RefName() string
}

// Binding is a named, typed, lazily resolved pointer from its owning
// element to another element. It never owns its target: the target may be
// deleted independently, after which re-resolution reports undefined
// instead of dangling.
type Binding[T Referenceable] struct {
	owner  *ElementBase
	attr   string
	state  BindingStatus
	bound  string
	target T
}

// DeclareBinding registers a binding on b backed by the named attribute.
// Resolution is not attempted at construction.
func DeclareBinding[T Referenceable](b *ElementBase, attr string) *Binding[T] {
	bd := &Binding[T]{owner: b, attr: attr}
	b.wrappers = append(b.wrappers, bd)
	b.bindings = append(b.bindings, bd)
	b.attrs = append(b.attrs, attr)
	return bd
}

func (b *Binding[T]) sealed() {}

// Parent returns the owning element.
func (b *Binding[T]) Parent() Element { return b.owner.self }

// AttrName returns the attribute holding the symbolic target name.
func (b *Binding[T]) AttrName() string { return b.attr }

// RefName returns the symbolic name as currently present in the tree,
// independent of resolution outcome.
func (b *Binding[T]) RefName() string {
	v, _ := b.owner.node.Attribute(b.attr)
	return v
}

// Status returns the resolution status. A cached resolution whose ref name
// no longer matches the tree, or whose target has since been renamed,
// degrades to unknown, so the outcome is never silently stale.
func (b *Binding[T]) Status() BindingStatus {
	if b.state == BindingUnknown {
		return b.state
	}
	if b.bound != b.RefName() {
		return BindingUnknown
	}
	if b.state == BindingKnown && b.target.SymbolicName() != b.bound {
		return BindingUnknown
	}
	return b.state
}

// Target returns the resolved element when the status is known.
func (b *Binding[T]) Target() (T, bool) {
	var zero T
	if b.Status() != BindingKnown {
		return zero, false
	}
	return b.target, true
}

// Rebind looks up the current ref name in set, scoped to the binding's
// target type, and records the outcome: known for exactly one candidate,
// undefined for none (or an absent name), ambiguous for several.
func (b *Binding[T]) Rebind(set *ArtifactSet) BindingStatus {
	var zero T
	b.target = zero
	b.bound = b.RefName()

	if b.bound == "" {
		b.state = BindingUndefined
		return b.state
	}
	candidates := Lookup[T](set, b.bound)
	switch len(candidates) {
	case 0:
		b.state = BindingUndefined
	case 1:
		b.state = BindingKnown
		b.target = candidates[0]
	default:
		b.state = BindingAmbiguous
	}
	return b.state
}

func (b *Binding[T]) reset() {
	var zero T
	b.target = zero
	b.bound = ""
	b.state = BindingUnknown
}

func (b *Binding[T]) check(ctx *Context) {
	// Nothing to validate at parse time: resolution outcomes are recorded
	// by the resolve pass.
}
