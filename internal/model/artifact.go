package model

import "strings"

// ArtifactSet indexes every referenceable element currently known to the
// model by symbolic name. A resolve pass consults it read-only; it must be
// rebuilt after any structural change rather than cached across changes.
type ArtifactSet struct {
	byName map[string][]Referenceable
}

// NewArtifactSet returns an empty artifact set.
func NewArtifactSet() *ArtifactSet {
	return &ArtifactSet{byName: make(map[string][]Referenceable)}
}

// Add registers r under its symbolic name. Elements with an empty name are
// not indexed.
func (s *ArtifactSet) Add(r Referenceable) {
	name := strings.TrimSpace(r.SymbolicName())
	if name == "" {
		return
	}
	s.byName[name] = append(s.byName[name], r)
}

// Remove deregisters r and reports whether it was present.
func (s *ArtifactSet) Remove(r Referenceable) bool {
	name := strings.TrimSpace(r.SymbolicName())
	list := s.byName[name]
	for i, cand := range list {
		if cand == r {
			s.byName[name] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of indexed elements.
func (s *ArtifactSet) Len() int {
	n := 0
	for _, list := range s.byName {
		n += len(list)
	}
	return n
}

// Lookup returns every element registered under name whose concrete type
// satisfies T, in registration order.
func Lookup[T Referenceable](s *ArtifactSet, name string) []T {
	var out []T
	for _, cand := range s.byName[strings.TrimSpace(name)] {
		if t, ok := cand.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// CollectArtifacts walks the element tree under root and indexes every
// referenceable element.
func CollectArtifacts(root Element) *ArtifactSet {
	set := NewArtifactSet()
	for e := range Elements(root) {
		if r, ok := e.(Referenceable); ok {
			set.Add(r)
		}
	}
	return set
}
