// Package mapping models the mapping side of the document: the Mappings
// section, its Mapping elements, and the container mapping tying a
// conceptual-side container to a storage-side container.
package mapping

import (
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

// Section is the Mappings wrapper element.
type Section struct {
	model.ElementBase
	mappings *model.Collection[*Mapping]
}

// NewSection creates the Mappings section element.
func NewSection(parent model.Element, n *xmltree.Node) *Section {
	s := &Section{}
	s.Init(s, parent, n)
	s.mappings = model.DeclareCollection(&s.ElementBase, "Mapping", func(n *xmltree.Node) *Mapping {
		return NewMapping(s, n)
	})
	return s
}

// Mappings returns the Mapping elements in document order.
func (s *Section) Mappings() []*Mapping { return s.mappings.Items() }

// Mapping is one mapping declaration between two spaces.
type Mapping struct {
	model.ElementBase
	containerMappings *model.Collection[*ContainerMapping]
	space             *model.Defaultable[string]
}

// NewMapping creates a Mapping element.
func NewMapping(parent model.Element, n *xmltree.Node) *Mapping {
	m := &Mapping{}
	m.Init(m, parent, n)
	m.containerMappings = model.DeclareCollection(&m.ElementBase, "EntityContainerMapping", func(n *xmltree.Node) *ContainerMapping {
		return NewContainerMapping(m, n)
	})
	m.space = model.DeclareString(&m.ElementBase, "Space", "C-S")
	return m
}

// Space returns the declared mapping space, defaulting to "C-S".
func (m *Mapping) Space() string { return m.space.Value() }

// ContainerMappings returns the container mappings in document order.
func (m *Mapping) ContainerMappings() []*ContainerMapping {
	return m.containerMappings.Items()
}
