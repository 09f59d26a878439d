// Package edm models the conceptual-side and storage-side declarations of
// a mapping document: schemas and the entity containers a container
// mapping refers to. These elements populate the artifact set consulted
// during resolution.
package edm

import (
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

// Space identifies which side of the mapping a declaration describes.
type Space int

const (
	// SpaceConceptual marks conceptual-side (CDM) declarations.
	SpaceConceptual Space = iota
	// SpaceStorage marks storage-side declarations.
	SpaceStorage
)

func (s Space) String() string {
	switch s {
	case SpaceConceptual:
		return "conceptual"
	case SpaceStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Section is the ConceptualModels or StorageModels wrapper element. It owns
// the schemas declared on its side.
type Section struct {
	model.ElementBase
	space   Space
	schemas *model.Collection[*Schema]
}

// NewConceptualSection creates the conceptual-side section element.
func NewConceptualSection(parent model.Element, n *xmltree.Node) *Section {
	return newSection(parent, n, SpaceConceptual)
}

// NewStorageSection creates the storage-side section element.
func NewStorageSection(parent model.Element, n *xmltree.Node) *Section {
	return newSection(parent, n, SpaceStorage)
}

func newSection(parent model.Element, n *xmltree.Node, space Space) *Section {
	s := &Section{space: space}
	s.Init(s, parent, n)
	s.schemas = model.DeclareCollection(&s.ElementBase, "Schema", func(n *xmltree.Node) *Schema {
		return NewSchema(s, n, space)
	})
	return s
}

// Space returns the side this section describes.
func (s *Section) Space() Space { return s.space }

// Schemas returns the schemas in document order.
func (s *Section) Schemas() []*Schema { return s.schemas.Items() }
