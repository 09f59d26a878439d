package edm

import (
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

// Schema is a namespace of declarations on one side of the mapping. A
// conceptual schema owns entity containers, a storage schema owns storage
// containers; the side is fixed at construction.
type Schema struct {
	model.ElementBase
	space             Space
	namespace         *model.Defaultable[string]
	containers        *model.Collection[*EntityContainer]
	storageContainers *model.Collection[*StorageContainer]
}

// NewSchema creates a schema element for the given side.
func NewSchema(parent model.Element, n *xmltree.Node, space Space) *Schema {
	s := &Schema{space: space}
	s.Init(s, parent, n)
	s.namespace = model.DeclareString(&s.ElementBase, "Namespace", "")
	if space == SpaceConceptual {
		s.containers = model.DeclareCollection(&s.ElementBase, "EntityContainer", func(n *xmltree.Node) *EntityContainer {
			return NewEntityContainer(s, n)
		})
	} else {
		s.storageContainers = model.DeclareCollection(&s.ElementBase, "EntityContainer", func(n *xmltree.Node) *StorageContainer {
			return NewStorageContainer(s, n)
		})
	}
	return s
}

// Space returns the side this schema describes.
func (s *Schema) Space() Space { return s.space }

// Namespace returns the declared namespace, empty when absent.
func (s *Schema) Namespace() string { return s.namespace.Value() }

// Containers returns the conceptual-side containers in document order; nil
// for a storage schema.
func (s *Schema) Containers() []*EntityContainer {
	if s.containers == nil {
		return nil
	}
	return s.containers.Items()
}

// StorageContainers returns the storage-side containers in document order;
// nil for a conceptual schema.
func (s *Schema) StorageContainers() []*StorageContainer {
	if s.storageContainers == nil {
		return nil
	}
	return s.storageContainers.Items()
}
