package edm

import (
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

// EntityContainer is a conceptual-side container of entity sets,
// referenceable by name from a container mapping.
type EntityContainer struct {
	model.ElementBase
	name       *model.Defaultable[string]
	entitySets *model.Collection[*EntitySet]
}

// NewEntityContainer creates a conceptual-side container element.
func NewEntityContainer(parent model.Element, n *xmltree.Node) *EntityContainer {
	c := &EntityContainer{}
	c.Init(c, parent, n)
	c.name = model.DeclareString(&c.ElementBase, "Name", "")
	c.entitySets = model.DeclareCollection(&c.ElementBase, "EntitySet", func(n *xmltree.Node) *EntitySet {
		return NewEntitySet(c, n)
	})
	return c
}

// SymbolicName returns the container name mappings refer to it by.
func (c *EntityContainer) SymbolicName() string { return c.name.Value() }

// EntitySets returns the declared entity sets in document order.
func (c *EntityContainer) EntitySets() []*EntitySet { return c.entitySets.Items() }

// StorageContainer is a storage-side container of entity sets. It is a
// distinct type from EntityContainer so reference resolution is scoped to
// the correct side: a conceptual-side binding never matches a storage
// container sharing the name.
type StorageContainer struct {
	model.ElementBase
	name       *model.Defaultable[string]
	entitySets *model.Collection[*EntitySet]
}

// NewStorageContainer creates a storage-side container element.
func NewStorageContainer(parent model.Element, n *xmltree.Node) *StorageContainer {
	c := &StorageContainer{}
	c.Init(c, parent, n)
	c.name = model.DeclareString(&c.ElementBase, "Name", "")
	c.entitySets = model.DeclareCollection(&c.ElementBase, "EntitySet", func(n *xmltree.Node) *EntitySet {
		return NewEntitySet(c, n)
	})
	return c
}

// SymbolicName returns the container name mappings refer to it by.
func (c *StorageContainer) SymbolicName() string { return c.name.Value() }

// EntitySets returns the declared entity sets in document order.
func (c *StorageContainer) EntitySets() []*EntitySet { return c.entitySets.Items() }

// EntitySet is one named set declared inside a container.
type EntitySet struct {
	model.ElementBase
	name       *model.Defaultable[string]
	entityType *model.Defaultable[string]
}

// NewEntitySet creates an entity set element.
func NewEntitySet(parent model.Element, n *xmltree.Node) *EntitySet {
	s := &EntitySet{}
	s.Init(s, parent, n)
	s.name = model.DeclareString(&s.ElementBase, "Name", "")
	s.entityType = model.DeclareString(&s.ElementBase, "EntityType", "")
	return s
}

// Name returns the set name, empty when absent.
func (s *EntitySet) Name() string { return s.name.Value() }

// EntityType returns the declared entity type name, empty when absent.
func (s *EntitySet) EntityType() string { return s.entityType.Value() }
