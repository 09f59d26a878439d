package mapping

import (
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

// EntitySetMapping maps one conceptual entity set.
type EntitySetMapping struct {
	model.ElementBase
	name *model.Defaultable[string]
}

// NewEntitySetMapping creates an entity-set mapping element.
func NewEntitySetMapping(parent model.Element, n *xmltree.Node) *EntitySetMapping {
	m := &EntitySetMapping{}
	m.Init(m, parent, n)
	m.name = model.DeclareString(&m.ElementBase, "Name", "")
	return m
}

// Name returns the mapped entity set name, empty when absent.
func (m *EntitySetMapping) Name() string { return m.name.Value() }

// AssociationSetMapping maps one association set onto a store entity set.
type AssociationSetMapping struct {
	model.ElementBase
	name           *model.Defaultable[string]
	typeName       *model.Defaultable[string]
	storeEntitySet *model.Defaultable[string]
}

// NewAssociationSetMapping creates an association-set mapping element.
func NewAssociationSetMapping(parent model.Element, n *xmltree.Node) *AssociationSetMapping {
	m := &AssociationSetMapping{}
	m.Init(m, parent, n)
	m.name = model.DeclareString(&m.ElementBase, "Name", "")
	m.typeName = model.DeclareString(&m.ElementBase, "TypeName", "")
	m.storeEntitySet = model.DeclareString(&m.ElementBase, "StoreEntitySet", "")
	return m
}

// Name returns the mapped association set name, empty when absent.
func (m *AssociationSetMapping) Name() string { return m.name.Value() }

// TypeName returns the association type name, empty when absent.
func (m *AssociationSetMapping) TypeName() string { return m.typeName.Value() }

// StoreEntitySet returns the backing store entity set name, empty when
// absent.
func (m *AssociationSetMapping) StoreEntitySet() string { return m.storeEntitySet.Value() }

// FunctionImportMapping maps a function import onto a store function.
type FunctionImportMapping struct {
	model.ElementBase
	functionImportName *model.Defaultable[string]
	functionName       *model.Defaultable[string]
}

// NewFunctionImportMapping creates a function-import mapping element.
func NewFunctionImportMapping(parent model.Element, n *xmltree.Node) *FunctionImportMapping {
	m := &FunctionImportMapping{}
	m.Init(m, parent, n)
	m.functionImportName = model.DeclareString(&m.ElementBase, "FunctionImportName", "")
	m.functionName = model.DeclareString(&m.ElementBase, "FunctionName", "")
	return m
}

// FunctionImportName returns the conceptual function import name.
func (m *FunctionImportMapping) FunctionImportName() string {
	return m.functionImportName.Value()
}

// FunctionName returns the store function name.
func (m *FunctionImportMapping) FunctionName() string {
	return m.functionName.Value()
}
