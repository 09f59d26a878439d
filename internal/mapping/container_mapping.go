package mapping

import (
	"github.com/modeledge/msl/internal/edm"
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

// ContainerMapping maps a conceptual-side entity container onto a
// storage-side one. It owns three ordered child collections (entity-set,
// association-set, and function-import mappings), two container bindings,
// and the GenerateUpdateViews flag.
type ContainerMapping struct {
	model.ElementBase

	entitySetMappings      *model.Collection[*EntitySetMapping]
	associationSetMappings *model.Collection[*AssociationSetMapping]
	functionImportMappings *model.Collection[*FunctionImportMapping]

	cdmContainer        *model.Binding[*edm.EntityContainer]
	storageContainer    *model.Binding[*edm.StorageContainer]
	generateUpdateViews *model.Defaultable[bool]
}

// NewContainerMapping creates a container mapping element.
func NewContainerMapping(parent model.Element, n *xmltree.Node) *ContainerMapping {
	m := &ContainerMapping{}
	m.Init(m, parent, n)
	m.entitySetMappings = model.DeclareCollection(&m.ElementBase, "EntitySetMapping", func(n *xmltree.Node) *EntitySetMapping {
		return NewEntitySetMapping(m, n)
	})
	m.associationSetMappings = model.DeclareCollection(&m.ElementBase, "AssociationSetMapping", func(n *xmltree.Node) *AssociationSetMapping {
		return NewAssociationSetMapping(m, n)
	})
	m.functionImportMappings = model.DeclareCollection(&m.ElementBase, "FunctionImportMapping", func(n *xmltree.Node) *FunctionImportMapping {
		return NewFunctionImportMapping(m, n)
	})
	m.cdmContainer = model.DeclareBinding[*edm.EntityContainer](&m.ElementBase, "CdmEntityContainer")
	m.storageContainer = model.DeclareBinding[*edm.StorageContainer](&m.ElementBase, "StorageEntityContainer")
	m.generateUpdateViews = model.DeclareBool(&m.ElementBase, "GenerateUpdateViews", true)
	return m
}

// EntitySetMappings returns the entity-set mappings in document order.
func (m *ContainerMapping) EntitySetMappings() []*EntitySetMapping {
	return m.entitySetMappings.Items()
}

// AssociationSetMappings returns the association-set mappings in document
// order.
func (m *ContainerMapping) AssociationSetMappings() []*AssociationSetMapping {
	return m.associationSetMappings.Items()
}

// FunctionImportMappings returns the function-import mappings in document
// order.
func (m *ContainerMapping) FunctionImportMappings() []*FunctionImportMapping {
	return m.functionImportMappings.Items()
}

// CdmEntityContainer returns the conceptual-side container reference.
func (m *ContainerMapping) CdmEntityContainer() *model.Binding[*edm.EntityContainer] {
	return m.cdmContainer
}

// StorageEntityContainer returns the storage-side container reference.
func (m *ContainerMapping) StorageEntityContainer() *model.Binding[*edm.StorageContainer] {
	return m.storageContainer
}

// GenerateUpdateViews returns the update-view generation flag, true when
// the attribute is absent.
func (m *ContainerMapping) GenerateUpdateViews() *model.Defaultable[bool] {
	return m.generateUpdateViews
}

// DoResolve re-binds the references and considers the mapping resolved
// only when both the conceptual-side and the storage-side container are
// known: a container mapping is meaningless with one dangling side.
func (m *ContainerMapping) DoResolve(set *model.ArtifactSet) {
	ok := m.ResolveBindings(set)
	m.SetResolved(ok &&
		m.cdmContainer.Status() == model.BindingKnown &&
		m.storageContainer.Status() == model.BindingKnown)
}

// DisplayName renders the mapping's display name from the two container
// ref names using f, falling back to DefaultFormatter when f is nil.
func (m *ContainerMapping) DisplayName(f Formatter, localize bool) string {
	if f == nil {
		f = DefaultFormatter
	}
	return f(m.cdmContainer.RefName(), m.storageContainer.RefName(), localize)
}
