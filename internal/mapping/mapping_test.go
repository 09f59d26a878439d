package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modeledge/msl/internal/edm"
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

func parseContainerMapping(t *testing.T, doc string) (*model.Context, *ContainerMapping) {
	t.Helper()
	n, err := xmltree.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	ctx := model.NewContext()
	m := NewContainerMapping(nil, n)
	model.Parse(ctx, m)
	return ctx, m
}

func newConceptualContainer(t *testing.T, name string) *edm.EntityContainer {
	t.Helper()
	n := xmltree.NewElement("EntityContainer")
	n.SetAttribute("Name", name)
	c := edm.NewEntityContainer(nil, n)
	model.Parse(model.NewContext(), c)
	return c
}

func newStorageContainer(t *testing.T, name string) *edm.StorageContainer {
	t.Helper()
	n := xmltree.NewElement("EntityContainer")
	n.SetAttribute("Name", name)
	c := edm.NewStorageContainer(nil, n)
	model.Parse(model.NewContext(), c)
	return c
}

const containerMappingDoc = `<EntityContainerMapping CdmEntityContainer="C1" StorageEntityContainer="S1">
  <EntitySetMapping Name="Products"/>
  <AssociationSetMapping Name="ProductOrders" TypeName="Shop.ProductOrder" StoreEntitySet="ProductOrders"/>
  <EntitySetMapping Name="Orders"/>
  <FunctionImportMapping FunctionImportName="TopSellers" FunctionName="Shop.Store.GetTopSellers"/>
</EntityContainerMapping>`

func TestContainerMappingParse(t *testing.T) {
	_, m := parseContainerMapping(t, containerMappingDoc)

	require.Len(t, m.EntitySetMappings(), 2)
	assert.Equal(t, "Products", m.EntitySetMappings()[0].Name())
	assert.Equal(t, "Orders", m.EntitySetMappings()[1].Name())

	require.Len(t, m.AssociationSetMappings(), 1)
	asm := m.AssociationSetMappings()[0]
	assert.Equal(t, "ProductOrders", asm.Name())
	assert.Equal(t, "Shop.ProductOrder", asm.TypeName())
	assert.Equal(t, "ProductOrders", asm.StoreEntitySet())

	require.Len(t, m.FunctionImportMappings(), 1)
	fim := m.FunctionImportMappings()[0]
	assert.Equal(t, "TopSellers", fim.FunctionImportName())
	assert.Equal(t, "Shop.Store.GetTopSellers", fim.FunctionName())

	assert.True(t, m.GenerateUpdateViews().Value(), "default applies when absent")
	assert.False(t, m.GenerateUpdateViews().IsExplicit())
}

func TestContainerMappingResolvedOnlyWithBothSides(t *testing.T) {
	_, m := parseContainerMapping(t, containerMappingDoc)

	// Only the conceptual side is known: the mapping stays parsed.
	oneSided := model.NewArtifactSet()
	oneSided.Add(newConceptualContainer(t, "C1"))
	m.DoResolve(oneSided)
	assert.Equal(t, model.StateParsed, m.State())
	assert.Equal(t, model.BindingKnown, m.CdmEntityContainer().Status())
	assert.Equal(t, model.BindingUndefined, m.StorageEntityContainer().Status())

	// Both sides known: resolved.
	both := model.NewArtifactSet()
	both.Add(newConceptualContainer(t, "C1"))
	both.Add(newStorageContainer(t, "S1"))
	m.DoResolve(both)
	assert.Equal(t, model.StateResolved, m.State())
}

func TestContainerMappingDemotedByNameChange(t *testing.T) {
	_, m := parseContainerMapping(t, containerMappingDoc)
	set := model.NewArtifactSet()
	set.Add(newConceptualContainer(t, "C1"))
	set.Add(newStorageContainer(t, "S1"))

	m.DoResolve(set)
	require.Equal(t, model.StateResolved, m.State())

	m.XMLNode().SetAttribute("StorageEntityContainer", "S2")
	assert.Equal(t, model.BindingUnknown, m.StorageEntityContainer().Status())
	m.DoResolve(set)
	assert.Equal(t, model.StateParsed, m.State())
}

func TestContainerMappingExplicitGenerateUpdateViews(t *testing.T) {
	_, m := parseContainerMapping(t, `<EntityContainerMapping GenerateUpdateViews="false"/>`)

	assert.False(t, m.GenerateUpdateViews().Value())
	assert.True(t, m.GenerateUpdateViews().IsExplicit())
}

func TestDisplayName(t *testing.T) {
	_, m := parseContainerMapping(t, containerMappingDoc)

	assert.Equal(t, "C1 <=> S1", m.DisplayName(nil, false))
	assert.Equal(t, "Mapping between C1 and S1", m.DisplayName(nil, true))

	custom := func(a, b string, localize bool) string { return a + "/" + b }
	assert.Equal(t, "C1/S1", m.DisplayName(custom, false))
}

func TestMappingSectionParse(t *testing.T) {
	n, err := xmltree.Parse(strings.NewReader(`<Mappings>
  <Mapping Space="C-S">
    <EntityContainerMapping CdmEntityContainer="C1" StorageEntityContainer="S1"/>
  </Mapping>
</Mappings>`))
	require.NoError(t, err)

	s := NewSection(nil, n)
	model.Parse(model.NewContext(), s)

	require.Len(t, s.Mappings(), 1)
	assert.Equal(t, "C-S", s.Mappings()[0].Space())
	assert.Len(t, s.Mappings()[0].ContainerMappings(), 1)
}
