package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modeledge/msl/internal/xmltree"
)

func parseTree(t *testing.T, doc string) *xmltree.Node {
	t.Helper()
	n, err := xmltree.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

func parseRoot(t *testing.T, doc string) (*Context, *testRoot) {
	t.Helper()
	ctx := NewContext()
	root := newTestRoot(parseTree(t, doc))
	Parse(ctx, root)
	return ctx, root
}

const mappingDoc = `<Root>
  <Container Name="C1"/>
  <Store Name="S1"/>
  <Mapping Container="C1" Store="S1">
    <Item Name="A"/>
    <Link/>
    <Item Name="B"/>
  </Mapping>
</Root>`

func TestParseBuildsDeclaredCollections(t *testing.T) {
	_, root := parseRoot(t, mappingDoc)

	require.Len(t, root.mappings.Items(), 1)
	m := root.mappings.Items()[0]
	assert.Equal(t, StateParsed, m.State())

	require.Equal(t, 2, m.items.Len())
	assert.Equal(t, "A", m.items.Items()[0].name.Value())
	assert.Equal(t, "B", m.items.Items()[1].name.Value())
	assert.Equal(t, 1, m.links.Len())
}

func TestChildrenEnumerationOrder(t *testing.T) {
	_, root := parseRoot(t, mappingDoc)
	m := root.mappings.Items()[0]

	var got []string
	for child := range m.Children() {
		switch c := child.(type) {
		case *testItem:
			got = append(got, "item:"+c.name.Value())
		case *testLink:
			got = append(got, "link")
		case *Binding[*testContainer]:
			got = append(got, "binding:"+c.AttrName())
		case *Binding[*testStore]:
			got = append(got, "binding:"+c.AttrName())
		case *Defaultable[bool]:
			got = append(got, "scalar:"+c.AttrName())
		default:
			t.Fatalf("unexpected child %T", child)
		}
	}
	// Collections in declaration order (members in document order), then
	// the scalar/reference wrappers last, in declaration order.
	want := []string{"item:A", "item:B", "link", "binding:Container", "binding:Store", "scalar:Enabled"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Children() order mismatch (-want +got):\n%s", diff)
	}

	// Stable across repeated enumeration absent structural change.
	var again []string
	for child := range m.Children() {
		_ = child
		again = append(again, "x")
	}
	assert.Len(t, again, len(want))
}

func TestParseTwicePanicsWithoutReparse(t *testing.T) {
	ctx, root := parseRoot(t, mappingDoc)

	assert.PanicsWithValue(t,
		"model: PreParse on parsed element /Root",
		func() { Parse(ctx, root) },
	)
}

func TestReparseClearsPriorDerivation(t *testing.T) {
	ctx, root := parseRoot(t, mappingDoc)
	m := root.mappings.Items()[0]
	oldItems := m.items.Items()
	require.Len(t, oldItems, 2)

	// Drop one Item from the tree, then re-parse the mapping subtree only.
	node := m.XMLNode()
	node.RemoveChild(node.Children()[0])
	Reparse(ctx, m)

	assert.Equal(t, StateParsed, m.State())
	require.Equal(t, 1, m.items.Len())
	assert.Equal(t, "B", m.items.Items()[0].name.Value())
	// No leftover children from the prior derivation.
	for _, old := range oldItems {
		assert.Equal(t, StateDeleted, old.State())
		assert.NotContains(t, m.items.Items(), old)
	}
	// Siblings of the re-parsed subtree are untouched.
	assert.Equal(t, StateParsed, root.containers.Items()[0].State())
}

func TestPreParseIdempotentOnEmptyElement(t *testing.T) {
	root := newTestRoot(parseTree(t, `<Root/>`))

	root.PreParse()
	root.PreParse()
	assert.Equal(t, StateNone, root.State())
	assert.Equal(t, 0, root.mappings.Len())
}

func TestUnrecognizedChildRecorded(t *testing.T) {
	_, root := parseRoot(t, `<Root><Bogus/><Container Name="C1"/></Root>`)

	assert.Equal(t, []string{"Bogus"}, root.UnrecognizedChildren())
	assert.Equal(t, 1, root.containers.Len())
}

func TestOnChildDeletedRemovesFromExactlyOneCollection(t *testing.T) {
	_, root := parseRoot(t, mappingDoc)
	m := root.mappings.Items()[0]
	item := m.items.Items()[0]

	// The tree mutation happens first; the model is then notified.
	m.XMLNode().RemoveChild(item.XMLNode())
	require.True(t, m.OnChildDeleted(item))

	assert.Equal(t, 1, m.items.Len())
	assert.Equal(t, 1, m.links.Len(), "other collections untouched")
	assert.Equal(t, StateDeleted, item.State())

	// Second notification for the same child is a no-op.
	assert.False(t, m.OnChildDeleted(item))
	assert.Equal(t, 1, m.items.Len())
}

func TestOnChildDeletedForeignChildPanics(t *testing.T) {
	_, root := parseRoot(t, mappingDoc)
	m := root.mappings.Items()[0]
	container := root.containers.Items()[0]

	assert.Panics(t, func() { m.OnChildDeleted(container) })
}

func TestElementsWalkOrder(t *testing.T) {
	_, root := parseRoot(t, mappingDoc)

	var names []string
	for e := range Elements(root) {
		names = append(names, e.XMLNode().LocalName())
	}
	// Pre-order, each element's collections in declaration order: both
	// Items precede the Link even though the Link sits between them in
	// the document.
	want := []string{"Root", "Container", "Store", "Mapping", "Item", "Item", "Link"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("Elements() order mismatch (-want +got):\n%s", diff)
	}
}

func TestRecognizedNames(t *testing.T) {
	_, root := parseRoot(t, mappingDoc)
	m := root.mappings.Items()[0]

	assert.Equal(t, []string{"Item", "Link"}, m.RecognizedChildren())
	assert.Equal(t, []string{"Container", "Store", "Enabled"}, m.RecognizedAttributes())
}
