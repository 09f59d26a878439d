package model

import "github.com/modeledge/msl/internal/xmltree"

// Fixture element types exercising the framework the way concrete packages
// use it: a referenceable container on each side, and a mapping element
// with two ordered collections, two bindings, and a defaultable flag.

type testContainer struct {
	ElementBase
	name *Defaultable[string]
}

func newTestContainer(parent Element, n *xmltree.Node) *testContainer {
	c := &testContainer{}
	c.Init(c, parent, n)
	c.name = DeclareString(&c.ElementBase, "Name", "")
	return c
}

func (c *testContainer) SymbolicName() string { return c.name.Value() }

type testStore struct {
	ElementBase
	name *Defaultable[string]
}

func newTestStore(parent Element, n *xmltree.Node) *testStore {
	s := &testStore{}
	s.Init(s, parent, n)
	s.name = DeclareString(&s.ElementBase, "Name", "")
	return s
}

func (s *testStore) SymbolicName() string { return s.name.Value() }

type testItem struct {
	ElementBase
	name *Defaultable[string]
}

func newTestItem(parent Element, n *xmltree.Node) *testItem {
	i := &testItem{}
	i.Init(i, parent, n)
	i.name = DeclareString(&i.ElementBase, "Name", "")
	return i
}

type testLink struct {
	ElementBase
}

func newTestLink(parent Element, n *xmltree.Node) *testLink {
	l := &testLink{}
	l.Init(l, parent, n)
	return l
}

type testMapping struct {
	ElementBase
	items *Collection[*testItem]
	links *Collection[*testLink]
	ref   *Binding[*testContainer]
	store *Binding[*testStore]
	flag  *Defaultable[bool]
}

func newTestMapping(parent Element, n *xmltree.Node) *testMapping {
	m := &testMapping{}
	m.Init(m, parent, n)
	m.items = DeclareCollection(&m.ElementBase, "Item", func(n *xmltree.Node) *testItem {
		return newTestItem(m, n)
	})
	m.links = DeclareCollection(&m.ElementBase, "Link", func(n *xmltree.Node) *testLink {
		return newTestLink(m, n)
	})
	m.ref = DeclareBinding[*testContainer](&m.ElementBase, "Container")
	m.store = DeclareBinding[*testStore](&m.ElementBase, "Store")
	m.flag = DeclareBool(&m.ElementBase, "Enabled", true)
	return m
}

// testRoot owns containers, stores, and mappings, mimicking a document
// root that populates the artifact set and carries the mapping elements.
type testRoot struct {
	ElementBase
	containers *Collection[*testContainer]
	stores     *Collection[*testStore]
	mappings   *Collection[*testMapping]
}

func newTestRoot(n *xmltree.Node) *testRoot {
	r := &testRoot{}
	r.Init(r, nil, n)
	r.containers = DeclareCollection(&r.ElementBase, "Container", func(n *xmltree.Node) *testContainer {
		return newTestContainer(r, n)
	})
	r.stores = DeclareCollection(&r.ElementBase, "Store", func(n *xmltree.Node) *testStore {
		return newTestStore(r, n)
	})
	r.mappings = DeclareCollection(&r.ElementBase, "Mapping", func(n *xmltree.Node) *testMapping {
		return newTestMapping(r, n)
	})
	return r
}
