// Package edmx holds the document root element tying the conceptual,
// storage, and mapping sections together.
package edmx

import (
	"github.com/modeledge/msl/internal/edm"
	"github.com/modeledge/msl/internal/mapping"
	"github.com/modeledge/msl/internal/model"
	"github.com/modeledge/msl/internal/xmltree"
)

// Document is the root model element.
type Document struct {
	model.ElementBase
	conceptual *model.Collection[*edm.Section]
	storage    *model.Collection[*edm.Section]
	mappings   *model.Collection[*mapping.Section]
}

// New creates the root element over the document's root tree node.
func New(n *xmltree.Node) *Document {
	d := &Document{}
	d.Init(d, nil, n)
	d.conceptual = model.DeclareCollection(&d.ElementBase, "ConceptualModels", func(n *xmltree.Node) *edm.Section {
		return edm.NewConceptualSection(d, n)
	})
	d.storage = model.DeclareCollection(&d.ElementBase, "StorageModels", func(n *xmltree.Node) *edm.Section {
		return edm.NewStorageSection(d, n)
	})
	d.mappings = model.DeclareCollection(&d.ElementBase, "Mappings", func(n *xmltree.Node) *mapping.Section {
		return mapping.NewSection(d, n)
	})
	return d
}

// ConceptualSections returns the ConceptualModels sections in document
// order.
func (d *Document) ConceptualSections() []*edm.Section { return d.conceptual.Items() }

// StorageSections returns the StorageModels sections in document order.
func (d *Document) StorageSections() []*edm.Section { return d.storage.Items() }

// MappingSections returns the Mappings sections in document order.
func (d *Document) MappingSections() []*mapping.Section { return d.mappings.Items() }

// ContainerMappings returns every container mapping in the document in
// document order.
func (d *Document) ContainerMappings() []*mapping.ContainerMapping {
	var out []*mapping.ContainerMapping
	for _, section := range d.mappings.Items() {
		for _, m := range section.Mappings() {
			out = append(out, m.ContainerMappings()...)
		}
	}
	return out
}
