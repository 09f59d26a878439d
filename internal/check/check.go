// Package check implements the structural self-check pass: it compares the
// live tree against each element's recognized attribute and child names
// and flags duplicate symbolic names. The pass is diagnostic-only and
// opt-in; it never blocks parsing or resolution.
package check

import (
	"fmt"

	mslerrors "github.com/modeledge/msl/errors"
	"github.com/modeledge/msl/internal/model"
)

// Document validates the element tree under root against the live tree
// and returns the diagnostics found.
func Document(root model.Element) mslerrors.DiagnosticList {
	var diags mslerrors.DiagnosticList

	type nameKey struct {
		kind string
		name string
	}
	seen := make(map[nameKey][]model.Referenceable)
	var dupOrder []nameKey

	for e := range model.Elements(root) {
		n := e.XMLNode()

		recognized := toSet(e.RecognizedAttributes())
		for _, a := range n.Attributes() {
			if !recognized[a.Name] {
				diags = append(diags, mslerrors.New(mslerrors.CodeUnknownAttribute, n.Path(),
					"attribute %s is not recognized on %s", a.Name, n.LocalName()))
			}
		}

		children := toSet(e.RecognizedChildren())
		for _, ch := range n.Children() {
			if !children[ch.LocalName()] {
				diags = append(diags, mslerrors.New(mslerrors.CodeUnknownElement, n.Path(),
					"element %s is not recognized under %s", ch.LocalName(), n.LocalName()))
			}
		}

		if r, ok := e.(model.Referenceable); ok && r.SymbolicName() != "" {
			key := nameKey{kind: fmt.Sprintf("%T", r), name: r.SymbolicName()}
			if len(seen[key]) == 1 {
				dupOrder = append(dupOrder, key)
			}
			seen[key] = append(seen[key], r)
		}
	}

	for _, key := range dupOrder {
		first := seen[key][0]
		diags = append(diags, mslerrors.New(mslerrors.CodeDuplicateName, first.XMLNode().Path(),
			"%d elements share the name %q", len(seen[key]), key.name))
	}
	return diags
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
