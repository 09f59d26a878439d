package model

// State tracks the parse/resolve progression of a model element.
//
// Elements are created in StateNone, move through StateParsing to
// StateParsed once their own fields and children are rebuilt from the tree,
// and reach StateResolved only when every declared binding resolves. A
// detached element is StateDeleted; an element about to be re-parsed
// reverts to StateNone first.
type State int

const (
	// StateNone marks an element not yet derived from its tree node.
	StateNone State = iota
	// StateParsing marks an element currently re-deriving itself.
	StateParsing
	// StateParsed marks an element whose fields and children are current.
	StateParsed
	// StateResolved marks a parsed element whose bindings are all known.
	StateResolved
	// StateDeleted marks an element detached from the tree.
	StateDeleted
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateParsing:
		return "parsing"
	case StateParsed:
		return "parsed"
	case StateResolved:
		return "resolved"
	case StateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}
