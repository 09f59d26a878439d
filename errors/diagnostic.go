// Package errors defines the diagnostic values the model records while
// parsing and resolving a mapping document. Diagnostics are recoverable by
// design: they are collected on the model and surfaced to callers, never
// thrown across the parse/resolve boundary.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a diagnostic condition.
type Code string

const (
	// CodeXMLParse indicates the document could not be parsed at all.
	CodeXMLParse Code = "msl-xml-parse"
	// CodeMalformedAttribute indicates an attribute value failed to parse
	// for its declared type; the declared default applies.
	CodeMalformedAttribute Code = "msl-malformed-attribute"
	// CodeUnresolvedReference indicates a symbolic reference that matched
	// no element in the artifact set.
	CodeUnresolvedReference Code = "msl-unresolved-reference"
	// CodeAmbiguousReference indicates a symbolic reference that matched
	// more than one element in the artifact set.
	CodeAmbiguousReference Code = "msl-ambiguous-reference"
	// CodeUnknownAttribute indicates an attribute the element does not
	// recognize (structural self-check only).
	CodeUnknownAttribute Code = "msl-unknown-attribute"
	// CodeUnknownElement indicates a child element the parent does not
	// recognize (structural self-check only).
	CodeUnknownElement Code = "msl-unknown-element"
	// CodeDuplicateName indicates two referenceable elements of the same
	// kind sharing a symbolic name.
	CodeDuplicateName Code = "msl-duplicate-name"
)

// Diagnostic describes one recoverable condition with a code and the tree
// path of the element it was recorded on.
type Diagnostic struct {
	Code    Code
	Message string
	Path    string
}

// Error formats the diagnostic for display.
func (d Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", d.Code, d.Message)
	if d.Path != "" {
		fmt.Fprintf(&b, " at %s", d.Path)
	}
	return b.String()
}

// New builds a Diagnostic with a code, path, and formatted message.
func New(code Code, path, format string, args ...any) Diagnostic {
	return Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Path: path}
}

// DiagnosticList is an error wrapping one or more diagnostics.
type DiagnosticList []Diagnostic

// Error returns a compact summary of the diagnostics.
func (l DiagnosticList) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// AsDiagnostics extracts diagnostics from an error produced by this package.
func AsDiagnostics(err error) ([]Diagnostic, bool) {
	if err == nil {
		return nil, false
	}
	var list DiagnosticList
	if errors.As(err, &list) {
		return []Diagnostic(list), true
	}
	var listPtr *DiagnosticList
	if errors.As(err, &listPtr) && listPtr != nil {
		return []Diagnostic(*listPtr), true
	}
	return nil, false
}
