package msl

import (
	mslerrors "github.com/modeledge/msl/errors"
	"github.com/modeledge/msl/internal/edm"
	"github.com/modeledge/msl/internal/mapping"
	"github.com/modeledge/msl/internal/model"
)

// Element is a typed model node mirroring one node of the document tree.
type Element = model.Element

// Referenceable is an element addressable by symbolic name.
type Referenceable = model.Referenceable

// State is the parse/resolve lifecycle state of an element.
type State = model.State

const (
	StateNone     State = model.StateNone
	StateParsing  State = model.StateParsing
	StateParsed   State = model.StateParsed
	StateResolved State = model.StateResolved
	StateDeleted  State = model.StateDeleted
)

// BindingStatus is the outcome of resolving a reference.
type BindingStatus = model.BindingStatus

const (
	BindingUnknown   BindingStatus = model.BindingUnknown
	BindingKnown     BindingStatus = model.BindingKnown
	BindingUndefined BindingStatus = model.BindingUndefined
	BindingAmbiguous BindingStatus = model.BindingAmbiguous
)

// ContainerMapping maps a conceptual-side container onto a storage-side
// container.
type ContainerMapping = mapping.ContainerMapping

// EntitySetMapping maps one conceptual entity set.
type EntitySetMapping = mapping.EntitySetMapping

// AssociationSetMapping maps one association set.
type AssociationSetMapping = mapping.AssociationSetMapping

// FunctionImportMapping maps a function import onto a store function.
type FunctionImportMapping = mapping.FunctionImportMapping

// Formatter renders a container mapping display name.
type Formatter = mapping.Formatter

// EntityContainer is a conceptual-side container of entity sets.
type EntityContainer = edm.EntityContainer

// StorageContainer is a storage-side container of entity sets.
type StorageContainer = edm.StorageContainer

// Diagnostic describes one recoverable condition recorded on the model.
type Diagnostic = mslerrors.Diagnostic
