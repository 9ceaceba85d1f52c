package api

import "time"

// Definition is a rendered workflow definition as persisted by a registry:
// the serialized document plus enough metadata to find it again.
type Definition struct {
	// ID uniquely identifies this stored definition.
	ID string

	// WorkflowName is the name of the workflow the document was rendered
	// from. Several definitions may share a name (re-registrations).
	WorkflowName string

	// Document is the serialized workflow definition handed to the
	// scheduler.
	Document []byte

	// CreatedAt records when the definition was stored.
	CreatedAt time.Time
}

// DefinitionListOptions filters ListDefinitions results. Zero-valued fields
// match everything.
type DefinitionListOptions struct {
	// WorkflowName, if non-empty, restricts results to definitions
	// rendered from the named workflow.
	WorkflowName string

	// Limit, if positive, caps the number of returned definitions.
	Limit int
}
