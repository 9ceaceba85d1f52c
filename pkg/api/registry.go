package api

// Registry is the high-level entry point for producing and keeping workflow
// definitions: it translates a built workflow into the target document and
// persists the result.
type Registry interface {
	// Register translates and renders the workflow and stores the
	// resulting definition under a fresh ID.
	Register(wf *Workflow) (*Definition, error)

	// GetDefinition looks up a stored definition by ID.
	GetDefinition(id string) (*Definition, error)

	// ListDefinitions returns stored definitions matching the given
	// options, newest first.
	ListDefinitions(opts DefinitionListOptions) ([]*Definition, error)

	// DeleteDefinition removes a stored definition by ID.
	DeleteDefinition(id string) error
}
