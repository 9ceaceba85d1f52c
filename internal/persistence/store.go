package persistence

import (
	"errors"

	"github.com/ozflow/ozflow/pkg/api"
)

// ErrDefinitionNotFound is returned when a stored definition is not found.
var ErrDefinitionNotFound = errors.New("definition not found")

// DefinitionStore handles storage of rendered workflow definitions.
type DefinitionStore interface {
	SaveDefinition(def *api.Definition) error
	GetDefinition(id string) (*api.Definition, error)
	// ListDefinitions returns definitions matching the options, newest
	// first, ties broken by ID so listing order is stable.
	ListDefinitions(opts api.DefinitionListOptions) ([]*api.Definition, error)
	DeleteDefinition(id string) error
}
