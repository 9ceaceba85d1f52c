// Package registry implements the definition registry on top of a
// DefinitionStore and the translation pipeline.
package registry

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ozflow/ozflow/internal/mapping"
	"github.com/ozflow/ozflow/internal/persistence"
	"github.com/ozflow/ozflow/pkg/api"
	"github.com/ozflow/ozflow/pkg/serialization"
)

// Registry translates workflows and persists the rendered definitions. The
// translator is passed in explicitly; the registry has no ambient state
// beyond its store.
type Registry struct {
	store      persistence.DefinitionStore
	translator *mapping.Translator
	logger     *slog.Logger
}

// Ensure Registry implements the api interface.
var _ api.Registry = (*Registry)(nil)

// New creates a Registry over the given store and translator.
func New(store persistence.DefinitionStore, translator *mapping.Translator) *Registry {
	return NewWithLogger(store, translator, nil)
}

// NewWithLogger creates a Registry that logs through the given logger.
// A nil logger discards all output.
func NewWithLogger(store persistence.DefinitionStore, translator *mapping.Translator, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		store:      store,
		translator: translator,
		logger:     logger,
	}
}

func (r *Registry) Register(wf *api.Workflow) (*api.Definition, error) {
	graph, err := r.translator.Translate(wf)
	if err != nil {
		return nil, err
	}

	document, err := serialization.Render(graph)
	if err != nil {
		return nil, err
	}

	def := &api.Definition{
		ID:           uuid.NewString(),
		WorkflowName: wf.Name(),
		Document:     document,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.store.SaveDefinition(def); err != nil {
		return nil, err
	}

	r.logger.Info("registered workflow definition",
		"id", def.ID, "workflow", def.WorkflowName, "bytes", len(def.Document))
	return def, nil
}

func (r *Registry) GetDefinition(id string) (*api.Definition, error) {
	return r.store.GetDefinition(id)
}

func (r *Registry) ListDefinitions(opts api.DefinitionListOptions) ([]*api.Definition, error) {
	return r.store.ListDefinitions(opts)
}

func (r *Registry) DeleteDefinition(id string) error {
	if err := r.store.DeleteDefinition(id); err != nil {
		return err
	}
	r.logger.Info("deleted workflow definition", "id", id)
	return nil
}
