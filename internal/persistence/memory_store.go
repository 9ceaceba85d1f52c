package persistence

import (
	"sort"
	"sync"

	"github.com/ozflow/ozflow/pkg/api"
)

// InMemoryStore is a simple, goroutine-safe DefinitionStore backed by a map.
// Definitions are copied on the way in and out so callers cannot mutate
// stored state.
type InMemoryStore struct {
	mu          sync.RWMutex
	definitions map[string]*api.Definition
}

// NewInMemoryStore creates a new InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		definitions: make(map[string]*api.Definition),
	}
}

// Ensure InMemoryStore implements the interface.
var _ DefinitionStore = (*InMemoryStore)(nil)

func (s *InMemoryStore) SaveDefinition(def *api.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.definitions[def.ID] = copyDefinition(def)
	return nil
}

func (s *InMemoryStore) GetDefinition(id string) (*api.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.definitions[id]
	if !ok {
		return nil, ErrDefinitionNotFound
	}

	return copyDefinition(def), nil
}

func (s *InMemoryStore) ListDefinitions(opts api.DefinitionListOptions) ([]*api.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*api.Definition
	for _, def := range s.definitions {
		if opts.WorkflowName != "" && def.WorkflowName != opts.WorkflowName {
			continue
		}
		result = append(result, copyDefinition(def))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	if opts.Limit > 0 && len(result) > opts.Limit {
		result = result[:opts.Limit]
	}
	return result, nil
}

func (s *InMemoryStore) DeleteDefinition(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.definitions[id]; !ok {
		return ErrDefinitionNotFound
	}
	delete(s.definitions, id)
	return nil
}

func copyDefinition(def *api.Definition) *api.Definition {
	out := *def
	out.Document = append([]byte(nil), def.Document...)
	return &out
}
