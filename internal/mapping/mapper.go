// Package mapping translates a built workflow into the target-schema
// element graph: per-kind field copies for the action payloads and the
// graph assembly that wires ok/error transitions and the kill node.
package mapping

import (
	"github.com/ozflow/ozflow/pkg/api"
)

// MapFunc copies one action payload into its target-schema element. It must
// be read-only over the action and must not keep references into it.
type MapFunc func(api.Action) (any, error)

// Mapper holds the per-kind copy functions. Each kind's function copies
// fields explicitly, so a source field with no target counterpart fails at
// compile time rather than at translation time; the remaining runtime
// failures (unregistered kind, open-ended option kinds) surface as mapping
// errors naming the offender.
type Mapper struct {
	byKind map[string]MapFunc
}

// NewMapper returns a Mapper with the built-in action kinds registered.
func NewMapper() *Mapper {
	m := &Mapper{byKind: make(map[string]MapFunc)}
	m.Register("shell", mapShell)
	m.Register("hive", mapHive)
	m.Register("spark", mapSpark)
	return m
}

// Register adds or replaces the copy function for a kind.
func (m *Mapper) Register(kind string, fn MapFunc) {
	m.byKind[kind] = fn
}

// Map copies the action into a freshly populated target element. Mapping is
// idempotent: the same action always yields field-for-field identical
// output.
func (m *Mapper) Map(action api.Action) (any, error) {
	fn, ok := m.byKind[action.Kind()]
	if !ok {
		return nil, api.NewMappingError(action.Kind(), "")
	}
	return fn(action)
}
