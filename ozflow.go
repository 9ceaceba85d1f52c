package ozflow

import (
	"database/sql"
	"log/slog"

	"github.com/ozflow/ozflow/internal/mapping"
	"github.com/ozflow/ozflow/internal/persistence"
	"github.com/ozflow/ozflow/internal/registry"
	"github.com/ozflow/ozflow/pkg/api"
	"github.com/ozflow/ozflow/pkg/schema"
	"github.com/ozflow/ozflow/pkg/serialization"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Action                = api.Action
	Node                  = api.Node
	ErrorHandler          = api.ErrorHandler
	Workflow              = api.Workflow
	WorkflowBuilder       = api.WorkflowBuilder
	ShellBuilder          = api.ShellBuilder
	HiveBuilder           = api.HiveBuilder
	SparkBuilder          = api.SparkBuilder
	PrepareBuilder        = api.PrepareBuilder
	LauncherBuilder       = api.LauncherBuilder
	Prepare               = api.Prepare
	Launcher              = api.Launcher
	LauncherOption        = api.LauncherOption
	ConfigProperty        = api.ConfigProperty
	Definition            = api.Definition
	DefinitionListOptions = api.DefinitionListOptions
	Registry              = api.Registry
)

// Re-export the fluent constructors and error helpers.

var (
	NewShell            = api.NewShell
	NewHive             = api.NewHive
	NewSpark            = api.NewSpark
	NewPrepare          = api.NewPrepare
	NewLauncher         = api.NewLauncher
	NewWorkflow         = api.NewWorkflow
	BuildAsErrorHandler = api.BuildAsErrorHandler

	IsValidationError = api.IsValidationError
	IsStateError      = api.IsStateError
	IsMappingError    = api.IsMappingError
)

// ErrDefinitionNotFound is returned by registries when a definition ID does
// not exist.
var ErrDefinitionNotFound = persistence.ErrDefinitionNotFound

// Translate converts a built workflow into the target-schema element graph:
// one element per node, ok-transitions copied from the dependency edges,
// error handlers and the shared kill node wired in.
func Translate(wf *Workflow) (*schema.Graph, error) {
	return mapping.NewTranslator(mapping.NewMapper()).Translate(wf)
}

// Render translates the workflow and serializes it as the final workflow
// document.
func Render(wf *Workflow) ([]byte, error) {
	graph, err := Translate(wf)
	if err != nil {
		return nil, err
	}
	return serialization.Render(graph)
}

// Registry constructors
// These wrap the internal packages so external callers never need to
// import them.

// NewInMemoryRegistry returns a Registry backed entirely by an in-memory
// store. Best for tests and short-lived tooling.
func NewInMemoryRegistry() Registry {
	return registry.New(persistence.NewInMemoryStore(), defaultTranslator())
}

// NewInMemoryRegistryWithLogger returns an in-memory Registry that logs
// through the given slog logger.
func NewInMemoryRegistryWithLogger(logger *slog.Logger) Registry {
	return registry.NewWithLogger(persistence.NewInMemoryStore(), defaultTranslator(), logger)
}

// NewSQLiteRegistry returns a Registry that persists rendered definitions
// in a SQLite database.
func NewSQLiteRegistry(db *sql.DB) (Registry, error) {
	store, err := persistence.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}
	return registry.New(store, defaultTranslator()), nil
}

// NewSQLiteRegistryWithLogger returns a SQLite-backed Registry that logs
// through the given slog logger.
func NewSQLiteRegistryWithLogger(db *sql.DB, logger *slog.Logger) (Registry, error) {
	store, err := persistence.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}
	return registry.NewWithLogger(store, defaultTranslator(), logger), nil
}

func defaultTranslator() *mapping.Translator {
	return mapping.NewTranslator(mapping.NewMapper())
}
