// Package api contains the core building blocks of the ozflow workflow
// definition library: action payloads and their fluent builders, the
// immutable dependency-graph nodes they freeze into, error handlers, and
// the workflow aggregate handed to translation.
//
// Most users interact with the higher-level ozflow package, which
// re-exports selected types and helpers from this package. The api package
// is intended for advanced use cases or contributors extending the library
// itself.
//
// # Nodes and builders
//
// A Node is one vertex of the dependency graph: a unique name, the action
// payload it owns, and its parent/child edges. Nodes are created through a
// two-phase protocol: a fluent builder stages configuration where partial
// or invalid states are allowed, then Build performs one atomic
// validate-and-freeze transition. Because Build links the new node to its
// parents only after validation passes, downstream code can trust every
// Node it sees without re-checking invariants. Builders are consumed by
// Build and cannot be reused.
//
// Builder misuse (adding a parent after Build, passing a nil parent) is
// recorded and surfaced by Build rather than panicking mid-chain, keeping
// the fluent call style intact while still failing loudly.
//
// # Error handlers
//
// BuildAsErrorHandler wraps an isolated node as the failure-path target for
// another node. The wrapped node must have no parents and no children;
// violating that is a state error detected before any edge is committed.
//
// # Workflows
//
// A WorkflowBuilder freezes everything reachable from its seed nodes into a
// Workflow: a deterministically ordered, duplicate-free node list plus the
// set of roots. The order is a stable topological sort, so identical graphs
// always translate to identical output.
//
// # Errors
//
// Three error families cover every failure: validation errors (bad action
// configuration at Build), state errors (violated structural invariants),
// and mapping errors (failed field copies during translation). Each has a
// NewXxxError constructor and an IsXxxError classifier.
package api
