// Package ozflow builds validated workflow definitions for an external
// scheduler.
//
// Ozflow lets a program assemble a directed acyclic graph of named actions,
// enforces the structural invariants the target execution engine requires
// while the graph is being built, and translates the result into a
// serialized workflow document. It never executes anything itself: the
// output is a static artifact handed to the scheduler.
//
// # Core Concepts
//
// The programming model is intentionally small:
//
//  1. Action builders
//  2. Node
//  3. ErrorHandler
//  4. Workflow
//  5. Registry
//
// # Action builders
//
// Each action kind (shell, hive, spark) has a fluent builder that stages
// the action's configuration and its dependencies:
//
//	first, err := ozflow.NewShell("prepare-input").
//	    WithResourceManager("${resourceManager}").
//	    WithNameNode("${nameNode}").
//	    WithExec("prepare.sh").
//	    Build()
//
//	second, err := ozflow.NewHive("aggregate").
//	    WithParent(first).
//	    WithScript("/queries/aggregate.sql").
//	    Build()
//
// Build is the only way a node comes into existence. It validates the
// staged configuration first and links the new node to its parents only
// when validation passes, so an invalid graph can never be observed. A
// builder is consumed by Build and cannot be reused.
//
// # Node
//
// A Node is an immutable vertex: a unique name, the action payload it owns,
// and its parent/child edges. Dependency relations become ok-transitions in
// the generated document.
//
// # ErrorHandler
//
// An ErrorHandler wraps an isolated node (no parents, no children) and is
// attached to another node as its failure-path target:
//
//	handler, err := ozflow.BuildAsErrorHandler(ozflow.NewShell("notify").
//	    WithExec("alert.sh"))
//
//	risky, err := ozflow.NewSpark("train").
//	    WithErrorHandler(handler).
//	    WithMaster("yarn").
//	    WithJar("model.jar").
//	    Build()
//
// In the generated document the handler becomes the error-transition of the
// owning action, and both of the handler's own transitions lead to the
// autogenerated kill node.
//
// # Workflow
//
// A Workflow freezes everything reachable from one or more seed nodes into
// a deterministically ordered graph:
//
//	wf, err := ozflow.NewWorkflow("daily-report").
//	    WithDAGContainingNode(first).
//	    Build()
//
// Translate produces the target-schema element graph; Render serializes it
// as the final XML document.
//
// # Registry
//
// A Registry combines translation, rendering and storage of the produced
// definitions. The in-memory registry suits tests; the SQLite registry
// persists definitions across runs:
//
//	reg, err := ozflow.NewSQLiteRegistry(db)
//	def, err := reg.Register(wf)
//
// # Errors
//
// All failures are reported synchronously, in three families: validation
// errors (missing or invalid action configuration, detected at Build),
// state errors (violated structural invariants such as an error handler
// with edges or a duplicate node name), and mapping errors (a source field
// with no counterpart in the target shape). Use IsValidationError,
// IsStateError and IsMappingError to classify them. There are no retries
// and no partial recovery: fix the input graph and rebuild.
package ozflow
