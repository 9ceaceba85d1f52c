package api

import "sort"

// Workflow is the frozen aggregate of every node reachable from the seed
// nodes given to its builder, in a deterministic order suitable for
// translation.
type Workflow struct {
	name  string
	nodes []*Node
	roots []*Node
}

// Name returns the workflow name.
func (w *Workflow) Name() string { return w.name }

// Nodes returns every node of the workflow in a stable topological order:
// parents always precede children, ties broken by node name. Two identical
// graphs yield the same order.
func (w *Workflow) Nodes() []*Node {
	out := make([]*Node, len(w.nodes))
	copy(out, w.nodes)
	return out
}

// Roots returns the nodes without parents, in name order.
func (w *Workflow) Roots() []*Node {
	out := make([]*Node, len(w.roots))
	copy(out, w.roots)
	return out
}

// WorkflowBuilder collects seed nodes and freezes them, with every node
// reachable from them, into a Workflow.
type WorkflowBuilder struct {
	name  string
	seeds []*Node
}

// NewWorkflow creates a builder for a workflow with the given name.
func NewWorkflow(name string) *WorkflowBuilder {
	return &WorkflowBuilder{name: name}
}

// WithDAGContainingNode adds a seed node. The built workflow contains the
// seed and everything reachable from it over parent and child edges, so one
// seed per connected component is enough.
func (b *WorkflowBuilder) WithDAGContainingNode(node *Node) *WorkflowBuilder {
	if node != nil {
		b.seeds = append(b.seeds, node)
	}
	return b
}

// Build computes the reachable closure of the seed nodes and freezes it.
// Node names must be unique within the closure; a duplicate is a structural
// error and fails the build.
func (b *WorkflowBuilder) Build() (*Workflow, error) {
	if b.name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}

	closure, err := reachableClosure(b.seeds)
	if err != nil {
		return nil, err
	}

	nodes, err := topologicalOrder(closure)
	if err != nil {
		return nil, err
	}

	var roots []*Node
	for _, n := range nodes {
		if len(n.parents) == 0 {
			roots = append(roots, n)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].name < roots[j].name })

	return &Workflow{name: b.name, nodes: nodes, roots: roots}, nil
}

// reachableClosure walks parent and child edges from the seeds and returns
// every node found, checking name uniqueness along the way.
func reachableClosure(seeds []*Node) ([]*Node, error) {
	seen := make(map[*Node]bool)
	byName := make(map[string]*Node)
	var closure []*Node

	var stack []*Node
	stack = append(stack, seeds...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		if other, ok := byName[n.name]; ok && other != n {
			return nil, NewStateError("duplicate node name in workflow: " + n.name)
		}
		byName[n.name] = n
		closure = append(closure, n)
		stack = append(stack, n.parents...)
		stack = append(stack, n.children...)
	}
	return closure, nil
}

// topologicalOrder returns the nodes with every parent before its children,
// name order breaking ties (Kahn's algorithm over a sorted ready set).
func topologicalOrder(nodes []*Node) ([]*Node, error) {
	indegree := make(map[*Node]int, len(nodes))
	inSet := make(map[*Node]bool, len(nodes))
	for _, n := range nodes {
		inSet[n] = true
	}
	var ready []*Node
	for _, n := range nodes {
		indegree[n] = len(n.parents)
		if len(n.parents) == 0 {
			ready = append(ready, n)
		}
	}

	ordered := make([]*Node, 0, len(nodes))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return ready[i].name < ready[j].name })
		n := ready[0]
		ready = ready[1:]
		ordered = append(ordered, n)
		for _, c := range n.children {
			if !inSet[c] {
				continue
			}
			indegree[c]--
			if indegree[c] == 0 {
				ready = append(ready, c)
			}
		}
	}

	// Builders only link to already-built parents, so a cycle should be
	// impossible; guard anyway so translation never loops.
	if len(ordered) != len(nodes) {
		return nil, NewStateError("dependency graph contains a cycle")
	}
	return ordered, nil
}
