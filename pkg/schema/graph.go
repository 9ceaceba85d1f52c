package schema

// Names of the synthetic elements injected during translation. User nodes
// may not use them.
const (
	StartName = "start"
	EndName   = "end"
	KillName  = "kill"
)

// NodeElement is one translated workflow node: the mapped action element
// plus the transition targets wired in during graph assembly.
type NodeElement struct {
	// Name is the node name, unique within the graph.
	Name string

	// Kind is the action kind ("shell", "hive", "spark").
	Kind string

	// Element is the mapped action payload: *ShellElement, *HiveElement or
	// *SparkElement, matching Kind.
	Element any

	// OkTargets are the destinations of the ok-transitions, one per child
	// edge of the source node, in child order. Childless nodes target the
	// end element.
	OkTargets []string

	// ErrorTarget is the destination of the error-transition: the attached
	// error handler's node if one was attached, the kill node otherwise.
	ErrorTarget string

	// Handler marks elements injected from an ErrorHandler. Both of their
	// transitions lead to the kill node.
	Handler bool
}

// KillElement is the synthetic terminal node representing forced workflow
// termination.
type KillElement struct {
	Name    string
	Message string
}

// Graph is the produced translation artifact: every node element in a
// deterministic order, the shared kill element, and the entry points. Every
// transition target resolves to a node element, the kill element, or the
// end element.
type Graph struct {
	// Name is the workflow name.
	Name string

	// Nodes holds the translated elements; ordinary nodes in workflow
	// order, each directly followed by its error handler's element the
	// first time that handler is referenced.
	Nodes []NodeElement

	// Kill is the single kill element shared by the whole graph, nil only
	// for empty graphs.
	Kill *KillElement

	// Roots names the entry-point nodes in name order.
	Roots []string
}

// Node returns the element with the given name, or nil.
func (g *Graph) Node(name string) *NodeElement {
	for i := range g.Nodes {
		if g.Nodes[i].Name == name {
			return &g.Nodes[i]
		}
	}
	return nil
}
