package api

// Node is a single vertex in the dependency graph: a unique name, the action
// payload it owns, and its parent/child edges.
//
// Nodes come into existence only through a builder's Build call. After that
// a Node is immutable, with one exception: its child set grows as later
// builds declare it a parent. The parent/child relation is kept symmetric by
// construction; an edge is always recorded on both endpoints, in the same
// Build call.
type Node struct {
	name     string
	action   Action
	parents  []*Node
	children []*Node
	handler  *ErrorHandler
}

// Name returns the node name, unique within a workflow.
func (n *Node) Name() string { return n.name }

// Action returns the action payload owned by this node.
func (n *Node) Action() Action { return n.action }

// Parents returns the nodes this node depends on.
func (n *Node) Parents() []*Node {
	out := make([]*Node, len(n.parents))
	copy(out, n.parents)
	return out
}

// Children returns the nodes that depend on this node.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ErrorHandler returns the error handler attached to this node, or nil.
func (n *Node) ErrorHandler() *ErrorHandler { return n.handler }

// nodeBuilder holds the staging state shared by every concrete action
// builder: the node name, declared parents, an optional error handler, and
// any deferred misuse errors. The fluent With* methods never fail; problems
// they detect are recorded and surfaced by build, so no partial edges are
// ever committed.
type nodeBuilder struct {
	name    string
	parents []*Node
	handler *ErrorHandler
	built   bool
	errs    []error
}

func (b *nodeBuilder) setName(name string) {
	b.name = name
}

func (b *nodeBuilder) addParent(parent *Node) {
	if b.built {
		b.errs = append(b.errs, NewStateError("builder has already produced a node; cannot add parent"))
		return
	}
	if parent == nil {
		b.errs = append(b.errs, NewStateError("parent node must not be nil"))
		return
	}
	for _, p := range b.parents {
		if p == parent {
			return
		}
	}
	b.parents = append(b.parents, parent)
}

func (b *nodeBuilder) setErrorHandler(handler *ErrorHandler) {
	b.handler = handler
}

// build is the single point where a Node comes into existence. It validates
// staged state and the action payload first; only when everything passes
// does it create the node and register it as a child on every declared
// parent. On failure nothing is linked.
func (b *nodeBuilder) build(action Action) (*Node, error) {
	if b.built {
		return nil, NewStateError("builder has already produced a node")
	}
	for _, err := range b.errs {
		return nil, err
	}
	if b.name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if err := action.validate(); err != nil {
		return nil, err
	}

	node := &Node{
		name:    b.name,
		action:  action,
		parents: append([]*Node(nil), b.parents...),
		handler: b.handler,
	}
	for _, parent := range b.parents {
		parent.children = append(parent.children, node)
	}

	b.built = true
	return node, nil
}
