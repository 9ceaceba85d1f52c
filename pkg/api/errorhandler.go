package api

// NodeProducer is the slice of the builder contract BuildAsErrorHandler
// needs; every concrete action builder satisfies it.
type NodeProducer interface {
	Build() (*Node, error)

	// staging exposes the shared node staging state so the isolation
	// invariant can be checked before Build commits any edges.
	staging() *nodeBuilder
}

// ErrorHandler wraps an isolated node so it can serve as the failure-path
// target of another node.
//
// Dependency relations declared between nodes become ok-transitions in the
// generated document. An ErrorHandler supplies the error-transition instead:
// the wrapped node is wired in as the error target of whichever node it is
// attached to, and both of its own transitions lead to the autogenerated
// kill node.
//
// The wrapped node must have no parents and no children. An error handler
// represents an alternate, independent execution path; letting it share
// edges with the normal dependency graph would make it ambiguous whether its
// children belong to the happy path. The invariant is enforced at
// construction and never relaxed.
type ErrorHandler struct {
	handlerNode *Node
}

// BuildAsErrorHandler is the only way to create an ErrorHandler. It builds
// the node from the given builder, so all normal node validation runs first,
// then enforces the isolation invariant.
func BuildAsErrorHandler(builder NodeProducer) (*ErrorHandler, error) {
	// Reject staged parents before Build runs, otherwise Build would
	// register the handler as a child on each of them.
	if len(builder.staging().parents) > 0 {
		return nil, NewStateError("error handler nodes cannot have parents or children")
	}
	handlerNode, err := builder.Build()
	if err != nil {
		return nil, err
	}
	if len(handlerNode.parents) > 0 || len(handlerNode.children) > 0 {
		return nil, NewStateError("error handler nodes cannot have parents or children")
	}
	return &ErrorHandler{handlerNode: handlerNode}, nil
}

// Name returns the name of the handler node.
func (h *ErrorHandler) Name() string {
	return h.handlerNode.Name()
}

// HandlerNode returns the wrapped node.
func (h *ErrorHandler) HandlerNode() *Node {
	return h.handlerNode
}
