package mapping

import (
	"io"
	"log/slog"

	"github.com/ozflow/ozflow/pkg/api"
	"github.com/ozflow/ozflow/pkg/schema"
)

// killMessage is the message carried by the autogenerated kill node.
const killMessage = "Action failed, error message[${wf:errorMessage(wf:lastErrorNode())}]"

// Translator turns a built workflow into the target-schema element graph.
// It owns no state across calls; translating the same workflow twice yields
// structurally identical graphs.
type Translator struct {
	mapper *Mapper
	logger *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger makes the translator log through l instead of discarding.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTranslator creates a Translator using the given mapper for action
// payloads. The mapper is passed explicitly; there is no shared default.
func NewTranslator(mapper *Mapper, opts ...Option) *Translator {
	t := &Translator{
		mapper: mapper,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate walks the workflow in its stable order and emits one element per
// node with its transitions wired:
//
//   - ok-transitions copy the child edges exactly; childless nodes target
//     the end element;
//   - the error-transition targets the node's error handler if one is
//     attached, the kill node otherwise;
//   - each error handler element is emitted right after its first owner,
//     with both of its transitions leading to the kill node.
//
// The kill element is created on first need and shared by the whole graph.
func (t *Translator) Translate(wf *api.Workflow) (*schema.Graph, error) {
	g := &schema.Graph{Name: wf.Name()}

	taken := make(map[string]bool)
	emitted := make(map[*api.ErrorHandler]bool)
	var kill *schema.KillElement
	needKill := func() string {
		if kill == nil {
			kill = &schema.KillElement{Name: schema.KillName, Message: killMessage}
		}
		return kill.Name
	}

	claimName := func(name string) error {
		switch name {
		case schema.StartName, schema.EndName, schema.KillName:
			return api.NewStateError("node name " + name + " is reserved")
		}
		if taken[name] {
			return api.NewStateError("duplicate node name in workflow: " + name)
		}
		taken[name] = true
		return nil
	}

	for _, n := range wf.Nodes() {
		if err := claimName(n.Name()); err != nil {
			return nil, err
		}

		element, err := t.mapper.Map(n.Action())
		if err != nil {
			return nil, err
		}

		var okTargets []string
		for _, c := range n.Children() {
			okTargets = append(okTargets, c.Name())
		}
		if len(okTargets) == 0 {
			okTargets = []string{schema.EndName}
		}

		errorTarget := ""
		handler := n.ErrorHandler()
		if handler != nil {
			errorTarget = handler.Name()
		} else {
			errorTarget = needKill()
		}

		g.Nodes = append(g.Nodes, schema.NodeElement{
			Name:        n.Name(),
			Kind:        n.Action().Kind(),
			Element:     element,
			OkTargets:   okTargets,
			ErrorTarget: errorTarget,
		})
		t.logger.Debug("translated node",
			"workflow", wf.Name(), "node", n.Name(), "kind", n.Action().Kind())

		if handler != nil && !emitted[handler] {
			if err := t.emitHandler(g, handler, claimName, needKill); err != nil {
				return nil, err
			}
			emitted[handler] = true
		}
	}

	g.Kill = kill
	for _, r := range wf.Roots() {
		g.Roots = append(g.Roots, r.Name())
	}

	if err := checkTargets(g); err != nil {
		return nil, err
	}
	return g, nil
}

// emitHandler appends the element for an error handler node. Both of its
// transitions lead to the kill node.
func (t *Translator) emitHandler(g *schema.Graph, handler *api.ErrorHandler, claimName func(string) error, needKill func() string) error {
	hn := handler.HandlerNode()
	if err := claimName(hn.Name()); err != nil {
		return err
	}
	element, err := t.mapper.Map(hn.Action())
	if err != nil {
		return err
	}
	killName := needKill()
	g.Nodes = append(g.Nodes, schema.NodeElement{
		Name:        hn.Name(),
		Kind:        hn.Action().Kind(),
		Element:     element,
		OkTargets:   []string{killName},
		ErrorTarget: killName,
		Handler:     true,
	})
	t.logger.Debug("translated error handler",
		"workflow", g.Name, "node", hn.Name(), "kind", hn.Action().Kind())
	return nil
}

// checkTargets verifies that every transition resolves to an existing
// element, the kill node, or the end element.
func checkTargets(g *schema.Graph) error {
	known := make(map[string]bool, len(g.Nodes)+2)
	known[schema.EndName] = true
	if g.Kill != nil {
		known[g.Kill.Name] = true
	}
	for i := range g.Nodes {
		known[g.Nodes[i].Name] = true
	}
	for i := range g.Nodes {
		for _, target := range g.Nodes[i].OkTargets {
			if !known[target] {
				return api.NewStateError("dangling transition target: " + target)
			}
		}
		if !known[g.Nodes[i].ErrorTarget] {
			return api.NewStateError("dangling transition target: " + g.Nodes[i].ErrorTarget)
		}
	}
	return nil
}
