package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ozflow/ozflow/pkg/api"
	"github.com/ozflow/ozflow/pkg/schema"
)

func buildShell(t *testing.T, name string, parents ...*api.Node) *api.Node {
	t.Helper()

	b := api.NewShell(name).WithExec(name + ".sh")
	for _, p := range parents {
		b.WithParent(p)
	}
	n, err := b.Build()
	require.NoError(t, err)
	return n
}

func translate(t *testing.T, wf *api.Workflow) *schema.Graph {
	t.Helper()

	g, err := NewTranslator(NewMapper()).Translate(wf)
	require.NoError(t, err)
	return g
}

func TestTranslate_ErrorHandlerWiring(t *testing.T) {
	t.Parallel()

	p1 := buildShell(t, "p1")
	p2 := buildShell(t, "p2")

	handler, err := api.BuildAsErrorHandler(api.NewShell("cleanup").WithExec("cleanup.sh"))
	require.NoError(t, err)

	x, err := api.NewShell("x").
		WithExec("x.sh").
		WithParent(p1).
		WithParent(p2).
		WithErrorHandler(handler).
		Build()
	require.NoError(t, err)

	c := buildShell(t, "c", x)
	_ = c

	wf, err := api.NewWorkflow("handled").WithDAGContainingNode(x).Build()
	require.NoError(t, err)

	g := translate(t, wf)

	// Ordinary edges become ok-transitions, unchanged.
	require.Equal(t, []string{"x"}, g.Node("p1").OkTargets)
	require.Equal(t, []string{"x"}, g.Node("p2").OkTargets)
	require.Equal(t, []string{"c"}, g.Node("x").OkTargets)
	require.Equal(t, []string{schema.EndName}, g.Node("c").OkTargets)

	// The handler is x's error-transition; both handler transitions lead
	// to the shared kill node.
	require.NotNil(t, g.Kill)
	require.Equal(t, "cleanup", g.Node("x").ErrorTarget)
	cleanup := g.Node("cleanup")
	require.NotNil(t, cleanup)
	require.True(t, cleanup.Handler)
	require.Equal(t, []string{g.Kill.Name}, cleanup.OkTargets)
	require.Equal(t, g.Kill.Name, cleanup.ErrorTarget)

	// Nodes without a handler fail straight into the kill node.
	require.Equal(t, g.Kill.Name, g.Node("p1").ErrorTarget)
	require.Equal(t, g.Kill.Name, g.Node("p2").ErrorTarget)
	require.Equal(t, g.Kill.Name, g.Node("c").ErrorTarget)

	require.Equal(t, []string{"p1", "p2"}, g.Roots)
}

func TestTranslate_SharedKillNode(t *testing.T) {
	t.Parallel()

	h1, err := api.BuildAsErrorHandler(api.NewShell("h1").WithExec("h1.sh"))
	require.NoError(t, err)
	h2, err := api.BuildAsErrorHandler(api.NewShell("h2").WithExec("h2.sh"))
	require.NoError(t, err)

	a, err := api.NewShell("a").WithExec("a.sh").WithErrorHandler(h1).Build()
	require.NoError(t, err)
	b, err := api.NewShell("b").WithExec("b.sh").WithParent(a).WithErrorHandler(h2).Build()
	require.NoError(t, err)
	_ = b

	wf, err := api.NewWorkflow("two-handlers").WithDAGContainingNode(a).Build()
	require.NoError(t, err)

	g := translate(t, wf)

	require.NotNil(t, g.Kill)
	killCount := 0
	for _, n := range g.Nodes {
		if n.Handler {
			require.Equal(t, []string{g.Kill.Name}, n.OkTargets)
			require.Equal(t, g.Kill.Name, n.ErrorTarget)
			killCount++
		}
	}
	require.Equal(t, 2, killCount)
}

func TestTranslate_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *schema.Graph {
		handler, err := api.BuildAsErrorHandler(api.NewShell("h").WithExec("h.sh"))
		require.NoError(t, err)

		a := buildShell(t, "a")
		x, err := api.NewShell("x").WithExec("x.sh").WithParent(a).WithErrorHandler(handler).Build()
		require.NoError(t, err)

		wf, err := api.NewWorkflow("same").WithDAGContainingNode(x).Build()
		require.NoError(t, err)
		return translate(t, wf)
	}

	require.Equal(t, build(), build())
}

func TestTranslate_ReservedNameFails(t *testing.T) {
	t.Parallel()

	n := buildShell(t, "kill")

	wf, err := api.NewWorkflow("reserved").WithDAGContainingNode(n).Build()
	require.NoError(t, err)

	_, err = NewTranslator(NewMapper()).Translate(wf)
	require.True(t, api.IsStateError(err))
}

func TestTranslate_HandlerNameCollisionFails(t *testing.T) {
	t.Parallel()

	handler, err := api.BuildAsErrorHandler(api.NewShell("dup").WithExec("h.sh"))
	require.NoError(t, err)

	a, err := api.NewShell("a").WithExec("a.sh").WithErrorHandler(handler).Build()
	require.NoError(t, err)
	b := buildShell(t, "dup", a)
	_ = b

	wf, err := api.NewWorkflow("collision").WithDAGContainingNode(a).Build()
	require.NoError(t, err)

	_, err = NewTranslator(NewMapper()).Translate(wf)
	require.True(t, api.IsStateError(err))
}

func TestTranslate_SharedHandlerEmittedOnce(t *testing.T) {
	t.Parallel()

	handler, err := api.BuildAsErrorHandler(api.NewShell("shared").WithExec("h.sh"))
	require.NoError(t, err)

	a, err := api.NewShell("a").WithExec("a.sh").WithErrorHandler(handler).Build()
	require.NoError(t, err)
	b, err := api.NewShell("b").WithExec("b.sh").WithParent(a).WithErrorHandler(handler).Build()
	require.NoError(t, err)
	_ = b

	wf, err := api.NewWorkflow("shared-handler").WithDAGContainingNode(a).Build()
	require.NoError(t, err)

	g := translate(t, wf)

	emitted := 0
	for _, n := range g.Nodes {
		if n.Name == "shared" {
			emitted++
		}
	}
	require.Equal(t, 1, emitted)
	require.Equal(t, "shared", g.Node("a").ErrorTarget)
	require.Equal(t, "shared", g.Node("b").ErrorTarget)
}

func TestTranslate_EmptyWorkflowHasNoKill(t *testing.T) {
	t.Parallel()

	wf, err := api.NewWorkflow("empty").Build()
	require.NoError(t, err)

	g := translate(t, wf)
	require.Nil(t, g.Kill)
	require.Empty(t, g.Nodes)
}
