package serialization

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ozflow/ozflow/pkg/api"
	"github.com/ozflow/ozflow/pkg/schema"
)

func launcherOpt(kind, value string) schema.LauncherOptionElement {
	return schema.LauncherOptionElement{XMLName: xml.Name{Local: kind}, Value: value}
}

func renderedDoc(t *testing.T, g *schema.Graph) string {
	t.Helper()

	out, err := Render(g)
	require.NoError(t, err)
	return string(out)
}

func linearGraph(t *testing.T) *schema.Graph {
	t.Helper()

	return &schema.Graph{
		Name: "report",
		Nodes: []schema.NodeElement{
			{
				Name: "extract",
				Kind: "shell",
				Element: &schema.ShellElement{
					ResourceManager: "${resourceManager}",
					NameNode:        "${nameNode}",
					Exec:            "extract.sh",
					Arguments:       []string{"arg1", "arg2"},
				},
				OkTargets:   []string{"aggregate"},
				ErrorTarget: "kill",
			},
			{
				Name: "aggregate",
				Kind: "hive",
				Element: &schema.HiveElement{
					Script: "/queries/aggregate.sql",
				},
				OkTargets:   []string{schema.EndName},
				ErrorTarget: "notify",
			},
			{
				Name: "notify",
				Kind: "shell",
				Element: &schema.ShellElement{
					Exec: "alert.sh",
				},
				OkTargets:   []string{"kill"},
				ErrorTarget: "kill",
				Handler:     true,
			},
		},
		Kill:  &schema.KillElement{Name: "kill", Message: "failed"},
		Roots: []string{"extract"},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	doc := renderedDoc(t, linearGraph(t))

	require.True(t, strings.HasPrefix(doc, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>"))
	require.Contains(t, doc, `<workflow-app xmlns="uri:oozie:workflow:1.0" name="report">`)
	require.Contains(t, doc, `<start to="extract">`)
	require.Contains(t, doc, `<action name="extract">`)
	require.Contains(t, doc, `<resource-manager>${resourceManager}</resource-manager>`)
	require.Contains(t, doc, `<name-node>${nameNode}</name-node>`)
	require.Contains(t, doc, `<exec>extract.sh</exec>`)
	require.Contains(t, doc, `<argument>arg1</argument>`)
	require.Contains(t, doc, `<argument>arg2</argument>`)
	require.Contains(t, doc, `<ok to="aggregate">`)
	require.Contains(t, doc, `<error to="kill">`)
	require.Contains(t, doc, `<script>/queries/aggregate.sql</script>`)
	require.Contains(t, doc, `<error to="notify">`)
	require.Contains(t, doc, `<kill name="kill">`)
	require.Contains(t, doc, `<message>failed</message>`)
	require.Contains(t, doc, `<end name="end">`)
}

func TestRender_LauncherOptionsKeepOrder(t *testing.T) {
	t.Parallel()

	g := &schema.Graph{
		Name: "launcher",
		Nodes: []schema.NodeElement{
			{
				Name: "launch",
				Kind: "shell",
				Element: &schema.ShellElement{
					Exec: "run.sh",
					Launcher: &schema.LauncherElement{Options: []schema.LauncherOptionElement{
						launcherOpt("memory-mb", "1024"),
						launcherOpt("vcores", "2"),
						launcherOpt("queue", "default"),
					}},
				},
				OkTargets:   []string{schema.EndName},
				ErrorTarget: "kill",
			},
		},
		Kill:  &schema.KillElement{Name: "kill", Message: "failed"},
		Roots: []string{"launch"},
	}

	doc := renderedDoc(t, g)
	memory := strings.Index(doc, "<memory-mb>1024</memory-mb>")
	vcores := strings.Index(doc, "<vcores>2</vcores>")
	queue := strings.Index(doc, "<queue>default</queue>")
	require.True(t, memory >= 0 && vcores > memory && queue > vcores)
}

func TestRender_DeterministicBytes(t *testing.T) {
	t.Parallel()

	first, err := Render(linearGraph(t))
	require.NoError(t, err)
	second, err := Render(linearGraph(t))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRender_MultipleRootsRejected(t *testing.T) {
	t.Parallel()

	g := linearGraph(t)
	g.Roots = []string{"extract", "aggregate"}

	_, err := Render(g)
	require.True(t, api.IsStateError(err))
}

func TestRender_MultipleOkTargetsRejected(t *testing.T) {
	t.Parallel()

	g := linearGraph(t)
	g.Nodes[0].OkTargets = []string{"aggregate", "notify"}

	_, err := Render(g)
	require.True(t, api.IsStateError(err))
}
