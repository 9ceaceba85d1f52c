// Package serialization renders a translated graph as the final workflow
// document consumed by the scheduler.
package serialization

import (
	"encoding/xml"
	"strconv"

	"github.com/ozflow/ozflow/pkg/api"
	"github.com/ozflow/ozflow/pkg/schema"
)

// workflowNamespace is the schema version the rendered document declares.
const workflowNamespace = "uri:oozie:workflow:1.0"

type transition struct {
	To string `xml:"to,attr"`
}

type named struct {
	Name string `xml:"name,attr"`
}

type actionElement struct {
	Name  string                `xml:"name,attr"`
	Shell *schema.ShellElement  `xml:"shell,omitempty"`
	Hive  *schema.HiveElement   `xml:"hive,omitempty"`
	Spark *schema.SparkElement  `xml:"spark,omitempty"`
	Ok    transition            `xml:"ok"`
	Error transition            `xml:"error"`
}

type killElement struct {
	Name    string `xml:"name,attr"`
	Message string `xml:"message"`
}

type workflowApp struct {
	XMLName xml.Name        `xml:"workflow-app"`
	Xmlns   string          `xml:"xmlns,attr"`
	Name    string          `xml:"name,attr"`
	Start   transition      `xml:"start"`
	Actions []actionElement `xml:"action"`
	Kill    *killElement    `xml:"kill,omitempty"`
	End     named           `xml:"end"`
}

// Render serializes the graph as an XML workflow document.
//
// The in-memory graph keeps full edge fidelity, but the document format
// allows exactly one entry point and one ok-transition per action. Graphs
// outside that subset need fork/join elements the renderer does not
// generate, so it fails loudly instead of dropping edges.
func Render(g *schema.Graph) ([]byte, error) {
	if len(g.Roots) != 1 {
		return nil, api.NewStateError(
			"document rendering requires exactly one root node, got " + strconv.Itoa(len(g.Roots)))
	}

	doc := workflowApp{
		Xmlns: workflowNamespace,
		Name:  g.Name,
		Start: transition{To: g.Roots[0]},
		End:   named{Name: schema.EndName},
	}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		if len(n.OkTargets) != 1 {
			return nil, api.NewStateError(
				"document rendering requires exactly one ok-transition per node; node " +
					n.Name + " has " + strconv.Itoa(len(n.OkTargets)))
		}

		el := actionElement{
			Name:  n.Name,
			Ok:    transition{To: n.OkTargets[0]},
			Error: transition{To: n.ErrorTarget},
		}
		switch payload := n.Element.(type) {
		case *schema.ShellElement:
			el.Shell = payload
		case *schema.HiveElement:
			el.Hive = payload
		case *schema.SparkElement:
			el.Spark = payload
		default:
			return nil, api.NewMappingError(n.Kind, "")
		}
		doc.Actions = append(doc.Actions, el)
	}

	if g.Kill != nil {
		doc.Kill = &killElement{Name: g.Kill.Name, Message: g.Kill.Message}
	}

	body, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
