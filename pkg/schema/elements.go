// Package schema holds the target-document element shapes a workflow is
// translated into: one element type per action kind plus the shared
// sub-elements (prepare, launcher, configuration). The shapes carry
// encoding/xml tags so a rendered document can be produced directly from
// them.
package schema

import "encoding/xml"

// Empty marks presence-only elements such as <capture-output/>.
type Empty struct{}

// PathElement is a single prepare path, e.g. <delete path="/tmp/out"/>.
type PathElement struct {
	Path string `xml:"path,attr"`
}

// PrepareElement lists the filesystem operations run before an action.
// Declaration order is preserved within each operation kind.
type PrepareElement struct {
	Deletes []PathElement `xml:"delete"`
	Mkdirs  []PathElement `xml:"mkdir"`
}

// LauncherOptionElement is one launcher option. The element name is the
// option kind (memory-mb, vcores, queue, ...), the character data its value.
type LauncherOptionElement struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Kind returns the option kind, i.e. the element name.
func (o LauncherOptionElement) Kind() string {
	return o.XMLName.Local
}

// LauncherElement holds the launcher options in the order they were
// declared. The document format identifies each option by its element name
// and position, so order is significant.
type LauncherElement struct {
	Options []LauncherOptionElement
}

// PropertyElement is one key/value configuration entry.
type PropertyElement struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

// ConfigurationElement lists the configuration properties of an action.
type ConfigurationElement struct {
	Properties []PropertyElement `xml:"property"`
}

// ShellElement is the document representation of a shell action.
type ShellElement struct {
	ResourceManager string                `xml:"resource-manager,omitempty"`
	NameNode        string                `xml:"name-node,omitempty"`
	Prepare         *PrepareElement       `xml:"prepare,omitempty"`
	Launcher        *LauncherElement      `xml:"launcher,omitempty"`
	Configuration   *ConfigurationElement `xml:"configuration,omitempty"`
	Exec            string                `xml:"exec"`
	Arguments       []string              `xml:"argument"`
	EnvVars         []string              `xml:"env-var"`
	Files           []string              `xml:"file"`
	Archives        []string              `xml:"archive"`
	CaptureOutput   *Empty                `xml:"capture-output,omitempty"`
}

// HiveElement is the document representation of a Hive action. Exactly one
// of Script and Query is populated.
type HiveElement struct {
	ResourceManager string                `xml:"resource-manager,omitempty"`
	NameNode        string                `xml:"name-node,omitempty"`
	Prepare         *PrepareElement       `xml:"prepare,omitempty"`
	Launcher        *LauncherElement      `xml:"launcher,omitempty"`
	Configuration   *ConfigurationElement `xml:"configuration,omitempty"`
	Script          string                `xml:"script,omitempty"`
	Query           string                `xml:"query,omitempty"`
	Params          []string              `xml:"param"`
	Arguments       []string              `xml:"argument"`
	Files           []string              `xml:"file"`
	Archives        []string              `xml:"archive"`
}

// SparkElement is the document representation of a Spark action.
type SparkElement struct {
	ResourceManager string                `xml:"resource-manager,omitempty"`
	NameNode        string                `xml:"name-node,omitempty"`
	Prepare         *PrepareElement       `xml:"prepare,omitempty"`
	Launcher        *LauncherElement      `xml:"launcher,omitempty"`
	Configuration   *ConfigurationElement `xml:"configuration,omitempty"`
	Master          string                `xml:"master"`
	Mode            string                `xml:"mode,omitempty"`
	JobName         string                `xml:"name,omitempty"`
	Class           string                `xml:"class,omitempty"`
	Jar             string                `xml:"jar"`
	SparkOpts       string                `xml:"spark-opts,omitempty"`
	Arguments       []string              `xml:"arg"`
	Files           []string              `xml:"file"`
	Archives        []string              `xml:"archive"`
}
