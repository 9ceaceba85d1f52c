package mapping

import (
	"encoding/xml"

	"github.com/ozflow/ozflow/pkg/api"
	"github.com/ozflow/ozflow/pkg/schema"
)

// launcherKinds are the option kinds the target launcher element accepts.
var launcherKinds = map[string]bool{
	api.LauncherMemoryMb:  true,
	api.LauncherVCores:    true,
	api.LauncherQueue:     true,
	api.LauncherSharelib:  true,
	api.LauncherViewACL:   true,
	api.LauncherModifyACL: true,
}

func mapShell(action api.Action) (any, error) {
	a, ok := action.(*api.ShellAction)
	if !ok {
		return nil, api.NewMappingError(action.Kind(), "")
	}

	prepare, err := mapPrepare(a.Kind(), a.Prepare())
	if err != nil {
		return nil, err
	}
	launcher, err := mapLauncher(a.Kind(), a.Launcher())
	if err != nil {
		return nil, err
	}

	el := &schema.ShellElement{
		ResourceManager: a.ResourceManager(),
		NameNode:        a.NameNode(),
		Prepare:         prepare,
		Launcher:        launcher,
		Configuration:   mapConfiguration(a.ConfigProperties()),
		Exec:            a.Exec(),
		Arguments:       a.Args(),
		EnvVars:         a.EnvVars(),
		Files:           a.Files(),
		Archives:        a.Archives(),
	}
	if a.CaptureOutput() {
		el.CaptureOutput = &schema.Empty{}
	}
	return el, nil
}

func mapHive(action api.Action) (any, error) {
	a, ok := action.(*api.HiveAction)
	if !ok {
		return nil, api.NewMappingError(action.Kind(), "")
	}

	prepare, err := mapPrepare(a.Kind(), a.Prepare())
	if err != nil {
		return nil, err
	}
	launcher, err := mapLauncher(a.Kind(), a.Launcher())
	if err != nil {
		return nil, err
	}

	return &schema.HiveElement{
		ResourceManager: a.ResourceManager(),
		NameNode:        a.NameNode(),
		Prepare:         prepare,
		Launcher:        launcher,
		Configuration:   mapConfiguration(a.ConfigProperties()),
		Script:          a.Script(),
		Query:           a.Query(),
		Params:          a.Params(),
		Arguments:       a.Args(),
		Files:           a.Files(),
		Archives:        a.Archives(),
	}, nil
}

func mapSpark(action api.Action) (any, error) {
	a, ok := action.(*api.SparkAction)
	if !ok {
		return nil, api.NewMappingError(action.Kind(), "")
	}

	prepare, err := mapPrepare(a.Kind(), a.Prepare())
	if err != nil {
		return nil, err
	}
	launcher, err := mapLauncher(a.Kind(), a.Launcher())
	if err != nil {
		return nil, err
	}

	return &schema.SparkElement{
		ResourceManager: a.ResourceManager(),
		NameNode:        a.NameNode(),
		Prepare:         prepare,
		Launcher:        launcher,
		Configuration:   mapConfiguration(a.ConfigProperties()),
		Master:          a.Master(),
		Mode:            a.Mode(),
		JobName:         a.JobName(),
		Class:           a.Class(),
		Jar:             a.Jar(),
		SparkOpts:       a.SparkOpts(),
		Arguments:       a.Args(),
		Files:           a.Files(),
		Archives:        a.Archives(),
	}, nil
}

// mapPrepare copies prepare steps, preserving declaration order within each
// operation kind. An operation the target shape does not know is a mapping
// error, never a silent drop.
func mapPrepare(kind string, p *api.Prepare) (*schema.PrepareElement, error) {
	if p == nil {
		return nil, nil
	}
	el := &schema.PrepareElement{}
	for _, step := range p.Steps() {
		switch step.Op {
		case api.PrepareDelete:
			el.Deletes = append(el.Deletes, schema.PathElement{Path: step.Path})
		case api.PrepareMkdir:
			el.Mkdirs = append(el.Mkdirs, schema.PathElement{Path: step.Path})
		default:
			return nil, api.NewMappingError(kind, "prepare."+string(step.Op))
		}
	}
	return el, nil
}

// mapLauncher copies the ordered launcher options. Option order is
// significant and preserved exactly.
func mapLauncher(kind string, l *api.Launcher) (*schema.LauncherElement, error) {
	if l == nil {
		return nil, nil
	}
	el := &schema.LauncherElement{}
	for _, opt := range l.Options() {
		if !launcherKinds[opt.Kind] {
			return nil, api.NewMappingError(kind, "launcher."+opt.Kind)
		}
		el.Options = append(el.Options, schema.LauncherOptionElement{
			XMLName: xml.Name{Local: opt.Kind},
			Value:   opt.Value,
		})
	}
	return el, nil
}

func mapConfiguration(props []api.ConfigProperty) *schema.ConfigurationElement {
	if len(props) == 0 {
		return nil
	}
	el := &schema.ConfigurationElement{}
	for _, p := range props {
		el.Properties = append(el.Properties, schema.PropertyElement{Name: p.Name, Value: p.Value})
	}
	return el
}
