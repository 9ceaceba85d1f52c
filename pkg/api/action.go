package api

import "strconv"

// Action is the payload of a Node: a data-only description of what a single
// workflow action executes. Concrete kinds (shell, hive, spark) are built
// through their fluent builders and are immutable once built.
type Action interface {
	// Kind identifies the action type in the target document ("shell",
	// "hive", "spark").
	Kind() string

	// validate is called exactly once, by the node builder, before the
	// action is frozen into a Node.
	validate() error
}

// PrepareOp identifies a single prepare step kind.
type PrepareOp string

const (
	PrepareDelete PrepareOp = "delete"
	PrepareMkdir  PrepareOp = "mkdir"
)

// PrepareStep is one filesystem operation executed before the action runs.
type PrepareStep struct {
	Op   PrepareOp
	Path string
}

// Prepare is an ordered list of filesystem operations executed before an
// action runs. Order is preserved exactly as declared on the builder.
type Prepare struct {
	steps []PrepareStep
}

// Steps returns the prepare steps in declaration order.
func (p *Prepare) Steps() []PrepareStep {
	out := make([]PrepareStep, len(p.steps))
	copy(out, p.steps)
	return out
}

// PrepareBuilder accumulates prepare steps in call order.
type PrepareBuilder struct {
	steps []PrepareStep
}

// NewPrepare creates an empty PrepareBuilder.
func NewPrepare() *PrepareBuilder {
	return &PrepareBuilder{}
}

// WithDelete appends a delete step for the given path.
func (b *PrepareBuilder) WithDelete(path string) *PrepareBuilder {
	b.steps = append(b.steps, PrepareStep{Op: PrepareDelete, Path: path})
	return b
}

// WithMkdir appends a mkdir step for the given path.
func (b *PrepareBuilder) WithMkdir(path string) *PrepareBuilder {
	b.steps = append(b.steps, PrepareStep{Op: PrepareMkdir, Path: path})
	return b
}

// Build freezes the accumulated steps into a Prepare.
func (b *PrepareBuilder) Build() *Prepare {
	steps := make([]PrepareStep, len(b.steps))
	copy(steps, b.steps)
	return &Prepare{steps: steps}
}

// Launcher option kinds as they appear in the target document.
const (
	LauncherMemoryMb  = "memory-mb"
	LauncherVCores    = "vcores"
	LauncherQueue     = "queue"
	LauncherSharelib  = "sharelib"
	LauncherViewACL   = "view-acl"
	LauncherModifyACL = "modify-acl"
)

// LauncherOption is one (kind, value) pair of launcher configuration. The
// target format recovers each option's meaning from its kind tag and its
// position, so option order is significant and preserved end to end.
type LauncherOption struct {
	Kind  string
	Value string
}

// Launcher holds the ordered launcher options of an action.
type Launcher struct {
	options []LauncherOption
}

// Options returns the launcher options in declaration order.
func (l *Launcher) Options() []LauncherOption {
	out := make([]LauncherOption, len(l.options))
	copy(out, l.options)
	return out
}

// LauncherBuilder accumulates launcher options in call order.
type LauncherBuilder struct {
	options []LauncherOption
}

// NewLauncher creates an empty LauncherBuilder.
func NewLauncher() *LauncherBuilder {
	return &LauncherBuilder{}
}

func (b *LauncherBuilder) add(kind, value string) *LauncherBuilder {
	b.options = append(b.options, LauncherOption{Kind: kind, Value: value})
	return b
}

// WithMemoryMb sets the launcher container memory in megabytes.
func (b *LauncherBuilder) WithMemoryMb(mb int64) *LauncherBuilder {
	return b.add(LauncherMemoryMb, strconv.FormatInt(mb, 10))
}

// WithVCores sets the number of launcher virtual cores.
func (b *LauncherBuilder) WithVCores(vcores int64) *LauncherBuilder {
	return b.add(LauncherVCores, strconv.FormatInt(vcores, 10))
}

// WithQueue sets the scheduler queue the launcher is submitted to.
func (b *LauncherBuilder) WithQueue(queue string) *LauncherBuilder {
	return b.add(LauncherQueue, queue)
}

// WithSharelib sets the sharelib the launcher uses.
func (b *LauncherBuilder) WithSharelib(sharelib string) *LauncherBuilder {
	return b.add(LauncherSharelib, sharelib)
}

// WithViewACL sets the ACL controlling who may view the launched job.
func (b *LauncherBuilder) WithViewACL(acl string) *LauncherBuilder {
	return b.add(LauncherViewACL, acl)
}

// WithModifyACL sets the ACL controlling who may modify the launched job.
func (b *LauncherBuilder) WithModifyACL(acl string) *LauncherBuilder {
	return b.add(LauncherModifyACL, acl)
}

// Build freezes the accumulated options into a Launcher.
func (b *LauncherBuilder) Build() *Launcher {
	options := make([]LauncherOption, len(b.options))
	copy(options, b.options)
	return &Launcher{options: options}
}

// ConfigProperty is a single key/value configuration entry of an action.
type ConfigProperty struct {
	Name  string
	Value string
}

// hadoopAction carries the attributes shared by all Hadoop-backed action
// kinds. It is embedded in each concrete action so accessors are promoted.
type hadoopAction struct {
	resourceManager string
	nameNode        string
	prepare         *Prepare
	launcher        *Launcher
	args            []string
	files           []string
	archives        []string
	config          []ConfigProperty
}

// ResourceManager returns the resource manager address, e.g. "${resourceManager}".
func (a *hadoopAction) ResourceManager() string { return a.resourceManager }

// NameNode returns the name node address, e.g. "${nameNode}".
func (a *hadoopAction) NameNode() string { return a.nameNode }

// Prepare returns the prepare steps of the action, or nil.
func (a *hadoopAction) Prepare() *Prepare { return a.prepare }

// Launcher returns the launcher configuration of the action, or nil.
func (a *hadoopAction) Launcher() *Launcher { return a.launcher }

// Args returns the action arguments in declaration order.
func (a *hadoopAction) Args() []string { return copyStrings(a.args) }

// Files returns the file paths added to the action in declaration order.
func (a *hadoopAction) Files() []string { return copyStrings(a.files) }

// Archives returns the archive paths added to the action in declaration order.
func (a *hadoopAction) Archives() []string { return copyStrings(a.archives) }

// ConfigProperties returns the key/value configuration entries in
// declaration order. Setting a name twice keeps the last value but the
// original position.
func (a *hadoopAction) ConfigProperties() []ConfigProperty {
	out := make([]ConfigProperty, len(a.config))
	copy(out, a.config)
	return out
}

// hadoopAttrs is the mutable staging counterpart of hadoopAction, shared by
// the concrete action builders.
type hadoopAttrs struct {
	resourceManager string
	nameNode        string
	prepare         *Prepare
	launcher        *Launcher
	args            []string
	files           []string
	archives        []string
	config          []ConfigProperty
}

func (s *hadoopAttrs) setConfigProperty(name, value string) {
	for i := range s.config {
		if s.config[i].Name == name {
			s.config[i].Value = value
			return
		}
	}
	s.config = append(s.config, ConfigProperty{Name: name, Value: value})
}

// freeze copies the staged attributes into an immutable hadoopAction.
func (s *hadoopAttrs) freeze() hadoopAction {
	return hadoopAction{
		resourceManager: s.resourceManager,
		nameNode:        s.nameNode,
		prepare:         s.prepare,
		launcher:        s.launcher,
		args:            copyStrings(s.args),
		files:           copyStrings(s.files),
		archives:        copyStrings(s.archives),
		config:          append([]ConfigProperty(nil), s.config...),
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
