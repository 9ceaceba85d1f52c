package api

// HiveAction describes a Hive script or query executed as one workflow
// action. Exactly one of script and query must be set.
type HiveAction struct {
	hadoopAction
	script string
	query  string
	params []string
}

// Kind implements Action.
func (a *HiveAction) Kind() string { return "hive" }

// Script returns the path of the Hive script, or "" when a query is used.
func (a *HiveAction) Script() string { return a.script }

// Query returns the inline Hive query, or "" when a script is used.
func (a *HiveAction) Query() string { return a.query }

// Params returns the script parameters in declaration order.
func (a *HiveAction) Params() []string { return copyStrings(a.params) }

func (a *HiveAction) validate() error {
	if a.script == "" && a.query == "" {
		return NewValidationError("script", "hive actions require a script or a query")
	}
	if a.script != "" && a.query != "" {
		return NewValidationError("query", "hive actions cannot have both a script and a query")
	}
	return nil
}

// HiveBuilder stages a HiveAction and the node wrapping it.
type HiveBuilder struct {
	node   nodeBuilder
	attrs  hadoopAttrs
	script string
	query  string
	params []string
}

// NewHive creates a builder for a Hive action node with the given name.
func NewHive(name string) *HiveBuilder {
	b := &HiveBuilder{}
	b.node.setName(name)
	return b
}

// WithParent declares a dependency on an existing node. May be called
// multiple times; duplicates are ignored.
func (b *HiveBuilder) WithParent(parent *Node) *HiveBuilder {
	b.node.addParent(parent)
	return b
}

// WithErrorHandler attaches the failure-path target resolved at translation
// time.
func (b *HiveBuilder) WithErrorHandler(handler *ErrorHandler) *HiveBuilder {
	b.node.setErrorHandler(handler)
	return b
}

// WithResourceManager sets the resource manager address.
func (b *HiveBuilder) WithResourceManager(addr string) *HiveBuilder {
	b.attrs.resourceManager = addr
	return b
}

// WithNameNode sets the name node address.
func (b *HiveBuilder) WithNameNode(addr string) *HiveBuilder {
	b.attrs.nameNode = addr
	return b
}

// WithPrepare sets the prepare steps run before the action.
func (b *HiveBuilder) WithPrepare(prepare *Prepare) *HiveBuilder {
	b.attrs.prepare = prepare
	return b
}

// WithLauncher sets the launcher configuration.
func (b *HiveBuilder) WithLauncher(launcher *Launcher) *HiveBuilder {
	b.attrs.launcher = launcher
	return b
}

// WithScript sets the path of the Hive script to run.
func (b *HiveBuilder) WithScript(path string) *HiveBuilder {
	b.script = path
	return b
}

// WithQuery sets an inline Hive query to run.
func (b *HiveBuilder) WithQuery(query string) *HiveBuilder {
	b.query = query
	return b
}

// WithParam appends one script parameter.
func (b *HiveBuilder) WithParam(param string) *HiveBuilder {
	b.params = append(b.params, param)
	return b
}

// WithArg appends one command argument.
func (b *HiveBuilder) WithArg(arg string) *HiveBuilder {
	b.attrs.args = append(b.attrs.args, arg)
	return b
}

// WithFile appends a file made available to the action.
func (b *HiveBuilder) WithFile(path string) *HiveBuilder {
	b.attrs.files = append(b.attrs.files, path)
	return b
}

// WithArchive appends an archive made available to the action.
func (b *HiveBuilder) WithArchive(path string) *HiveBuilder {
	b.attrs.archives = append(b.attrs.archives, path)
	return b
}

// WithConfigProperty sets one key/value configuration entry.
func (b *HiveBuilder) WithConfigProperty(name, value string) *HiveBuilder {
	b.attrs.setConfigProperty(name, value)
	return b
}

// Build validates the staged configuration, freezes it into a Node, and
// links the node to its declared parents. The builder cannot be reused.
func (b *HiveBuilder) Build() (*Node, error) {
	action := &HiveAction{
		hadoopAction: b.attrs.freeze(),
		script:       b.script,
		query:        b.query,
		params:       copyStrings(b.params),
	}
	return b.node.build(action)
}

func (b *HiveBuilder) staging() *nodeBuilder { return &b.node }
