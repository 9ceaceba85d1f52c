package api

// ShellAction describes a shell command executed as one workflow action.
type ShellAction struct {
	hadoopAction
	exec          string
	envVars       []string
	captureOutput bool
}

// Kind implements Action.
func (a *ShellAction) Kind() string { return "shell" }

// Exec returns the executable to run.
func (a *ShellAction) Exec() string { return a.exec }

// EnvVars returns the NAME=VALUE environment entries in declaration order.
func (a *ShellAction) EnvVars() []string { return copyStrings(a.envVars) }

// CaptureOutput reports whether the action captures the command's stdout.
func (a *ShellAction) CaptureOutput() bool { return a.captureOutput }

func (a *ShellAction) validate() error {
	if a.exec == "" {
		return NewValidationError("exec", "shell actions require an executable")
	}
	return nil
}

// ShellBuilder stages a ShellAction and the node wrapping it.
type ShellBuilder struct {
	node          nodeBuilder
	attrs         hadoopAttrs
	exec          string
	envVars       []string
	captureOutput bool
}

// NewShell creates a builder for a shell action node with the given name.
func NewShell(name string) *ShellBuilder {
	b := &ShellBuilder{}
	b.node.setName(name)
	return b
}

// WithParent declares a dependency on an existing node. May be called
// multiple times; duplicates are ignored.
func (b *ShellBuilder) WithParent(parent *Node) *ShellBuilder {
	b.node.addParent(parent)
	return b
}

// WithErrorHandler attaches the failure-path target resolved at translation
// time.
func (b *ShellBuilder) WithErrorHandler(handler *ErrorHandler) *ShellBuilder {
	b.node.setErrorHandler(handler)
	return b
}

// WithResourceManager sets the resource manager address.
func (b *ShellBuilder) WithResourceManager(addr string) *ShellBuilder {
	b.attrs.resourceManager = addr
	return b
}

// WithNameNode sets the name node address.
func (b *ShellBuilder) WithNameNode(addr string) *ShellBuilder {
	b.attrs.nameNode = addr
	return b
}

// WithPrepare sets the prepare steps run before the action.
func (b *ShellBuilder) WithPrepare(prepare *Prepare) *ShellBuilder {
	b.attrs.prepare = prepare
	return b
}

// WithLauncher sets the launcher configuration.
func (b *ShellBuilder) WithLauncher(launcher *Launcher) *ShellBuilder {
	b.attrs.launcher = launcher
	return b
}

// WithExec sets the executable to run.
func (b *ShellBuilder) WithExec(exec string) *ShellBuilder {
	b.exec = exec
	return b
}

// WithArg appends one command argument.
func (b *ShellBuilder) WithArg(arg string) *ShellBuilder {
	b.attrs.args = append(b.attrs.args, arg)
	return b
}

// WithEnvVar appends one NAME=VALUE environment entry.
func (b *ShellBuilder) WithEnvVar(envVar string) *ShellBuilder {
	b.envVars = append(b.envVars, envVar)
	return b
}

// WithFile appends a file made available to the command.
func (b *ShellBuilder) WithFile(path string) *ShellBuilder {
	b.attrs.files = append(b.attrs.files, path)
	return b
}

// WithArchive appends an archive made available to the command.
func (b *ShellBuilder) WithArchive(path string) *ShellBuilder {
	b.attrs.archives = append(b.attrs.archives, path)
	return b
}

// WithConfigProperty sets one key/value configuration entry.
func (b *ShellBuilder) WithConfigProperty(name, value string) *ShellBuilder {
	b.attrs.setConfigProperty(name, value)
	return b
}

// WithCaptureOutput makes the action capture the command's stdout.
func (b *ShellBuilder) WithCaptureOutput() *ShellBuilder {
	b.captureOutput = true
	return b
}

// Build validates the staged configuration, freezes it into a Node, and
// links the node to its declared parents. The builder cannot be reused.
func (b *ShellBuilder) Build() (*Node, error) {
	action := &ShellAction{
		hadoopAction:  b.attrs.freeze(),
		exec:          b.exec,
		envVars:       copyStrings(b.envVars),
		captureOutput: b.captureOutput,
	}
	return b.node.build(action)
}

func (b *ShellBuilder) staging() *nodeBuilder { return &b.node }
