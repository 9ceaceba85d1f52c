package api

// SparkAction describes a Spark job submitted as one workflow action.
type SparkAction struct {
	hadoopAction
	master    string
	mode      string
	jobName   string
	class     string
	jar       string
	sparkOpts string
}

// Kind implements Action.
func (a *SparkAction) Kind() string { return "spark" }

// Master returns the Spark master, e.g. "yarn".
func (a *SparkAction) Master() string { return a.master }

// Mode returns the deploy mode, e.g. "cluster".
func (a *SparkAction) Mode() string { return a.mode }

// JobName returns the Spark job name shown by the cluster UI.
func (a *SparkAction) JobName() string { return a.jobName }

// Class returns the main class, or "" for non-JVM jobs.
func (a *SparkAction) Class() string { return a.class }

// Jar returns the path of the jar or script to submit.
func (a *SparkAction) Jar() string { return a.jar }

// SparkOpts returns the raw spark-submit options string.
func (a *SparkAction) SparkOpts() string { return a.sparkOpts }

func (a *SparkAction) validate() error {
	if a.master == "" {
		return NewValidationError("master", "spark actions require a master")
	}
	if a.jar == "" {
		return NewValidationError("jar", "spark actions require a jar")
	}
	return nil
}

// SparkBuilder stages a SparkAction and the node wrapping it.
type SparkBuilder struct {
	node      nodeBuilder
	attrs     hadoopAttrs
	master    string
	mode      string
	jobName   string
	class     string
	jar       string
	sparkOpts string
}

// NewSpark creates a builder for a Spark action node with the given name.
func NewSpark(name string) *SparkBuilder {
	b := &SparkBuilder{}
	b.node.setName(name)
	return b
}

// WithParent declares a dependency on an existing node. May be called
// multiple times; duplicates are ignored.
func (b *SparkBuilder) WithParent(parent *Node) *SparkBuilder {
	b.node.addParent(parent)
	return b
}

// WithErrorHandler attaches the failure-path target resolved at translation
// time.
func (b *SparkBuilder) WithErrorHandler(handler *ErrorHandler) *SparkBuilder {
	b.node.setErrorHandler(handler)
	return b
}

// WithResourceManager sets the resource manager address.
func (b *SparkBuilder) WithResourceManager(addr string) *SparkBuilder {
	b.attrs.resourceManager = addr
	return b
}

// WithNameNode sets the name node address.
func (b *SparkBuilder) WithNameNode(addr string) *SparkBuilder {
	b.attrs.nameNode = addr
	return b
}

// WithPrepare sets the prepare steps run before the action.
func (b *SparkBuilder) WithPrepare(prepare *Prepare) *SparkBuilder {
	b.attrs.prepare = prepare
	return b
}

// WithLauncher sets the launcher configuration.
func (b *SparkBuilder) WithLauncher(launcher *Launcher) *SparkBuilder {
	b.attrs.launcher = launcher
	return b
}

// WithMaster sets the Spark master.
func (b *SparkBuilder) WithMaster(master string) *SparkBuilder {
	b.master = master
	return b
}

// WithMode sets the deploy mode.
func (b *SparkBuilder) WithMode(mode string) *SparkBuilder {
	b.mode = mode
	return b
}

// WithJobName sets the Spark job name.
func (b *SparkBuilder) WithJobName(name string) *SparkBuilder {
	b.jobName = name
	return b
}

// WithClass sets the main class.
func (b *SparkBuilder) WithClass(class string) *SparkBuilder {
	b.class = class
	return b
}

// WithJar sets the jar or script to submit.
func (b *SparkBuilder) WithJar(jar string) *SparkBuilder {
	b.jar = jar
	return b
}

// WithSparkOpts sets the raw spark-submit options string.
func (b *SparkBuilder) WithSparkOpts(opts string) *SparkBuilder {
	b.sparkOpts = opts
	return b
}

// WithArg appends one job argument.
func (b *SparkBuilder) WithArg(arg string) *SparkBuilder {
	b.attrs.args = append(b.attrs.args, arg)
	return b
}

// WithFile appends a file made available to the job.
func (b *SparkBuilder) WithFile(path string) *SparkBuilder {
	b.attrs.files = append(b.attrs.files, path)
	return b
}

// WithArchive appends an archive made available to the job.
func (b *SparkBuilder) WithArchive(path string) *SparkBuilder {
	b.attrs.archives = append(b.attrs.archives, path)
	return b
}

// WithConfigProperty sets one key/value configuration entry.
func (b *SparkBuilder) WithConfigProperty(name, value string) *SparkBuilder {
	b.attrs.setConfigProperty(name, value)
	return b
}

// Build validates the staged configuration, freezes it into a Node, and
// links the node to its declared parents. The builder cannot be reused.
func (b *SparkBuilder) Build() (*Node, error) {
	action := &SparkAction{
		hadoopAction: b.attrs.freeze(),
		master:       b.master,
		mode:         b.mode,
		jobName:      b.jobName,
		class:        b.class,
		jar:          b.jar,
		sparkOpts:    b.sparkOpts,
	}
	return b.node.build(action)
}

func (b *SparkBuilder) staging() *nodeBuilder { return &b.node }
