package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildShell(t *testing.T, name string, parents ...*Node) *Node {
	t.Helper()

	b := NewShell(name).WithExec("run.sh")
	for _, p := range parents {
		b.WithParent(p)
	}
	n, err := b.Build()
	require.NoError(t, err)
	return n
}

func TestBuild_ParentChildSymmetry(t *testing.T) {
	t.Parallel()

	p1 := buildShell(t, "p1")
	p2 := buildShell(t, "p2")

	x, err := NewShell("x").
		WithExec("x.sh").
		WithParent(p1).
		WithParent(p2).
		Build()
	require.NoError(t, err)

	require.Equal(t, []*Node{p1, p2}, x.Parents())
	require.Equal(t, []*Node{x}, p1.Children())
	require.Equal(t, []*Node{x}, p2.Children())
}

func TestBuild_DuplicateParentIgnored(t *testing.T) {
	t.Parallel()

	p := buildShell(t, "p")

	x, err := NewShell("x").
		WithExec("x.sh").
		WithParent(p).
		WithParent(p).
		Build()
	require.NoError(t, err)

	require.Equal(t, []*Node{p}, x.Parents())
	require.Equal(t, []*Node{x}, p.Children())
}

func TestBuild_ValidationFailureCommitsNoEdges(t *testing.T) {
	t.Parallel()

	p := buildShell(t, "p")

	_, err := NewShell("x").WithParent(p).Build()
	require.Error(t, err)

	field, ok := IsValidationError(err)
	require.True(t, ok)
	require.Equal(t, "exec", field)

	// The failed build must not have registered x as a child of p.
	require.Empty(t, p.Children())
}

func TestBuild_EmptyNameFails(t *testing.T) {
	t.Parallel()

	_, err := NewShell("").WithExec("run.sh").Build()
	field, ok := IsValidationError(err)
	require.True(t, ok)
	require.Equal(t, "name", field)
}

func TestBuilder_CannotBeReused(t *testing.T) {
	t.Parallel()

	b := NewShell("once").WithExec("run.sh")

	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	require.True(t, IsStateError(err))
}

func TestBuilder_ParentAfterBuildIsRejected(t *testing.T) {
	t.Parallel()

	p := buildShell(t, "p")

	b := NewShell("x").WithExec("x.sh")
	_, err := b.Build()
	require.NoError(t, err)

	b.WithParent(p)
	_, err = b.Build()
	require.True(t, IsStateError(err))
	require.Empty(t, p.Children())
}

func TestBuild_NilParentIsRejected(t *testing.T) {
	t.Parallel()

	_, err := NewShell("x").WithExec("x.sh").WithParent(nil).Build()
	require.True(t, IsStateError(err))
}

func TestHiveValidation(t *testing.T) {
	t.Parallel()

	_, err := NewHive("h").Build()
	field, ok := IsValidationError(err)
	require.True(t, ok)
	require.Equal(t, "script", field)

	_, err = NewHive("h").WithScript("/a.sql").WithQuery("SELECT 1").Build()
	field, ok = IsValidationError(err)
	require.True(t, ok)
	require.Equal(t, "query", field)

	_, err = NewHive("h").WithQuery("SELECT 1").Build()
	require.NoError(t, err)
}

func TestSparkValidation(t *testing.T) {
	t.Parallel()

	_, err := NewSpark("s").WithJar("job.jar").Build()
	field, ok := IsValidationError(err)
	require.True(t, ok)
	require.Equal(t, "master", field)

	_, err = NewSpark("s").WithMaster("yarn").Build()
	field, ok = IsValidationError(err)
	require.True(t, ok)
	require.Equal(t, "jar", field)
}
