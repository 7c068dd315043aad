package collector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/kernelforge/internal/buildgraph"
	"github.com/vk/kernelforge/internal/collector"
	"github.com/vk/kernelforge/internal/config"
)

func modelWith(targets ...*config.TargetDefinition) *config.Model {
	m := &config.Model{
		Project: "demo",
		Targets: make(map[string]*config.TargetDefinition),
	}
	for _, t := range targets {
		m.Targets[t.Name] = t
	}
	return m
}

func sharedLib(name string, std *config.Standard) *config.TargetDefinition {
	return &config.TargetDefinition{
		Name:     name,
		Kind:     config.KindSharedLibrary,
		Standard: std,
	}
}

func TestCollect_ManualEntriesPrecedeTargetEntries(t *testing.T) {
	libfoo := sharedLib("libfoo", nil)
	libfoo.IncludeDirectories = []string{"/c"}
	graph := buildgraph.New(modelWith(libfoo))

	spec := &config.KernelSpec{
		Name:               "demo",
		Targets:            []string{"libfoo"},
		IncludeDirectories: []string{"/a", "/b"},
		Standard:           config.Std17,
	}

	session, err := collector.Collect(context.Background(), graph, spec, "demo")
	require.NoError(t, err)

	var dirs []string
	for _, v := range session.IncludeDirectories {
		dirs = append(dirs, v.Raw())
	}
	require.Equal(t, []string{"/a", "/b", "/c"}, dirs)
}

func TestCollect_KeepsDuplicates(t *testing.T) {
	libfoo := sharedLib("libfoo", nil)
	libfoo.CompileFlags = []string{"-O2"}
	graph := buildgraph.New(modelWith(libfoo))

	spec := &config.KernelSpec{
		Name:         "demo",
		Targets:      []string{"libfoo"},
		CompileFlags: []string{"-O2"},
		Standard:     config.Std17,
	}

	session, err := collector.Collect(context.Background(), graph, spec, "demo")
	require.NoError(t, err)
	require.Len(t, session.CompileFlags, 2)
}

func TestCollect_TargetArtifactBecomesLinkLibrary(t *testing.T) {
	graph := buildgraph.New(modelWith(sharedLib("libfoo", nil)))

	spec := &config.KernelSpec{
		Name:          "demo",
		Targets:       []string{"libfoo"},
		LinkLibraries: []string{"/opt/libmanual.so"},
		Standard:      config.Std17,
	}

	session, err := collector.Collect(context.Background(), graph, spec, "demo")
	require.NoError(t, err)
	require.Len(t, session.LinkLibraries, 2)
	require.Equal(t, "/opt/libmanual.so", session.LinkLibraries[0].Raw())
	require.True(t, session.LinkLibraries[1].IsDeferred())
}

func TestCollect_StaticLibraryFails(t *testing.T) {
	static := &config.TargetDefinition{Name: "libstatic", Kind: config.KindStaticLibrary}
	graph := buildgraph.New(modelWith(static))

	spec := &config.KernelSpec{
		Name:     "demo",
		Targets:  []string{"libstatic"},
		Standard: config.Std17,
	}

	_, err := collector.Collect(context.Background(), graph, spec, "demo")
	var kindErr *config.TargetKindError
	require.True(t, errors.As(err, &kindErr))
	require.Equal(t, "libstatic", kindErr.Target)
}

func TestCollect_TargetNewerThanSessionFails(t *testing.T) {
	std17 := config.Std17
	graph := buildgraph.New(modelWith(sharedLib("libfoo", &std17)))

	spec := &config.KernelSpec{
		Name:     "demo",
		Targets:  []string{"libfoo"},
		Standard: config.Std14,
	}

	_, err := collector.Collect(context.Background(), graph, spec, "demo")
	var mismatchErr *config.StandardMismatchError
	require.True(t, errors.As(err, &mismatchErr))
	require.Equal(t, config.Std17, mismatchErr.TargetStandard)
	require.Equal(t, config.Std14, mismatchErr.Requested)
}

func TestCollect_TargetOlderThanSessionSucceeds(t *testing.T) {
	std11 := config.Std11
	graph := buildgraph.New(modelWith(sharedLib("libfoo", &std11)))

	spec := &config.KernelSpec{
		Name:     "demo",
		Targets:  []string{"libfoo"},
		Standard: config.Std17,
	}

	_, err := collector.Collect(context.Background(), graph, spec, "demo")
	require.NoError(t, err)
}

func TestCollect_UnknownTargetFails(t *testing.T) {
	graph := buildgraph.New(modelWith())

	spec := &config.KernelSpec{
		Name:     "demo",
		Targets:  []string{"libnope"},
		Standard: config.Std17,
	}

	_, err := collector.Collect(context.Background(), graph, spec, "demo")
	var unknownErr *config.UnknownTargetError
	require.True(t, errors.As(err, &unknownErr))
}
