// Package collector aggregates a kernel session's compilation properties:
// the manually supplied lists from the kernel block merged with the
// transitively exported metadata of every referenced build-graph target.
//
// Merging is plain ordered concatenation, manual entries first, then
// target-derived entries in target order. Duplicates are kept on purpose:
// later directives can shadow earlier ones for the interpreter, so order is
// significant and deduplication would change behavior.
package collector

import (
	"context"

	"github.com/vk/kernelforge/internal/buildgraph"
	"github.com/vk/kernelforge/internal/config"
	"github.com/vk/kernelforge/internal/ctxlog"
	"github.com/vk/kernelforge/internal/genex"
)

// Session is the aggregated, validated-later view of one kernel definition.
// All property sequences preserve aggregation order and may contain deferred
// values; nothing is resolved here.
type Session struct {
	Spec    *config.KernelSpec
	Project string
	Targets []*buildgraph.Target

	IncludeDirectories []genex.Value
	LibraryDirectories []genex.Value
	LinkLibraries      []genex.Value
	CompileFlags       []genex.Value
	CompileDefinitions []genex.Value
	SetupHeaders       []string
}

// Collect resolves every target reference in the spec and merges its exported
// properties with the manually supplied ones. Graph queries are the only side
// effect; the graph itself is never mutated.
func Collect(ctx context.Context, graph buildgraph.Graph, spec *config.KernelSpec, project string) (*Session, error) {
	logger := ctxlog.FromContext(ctx)

	session := &Session{
		Spec:               spec,
		Project:            project,
		IncludeDirectories: genex.NewAll(spec.IncludeDirectories),
		LibraryDirectories: genex.NewAll(spec.LibraryDirectories),
		LinkLibraries:      genex.NewAll(spec.LinkLibraries),
		CompileFlags:       genex.NewAll(spec.CompileFlags),
		CompileDefinitions: genex.NewAll(spec.CompileDefinitions),
		SetupHeaders:       spec.SetupHeaders,
	}

	for _, name := range spec.Targets {
		target, err := graph.Lookup(ctx, name)
		if err != nil {
			return nil, err
		}

		// Dynamic loading requires a shared library artifact.
		if target.Kind != config.KindSharedLibrary {
			return nil, &config.TargetKindError{Target: name, Kind: target.Kind}
		}

		// A target may require a newer standard than the session requests;
		// the reverse direction is fine.
		if target.Standard != nil && target.Standard.NewerThan(spec.Standard) {
			return nil, &config.StandardMismatchError{
				Target:         name,
				TargetStandard: *target.Standard,
				Requested:      spec.Standard,
			}
		}

		session.Targets = append(session.Targets, target)
		session.IncludeDirectories = append(session.IncludeDirectories, target.IncludeDirectories...)
		session.CompileFlags = append(session.CompileFlags, target.CompileFlags...)
		session.CompileDefinitions = append(session.CompileDefinitions, target.CompileDefinitions...)
		session.LinkLibraries = append(session.LinkLibraries, target.Artifact)

		logger.Debug("Aggregated target properties.", "target", name,
			"include_directories", len(target.IncludeDirectories),
			"compile_flags", len(target.CompileFlags),
			"compile_definitions", len(target.CompileDefinitions))
	}

	return session, nil
}
