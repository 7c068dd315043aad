package buildgraph

import (
	"context"

	"github.com/vk/kernelforge/internal/config"
	"github.com/vk/kernelforge/internal/genex"
)

// Target is the engine's read-only view of one build-graph target.
type Target struct {
	Name     string
	Kind     config.TargetKind
	Standard *config.Standard

	IncludeDirectories []genex.Value
	CompileFlags       []genex.Value
	CompileDefinitions []genex.Value

	// Artifact is the target's built library location. It is necessarily
	// deferred unless the manifest pinned a concrete path: a build artifact's
	// final path is often only fixed at link time.
	Artifact genex.Value
}

// Graph exposes the subset of the host build graph the engine needs: target
// lookup and late resolution of generator expressions. All methods are
// read-only with respect to the graph.
type Graph interface {
	// Lookup resolves a target reference by name. Unknown names fail with
	// *config.UnknownTargetError.
	Lookup(ctx context.Context, name string) (*Target, error)

	// Resolver returns the graph's generator-expression resolver, used once
	// at artifact render time.
	Resolver() genex.Resolver
}
