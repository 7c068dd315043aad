package buildgraph

import (
	"context"
	"fmt"

	"github.com/vk/kernelforge/internal/config"
	"github.com/vk/kernelforge/internal/genex"
)

// ManifestGraph serves Graph queries from the target manifest the host build
// graph exported into the configuration tree.
type ManifestGraph struct {
	targets map[string]*Target
}

// New builds a ManifestGraph from the loaded configuration model.
func New(model *config.Model) *ManifestGraph {
	targets := make(map[string]*Target, len(model.Targets))
	for name, def := range model.Targets {
		t := &Target{
			Name:               name,
			Kind:               def.Kind,
			Standard:           def.Standard,
			IncludeDirectories: genex.NewAll(def.IncludeDirectories),
			CompileFlags:       genex.NewAll(def.CompileFlags),
			CompileDefinitions: genex.NewAll(def.CompileDefinitions),
		}
		if def.Artifact != "" {
			t.Artifact = genex.Literal(def.Artifact)
		} else {
			t.Artifact = genex.Deferred(fmt.Sprintf("$<TARGET_FILE:%s>", name))
		}
		targets[name] = t
	}
	return &ManifestGraph{targets: targets}
}

// Lookup implements Graph.
func (g *ManifestGraph) Lookup(ctx context.Context, name string) (*Target, error) {
	t, ok := g.targets[name]
	if !ok {
		return nil, &config.UnknownTargetError{Target: name}
	}
	return t, nil
}

// Resolver implements Graph.
func (g *ManifestGraph) Resolver() genex.Resolver {
	return &manifestResolver{graph: g}
}
