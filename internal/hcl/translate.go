package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/kernelforge/internal/config"
	"github.com/vk/kernelforge/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateTarget converts the HCL-specific target schema into the agnostic model.
func translateTarget(t *schema.Target) (*config.TargetDefinition, error) {
	kind, err := config.ParseTargetKind(t.Kind)
	if err != nil {
		return nil, err
	}

	std, err := evalStandard(t.CxxStandard)
	if err != nil {
		return nil, err
	}

	return &config.TargetDefinition{
		Name:               t.Name,
		Kind:               kind,
		Standard:           std,
		IncludeDirectories: t.IncludeDirectories,
		CompileFlags:       t.CompileFlags,
		CompileDefinitions: t.CompileDefinitions,
		Artifact:           t.Artifact,
	}, nil
}

// translateKernel converts the HCL-specific kernel schema into the agnostic model.
func translateKernel(k *schema.Kernel, sourceDir string) (*config.KernelSpec, error) {
	spec := &config.KernelSpec{
		Name:               k.Name,
		Targets:            k.Targets,
		IncludeDirectories: k.IncludeDirectories,
		LinkLibraries:      k.LinkLibraries,
		LibraryDirectories: k.LibraryDirectories,
		CompileFlags:       k.CompileFlags,
		CompileDefinitions: k.CompileDefinitions,
		SetupHeaders:       k.SetupHeaders,
		DoxygenURLs:        k.DoxygenURLs,
		DoxygenTagfiles:    k.DoxygenTagfiles,
		LogoFiles:          k.LogoFiles,
		KernelName:         k.KernelName,
		Standard:           config.DefaultStandard,
		Required:           k.Required,
		NoInstall:          k.NoInstall,
		SourceDir:          sourceDir,
	}

	std, err := evalStandard(k.CxxStandard)
	if err != nil {
		return nil, err
	}
	if std != nil {
		spec.Standard = *std
	}
	return spec, nil
}

// evalStandard evaluates an optional cxx_standard expression. A nil or null
// expression means "not declared" and returns a nil Standard.
func evalStandard(expr hcl.Expression) (*config.Standard, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate cxx_standard: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return nil, fmt.Errorf("cxx_standard must be a number: %w", err)
	}
	var level int
	if err := gocty.FromCtyValue(num, &level); err != nil {
		return nil, fmt.Errorf("cxx_standard must be an integer: %w", err)
	}

	std, err := config.ParseStandard(level)
	if err != nil {
		return nil, err
	}
	return &std, nil
}
