package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/kernelforge/internal/config"
	"github.com/vk/kernelforge/internal/ctxlog"
	"github.com/vk/kernelforge/internal/fsutil"
	"github.com/vk/kernelforge/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to locate configuration files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl configuration files found under '%s'", path)
	}
	logger.Debug("Configuration files located.", "count", len(files))

	model := &config.Model{
		Targets: make(map[string]*config.TargetDefinition),
	}

	parser := hclparse.NewParser()
	for _, file := range files {
		parsed, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse '%s': %w", file, diags)
		}

		var root schema.Root
		if diags := gohcl.DecodeBody(parsed.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode '%s': %w", file, diags)
		}
		l.warnUnknown(ctx, root.Remain, file, "")

		if root.Project != "" {
			model.Project = root.Project
		}

		for _, t := range root.Targets {
			l.warnUnknown(ctx, t.Remain, file, fmt.Sprintf("target '%s'", t.Name))
			def, err := translateTarget(t)
			if err != nil {
				return nil, fmt.Errorf("invalid target '%s' in '%s': %w", t.Name, file, err)
			}
			if _, exists := model.Targets[t.Name]; exists {
				return nil, fmt.Errorf("target '%s' declared more than once", t.Name)
			}
			model.Targets[t.Name] = def
		}

		sourceDir := filepath.Dir(file)
		for _, k := range root.Kernels {
			l.warnUnknown(ctx, k.Remain, file, fmt.Sprintf("kernel '%s'", k.Name))
			spec, err := translateKernel(k, sourceDir)
			if err != nil {
				return nil, fmt.Errorf("invalid kernel '%s' in '%s': %w", k.Name, file, err)
			}
			model.Kernels = append(model.Kernels, spec)
		}
	}

	if model.Project == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to derive project name: %w", err)
		}
		if info, err := os.Stat(abs); err == nil && !info.IsDir() {
			abs = filepath.Dir(abs)
		}
		model.Project = filepath.Base(abs)
	}

	logger.Debug("Configuration loaded and translated into unified model.",
		"project", model.Project, "targets", len(model.Targets), "kernels", len(model.Kernels))
	return model, nil
}

// warnUnknown logs every attribute left over after schema decoding. Unknown
// options warn instead of failing so caller typos stay forward-compatible.
func (l *Loader) warnUnknown(ctx context.Context, remain hcl.Body, file, scope string) {
	if remain == nil {
		return
	}
	logger := ctxlog.FromContext(ctx)
	attrs, _ := remain.JustAttributes()
	for name := range attrs {
		if scope == "" {
			logger.Warn("Ignoring unrecognized option.", "option", name, "file", file)
		} else {
			logger.Warn("Ignoring unrecognized option.", "option", name, "in", scope, "file", file)
		}
	}
}
