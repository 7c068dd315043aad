package app

import (
	"context"
	"fmt"

	"github.com/vk/kernelforge/internal/buildgraph"
	"github.com/vk/kernelforge/internal/collector"
	"github.com/vk/kernelforge/internal/compose"
	"github.com/vk/kernelforge/internal/config"
	"github.com/vk/kernelforge/internal/ctxlog"
	"github.com/vk/kernelforge/internal/docs"
	"github.com/vk/kernelforge/internal/install"
	"github.com/vk/kernelforge/internal/validate"
)

// Run executes the generation pipeline once per kernel definition:
// aggregation, validation, composition, documentation, registration. Each
// stage completes fully before the next begins.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// Tool discovery short-circuits everything else. A required session with
	// no tool is fatal before any work; with no required session the whole
	// pass degrades to a no-op so projects without the interpreter toolchain
	// stay buildable.
	toolPath, found := a.locator()
	if !found {
		for _, spec := range a.model.Kernels {
			if spec.Required {
				return install.MissingToolError()
			}
		}
		a.logger.Warn("Registration tool not found on PATH; skipping kernel generation.")
		return nil
	}

	graph := buildgraph.New(a.model)
	for _, spec := range a.model.Kernels {
		if err := a.runKernel(ctx, appConfig, graph, toolPath, spec); err != nil {
			return fmt.Errorf("kernel '%s': %w", spec.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runKernel drives one session definition through the pipeline.
func (a *App) runKernel(ctx context.Context, appConfig *Config, graph buildgraph.Graph, toolPath string, spec *config.KernelSpec) error {
	ctx = ctxlog.With(ctx, "kernel", spec.Name)
	logger := ctxlog.FromContext(ctx)

	session, err := collector.Collect(ctx, graph, spec, a.model.Project)
	if err != nil {
		return err
	}

	if err := validate.Validate(ctx, session); err != nil {
		return err
	}

	artifacts, err := compose.Compose(session, appConfig.OutputDir)
	if err != nil {
		return err
	}

	// Both artifacts render in memory before anything touches the disk.
	rendered, err := artifacts.Render(ctx, graph.Resolver())
	if err != nil {
		return err
	}

	if appConfig.DryRun {
		logger.Info("Dry run: artifacts rendered but not written.",
			"header", artifacts.HeaderPath, "manifest", artifacts.ManifestPath, "id", artifacts.ID)
		return nil
	}

	if err := artifacts.Write(ctx, rendered); err != nil {
		return err
	}
	logger.Info("Kernel artifacts generated.", "display_name", artifacts.DisplayName, "dir", artifacts.KernelDir)

	var documentation *docs.Result
	if len(spec.DoxygenURLs) > 0 {
		registry := docs.NewRegistry(a.fetcher, appConfig.OutputDir, spec.SourceDir)
		documentation, err = registry.Prepare(ctx, spec.DoxygenURLs, spec.DoxygenTagfiles)
		if err != nil {
			return err
		}
		logger.Info("Documentation manifest prepared.", "pairs", len(documentation.Fragments))
	}

	if spec.NoInstall || appConfig.SkipInstall {
		logger.Info("Registration skipped.", "no_install", spec.NoInstall, "skip_install", appConfig.SkipInstall)
		return nil
	}

	driver := install.NewDriver(a.runner, toolPath, appConfig.InstallPrefix)
	return driver.Install(ctx, artifacts, documentation)
}
