package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/kernelforge/internal/config"
	"github.com/vk/kernelforge/internal/ctxlog"
	"github.com/vk/kernelforge/internal/docs"
	"github.com/vk/kernelforge/internal/install"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	model   *config.Model
	locator install.Locator
	runner  install.Runner
	fetcher docs.Fetcher
}

// Option overrides one of the App's external collaborators, primarily so
// tests can substitute fakes.
type Option func(*App)

// WithLocator replaces the registration-tool locator.
func WithLocator(l install.Locator) Option {
	return func(a *App) { a.locator = l }
}

// WithRunner replaces the registration subprocess runner.
func WithRunner(r install.Runner) Option {
	return func(a *App) { a.runner = r }
}

// WithFetcher replaces the tag-file fetcher.
func WithFetcher(f docs.Fetcher) Option {
	return func(a *App) { a.fetcher = f }
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a loaded
// configuration model.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded.", "kernels", len(model.Kernels), "targets", len(model.Targets))

	app := &App{
		outW:    outW,
		logger:  logger,
		model:   model,
		locator: install.LookupTool,
		runner:  install.ExecRunner{},
		fetcher: docs.NewHTTPFetcher(nil),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
