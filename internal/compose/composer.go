package compose

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/kernelforge/internal/collector"
	"github.com/vk/kernelforge/internal/ctxlog"
	"github.com/vk/kernelforge/internal/fsutil"
	"github.com/vk/kernelforge/internal/genex"
)

const (
	// HeaderFileName is the bootstrap header's name inside the kernel dir.
	HeaderFileName = "bootstrap.h"
	// ManifestFileName is the session manifest's name inside the kernel dir.
	ManifestFileName = "kernel.json"
)

// Artifacts groups the planned outputs of one session: where they go, the
// derived identity, and the still-deferred content plans.
type Artifacts struct {
	KernelDir    string
	HeaderPath   string
	ManifestPath string
	ID           string
	DisplayName  string

	header   *Header
	manifest *Manifest
	logos    []string
}

// Rendered holds the final artifact bytes, produced fully in memory before
// any file is touched.
type Rendered struct {
	Header   []byte
	Manifest []byte
}

// Compose plans both artifacts for a validated session under
// <outDir>/kernels/<name>. Nothing is resolved or written yet.
func Compose(session *collector.Session, outDir string) (*Artifacts, error) {
	kernelDir, err := filepath.Abs(filepath.Join(outDir, "kernels", session.Spec.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to locate kernel directory: %w", err)
	}

	headerPath := filepath.Join(kernelDir, HeaderFileName)
	displayName := DisplayName(session)

	a := &Artifacts{
		KernelDir:    kernelDir,
		HeaderPath:   headerPath,
		ManifestPath: filepath.Join(kernelDir, ManifestFileName),
		ID:           KernelID(displayName),
		DisplayName:  displayName,
		header:       NewHeader(session),
		manifest:     NewManifest(session, headerPath),
	}

	// Logo sources resolve against the declaring file's directory.
	for _, logo := range session.Spec.LogoFiles {
		if !filepath.IsAbs(logo) {
			logo = filepath.Join(session.Spec.SourceDir, logo)
		}
		a.logos = append(a.logos, logo)
	}
	return a, nil
}

// Render resolves all deferred values and produces the bytes of both
// artifacts. It fails as a whole if any value cannot be resolved.
func (a *Artifacts) Render(ctx context.Context, r genex.Resolver) (*Rendered, error) {
	header, err := a.header.Render(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to render bootstrap header: %w", err)
	}
	manifest, err := a.manifest.Render(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to render kernel manifest: %w", err)
	}
	return &Rendered{Header: header, Manifest: manifest}, nil
}

// Write places the rendered artifacts and logo assets into the kernel
// directory, overwriting idempotently on every run.
func (a *Artifacts) Write(ctx context.Context, rendered *Rendered) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.MkdirAll(a.KernelDir, 0o755); err != nil {
		return fmt.Errorf("failed to create kernel directory: %w", err)
	}
	if err := os.WriteFile(a.HeaderPath, rendered.Header, 0o644); err != nil {
		return fmt.Errorf("failed to write bootstrap header: %w", err)
	}
	if err := os.WriteFile(a.ManifestPath, rendered.Manifest, 0o644); err != nil {
		return fmt.Errorf("failed to write kernel manifest: %w", err)
	}

	for _, logo := range a.logos {
		dst := filepath.Join(a.KernelDir, filepath.Base(logo))
		if err := fsutil.CopyFile(logo, dst); err != nil {
			return fmt.Errorf("failed to copy logo asset: %w", err)
		}
	}

	logger.Debug("Artifacts written.", "kernel_dir", a.KernelDir, "logos", len(a.logos))
	return nil
}
