package compose

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/kernelforge/internal/collector"
	"github.com/vk/kernelforge/internal/genex"
)

// interpreterBinary launches the interpreter kernel; Jupyter resolves it on
// PATH at session start.
const interpreterBinary = "jupyter-cling-kernel"

// connectionFilePlaceholder is substituted by Jupyter when it spawns the
// kernel. It must survive generation verbatim.
const connectionFilePlaceholder = "{connection_file}"

// KernelManifest is the JSON shape of kernel.json.
type KernelManifest struct {
	DisplayName string   `json:"display_name"`
	Argv        []string `json:"argv"`
	Language    string   `json:"language"`
}

// DisplayName returns the session's display name, deriving the templated
// default from the standard level and project name when none was given.
func DisplayName(session *collector.Session) string {
	if session.Spec.KernelName != "" {
		return session.Spec.KernelName
	}
	return fmt.Sprintf("%s (%s)", session.Spec.Standard, session.Project)
}

// Manifest is the kernel.json plan. Compile flags and definitions may still
// be deferred; they are flattened at render time.
type Manifest struct {
	session    *collector.Session
	headerPath string
}

// NewManifest plans the session manifest. headerPath is the bootstrap
// header's final absolute location, referenced from argv.
func NewManifest(session *collector.Session, headerPath string) *Manifest {
	return &Manifest{session: session, headerPath: headerPath}
}

// Render resolves the argument list and produces the kernel.json bytes.
// Every compile flag and definition is independently quoted so the
// interpreter receives it as one argument even if it contains spaces; empty
// deferred values contribute zero argv entries.
func (m *Manifest) Render(ctx context.Context, r genex.Resolver) ([]byte, error) {
	spec := m.session.Spec

	argv := []string{
		interpreterBinary,
		"-f",
		connectionFilePlaceholder,
		spec.Standard.Flag(),
	}

	flags, err := genex.Flatten(ctx, r, m.session.CompileFlags)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve compile flags: %w", err)
	}
	for _, f := range flags {
		argv = append(argv, fmt.Sprintf("%q", f))
	}

	defs, err := genex.Flatten(ctx, r, m.session.CompileDefinitions)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve compile definitions: %w", err)
	}
	for _, d := range defs {
		argv = append(argv, fmt.Sprintf("%q", "-D"+d))
	}

	argv = append(argv, "-include", m.headerPath)

	manifest := KernelManifest{
		DisplayName: DisplayName(m.session),
		Argv:        argv,
		Language:    spec.Standard.LanguageTag(),
	}

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode kernel manifest: %w", err)
	}
	return append(out, '\n'), nil
}
