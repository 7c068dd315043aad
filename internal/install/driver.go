package install

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vk/kernelforge/internal/compose"
	"github.com/vk/kernelforge/internal/ctxlog"
	"github.com/vk/kernelforge/internal/docs"
	"github.com/vk/kernelforge/internal/fsutil"
)

// Runner executes the external registration tool.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs the tool as a real subprocess.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("'%s' failed: %w\n%s", name, err, out)
	}
	return nil
}

// Driver performs the idempotent registration of one session's artifacts.
type Driver struct {
	runner Runner
	tool   string
	prefix string
}

// NewDriver creates a driver registering through the tool at toolPath and
// copying documentation resources under prefix.
func NewDriver(runner Runner, toolPath, prefix string) *Driver {
	return &Driver{runner: runner, tool: toolPath, prefix: prefix}
}

// DefaultPrefix returns the external tool's data directory:
// $JUPYTER_DATA_DIR when set, otherwise the per-user default.
func DefaultPrefix() string {
	if dir := os.Getenv("JUPYTER_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "jupyter")
	}
	return filepath.Join(home, ".local", "share", "jupyter")
}

// Install copies documentation resources into the tool's directories and
// registers the kernel. Re-running with identical inputs overwrites the same
// destinations and re-registers the same identifier, so the operation is
// idempotent.
func (d *Driver) Install(ctx context.Context, artifacts *compose.Artifacts, documentation *docs.Result) error {
	logger := ctxlog.FromContext(ctx)

	if documentation != nil {
		tagConfigDir := filepath.Join(d.prefix, "cling", "tags.d")
		for _, fragment := range documentation.Fragments {
			if err := fsutil.CopyFile(fragment, filepath.Join(tagConfigDir, filepath.Base(fragment))); err != nil {
				return fmt.Errorf("failed to install documentation fragment: %w", err)
			}
		}
		tagfileDir := filepath.Join(d.prefix, "cling", "tagfiles")
		for _, tagfile := range documentation.Tagfiles {
			if err := fsutil.CopyFile(tagfile, filepath.Join(tagfileDir, filepath.Base(tagfile))); err != nil {
				return fmt.Errorf("failed to install tag file: %w", err)
			}
		}
		logger.Debug("Documentation resources installed.",
			"fragments", len(documentation.Fragments), "tagfiles", len(documentation.Tagfiles))
	}

	logger.Info("Registering kernel.", "id", artifacts.ID, "dir", artifacts.KernelDir)
	return d.runner.Run(ctx, d.tool,
		"install", "--user", "--replace",
		"--name", artifacts.ID,
		artifacts.KernelDir,
	)
}
