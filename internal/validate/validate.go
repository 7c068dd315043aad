// Package validate gates artifact generation. Every check must pass before
// anything is composed or written; a failed check aborts the whole pass so no
// partial artifacts ever appear.
package validate

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vk/kernelforge/internal/collector"
	"github.com/vk/kernelforge/internal/config"
	"github.com/vk/kernelforge/internal/ctxlog"
)

// allowedLogoNames is the fixed set of asset basenames the frontend will pick
// up from a kernel directory.
var allowedLogoNames = map[string]struct{}{
	"logo-32x32.png": {},
	"logo-64x64.png": {},
}

// Validate runs the four generation gates against an aggregated session:
// standard-level membership, per-target standard compatibility, paired-list
// length equality, and URL/asset well-formedness.
func Validate(ctx context.Context, session *collector.Session) error {
	logger := ctxlog.FromContext(ctx)
	spec := session.Spec

	if !spec.Standard.Supported() {
		return &config.UnsupportedStandardError{Requested: spec.Standard}
	}

	// The collector already rejects incompatible targets while aggregating;
	// re-asserted here so the gate holds even for sessions built by hand.
	for _, target := range session.Targets {
		if target.Kind != config.KindSharedLibrary {
			return &config.TargetKindError{Target: target.Name, Kind: target.Kind}
		}
		if target.Standard != nil && target.Standard.NewerThan(spec.Standard) {
			return &config.StandardMismatchError{
				Target:         target.Name,
				TargetStandard: *target.Standard,
				Requested:      spec.Standard,
			}
		}
	}

	if len(spec.DoxygenURLs) != len(spec.DoxygenTagfiles) {
		return &config.PairingLengthError{
			URLs:     len(spec.DoxygenURLs),
			Tagfiles: len(spec.DoxygenTagfiles),
		}
	}

	for _, url := range spec.DoxygenURLs {
		if !strings.HasPrefix(url, "https://") {
			return &config.InsecureURLError{URL: url}
		}
	}
	for _, logo := range spec.LogoFiles {
		if _, ok := allowedLogoNames[filepath.Base(logo)]; !ok {
			return &config.IllegalAssetNameError{Path: logo}
		}
	}

	logger.Debug("Session validation passed.", "kernel", spec.Name)
	return nil
}
