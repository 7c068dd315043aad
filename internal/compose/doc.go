// Package compose turns a validated session into its two generated
// artifacts: the cling bootstrap header and the kernel.json session manifest.
//
// Composition and rendering are separate steps. Compose builds artifact plans
// that still hold deferred property values verbatim; Render resolves them
// exactly once through the build graph's resolver and produces the final
// bytes for both artifacts in memory, so that either both files are written
// or neither is.
package compose
