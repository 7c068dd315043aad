package config

// Model is the unified, format-agnostic representation of the entire
// configuration: the target manifest exported by the host build graph and
// every kernel session definition found under the config root.
type Model struct {
	// Project is the enclosing project name, used in default display names.
	Project string

	// Targets indexes the build graph's exported target metadata by name.
	Targets map[string]*TargetDefinition

	// Kernels holds one entry per `kernel` block, in declaration order.
	Kernels []*KernelSpec
}

// TargetDefinition is the format-agnostic representation of a `target` block:
// the per-target metadata the host build graph exports for consumption here.
type TargetDefinition struct {
	Name               string
	Kind               TargetKind
	Standard           *Standard // nil when the target declares no standard
	IncludeDirectories []string
	CompileFlags       []string
	CompileDefinitions []string

	// Artifact is the target's built library location. Empty when the path is
	// not pinned yet; the collector then carries it as a deferred
	// $<TARGET_FILE:...> expression instead.
	Artifact string
}

// KernelSpec is the format-agnostic representation of a `kernel` block: one
// interpreter-session definition to be aggregated, validated, and composed.
type KernelSpec struct {
	Name string

	Targets            []string
	IncludeDirectories []string
	LinkLibraries      []string
	LibraryDirectories []string
	CompileFlags       []string
	CompileDefinitions []string
	SetupHeaders       []string
	DoxygenURLs        []string
	DoxygenTagfiles    []string
	LogoFiles          []string

	// KernelName is the display name. Empty means "derive a default".
	KernelName string

	Standard  Standard
	Required  bool
	NoInstall bool

	// SourceDir is the directory of the file declaring this kernel. Relative
	// tag-file and logo paths are resolved against it.
	SourceDir string
}
