// Package schema declares the HCL block structures for session and target
// definitions. Every block carries a `remain` body so unrecognized options
// can be warned about without failing the load.
package schema

import "github.com/hashicorp/hcl/v2"

// Target represents a `target` block: one build-graph target's exported
// metadata.
type Target struct {
	Name               string         `hcl:"name,label"`
	Kind               string         `hcl:"kind"`
	CxxStandard        hcl.Expression `hcl:"cxx_standard,optional"`
	IncludeDirectories []string       `hcl:"include_directories,optional"`
	CompileFlags       []string       `hcl:"compile_flags,optional"`
	CompileDefinitions []string       `hcl:"compile_definitions,optional"`
	Artifact           string         `hcl:"artifact,optional"`
	Remain             hcl.Body       `hcl:",remain"`
}

// Kernel represents a `kernel` block: one interpreter-session definition.
type Kernel struct {
	Name               string         `hcl:"name,label"`
	Targets            []string       `hcl:"targets,optional"`
	IncludeDirectories []string       `hcl:"include_directories,optional"`
	LinkLibraries      []string       `hcl:"link_libraries,optional"`
	LibraryDirectories []string       `hcl:"library_directories,optional"`
	CompileFlags       []string       `hcl:"compile_flags,optional"`
	CompileDefinitions []string       `hcl:"compile_definitions,optional"`
	SetupHeaders       []string       `hcl:"setup_headers,optional"`
	DoxygenURLs        []string       `hcl:"doxygen_urls,optional"`
	DoxygenTagfiles    []string       `hcl:"doxygen_tagfiles,optional"`
	LogoFiles          []string       `hcl:"kernel_logo_files,optional"`
	KernelName         string         `hcl:"kernel_name,optional"`
	CxxStandard        hcl.Expression `hcl:"cxx_standard,optional"`
	Required           bool           `hcl:"required,optional"`
	NoInstall          bool           `hcl:"no_install,optional"`
	Remain             hcl.Body       `hcl:",remain"`
}

// Root represents the top-level structure of a configuration file.
type Root struct {
	Project string    `hcl:"project,optional"`
	Targets []*Target `hcl:"target,block"`
	Kernels []*Kernel `hcl:"kernel,block"`
	Remain  hcl.Body  `hcl:",remain"`
}
