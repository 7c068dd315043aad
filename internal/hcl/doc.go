// Package hcl implements the config.Loader interface for HCL configuration
// trees. It parses every .hcl file under the config root, decodes the typed
// schema, and translates the result into the format-agnostic config.Model.
//
// Unrecognized attributes are logged as warnings and otherwise ignored, so a
// typo in an optional key never breaks the build.
package hcl
