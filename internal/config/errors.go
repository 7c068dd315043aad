package config

import "fmt"

// UnsupportedStandardError reports a requested standard level outside the
// set the interpreter runtime supports.
type UnsupportedStandardError struct {
	Requested Standard
}

func (e *UnsupportedStandardError) Error() string {
	return fmt.Sprintf("unsupported C++ standard %s: the interpreter supports C++11, C++14 and C++17", e.Requested)
}

// StandardMismatchError reports a target that requires a newer standard than
// the session requested.
type StandardMismatchError struct {
	Target         string
	TargetStandard Standard
	Requested      Standard
}

func (e *StandardMismatchError) Error() string {
	return fmt.Sprintf("target '%s' requires %s but the session requests %s", e.Target, e.TargetStandard, e.Requested)
}

// TargetKindError reports a referenced target that is not a shared library
// and therefore cannot be loaded by the interpreter at runtime.
type TargetKindError struct {
	Target string
	Kind   TargetKind
}

func (e *TargetKindError) Error() string {
	return fmt.Sprintf("target '%s' has kind '%s': only shared libraries can be loaded into an interpreter session", e.Target, e.Kind)
}

// UnknownTargetError reports a TargetRef that does not resolve to any target
// in the build graph manifest.
type UnknownTargetError struct {
	Target string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("target '%s' is not declared in the build graph manifest", e.Target)
}

// PairingLengthError reports documentation URL and tag-file lists of unequal
// length. The two lists are zip-paired by index, so their lengths must match.
type PairingLengthError struct {
	URLs     int
	Tagfiles int
}

func (e *PairingLengthError) Error() string {
	return fmt.Sprintf("doxygen_urls has %d entries but doxygen_tagfiles has %d: the lists are paired one-to-one", e.URLs, e.Tagfiles)
}

// InsecureURLError reports a documentation URL that does not use HTTPS.
type InsecureURLError struct {
	URL string
}

func (e *InsecureURLError) Error() string {
	return fmt.Sprintf("documentation URL '%s' must use the https:// scheme", e.URL)
}

// IllegalAssetNameError reports a logo file whose basename is not one of the
// names the frontend recognizes.
type IllegalAssetNameError struct {
	Path string
}

func (e *IllegalAssetNameError) Error() string {
	return fmt.Sprintf("logo file '%s' must be named logo-32x32.png or logo-64x64.png", e.Path)
}
