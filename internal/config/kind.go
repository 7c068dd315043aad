package config

import "fmt"

// TargetKind classifies a build-graph target. The interpreter dlopens session
// libraries at startup, so only shared libraries are loadable.
type TargetKind int

const (
	KindUnknown TargetKind = iota
	KindSharedLibrary
	KindStaticLibrary
	KindExecutable
	KindInterface
)

// ParseTargetKind converts the manifest's kind attribute into a TargetKind.
func ParseTargetKind(raw string) (TargetKind, error) {
	switch raw {
	case "shared_library":
		return KindSharedLibrary, nil
	case "static_library":
		return KindStaticLibrary, nil
	case "executable":
		return KindExecutable, nil
	case "interface_library":
		return KindInterface, nil
	default:
		return KindUnknown, fmt.Errorf("unknown target kind %q", raw)
	}
}

func (k TargetKind) String() string {
	switch k {
	case KindSharedLibrary:
		return "shared_library"
	case KindStaticLibrary:
		return "static_library"
	case KindExecutable:
		return "executable"
	case KindInterface:
		return "interface_library"
	default:
		return "unknown"
	}
}
