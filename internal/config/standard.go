package config

import "fmt"

// Standard is a C++ language standard level. The type is a closed enumeration:
// only the values below exist, and code switching on a Standard is expected to
// enumerate them exhaustively rather than compare against ad-hoc lists.
type Standard int

const (
	Std98 Standard = 98
	Std11 Standard = 11
	Std14 Standard = 14
	Std17 Standard = 17
	Std20 Standard = 20
	Std23 Standard = 23
)

// DefaultStandard is used when a kernel block declares no cxx_standard.
const DefaultStandard = Std17

// ParseStandard converts a raw level from configuration into a Standard.
// Levels outside the known universe are rejected here; whether a known level
// is actually supported by the interpreter is a separate question answered by
// Supported.
func ParseStandard(level int) (Standard, error) {
	switch s := Standard(level); s {
	case Std98, Std11, Std14, Std17, Std20, Std23:
		return s, nil
	default:
		return 0, fmt.Errorf("unknown C++ standard level %d", level)
	}
}

// Supported reports whether the interpreter runtime can host a session at
// this standard level.
func (s Standard) Supported() bool {
	switch s {
	case Std11, Std14, Std17:
		return true
	case Std98, Std20, Std23:
		return false
	default:
		return false
	}
}

// NewerThan reports whether s is a more recent standard than other. C++98
// predates the year-two-digit scheme, so plain numeric comparison is not
// enough.
func (s Standard) NewerThan(other Standard) bool {
	return s.ordinal() > other.ordinal()
}

func (s Standard) ordinal() int {
	if s == Std98 {
		return 0
	}
	return int(s)
}

// Flag returns the compiler argument selecting this standard.
func (s Standard) Flag() string {
	return fmt.Sprintf("-std=c++%d", int(s))
}

// LanguageTag returns the session manifest's language identifier.
func (s Standard) LanguageTag() string {
	return fmt.Sprintf("c++%d", int(s))
}

func (s Standard) String() string {
	return fmt.Sprintf("C++%d", int(s))
}
