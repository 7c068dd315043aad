package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/kernelforge/internal/collector"
	"github.com/vk/kernelforge/internal/genex"
)

type directiveKind int

const (
	addIncludePath directiveKind = iota
	addLibraryPath
	loadLibrary
	rawInclude
)

// headerEntry is one planned directive. The value may still be deferred; it
// is resolved at render time only.
type headerEntry struct {
	kind  directiveKind
	value genex.Value
}

// Header is the bootstrap header plan: the ordered directive sequence the
// interpreter executes before the first user cell runs.
type Header struct {
	entries []headerEntry
}

// NewHeader plans the bootstrap header for a session. Directive order is
// include paths, library directories, library loads, then setup headers,
// each preserving aggregation order.
func NewHeader(session *collector.Session) *Header {
	h := &Header{}
	for _, v := range session.IncludeDirectories {
		h.entries = append(h.entries, headerEntry{kind: addIncludePath, value: v})
	}
	for _, v := range session.LibraryDirectories {
		h.entries = append(h.entries, headerEntry{kind: addLibraryPath, value: v})
	}
	for _, v := range session.LinkLibraries {
		h.entries = append(h.entries, headerEntry{kind: loadLibrary, value: v})
	}
	for _, hdr := range session.SetupHeaders {
		h.entries = append(h.entries, headerEntry{kind: rawInclude, value: genex.Literal(hdr)})
	}
	return h
}

// Render resolves every directive and emits the header text. A deferred value
// that resolves to empty contributes no line at all; a value resolving to a
// multi-element list contributes one line per element.
func (h *Header) Render(ctx context.Context, r genex.Resolver) ([]byte, error) {
	var b strings.Builder
	for _, e := range h.entries {
		if e.kind == rawInclude {
			// Setup headers are emitted verbatim with angle-bracket inclusion.
			fmt.Fprintf(&b, "#include <%s>\n", e.value.Raw())
			continue
		}

		elems, err := genex.Flatten(ctx, r, []genex.Value{e.value})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve '%s': %w", e.value.Raw(), err)
		}
		for _, elem := range elems {
			fmt.Fprintf(&b, "#pragma cling %s(\"%s\")\n", e.kind.pragma(), elem)
		}
	}
	return []byte(b.String()), nil
}

func (k directiveKind) pragma() string {
	switch k {
	case addIncludePath:
		return "add_include_path"
	case addLibraryPath:
		return "add_library_path"
	case loadLibrary:
		return "load"
	default:
		panic("not a pragma directive")
	}
}
