package genex

import (
	"context"
	"strings"
)

// listSeparator is the build graph's list separator inside a single property
// value.
const listSeparator = ";"

// Flatten resolves an ordered sequence of values into a flat string list.
// Resolved values are joined and re-split on the list separator so that a
// deferred value expanding to a multi-element list contributes one entry per
// element, and a value collapsing to empty contributes no entry at all.
func Flatten(ctx context.Context, r Resolver, vals []Value) ([]string, error) {
	resolved := make([]string, 0, len(vals))
	for _, v := range vals {
		s, err := Resolve(ctx, r, v)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, s)
	}

	out := make([]string, 0, len(resolved))
	for _, part := range strings.Split(strings.Join(resolved, listSeparator), listSeparator) {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out, nil
}
