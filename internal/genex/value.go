// Package genex models build-graph property values that may contain
// generator expressions: `$<...>` fragments whose final text is only known at
// a later build stage. Values are carried verbatim through aggregation and
// composition; the single resolution step is delegated to a Resolver at
// render time, never forced early.
package genex

import "strings"

// Value is a tagged variant: either a literal string known at aggregation
// time, or a deferred expression containing one or more `$<...>` fragments.
type Value struct {
	raw      string
	deferred bool
}

// New classifies a raw property string. Any occurrence of the `$<` opener
// marks the value as deferred.
func New(raw string) Value {
	return Value{raw: raw, deferred: strings.Contains(raw, "$<")}
}

// NewAll classifies a list of raw property strings, preserving order.
func NewAll(raw []string) []Value {
	vals := make([]Value, 0, len(raw))
	for _, r := range raw {
		vals = append(vals, New(r))
	}
	return vals
}

// Literal wraps a string that is known to be fully resolved already.
func Literal(raw string) Value {
	return Value{raw: raw}
}

// Deferred wraps an expression that must go through a Resolver.
func Deferred(expr string) Value {
	return Value{raw: expr, deferred: true}
}

// Raw returns the value's text as given, including any unresolved
// generator-expression fragments.
func (v Value) Raw() string { return v.raw }

// IsDeferred reports whether the value still contains generator expressions.
func (v Value) IsDeferred() bool { return v.deferred }
