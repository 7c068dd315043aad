package genex

import "context"

// Resolver expands generator expressions. Implementations belong to the host
// build graph; this package only defines the seam.
type Resolver interface {
	// Resolve returns the final text of an expression. Expressions whose
	// condition does not hold collapse to the empty string rather than
	// failing.
	Resolve(ctx context.Context, expr string) (string, error)
}

// Resolve evaluates a single value. Literals pass through untouched without
// consulting the resolver.
func Resolve(ctx context.Context, r Resolver, v Value) (string, error) {
	if !v.deferred {
		return v.raw, nil
	}
	return r.Resolve(ctx, v.raw)
}
