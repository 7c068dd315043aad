package buildgraph

import (
	"context"
	"fmt"
	"strings"
)

// manifestResolver expands generator expressions against the manifest. It
// understands `$<TARGET_FILE:name>`; every other expression kind collapses to
// the empty string, the same way an unmet generator condition does.
type manifestResolver struct {
	graph *ManifestGraph
}

// Resolve implements genex.Resolver.
func (r *manifestResolver) Resolve(ctx context.Context, expr string) (string, error) {
	var out strings.Builder
	rest := expr
	for {
		start := strings.Index(rest, "$<")
		if start < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}
		out.WriteString(rest[:start])

		body, after, err := splitExpression(rest[start:])
		if err != nil {
			return "", err
		}

		expanded, err := r.expand(ctx, body)
		if err != nil {
			return "", err
		}
		out.WriteString(expanded)
		rest = after
	}
}

// expand evaluates the body of a single `$<...>` expression.
func (r *manifestResolver) expand(ctx context.Context, body string) (string, error) {
	kind, arg, _ := strings.Cut(body, ":")
	switch kind {
	case "TARGET_FILE":
		// Arguments may themselves nest expressions.
		arg, err := r.Resolve(ctx, arg)
		if err != nil {
			return "", err
		}
		target, err := r.graph.Lookup(ctx, arg)
		if err != nil {
			return "", err
		}
		if target.Artifact.IsDeferred() {
			return "", fmt.Errorf("artifact location of target '%s' is not pinned yet", arg)
		}
		return target.Artifact.Raw(), nil
	default:
		return "", nil
	}
}

// splitExpression takes input starting with `$<` and returns the expression
// body and the remainder after its matching `>`, honoring nesting.
func splitExpression(s string) (body, rest string, err error) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "$<"):
			depth++
			i++
		case s[i] == '>':
			depth--
			if depth == 0 {
				return s[2:i], s[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("unterminated generator expression in %q", s)
}
