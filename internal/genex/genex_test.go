package genex_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/kernelforge/internal/genex"
)

// mapResolver resolves expressions from a fixed table; unknown expressions
// collapse to empty.
type mapResolver map[string]string

func (m mapResolver) Resolve(_ context.Context, expr string) (string, error) {
	if strings.HasPrefix(expr, "ERR") {
		return "", fmt.Errorf("boom")
	}
	return m[expr], nil
}

func TestNew_ClassifiesDeferredValues(t *testing.T) {
	require.False(t, genex.New("/usr/include").IsDeferred())
	require.True(t, genex.New("$<TARGET_FILE:libfoo>").IsDeferred())
	require.True(t, genex.New("prefix/$<CONFIG>/lib").IsDeferred())
}

func TestResolve_LiteralBypassesResolver(t *testing.T) {
	// The resolver would fail on any call; a literal must never reach it.
	got, err := genex.Resolve(context.Background(), mapResolver{}, genex.Literal("ERR"))
	require.NoError(t, err)
	require.Equal(t, "ERR", got)
}

func TestResolve_DeferredUsesResolver(t *testing.T) {
	r := mapResolver{"$<TARGET_FILE:libfoo>": "/build/libfoo.so"}
	got, err := genex.Resolve(context.Background(), r, genex.Deferred("$<TARGET_FILE:libfoo>"))
	require.NoError(t, err)
	require.Equal(t, "/build/libfoo.so", got)
}

func TestFlatten_DropsEmptyResolutions(t *testing.T) {
	r := mapResolver{"$<EMPTY>": ""}
	vals := []genex.Value{
		genex.Literal("/a"),
		genex.Deferred("$<EMPTY>"),
		genex.Literal("/b"),
	}

	got, err := genex.Flatten(context.Background(), r, vals)
	require.NoError(t, err)
	require.Equal(t, []string{"/a", "/b"}, got)
}

func TestFlatten_SplitsListValues(t *testing.T) {
	r := mapResolver{"$<LIST>": "/x;/y"}
	vals := []genex.Value{
		genex.Deferred("$<LIST>"),
		genex.Literal("/z"),
	}

	got, err := genex.Flatten(context.Background(), r, vals)
	require.NoError(t, err)
	require.Equal(t, []string{"/x", "/y", "/z"}, got)
}

func TestFlatten_PropagatesResolverErrors(t *testing.T) {
	vals := []genex.Value{genex.Deferred("ERR$<X>")}
	_, err := genex.Flatten(context.Background(), mapResolver{}, vals)
	require.Error(t, err)
}

func TestFlatten_EmptyInput(t *testing.T) {
	got, err := genex.Flatten(context.Background(), mapResolver{}, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
