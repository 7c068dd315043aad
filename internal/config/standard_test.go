package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/kernelforge/internal/config"
)

func TestParseStandard(t *testing.T) {
	for _, level := range []int{98, 11, 14, 17, 20, 23} {
		std, err := config.ParseStandard(level)
		require.NoError(t, err)
		require.Equal(t, level, int(std))
	}

	_, err := config.ParseStandard(15)
	require.Error(t, err)
}

func TestSupported(t *testing.T) {
	supported := map[config.Standard]bool{
		config.Std98: false,
		config.Std11: true,
		config.Std14: true,
		config.Std17: true,
		config.Std20: false,
		config.Std23: false,
	}
	for std, want := range supported {
		require.Equal(t, want, std.Supported(), "standard %s", std)
	}
}

func TestNewerThan_OrdersC98First(t *testing.T) {
	require.True(t, config.Std11.NewerThan(config.Std98))
	require.True(t, config.Std17.NewerThan(config.Std14))
	require.False(t, config.Std98.NewerThan(config.Std23))
	require.False(t, config.Std14.NewerThan(config.Std14))
}

func TestStandardFormatting(t *testing.T) {
	require.Equal(t, "-std=c++14", config.Std14.Flag())
	require.Equal(t, "c++14", config.Std14.LanguageTag())
	require.Equal(t, "C++14", config.Std14.String())
}

func TestParseTargetKind(t *testing.T) {
	kind, err := config.ParseTargetKind("shared_library")
	require.NoError(t, err)
	require.Equal(t, config.KindSharedLibrary, kind)

	_, err = config.ParseTargetKind("banana")
	require.Error(t, err)
}
