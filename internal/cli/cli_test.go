package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/kernelforge/internal/cli"
)

func TestParse_PositionalConfigPath(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := cli.Parse([]string{"sessions/"}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "sessions/", config.ConfigPath)
	require.Equal(t, "build", config.OutputDir)
	require.False(t, config.SkipInstall)
}

func TestParse_FlagsOverrideDefaults(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := cli.Parse([]string{
		"-c", "session.hcl",
		"-o", "out",
		"--log-format", "json",
		"--log-level", "debug",
		"--skip-install",
		"--dry-run",
	}, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "session.hcl", config.ConfigPath)
	require.Equal(t, "out", config.OutputDir)
	require.Equal(t, "json", config.LogFormat)
	require.Equal(t, "debug", config.LogLevel)
	require.True(t, config.SkipInstall)
	require.True(t, config.DryRun)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	config, shouldExit, err := cli.Parse(nil, &out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, config)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, err := cli.Parse([]string{"--log-format", "yaml", "session.hcl"}, &out)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, err := cli.Parse([]string{"--log-level", "loud", "session.hcl"}, &out)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}
