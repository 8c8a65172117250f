package cmd_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	require.Equal(t, "xrect dev\n", out)
}

func TestNoArgs(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	require.Contains(t, out, "xrect resizes axis-aligned rectangles")
}

func TestBadOutputFormat(t *testing.T) {
	_, _, err := run(t, "anchors", "-o", "xml")
	require.ErrorContains(t, err, "invalid output format")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "pos", "--rect", "0,0,2,2", "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, stderr, "anchor positions")
}

func TestConfigFile(t *testing.T) {
	path := t.TempDir() + "/custom.yaml"
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\n"), 0o644))

	out, _, err := run(t, "--config", path, "hit", "--rect", "0,0,10,10", "--at", "5,5")
	require.NoError(t, err)
	require.Contains(t, out, "hit: true")
	require.Contains(t, out, "anchor: top-right")
}
