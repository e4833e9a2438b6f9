package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStoreAndCat(t *testing.T) {
	t.Setenv("AMPLEC_STORE_DIR", t.TempDir())
	t.Setenv("AMPLEC_LOG_MODE", "console")

	out, err := runCommand(t, "line1\nline2\n", "store", "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "sub-1\n", out)

	out, err = runCommand(t, "", "cat", "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", out)
}

func TestStoreGeneratesID(t *testing.T) {
	t.Setenv("AMPLEC_STORE_DIR", t.TempDir())

	out, err := runCommand(t, "payload\n", "store", "-")
	require.NoError(t, err)

	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)
	assert.NotEqual(t, "-", id)

	out, err = runCommand(t, "", "cat", id)
	require.NoError(t, err)
	assert.Equal(t, "payload\n", out)
}

func TestLoadShowsMetadata(t *testing.T) {
	t.Setenv("AMPLEC_STORE_DIR", t.TempDir())

	_, err := runCommand(t, "one\ntwo\n", "store", "sub-2")
	require.NoError(t, err)

	out, err := runCommand(t, "", "load", "sub-2")
	require.NoError(t, err)
	assert.Contains(t, out, "indexed_at: ")
	assert.Contains(t, out, "lines: 2")
	assert.Contains(t, out, "one\ntwo\n")
}

func TestCatUnknownID(t *testing.T) {
	t.Setenv("AMPLEC_STORE_DIR", t.TempDir())

	_, err := runCommand(t, "", "cat", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCleanupReportsZeroOnFreshStore(t *testing.T) {
	t.Setenv("AMPLEC_STORE_DIR", t.TempDir())

	_, err := runCommand(t, "fresh\n", "store", "sub-3")
	require.NoError(t, err)

	out, err := runCommand(t, "", "cleanup")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 0 submissions older than 28 days")
}

func TestCleanupFlagOverridesConfig(t *testing.T) {
	t.Setenv("AMPLEC_STORE_DIR", t.TempDir())

	out, err := runCommand(t, "", "cleanup", "--older-than-days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "older than 7 days")
}
