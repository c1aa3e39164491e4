package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag values stick to the command objects between executions.
	require.NoError(t, encodeCmd.Flags().Set("output", ""))
	require.NoError(t, decodeCmd.Flags().Set("max-bytes", "0"))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	enc := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(in, []byte("Rust\nIs\nAwesome!\n"), 0644))

	_, err := runCommand(t, "encode", "-w", "32", "-o", enc, in)
	require.NoError(t, err)

	out, err := runCommand(t, "decode", "-w", "32", enc)
	require.NoError(t, err)
	assert.Equal(t, "Rust\nIs\nAwesome!\n", out)
}

func TestDecodeMaxBytes(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	enc := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(in, []byte("hello\nworld\n"), 0644))

	_, err := runCommand(t, "encode", "-w", "32", "-o", enc, in)
	require.NoError(t, err)

	_, err = runCommand(t, "decode", "-w", "32", "--max-bytes", "4", enc)
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	enc := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(in, []byte("ab\ncdef\n"), 0644))

	_, err := runCommand(t, "encode", "-w", "16", "-o", enc, in)
	require.NoError(t, err)

	out, err := runCommand(t, "inspect", "-w", "16", enc)
	require.NoError(t, err)
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "len=2")
	assert.Contains(t, out, "len=4")
}

func TestUnsupportedWidth(t *testing.T) {
	_, err := runCommand(t, "decode", "-w", "24")
	assert.Error(t, err)
}
