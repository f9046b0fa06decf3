package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(args ...string) (*app, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := newApp()
	a.root.SetOut(out)
	a.root.SetErr(out)
	a.root.SetArgs(args)
	return a, out
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a, out := newTestApp(args...)
	err := a.execute()
	return out.String(), err
}

func TestEmit(t *testing.T) {
	out, err := run(t, "emit", "error", "failure:", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "\t[Error]\tfailure: 42\n")
}

func TestEmitWithLocation(t *testing.T) {
	out, err := run(t, "emit", "--line", "10", "--source", "main.src", "warning", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "[Warning]\tx\t[line 10 in main.src]")
}

func TestEmitRespectsLevel(t *testing.T) {
	out, err := run(t, "--level", "warning", "emit", "info", "x")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEmitKeepsPercentLiteral(t *testing.T) {
	out, err := run(t, "emit", "info", "filled 100%")
	require.NoError(t, err)
	assert.Contains(t, out, "\tfilled 100%\n")
}

func TestEmitBadSeverity(t *testing.T) {
	_, err := run(t, "emit", "loud", "x")
	assert.Error(t, err)
}

func TestFailedCommandClosesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.log")

	a, _ := newTestApp("--file", path, "emit", "loud", "x")
	require.Error(t, a.execute())

	require.NotNil(t, a.facility)
	assert.False(t, a.facility.FileOutputEnabled())
	assert.FileExists(t, path)
}

func TestEmitToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.log")

	_, err := run(t, "--file", path, "emit", "critical", "halt")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Critical]\thalt\n")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "engine.log")
	cfgPath := filepath.Join(dir, "tradelog.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: error\n  file: "+logPath+"\n"), 0644))

	out, err := run(t, "--config", cfgPath, "emit", "warning", "hidden")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "--config", cfgPath, "--level", "trace", "emit", "debug", "shown")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Debug]\tshown")
	assert.NotContains(t, string(data), "hidden")
}

func TestStress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.log")

	out, err := run(t, "--file", path, "stress", "--workers", "8", "--lines", "25")
	require.NoError(t, err)

	console := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, console, 8*25+1)
	for _, line := range console[:len(console)-1] {
		assert.Regexp(t, `^\[[^\]]+\]\t\[Info\]\tworker \d+ line \d+$`, line)
	}
	assert.Contains(t, console[len(console)-1], "stress: 8 workers wrote 200 lines")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}

func TestStressRejectsZeroWorkers(t *testing.T) {
	_, err := run(t, "stress", "--workers", "0")
	assert.Error(t, err)
}
