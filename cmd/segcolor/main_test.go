package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segcolor/builder"
)

func writeGrid(t *testing.T, dir string) string {
	t.Helper()
	ins, err := builder.BuildInstance("grid", nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)
	path := filepath.Join(dir, "grid.instance.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, ins.Encode(f))
	require.NoError(t, f.Close())

	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestGreedyDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeGrid(t, dir)
	sols := filepath.Join(dir, "sols")

	code, out, _ := runCLI(t, path+"\n", "-solutions", sols, "-log-level", "error")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "grid 2 -> 2 colors (saved)")
	assert.FileExists(t, filepath.Join(sols, "grid.json"))
}

func TestEngineFlagAndJSONLogs(t *testing.T) {
	dir := t.TempDir()
	path := writeGrid(t, dir)

	code, _, logs := runCLI(t, path, "-c", "-i", "100", "-t", "2",
		"-solutions", filepath.Join(dir, "sols"), "-log-format", "json")
	require.Equal(t, 0, code)
	assert.Contains(t, logs, `"engine":"repair"`)
	assert.Contains(t, logs, `"run_id"`)
}

func TestTable(t *testing.T) {
	dir := t.TempDir()
	path := writeGrid(t, dir)

	code, out, _ := runCLI(t, path, "-table", "-solutions", filepath.Join(dir, "sols"), "-log-level", "error")
	require.Equal(t, 0, code)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "0.166667")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeGrid(t, dir)
	cfgPath := filepath.Join(dir, "segcolor.yaml")
	doc := "run:\n  engine: search\n  iterations: 50\n  solutions: " + filepath.Join(dir, "sols") + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o644))

	code, out, _ := runCLI(t, path, "-config", cfgPath)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "grid")
}

func TestFailures(t *testing.T) {
	dir := t.TempDir()

	code, _, errOut := runCLI(t, "", "-c", "-g")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "conflicting engine flags")

	code, _, errOut = runCLI(t, "", "-t", "0")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "run.threads")

	code, _, _ = runCLI(t, "", "-config", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "", "-no-such-flag")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, filepath.Join(dir, "missing.json"),
		"-solutions", filepath.Join(dir, "sols"), "-log-level", "error")
	assert.Equal(t, 1, code)
}

func TestHelp(t *testing.T) {
	code, _, errOut := runCLI(t, "", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "file-list")
}

func TestReadFiles(t *testing.T) {
	files, err := readFiles(strings.NewReader(" a.json\tb.json\n\nc.col "))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json", "c.col"}, files)
}
