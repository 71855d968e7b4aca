package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/sierpinski/config"
	"github.com/soypat/sierpinski/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCount(t *testing.T) {
	out, err := run(t, "count", "--mode", "3D", "--depth", "2")
	require.NoError(t, err)
	assert.Equal(t, "3D depth 2: 16 leaves, 64 triangles\n", out)

	out, err = run(t, "count", "--mode", "2D", "--depth", "3")
	require.NoError(t, err)
	assert.Equal(t, "2D depth 3: 27 leaves, 27 triangles\n", out)

	_, err = run(t, "count", "--mode", "4D")
	assert.Error(t, err)
	_, err = run(t, "count", "--depth", "-1")
	assert.Error(t, err)
}

func TestMenu(t *testing.T) {
	out, err := run(t, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, operator.Sierpinski.ID)
	assert.Contains(t, out, operator.Sierpinski2D.ID)
	assert.Contains(t, out, operator.Sierpinski3D.ID)

	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, config.Save(path, config.File{}))
	out, err = run(t, "menu", "--config", path)
	require.NoError(t, err)
	assert.NotContains(t, out, operator.Sierpinski.ID+" ")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3) // Header and two operators.
}

func TestGenerateFlags(t *testing.T) {
	dir := t.TempDir()
	stlPath := filepath.Join(dir, "gasket.stl")
	objPath := filepath.Join(dir, "gasket.obj")
	_, err := run(t, "generate", "--mode", "3D", "--depth", "2", "--stl", stlPath, "--obj", objPath, "--weld")
	require.NoError(t, err)

	info, err := os.Stat(stlPath)
	require.NoError(t, err)
	assert.EqualValues(t, 84+50*64, info.Size())

	obj, err := os.ReadFile(objPath)
	require.NoError(t, err)
	assert.Equal(t, 34, strings.Count(string(obj), "\nv "))
	assert.Equal(t, 64, strings.Count(string(obj), "\nf "))
}

func TestGenerateDepthZero(t *testing.T) {
	stlPath := filepath.Join(t.TempDir(), "single.stl")
	_, err := run(t, "generate", "--op", operator.Sierpinski2D.ID, "--orientation", "XZ", "--depth", "0", "--stl", stlPath)
	require.NoError(t, err)
	info, err := os.Stat(stlPath)
	require.NoError(t, err)
	assert.EqualValues(t, 84+50, info.Size())
}

func TestGenerateConfig(t *testing.T) {
	dir := t.TempDir()
	depth := 1
	file := config.Default()
	file.Jobs = []config.Job{
		{Operator: operator.Sierpinski3D.ID, Depth: &depth, STL: filepath.Join(dir, "a.stl")},
		{Operator: operator.Sierpinski2D.ID, Scale: 2, OBJ: filepath.Join(dir, "b.obj")},
	}
	path := filepath.Join(dir, "jobs.toml")
	require.NoError(t, config.Save(path, file))

	_, err := run(t, "generate", "--config", path)
	require.NoError(t, err)
	info, err := os.Stat(file.Jobs[0].STL)
	require.NoError(t, err)
	assert.EqualValues(t, 84+50*16, info.Size())
	obj, err := os.ReadFile(file.Jobs[1].OBJ)
	require.NoError(t, err)
	assert.Equal(t, 27, strings.Count(string(obj), "o Triangle")) // Default depth 3.
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"generate"}, // No outputs.
		{"generate", "--depth", "11", "--stl", filepath.Join(dir, "deep.stl")},
		{"generate", "--op", operator.Sierpinski3D.ID, "--depth", "6", "--stl", filepath.Join(dir, "deep.stl")},
		{"generate", "--op", operator.Sierpinski3D.ID, "--mode", "2D", "--stl", filepath.Join(dir, "x.stl")},
		{"generate", "--scale", "0.01", "--stl", filepath.Join(dir, "x.stl")},
		{"generate", "--op", "mesh.unknown", "--stl", filepath.Join(dir, "x.stl")},
		{"generate", "--config", filepath.Join(dir, "missing.yaml")},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, args)
	}
}

func TestAnimate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	_, err := run(t, "animate", "--mode", "2D", "--depth", "1", "--start", "1", "--end", "5", "--out", dir)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "frame_0001.stl", entries[0].Name())
	info, err := entries[4].Info()
	require.NoError(t, err)
	assert.EqualValues(t, 84+50*3, info.Size())

	_, err = run(t, "animate", "--axis", "W", "--out", dir)
	assert.Error(t, err)
	_, err = run(t, "animate", "--start", "5", "--end", "1", "--out", dir)
	assert.Error(t, err)
}
