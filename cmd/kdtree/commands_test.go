package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePoints = `[[1,1],[2,2],[3,3],[8,1],[1,5],[6,6]]`

func writePoints(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNearestCommand(t *testing.T) {
	path := writePoints(t, samplePoints)

	for _, parallel := range []string{"--parallel=false", "--parallel=true"} {
		out, err := run(t, "nearest", "--points", path, "--query", "7,1", parallel)
		require.NoError(t, err)

		var got neighbor
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, []float64{8, 1}, got.Point)
		assert.InDelta(t, 1.0, got.SquaredDistance, 1e-12)
	}
}

func TestKNNCommand(t *testing.T) {
	path := writePoints(t, samplePoints)

	out, err := run(t, "knn", "--points", path, "--query", "4,3", "--k", "3")
	require.NoError(t, err)

	var got []neighbor
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, []float64{3, 3}, got[0].Point)
	assert.Equal(t, []float64{2, 2}, got[1].Point)
	assert.InDelta(t, 1.0, got[0].SquaredDistance, 1e-12)
	assert.InDelta(t, 5.0, got[1].SquaredDistance, 1e-12)
}

func TestWithinCommand(t *testing.T) {
	path := writePoints(t, samplePoints)

	out, err := run(t, "within", "--points", path, "--min", "0,0", "--max", "3,5", "--codec", "json")
	require.NoError(t, err)

	var got [][]float64
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.ElementsMatch(t, [][]float64{{1, 1}, {2, 2}, {3, 3}, {1, 5}}, got)

	_, err = run(t, "within", "--points", path, "--min", "4,0", "--max", "3,5")
	require.Error(t, err)
}

func TestRadiusCommand(t *testing.T) {
	path := writePoints(t, samplePoints)

	out, err := run(t, "radius", "--points", path, "--query", "2,2", "--radius", "1.5")
	require.NoError(t, err)

	var got [][]float64
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.ElementsMatch(t, [][]float64{{1, 1}, {2, 2}, {3, 3}}, got)
}

func TestDumpCommand(t *testing.T) {
	path := writePoints(t, samplePoints)

	out, err := run(t, "dump", "--points", path)
	require.NoError(t, err)

	var got [][]float64
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	var want [][]float64
	require.NoError(t, json.Unmarshal([]byte(samplePoints), &want))
	assert.ElementsMatch(t, want, got)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
	}{
		{name: "empty file", content: `[]`},
		{name: "ragged points", content: `[[1,2],[3]]`},
		{name: "no coordinates", content: `[[]]`},
		{name: "malformed json", content: `[[1,2]`},
		{name: "unknown codec", content: samplePoints, args: []string{"--codec", "xml"}},
		{name: "wrong query width", content: samplePoints, args: []string{"--query", "1,2,3"}},
		{name: "bad number", content: samplePoints, args: []string{"--query", "1,x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePoints(t, tt.content)
			args := []string{"nearest", "--points", path}
			if tt.args != nil {
				args = append(args, tt.args...)
			}
			if !containsFlag(args, "--query") {
				args = append(args, "--query", "0,0")
			}
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestMissingPointsFile(t *testing.T) {
	_, err := run(t, "dump", "--points", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCoords(t *testing.T) {
	got, err := parseCoords(" 1.5, -2 ,3e2", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 300}, got)

	_, err = parseCoords("1,2", 3)
	assert.Error(t, err)
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
