package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/3brp/foilgen/export"
	"github.com/3brp/foilgen/geom"
	"github.com/3brp/foilgen/naca"
)

// TestWrite_Format pins the table format: three space-separated %.6f
// fields per row, no header, newline-terminated rows.
func TestWrite_Format(t *testing.T) {
	pts := []r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: -0.25, Y: 0.5, Z: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, pts))

	want := "1.000000 0.000000 0.000000\n-0.250000 0.500000 3.000000\n"
	assert.Equal(t, want, buf.String())
}

// TestWrite_Empty emits nothing for an empty set; rejecting it is the
// validator's job, not the writer's.
func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, nil))
	assert.Zero(t, buf.Len())
}

// TestWriteFile_Pipeline writes an embedded airfoil to disk and checks
// row count and column count on readback.
func TestWriteFile_Pipeline(t *testing.T) {
	foil, err := naca.Generate("2412", &naca.Options{TotalPoints: 21})
	require.NoError(t, err)
	pts := geom.Embed(foil.Loop, geom.AxisZ, 2)

	path := filepath.Join(t.TempDir(), "naca_airfoil.txt")
	require.NoError(t, export.WriteFile(path, pts))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 21, "one row per point")
	for i, line := range lines {
		assert.Len(t, strings.Fields(line), 3, "row %d has three columns", i)
	}
}

// TestWriteFile_BadPath surfaces the failing path in the error.
func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := export.WriteFile(path, []r3.Vec{{X: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
