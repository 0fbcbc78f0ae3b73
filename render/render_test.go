package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3brp/foilgen/naca"
	"github.com/3brp/foilgen/render"
)

// TestOutline_Empty rejects an outline with nothing to draw.
func TestOutline_Empty(t *testing.T) {
	_, err := render.Outline(nil, 1, "2412")
	assert.ErrorIs(t, err, render.ErrEmptyLoop)
}

// TestOutline_Build plots a generated loop and checks the title carries
// the code and chord for visual identification.
func TestOutline_Build(t *testing.T) {
	foil, err := naca.Generate("0012", &naca.Options{TotalPoints: 21})
	require.NoError(t, err)

	p, err := render.Outline(foil.Loop, 1.5, foil.Code)
	require.NoError(t, err)
	assert.Equal(t, "NACA 0012 (chord=1.5)", p.Title.Text)
	assert.Equal(t, "x (chord)", p.X.Label.Text)
}

// TestSavePNG_WritesFile renders straight to a PNG and checks the file
// landed with content.
func TestSavePNG_WritesFile(t *testing.T) {
	foil, err := naca.Generate("2412", nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "naca_airfoil.png")
	require.NoError(t, render.SavePNG(foil.Loop, 2, foil.Code, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
