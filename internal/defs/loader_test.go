package defs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"go-pendant/internal/config"
	"go-pendant/internal/ui"
	"go-pendant/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pendants.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPendantDefinitions(t *testing.T) {
	path := writeDefs(t, `[
		{"id": "hint", "text": "Tap here", "anchor": "bottom-left", "color": "#ff0000", "text_rows": 2},
		{"id": "plain", "text": "Hi", "anchor": "top-center"}
	]`)

	got, err := LoadPendantDefinitions(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hint", got[0].ID)
	assert.Contains(t, PendantLibrary, "plain")

	style, err := got[0].Resolve()
	require.NoError(t, err)
	assert.Equal(t, ui.BottomLeft, style.Anchor)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, style.Color)
	assert.Equal(t, 2, style.TextRows)
	assert.Equal(t, config.DefaultFontSize, style.FontSize)

	style, err = got[1].Resolve()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPendantColor, style.Color)
	assert.Equal(t, config.DefaultTextRows, style.TextRows)
}

func TestLoadPendantDefinitionsMissingFileUsesDefaults(t *testing.T) {
	got, err := LoadPendantDefinitions(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPendants, got)
	assert.Len(t, PendantLibrary, len(ui.AnchorPositions))
}

func TestLoadPendantDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `[{`},
		{"unknown anchor", `[{"id": "a", "text": "x", "anchor": "left"}]`},
		{"bad color", `[{"id": "a", "text": "x", "anchor": "top-left", "color": "red"}]`},
		{"empty text", `[{"id": "a", "anchor": "top-left"}]`},
		{"duplicate id", `[{"id": "a", "text": "x", "anchor": "top-left"}, {"id": "a", "text": "y", "anchor": "top-left"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPendantDefinitions(writeDefs(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDefaultPendantsCoverEveryAnchor(t *testing.T) {
	seen := map[ui.AnchorPosition]bool{}
	for _, def := range DefaultPendants {
		style, err := def.Resolve()
		require.NoError(t, err, def.ID)
		seen[style.Anchor] = true
	}
	assert.Len(t, seen, len(ui.AnchorPositions))
}

func TestBuild(t *testing.T) {
	fonts, err := ui.LoadFonts(nil)
	require.NoError(t, err)

	def := PendantDefinition{ID: "x", Text: "Hello", Anchor: "bottom-right", Color: "#3264ff", TextRows: 2, FontSize: 20}
	p, err := def.Build(fonts)
	require.NoError(t, err)

	assert.Equal(t, ui.BottomRight, p.Anchor())
	assert.True(t, render.SameColor(color.RGBA{R: 50, G: 100, B: 255, A: 255}, p.Color()))
	assert.Equal(t, 2, p.TextRows())
	assert.Equal(t, 20.0, p.FontSize())

	frame := p.Frame()
	label := p.Label().Frame
	assert.LessOrEqual(t, label.MaxX(), frame.W-p.EdgeSpace()+1e-9)
	assert.LessOrEqual(t, label.MaxY(), p.BodyRect().MaxY()-p.EdgeSpace()+1e-9)
}

func TestBuildSizesFrameForFontSize(t *testing.T) {
	fonts, err := ui.LoadFonts(nil)
	require.NoError(t, err)

	small := PendantDefinition{ID: "s", Text: "Settings live here", Anchor: "top-right"}
	large := small
	large.FontSize = 28

	ps, err := small.Build(fonts)
	require.NoError(t, err)
	pl, err := large.Build(fonts)
	require.NoError(t, err)

	assert.Greater(t, pl.Frame().W, ps.Frame().W)
	assert.Greater(t, pl.Frame().H, ps.Frame().H)
	assert.LessOrEqual(t, pl.Label().Frame.MaxX(), pl.Frame().W-pl.EdgeSpace()+1e-9)
}
