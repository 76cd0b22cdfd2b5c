package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	assert.Equal(t, 60.0, r.MidX())
	assert.Equal(t, 45.0, r.MidY())
	assert.Equal(t, 110.0, r.MaxX())
	assert.Equal(t, 70.0, r.MaxY())
	assert.Equal(t, Point{X: 10, Y: 20}, r.Origin())
	assert.Equal(t, NewRect(0, 0, 100, 50), r.Bounds())
	assert.False(t, r.Empty())
	assert.True(t, NewRect(0, 0, 0, 10).Empty())
}

func TestClampRadius(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		radius float64
		want   float64
	}{
		{"fits", NewRect(0, 0, 100, 37), 8, 8},
		{"clamped to short side", NewRect(0, 0, 100, 10), 8, 5},
		{"negative", NewRect(0, 0, 100, 37), -1, 0},
		{"empty rect", NewRect(0, 0, 0, 0), 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampRadius(tt.rect, tt.radius))
		})
	}
}

func TestRoundedRectPathStaysInside(t *testing.T) {
	r := NewRect(0, 13, 100, 37)
	path := RoundedRectPath(r, 8)

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	require.NotEmpty(t, vs)
	require.NotEmpty(t, is)

	const eps = 1e-3
	for _, v := range vs {
		assert.GreaterOrEqual(t, float64(v.DstX), r.MinX()-eps)
		assert.LessOrEqual(t, float64(v.DstX), r.MaxX()+eps)
		assert.GreaterOrEqual(t, float64(v.DstY), r.MinY()-eps)
		assert.LessOrEqual(t, float64(v.DstY), r.MaxY()+eps)
	}
}

func TestTrianglePathVertices(t *testing.T) {
	path := TrianglePath(Point{X: 50, Y: 0}, Point{X: 58.5, Y: 13}, Point{X: 41.5, Y: 13})

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	require.GreaterOrEqual(t, len(vs), 3)
	assert.GreaterOrEqual(t, len(is), 3)
	assert.Equal(t, float32(50), vs[0].DstX)
	assert.Equal(t, float32(0), vs[0].DstY)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffff00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 0, A: 255}, c)

	_, err = ParseHexColor("yellow")
	assert.Error(t, err)
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "#ff0000", HexString(color.RGBA{R: 255, A: 255}))
}

func TestSameColor(t *testing.T) {
	assert.True(t, SameColor(color.RGBA{R: 255, G: 255, A: 255}, color.NRGBA{R: 255, G: 255, A: 255}))
	assert.False(t, SameColor(color.RGBA{R: 255, G: 255, A: 255}, color.RGBA{R: 255, A: 255}))
	assert.True(t, SameColor(nil, nil))
	assert.False(t, SameColor(nil, color.Black))
}

func TestIsTransparent(t *testing.T) {
	assert.True(t, IsTransparent(color.Transparent))
	assert.True(t, IsTransparent(nil))
	assert.False(t, IsTransparent(color.White))
}

func TestAppendFillVerticesTintsEveryVertex(t *testing.T) {
	path := RoundedRectPath(NewRect(0, 13, 100, 37), 8)
	clr := color.RGBA{R: 255, G: 51, A: 255}

	vs, is := AppendFillVertices(nil, nil, &path, clr)
	require.NotEmpty(t, vs)
	require.NotEmpty(t, is)
	for _, v := range vs {
		assert.Equal(t, float32(1), v.ColorR)
		assert.Equal(t, float32(0.2), v.ColorG)
		assert.Equal(t, float32(0), v.ColorB)
		assert.Equal(t, float32(1), v.ColorA)
	}
}

func TestAppendFillVerticesSkipsTransparent(t *testing.T) {
	path := TrianglePath(Point{X: 50}, Point{X: 58.5, Y: 13}, Point{X: 41.5, Y: 13})

	vs, is := AppendFillVertices(nil, nil, &path, color.Transparent)
	assert.Empty(t, vs)
	assert.Empty(t, is)
}

func TestAppendFillVerticesKeepsExisting(t *testing.T) {
	first := TrianglePath(Point{X: 0}, Point{X: 10}, Point{X: 0, Y: 10})
	second := TrianglePath(Point{X: 20}, Point{X: 30}, Point{X: 20, Y: 10})

	vs, is := AppendFillVertices(nil, nil, &first, color.White)
	n := len(vs)
	vs, _ = AppendFillVertices(vs, is, &second, color.Black)

	require.Greater(t, len(vs), n)
	assert.Equal(t, float32(1), vs[0].ColorR)
	assert.Equal(t, float32(0), vs[n].ColorR)
	assert.Equal(t, float32(20), vs[n].DstX)
}
