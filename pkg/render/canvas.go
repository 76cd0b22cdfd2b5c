// pkg/render/canvas.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Canvas is the drawing surface a widget paints into. Coordinates are local
// to the widget.
type Canvas interface {
	FillTriangle(a, b, c Point, clr color.Color)
	FillRoundedRect(r Rect, radius float64, clr color.Color)
	DrawText(s string, face font.Face, origin Point, clr color.Color)
}

// ImageCanvas paints onto an ebiten image.
type ImageCanvas struct {
	dst     *ebiten.Image
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &ImageCanvas{
		dst:     dst,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 64),
		fillIs:  make([]uint16, 0, 96),
	}
}

// Target returns the image the canvas draws into.
func (c *ImageCanvas) Target() *ebiten.Image {
	return c.dst
}

func (c *ImageCanvas) FillTriangle(a, b, p Point, clr color.Color) {
	path := TrianglePath(a, b, p)
	c.fillPath(&path, clr)
}

func (c *ImageCanvas) FillRoundedRect(r Rect, radius float64, clr color.Color) {
	path := RoundedRectPath(r, radius)
	c.fillPath(&path, clr)
}

// DrawText draws s with its line box starting at origin; the baseline sits
// one ascent below.
func (c *ImageCanvas) DrawText(s string, face font.Face, origin Point, clr color.Color) {
	baseline := int(math.Round(origin.Y)) + face.Metrics().Ascent.Ceil()
	text.Draw(c.dst, s, face, int(math.Round(origin.X)), baseline, clr)
}

func (c *ImageCanvas) fillPath(path *vector.Path, clr color.Color) {
	c.fillVs, c.fillIs = AppendFillVertices(c.fillVs[:0], c.fillIs[:0], path, clr)
	if len(c.fillIs) == 0 {
		return
	}
	c.dst.DrawTriangles(c.fillVs, c.fillIs, c.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// AppendFillVertices appends the triangles filling path, tinted with clr.
// A transparent color appends nothing.
func AppendFillVertices(vs []ebiten.Vertex, is []uint16, path *vector.Path, clr color.Color) ([]ebiten.Vertex, []uint16) {
	if IsTransparent(clr) {
		return vs, is
	}
	start := len(vs)
	vs, is = path.AppendVerticesAndIndicesForFilling(vs, is)
	r, g, b, a := vertexColor(clr)
	for i := start; i < len(vs); i++ {
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	return vs, is
}

// TrianglePath closes the triangle a → b → p.
func TrianglePath(a, b, p Point) vector.Path {
	path := vector.Path{}
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(b.X), float32(b.Y))
	path.LineTo(float32(p.X), float32(p.Y))
	path.Close()
	return path
}

// RoundedRectPath outlines r with circular corners. The radius is clamped to
// half of the shorter side.
func RoundedRectPath(r Rect, radius float64) vector.Path {
	radius = ClampRadius(r, radius)

	x0, y0 := float32(r.MinX()), float32(r.MinY())
	x1, y1 := float32(r.MaxX()), float32(r.MaxY())
	rad := float32(radius)

	path := vector.Path{}
	if rad == 0 {
		path.MoveTo(x0, y0)
		path.LineTo(x1, y0)
		path.LineTo(x1, y1)
		path.LineTo(x0, y1)
		path.Close()
		return path
	}

	path.MoveTo(x0+rad, y0)
	path.LineTo(x1-rad, y0)
	path.ArcTo(x1, y0, x1, y0+rad, rad)
	path.LineTo(x1, y1-rad)
	path.ArcTo(x1, y1, x1-rad, y1, rad)
	path.LineTo(x0+rad, y1)
	path.ArcTo(x0, y1, x0, y1-rad, rad)
	path.LineTo(x0, y0+rad)
	path.ArcTo(x0, y0, x0+rad, y0, rad)
	path.Close()
	return path
}

// ClampRadius limits radius to what fits inside r.
func ClampRadius(r Rect, radius float64) float64 {
	if radius < 0 || r.Empty() {
		return 0
	}
	return math.Min(radius, math.Min(r.W, r.H)/2)
}
