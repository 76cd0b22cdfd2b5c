// internal/ui/pendant.go
package ui

import (
	"image/color"
	"math"

	"go-pendant/internal/config"
	"go-pendant/internal/event"
	"go-pendant/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pendant is a speech-bubble callout: a rounded body with a triangular arrow
// on one of its horizontal edges and a single line of text inside.
//
// A Pendant is not safe for concurrent use. The host mutates and draws it
// from the same goroutine, as ebiten does with Update and Draw.
type Pendant struct {
	frame      render.Rect
	text       string
	label      *Label
	fonts      *Fonts
	color      color.Color
	background color.Color
	textRows   int
	radius     float64
	anchor     AnchorPosition
	fontSize   float64
	edgeSpace  float64

	needsDisplay bool
	dispatcher   *event.Dispatcher
	cache        *ebiten.Image
	canvas       *render.ImageCanvas
}

// NewPendant creates a pendant with an explicit frame. The label is placed
// inside the edge spacing, below the arrow for the default top anchor.
func NewPendant(frame render.Rect, text string, fonts *Fonts) (*Pendant, error) {
	p := &Pendant{
		frame:        frame,
		text:         text,
		fonts:        fonts,
		color:        config.DefaultPendantColor,
		textRows:     config.DefaultTextRows,
		radius:       config.DefaultRadius,
		anchor:       TopCenter,
		fontSize:     config.DefaultFontSize,
		edgeSpace:    config.DefaultEdgeSpace,
		needsDisplay: true,
	}

	face, err := fonts.Face(p.fontSize)
	if err != nil {
		return nil, err
	}

	p.label = NewLabel(render.NewRect(p.edgeSpace, p.edgeSpace+LabelOffset(p.anchor), frame.W, p.fontSize))
	p.label.Face = face
	p.label.Text = p.text
	p.label.SizeToFit()
	return p, nil
}

// NewPendantForText measures text at the default font size and sizes the
// frame to hold it plus edge spacing and the arrow.
func NewPendantForText(text string, fonts *Fonts) (*Pendant, error) {
	return NewPendantForTextSize(text, config.DefaultFontSize, fonts)
}

// NewPendantForTextSize is NewPendantForText with the label set in size
// instead of the default font size.
func NewPendantForTextSize(text string, size float64, fonts *Fonts) (*Pendant, error) {
	w, h, err := fonts.Measure(text, size)
	if err != nil {
		return nil, err
	}
	p, err := NewPendant(FrameForText(w, h, config.DefaultEdgeSpace), text, fonts)
	if err != nil {
		return nil, err
	}
	if err := p.SetFontSize(size); err != nil {
		return nil, err
	}
	p.background = color.Transparent
	return p, nil
}

// NewPendantWithStyle is NewPendantForText followed by SetAnchor, SetColor
// and SetTextRows.
func NewPendantWithStyle(text string, anchor AnchorPosition, clr color.Color, textRows int, fonts *Fonts) (*Pendant, error) {
	p, err := NewPendantForText(text, fonts)
	if err != nil {
		return nil, err
	}
	p.SetAnchor(anchor)
	p.SetColor(clr)
	p.SetTextRows(textRows)
	return p, nil
}

// UnmarshalJSON always panics: a pendant can only be built from a frame and
// a text, never restored from serialized state.
func (p *Pendant) UnmarshalJSON([]byte) error {
	panic("ui: decoding a Pendant is not implemented, use NewPendant")
}

// SetDispatcher makes the pendant publish event.PendantInvalidated on every
// repaint request. Pass nil to stop publishing.
func (p *Pendant) SetDispatcher(d *event.Dispatcher) {
	p.dispatcher = d
}

func (p *Pendant) Frame() render.Rect      { return p.frame }
func (p *Pendant) Bounds() render.Rect     { return p.frame.Bounds() }
func (p *Pendant) Text() string            { return p.text }
func (p *Pendant) Label() *Label           { return p.label }
func (p *Pendant) Color() color.Color      { return p.color }
func (p *Pendant) Background() color.Color { return p.background }
func (p *Pendant) TextRows() int           { return p.textRows }
func (p *Pendant) Radius() float64         { return p.radius }
func (p *Pendant) Anchor() AnchorPosition  { return p.anchor }
func (p *Pendant) FontSize() float64       { return p.fontSize }
func (p *Pendant) EdgeSpace() float64      { return p.edgeSpace }
func (p *Pendant) NeedsDisplay() bool      { return p.needsDisplay }
func (p *Pendant) ArrowTriangle() [3]render.Point {
	return ArrowTriangle(p.anchor, p.Bounds(), p.edgeSpace)
}
func (p *Pendant) BodyRect() render.Rect { return BodyRect(p.anchor, p.Bounds()) }

// Children returns the visual children in drawing order.
func (p *Pendant) Children() []*Label {
	return []*Label{p.label}
}

// SetPosition moves the frame origin. Only the composite offset changes, so
// no repaint is requested.
func (p *Pendant) SetPosition(x, y float64) {
	p.frame.X, p.frame.Y = x, y
}

func (p *Pendant) SetColor(c color.Color) {
	if render.SameColor(c, p.color) {
		return
	}
	p.color = c
	p.setNeedsDisplay()
}

func (p *Pendant) SetTextRows(rows int) {
	if rows == p.textRows {
		return
	}
	p.textRows = rows
	p.setNeedsDisplay()
}

func (p *Pendant) SetRadius(radius float64) {
	if radius == p.radius {
		return
	}
	p.radius = radius
	p.setNeedsDisplay()
}

// SetAnchor moves the arrow. The label follows so that it never overlaps
// the arrow: bottom anchors put it exactly edgeSpace from the top.
func (p *Pendant) SetAnchor(a AnchorPosition) {
	if a == p.anchor {
		return
	}
	anchorRule(a)
	p.anchor = a
	p.label.Frame.Y = p.edgeSpace + LabelOffset(a)
	p.setNeedsDisplay()
}

// SetFontSize changes the label face. The pendant frame keeps its size; call
// FitToText to grow or shrink it around the new label. The current size and
// any size above zero never fail.
func (p *Pendant) SetFontSize(size float64) error {
	if size == p.fontSize {
		return nil
	}
	face, err := p.fonts.Face(size)
	if err != nil {
		return err
	}
	p.fontSize = size
	p.label.Face = face
	p.label.SizeToFit()
	p.setNeedsDisplay()
	return nil
}

// SetNeedsDisplay forces a repaint on the next Draw.
func (p *Pendant) SetNeedsDisplay() {
	p.setNeedsDisplay()
}

func (p *Pendant) setNeedsDisplay() {
	p.needsDisplay = true
	if p.dispatcher != nil {
		p.dispatcher.Dispatch(event.Event{Type: event.PendantInvalidated, Data: p})
	}
}

// Paint draws the pendant in its own coordinate space: arrow first, then the
// body over it, then the label.
func (p *Pendant) Paint(c render.Canvas) {
	bounds := p.Bounds()
	if !render.IsTransparent(p.background) {
		c.FillRoundedRect(bounds, 0, p.background)
	}

	arrow := ArrowTriangle(p.anchor, bounds, p.edgeSpace)
	c.FillTriangle(arrow[0], arrow[1], arrow[2], p.color)
	c.FillRoundedRect(BodyRect(p.anchor, bounds), p.radius, p.color)

	for _, child := range p.Children() {
		child.Draw(c)
	}
}

// FitToText resizes the frame around the label at the current font size,
// keeping the origin.
func (p *Pendant) FitToText() error {
	w, h, err := p.fonts.Measure(p.text, p.fontSize)
	if err != nil {
		return err
	}
	frame := FrameForText(w, h, p.edgeSpace)
	frame.X, frame.Y = p.frame.X, p.frame.Y
	if frame == p.frame {
		return nil
	}
	p.frame = frame
	if p.cache != nil {
		p.cache.Deallocate()
		p.cache, p.canvas = nil, nil
	}
	p.setNeedsDisplay()
	return nil
}

// Draw composites the pendant onto screen at its frame origin. The cached
// image is repainted only when a change was requested since the last Draw.
func (p *Pendant) Draw(screen *ebiten.Image) {
	if p.frame.Empty() {
		return
	}
	if p.cache == nil {
		p.cache = ebiten.NewImage(int(math.Ceil(p.frame.W)), int(math.Ceil(p.frame.H)))
		p.canvas = render.NewImageCanvas(p.cache)
		p.needsDisplay = true
	}
	p.paintCache(func() render.Canvas {
		p.cache.Clear()
		return p.canvas
	})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.frame.X, p.frame.Y)
	screen.DrawImage(p.cache, op)
}

// paintCache paints through the canvas returned by prepare when a repaint
// is pending and reports whether it did. prepare is not called otherwise.
func (p *Pendant) paintCache(prepare func() render.Canvas) bool {
	if !p.needsDisplay {
		return false
	}
	p.Paint(prepare())
	p.needsDisplay = false
	return true
}
