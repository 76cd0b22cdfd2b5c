// internal/ui/label.go
package ui

import (
	"image/color"

	"go-pendant/internal/config"
	"go-pendant/pkg/render"

	"golang.org/x/image/font"
)

// Label is a single line of text positioned inside its parent.
type Label struct {
	Frame     render.Rect
	Text      string
	Face      font.Face
	TextColor color.Color
}

func NewLabel(frame render.Rect) *Label {
	return &Label{
		Frame:     frame,
		TextColor: config.LabelTextColor,
	}
}

// SizeToFit resizes the frame to the text's measured size, keeping the origin.
func (l *Label) SizeToFit() {
	if l.Face == nil {
		return
	}
	l.Frame.W, l.Frame.H = MeasureString(l.Face, l.Text)
}

func (l *Label) Draw(c render.Canvas) {
	if l.Face == nil || l.Text == "" {
		return
	}
	c.DrawText(l.Text, l.Face, l.Frame.Origin(), l.TextColor)
}
