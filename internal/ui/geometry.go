// internal/ui/geometry.go
package ui

import (
	"fmt"

	"go-pendant/internal/config"
	"go-pendant/pkg/render"
)

type arrowEdge int

const (
	edgeTop arrowEdge = iota
	edgeBottom
)

type arrowAlign int

const (
	alignLeft arrowAlign = iota
	alignCenter
	alignRight
)

// arrowPlacement is the full description of an anchor; every geometry
// function reads from this table so the six cases cannot drift apart.
type arrowPlacement struct {
	edge  arrowEdge
	align arrowAlign
}

var arrowPlacements = map[AnchorPosition]arrowPlacement{
	TopLeft:      {edgeTop, alignLeft},
	TopCenter:    {edgeTop, alignCenter},
	TopRight:     {edgeTop, alignRight},
	BottomLeft:   {edgeBottom, alignLeft},
	BottomCenter: {edgeBottom, alignCenter},
	BottomRight:  {edgeBottom, alignRight},
}

func anchorRule(a AnchorPosition) arrowPlacement {
	rule, ok := arrowPlacements[a]
	if !ok {
		panic(fmt.Sprintf("ui: invalid anchor position %d", int(a)))
	}
	return rule
}

// ArrowHead returns the tip of the arrow inside bounds.
func ArrowHead(a AnchorPosition, bounds render.Rect, edgeSpace float64) render.Point {
	rule := anchorRule(a)

	var head render.Point
	switch rule.align {
	case alignLeft:
		head.X = edgeSpace + config.ArrowWidth
	case alignCenter:
		head.X = bounds.MidX()
	case alignRight:
		head.X = bounds.MaxX() - (edgeSpace + config.ArrowWidth)
	}
	if rule.edge == edgeBottom {
		head.Y = bounds.MaxY()
	}
	return head
}

// ArrowTriangle returns head, second and third point of the arrow in drawing
// order. The base is ArrowWidth long and lies ArrowHeight away from the head.
func ArrowTriangle(a AnchorPosition, bounds render.Rect, edgeSpace float64) [3]render.Point {
	head := ArrowHead(a, bounds, edgeSpace)

	baseY := config.ArrowHeight
	if anchorRule(a).edge == edgeBottom {
		baseY = head.Y - config.ArrowHeight
	}
	return [3]render.Point{
		head,
		{X: head.X + config.ArrowWidth/2, Y: baseY},
		{X: head.X - config.ArrowWidth/2, Y: baseY},
	}
}

// BodyRect is the rounded part of the pendant: full width, with the arrow's
// height taken off the anchored edge.
func BodyRect(a AnchorPosition, bounds render.Rect) render.Rect {
	body := render.NewRect(0, 0, bounds.W, bounds.H-config.ArrowHeight)
	if anchorRule(a).edge == edgeTop {
		body.Y = config.ArrowHeight
	}
	return body
}

// LabelOffset is the extra vertical shift the label needs so it never sits
// on top of the arrow.
func LabelOffset(a AnchorPosition) float64 {
	if anchorRule(a).edge == edgeBottom {
		return 0
	}
	return config.ArrowHeight
}

// FrameForText sizes a pendant around text of the given measured size.
func FrameForText(textW, textH, edgeSpace float64) render.Rect {
	return render.NewRect(0, 0, textW+2*edgeSpace, textH+2*edgeSpace+config.ArrowHeight)
}
