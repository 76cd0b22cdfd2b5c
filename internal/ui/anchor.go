// internal/ui/anchor.go
package ui

import (
	"fmt"
	"strings"
)

// AnchorPosition selects the edge the pendant's arrow sticks out of and
// where along that edge it sits.
type AnchorPosition int

const (
	TopLeft AnchorPosition = iota
	TopCenter
	TopRight
	BottomLeft
	BottomCenter
	BottomRight
)

// AnchorPositions lists every anchor in declaration order.
var AnchorPositions = []AnchorPosition{TopLeft, TopCenter, TopRight, BottomLeft, BottomCenter, BottomRight}

var anchorNames = map[AnchorPosition]string{
	TopLeft:      "top-left",
	TopCenter:    "top-center",
	TopRight:     "top-right",
	BottomLeft:   "bottom-left",
	BottomCenter: "bottom-center",
	BottomRight:  "bottom-right",
}

func (a AnchorPosition) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AnchorPosition(%d)", int(a))
}

func (a AnchorPosition) Valid() bool {
	return a >= TopLeft && a <= BottomRight
}

// IsBottom reports whether the arrow hangs below the body.
func (a AnchorPosition) IsBottom() bool {
	return anchorRule(a).edge == edgeBottom
}

// IsTop reports whether the arrow sits above the body.
func (a AnchorPosition) IsTop() bool {
	return anchorRule(a).edge == edgeTop
}

// Next cycles through the anchors in declaration order.
func (a AnchorPosition) Next() AnchorPosition {
	anchorRule(a)
	return (a + 1) % AnchorPosition(len(AnchorPositions))
}

// ParseAnchorPosition accepts the names produced by String, case-insensitively.
func ParseAnchorPosition(s string) (AnchorPosition, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range anchorNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown anchor position %q", s)
}
