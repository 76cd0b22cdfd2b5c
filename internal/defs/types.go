// internal/defs/types.go
package defs

// PendantDefinition describes one pendant shown by the demo.
type PendantDefinition struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Anchor   string  `json:"anchor"`
	Color    string  `json:"color"`
	TextRows int     `json:"text_rows,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
}

// DefaultPendants is used when no definitions file is present: one pendant
// per anchor position.
var DefaultPendants = []PendantDefinition{
	{ID: "top_left", Text: "Top left", Anchor: "top-left", Color: "#ffff00"},
	{ID: "top_center", Text: "Top center", Anchor: "top-center", Color: "#ff3232"},
	{ID: "top_right", Text: "Top right", Anchor: "top-right", Color: "#32ff32"},
	{ID: "bottom_left", Text: "Bottom left", Anchor: "bottom-left", Color: "#3264ff"},
	{ID: "bottom_center", Text: "Bottom center", Anchor: "bottom-center", Color: "#b432e6"},
	{ID: "bottom_right", Text: "Bottom right", Anchor: "bottom-right", Color: "#c2b280"},
}
