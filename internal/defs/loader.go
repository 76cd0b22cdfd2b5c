// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"go-pendant/internal/config"
	"go-pendant/internal/ui"
	"go-pendant/pkg/render"
)

// PendantLibrary holds the loaded definitions keyed by ID.
var PendantLibrary map[string]PendantDefinition

// LoadPendantDefinitions reads the definitions file and populates
// PendantLibrary. A missing file falls back to DefaultPendants. The returned
// slice keeps file order.
func LoadPendantDefinitions(path string) ([]PendantDefinition, error) {
	file, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Pendant definitions %s not found, using built-in defaults", path)
		return storeDefinitions(DefaultPendants)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pendant definitions file: %w", err)
	}

	var pendantDefs []PendantDefinition
	if err := json.Unmarshal(file, &pendantDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pendant definitions: %w", err)
	}
	return storeDefinitions(pendantDefs)
}

func storeDefinitions(pendantDefs []PendantDefinition) ([]PendantDefinition, error) {
	library := make(map[string]PendantDefinition, len(pendantDefs))
	for _, def := range pendantDefs {
		if _, err := def.Resolve(); err != nil {
			return nil, fmt.Errorf("pendant %q: %w", def.ID, err)
		}
		if _, dup := library[def.ID]; dup {
			return nil, fmt.Errorf("duplicate pendant id %q", def.ID)
		}
		library[def.ID] = def
	}
	PendantLibrary = library

	log.Printf("Loaded %d pendant definitions", len(PendantLibrary))
	return pendantDefs, nil
}

// PendantStyle is a definition with its string fields parsed.
type PendantStyle struct {
	Anchor   ui.AnchorPosition
	Color    color.RGBA
	TextRows int
	FontSize float64
}

// Resolve parses the anchor and color and fills in defaults.
func (d PendantDefinition) Resolve() (PendantStyle, error) {
	if d.Text == "" {
		return PendantStyle{}, errors.New("empty text")
	}
	anchor, err := ui.ParseAnchorPosition(d.Anchor)
	if err != nil {
		return PendantStyle{}, err
	}
	clr := config.DefaultPendantColor
	if d.Color != "" {
		if clr, err = render.ParseHexColor(d.Color); err != nil {
			return PendantStyle{}, err
		}
	}

	style := PendantStyle{
		Anchor:   anchor,
		Color:    clr,
		TextRows: d.TextRows,
		FontSize: d.FontSize,
	}
	if style.TextRows <= 0 {
		style.TextRows = config.DefaultTextRows
	}
	if style.FontSize <= 0 {
		style.FontSize = config.DefaultFontSize
	}
	return style, nil
}

// Build creates the pendant described by d.
func (d PendantDefinition) Build(fonts *ui.Fonts) (*ui.Pendant, error) {
	style, err := d.Resolve()
	if err != nil {
		return nil, fmt.Errorf("pendant %q: %w", d.ID, err)
	}
	p, err := ui.NewPendantForTextSize(d.Text, style.FontSize, fonts)
	if err != nil {
		return nil, fmt.Errorf("pendant %q: %w", d.ID, err)
	}
	p.SetAnchor(style.Anchor)
	p.SetColor(style.Color)
	p.SetTextRows(style.TextRows)
	return p, nil
}
