// internal/config/config.go
package config

import "image/color"

// Pendant geometry. ArrowWidth and ArrowHeight are shared by every pendant
// and cannot be changed per instance.
const (
	ArrowWidth  = 17.0
	ArrowHeight = 13.0

	DefaultRadius    = 8.0
	DefaultFontSize  = 17.0
	DefaultEdgeSpace = 8.0
	DefaultTextRows  = 1

	FontDPI = 72
)

// Demo window.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	DemoColumns      = 3
	DemoCellPadding  = 40
	DemoDefsPath     = "assets/pendants.json"
	DemoFontSizeStep = 1.0
	DemoMinFontSize  = 9.0
	DemoMaxFontSize  = 32.0
	DemoWindowTitle  = "Pendants"
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	DefaultPendantColor = color.RGBA{255, 255, 0, 255} // жёлтый
	LabelTextColor      = color.RGBA{0, 0, 0, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}

	// Цвета, между которыми переключается демо
	DemoPalette = []color.RGBA{
		{255, 255, 0, 255},   // Yellow
		{255, 50, 50, 255},   // Red
		{50, 255, 50, 255},   // Green
		{50, 100, 255, 255},  // Blue
		{180, 50, 230, 255},  // Purple
		{194, 178, 128, 255}, // Sand
	}
)
