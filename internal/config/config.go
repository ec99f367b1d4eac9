// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	UIHeight     = 180

	// BlockSize is the single definition of the grid-cell size in world units.
	// Presentation scales from world units, never from its own cell size.
	BlockSize   = 35.0
	BaseSize    = 60.0
	BasePadding = 5.0

	GoldX = 30
	GoldY = 30
	HPX   = 30
	HPY   = 50

	BuildBarX       = 200
	BuildBarY       = 30
	BuildIconSize   = 50
	BuildIconMargin = 20

	SpeedButtonX    = 740
	SpeedButtonY    = 480
	SpeedButtonSize = 18.0

	MaxDeltaTime        = 0.06
	AttackFlashDuration = 0.25 // seconds a strong-attack flash stays on screen
	BeamWidth           = 3.0
	GoldPileSize        = 20.0
	StrokeWidth         = 2.0
)

var (
	BackgroundColor   = color.RGBA{25, 51, 76, 255}
	PathColor         = color.RGBA{255, 255, 0, 255}
	BaseColor         = color.RGBA{0, 255, 0, 255}
	MonsterColor      = color.RGBA{204, 0, 0, 255}
	GoldColor         = color.RGBA{255, 215, 0, 255}
	BeamColor         = color.RGBA{0, 255, 255, 255}
	StrongBeamColor   = color.RGBA{255, 80, 255, 255}
	UIBackgroundColor = color.RGBA{51, 76, 102, 255}
	SelectedTileColor = color.RGBA{128, 0, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	IconHoverColor    = color.RGBA{90, 120, 150, 255}
	IconSelectedColor = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 128}
	TowerColors       = map[string]color.RGBA{
		"BASIC": {255, 255, 255, 255},
		"NINJA": {60, 60, 60, 255},
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
