package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // ticks per second, drives the fade clock
}

// MenuConfig contains music panel configuration
type MenuConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	Title           string
	TitleSize       float64
	TextSize        float64
	HintSize        float64
	ButtonWidth     int
	ButtonHeight    int
}

// HUDConfig contains the on-screen music indicator configuration
type HUDConfig struct {
	X, Y       float32
	Radius     float32
	OnColor    color.RGBA
	OffColor   color.RGBA
	FadeColor  color.RGBA
	BarWidth   float32
	BarHeight  float32
	BarColor   color.RGBA
	TrackColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogAudio bool // Log swallowed playback errors and fade progress
	NoAudio  bool // Run without creating an audio context
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Grey         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Music",
		TPS:    60,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		PanelColor:      color.RGBA{R: 40, G: 40, B: 50, A: 255},
		TitleColor:      White,
		TextColor:       White,
		HintColor:       color.RGBA{R: 180, G: 180, B: 190, A: 255},
		Title:           "MUSIC",
		TitleSize:       18,
		TextSize:        12,
		HintSize:        10,
		ButtonWidth:     120,
		ButtonHeight:    22,
	}

	HUD = HUDConfig{
		X:          16,
		Y:          16,
		Radius:     5,
		OnColor:    BrightGreen,
		OffColor:   LightRed,
		FadeColor:  BrightOrange,
		BarWidth:   60,
		BarHeight:  4,
		BarColor:   LightBlue,
		TrackColor: Grey,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogAudio: false,
		NoAudio:  false,
	}
}
