package systems

import (
	"image/color"

	"github.com/automoto/musicbox/components"
	cfg "github.com/automoto/musicbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawMusicHUD renders the on/off indicator and a volume bar in the corner
func DrawMusicHUD(e *ecs.ECS, screen *ebiten.Image) {
	data := GetOrCreateMusic(e)
	hud := cfg.HUD

	vector.FillCircle(screen, hud.X, hud.Y, hud.Radius, indicatorColor(data), true)

	barX := hud.X + hud.Radius*2 + 4
	barY := hud.Y - hud.BarHeight/2
	vector.FillRect(screen, barX, barY, hud.BarWidth, hud.BarHeight, hud.TrackColor, false)

	filled := hud.BarWidth * float32(data.Volume)
	if filled > 0 {
		vector.FillRect(screen, barX, barY, filled, hud.BarHeight, hud.BarColor, false)
	}
}

func indicatorColor(data *components.MusicData) color.RGBA {
	switch {
	case data.Fading:
		return cfg.HUD.FadeColor
	case data.Enabled:
		return cfg.HUD.OnColor
	default:
		return cfg.HUD.OffColor
	}
}
