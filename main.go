package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/musicbox/config"
	"github.com/automoto/musicbox/fonts"
	"github.com/automoto/musicbox/scenes"
	"github.com/automoto/musicbox/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// Quit ends the game loop after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMusicScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.LogAudio, "debug-audio", config.Debug.LogAudio, "log swallowed playback errors and fades")
	flag.BoolVar(&config.Debug.NoAudio, "no-audio", config.Debug.NoAudio, "run without an audio device")
	flag.StringVar(&config.Sound.AssetRoot, "assets", config.Sound.AssetRoot, "directory static assets are served from")
	flag.Parse()

	if err := fonts.LoadDefaults(config.Menu.TextSize, config.Menu.TitleSize, config.Menu.HintSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	systems.PreloadMusic()

	err := ebiten.RunGame(NewGame())
	if closeErr := systems.MusicController().Close(); closeErr != nil {
		log.Printf("[audio] close: %v", closeErr)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
