package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/musicbox/components"
	cfg "github.com/automoto/musicbox/config"
	"github.com/automoto/musicbox/fonts"
	"github.com/automoto/musicbox/store"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MusicUI holds the ebitenui panel for the music controls
type MusicUI struct {
	UI    *ebitenui.UI
	Music *components.MusicData

	// Callbacks
	OnToggle     func()
	OnFade       func()
	OnVolumeUp   func()
	OnVolumeDown func()

	// Widget references for updates
	statusLabel  *widget.Label
	volumeLabel  *widget.Label
	hintLabel    *widget.Label
	toggleButton *widget.Button
	fadeButton   *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Set from the musicEnabled subscription
	enabled     bool
	unsubscribe func()
}

// NewMusicUI creates the music panel. The status label follows flag; the
// rest of the panel follows music, which the audio system keeps current.
func NewMusicUI(music *components.MusicData, flag *store.Bool, onToggle, onFade, onVolumeUp, onVolumeDown func()) *MusicUI {
	mui := &MusicUI{
		Music:        music,
		OnToggle:     onToggle,
		OnFade:       onFade,
		OnVolumeUp:   onVolumeUp,
		OnVolumeDown: onVolumeDown,
	}

	mui.loadFonts()
	mui.buildUI()
	mui.unsubscribe = flag.Subscribe(func(enabled bool) {
		mui.enabled = enabled
	})

	return mui
}

func (mui *MusicUI) loadFonts() {
	mui.titleFace = fonts.Title.Face()
	mui.normalFace = fonts.Regular.Face()
	mui.smallFace = fonts.Small.Face()
}

func (mui *MusicUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	panel.AddChild(titleLabel)

	mui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text(StatusText(false, false), &mui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	panel.AddChild(mui.statusLabel)

	mui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(VolumeText(mui.Music.Volume), &mui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	panel.AddChild(mui.volumeLabel)

	panel.AddChild(mui.buildButtonsContainer())

	mui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.HintColor,
		}),
	)
	panel.AddChild(mui.hintLabel)

	rootContainer.AddChild(panel)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (mui *MusicUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Spacing(6, 6),
		)),
	)

	mui.toggleButton = mui.newButton(ToggleText(false), func() { call(mui.OnToggle) })
	container.AddChild(mui.toggleButton)

	mui.fadeButton = mui.newButton("Fade out", func() { call(mui.OnFade) })
	container.AddChild(mui.fadeButton)

	container.AddChild(mui.newButton("Volume -", func() { call(mui.OnVolumeDown) }))
	container.AddChild(mui.newButton("Volume +", func() { call(mui.OnVolumeUp) }))

	return container
}

func (mui *MusicUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			mui.UpdateUI()
		}),
	)
}

func (mui *MusicUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI updates all UI elements to reflect current music state
func (mui *MusicUI) UpdateUI() {
	data := mui.Music

	if mui.statusLabel != nil {
		mui.statusLabel.Label = StatusText(mui.enabled, data.Fading)
	}
	if mui.volumeLabel != nil {
		mui.volumeLabel.Label = VolumeText(data.Volume)
	}
	if mui.hintLabel != nil {
		mui.hintLabel.Label = HintText(mui.enabled, data.Blocked)
	}
	if mui.toggleButton != nil {
		if textWidget := mui.toggleButton.Text(); textWidget != nil {
			textWidget.Label = ToggleText(mui.enabled)
		}
	}
	if mui.fadeButton != nil {
		// Disabled while stopped or already fading
		mui.fadeButton.GetWidget().Disabled = !mui.enabled || data.Fading
	}
}

// Update processes UI input and refreshes labels
func (mui *MusicUI) Update() {
	mui.UI.Update()
	mui.UpdateUI()
}

// Close stops following the musicEnabled flag
func (mui *MusicUI) Close() {
	if mui.unsubscribe != nil {
		mui.unsubscribe()
		mui.unsubscribe = nil
	}
}

// StatusText returns the status line for the panel
func StatusText(enabled, fading bool) string {
	switch {
	case fading:
		return "Music: fading out"
	case enabled:
		return "Music: on"
	default:
		return "Music: off"
	}
}

// ToggleText returns the label of the start/stop button
func ToggleText(enabled bool) string {
	if enabled {
		return "Stop"
	}
	return "Start"
}

// VolumeText formats a 0.0 - 1.0 volume as a percentage
func VolumeText(volume float64) string {
	return fmt.Sprintf("Volume: %d%%", int(math.Round(volume*100)))
}

// HintText explains why music may be silent while enabled
func HintText(enabled, blocked bool) string {
	if enabled && blocked {
		return "Click or press a key to allow audio"
	}
	return "M: start/stop   F: fade   +/-: volume"
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
