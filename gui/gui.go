// Package gui is the window for the interactive demo. It displays the
// frames produced by the demo loop and translates keyboard input into
// calibration actions.
package gui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"
)

// Action describes a request made by the user through the demo window
type Action int

const (
	Nothing Action = iota
	BlackPointUp
	BlackPointDown
	WhitePointUp
	WhitePointDown
	BrightnessUp
	BrightnessDown
	ContrastUp
	ContrastDown
	SaturationUp
	SaturationDown
	NoiseUp
	NoiseDown
	ToggleColor
	ToggleField
	ToggleProgressive
	Reset
)

// calibration adjustments repeat while the key is held. toggles fire once
// per press
var heldActions = []Action{
	BlackPointUp, BlackPointDown,
	WhitePointUp, WhitePointDown,
	BrightnessUp, BrightnessDown,
	ContrastUp, ContrastDown,
	SaturationUp, SaturationDown,
	NoiseUp, NoiseDown,
}

var pressedActions = []Action{
	ToggleColor, ToggleField, ToggleProgressive, Reset,
}

type gui struct {
	started bool

	endGui    chan bool
	rendering chan *image.RGBA
	inp       chan Action

	image  *ebiten.Image
	width  int
	height int

	inputHandler *input.Handler
	inputSystem  input.System
}

func (g *gui) initialise() {
	keymap := input.Keymap{
		input.Action(BlackPointUp):      {input.KeyQ},
		input.Action(BlackPointDown):    {input.KeyA},
		input.Action(WhitePointUp):      {input.KeyW},
		input.Action(WhitePointDown):    {input.KeyS},
		input.Action(BrightnessUp):      {input.KeyUp},
		input.Action(BrightnessDown):    {input.KeyDown},
		input.Action(ContrastUp):        {input.KeyRight},
		input.Action(ContrastDown):      {input.KeyLeft},
		input.Action(SaturationUp):      {input.Key2},
		input.Action(SaturationDown):    {input.Key1},
		input.Action(NoiseUp):           {input.Key4},
		input.Action(NoiseDown):         {input.Key3},
		input.Action(ToggleColor):       {input.KeySpace},
		input.Action(ToggleField):       {input.KeyF},
		input.Action(ToggleProgressive): {input.KeyE},
		input.Action(Reset):             {input.KeyR},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.started = true
}

func (g *gui) send(a Action) {
	select {
	case g.inp <- a:
	default:
	}
}

func (g *gui) input() {
	g.inputSystem.Update()

	for _, a := range heldActions {
		if g.inputHandler.ActionIsPressed(input.Action(a)) {
			g.send(a)
		}
	}
	for _, a := range pressedActions {
		if g.inputHandler.ActionIsJustPressed(input.Action(a)) {
			g.send(a)
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.input()

	select {
	case <-g.endGui:
		return ebiten.Termination
	case img := <-g.rendering:
		dim := img.Bounds()
		if g.image == nil || g.image.Bounds() != dim {
			g.width = dim.Dx()
			g.height = dim.Dy()
			g.image = ebiten.NewImage(g.width, g.height)
		}
		g.image.WritePixels(img.Pix)
	default:
	}
	return nil
}

func (g *gui) Draw(screen *ebiten.Image) {
	if g.image != nil {
		screen.DrawImage(g.image, nil)
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	if g.image != nil {
		return g.width, g.height
	}
	return width, height
}

// Launch the demo window. the function blocks until the window is closed or
// the endGui channel is signalled
func Launch(endGui chan bool, rendering chan *image.RGBA, inp chan Action) error {
	ebiten.SetWindowTitle("crtemu")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &gui{
		endGui:    endGui,
		rendering: rendering,
		inp:       inp,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	return ebiten.RunGame(g)
}
