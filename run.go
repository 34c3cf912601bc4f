package folio

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelStep is how many pixels one wheel notch scrolls.
const wheelStep = 60

var sectionKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title sets the window title. Defaults to the app's configured title.
	Title string
	// Width and Height set the window size. Defaults to the app's viewport.
	Width, Height int
	// ShowFPS draws FPS, TPS, and the current section in the corner.
	ShowFPS bool
	// ExitWhenScriptDone ends the run once an attached input script has
	// finished and its screenshots are written.
	ExitWhenScriptDone bool
}

// game implements ebiten.Game around an App.
type game struct {
	app      *App
	renderer *Renderer
	fps      *fpsOverlay
	exitDone bool
	err      error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	mx, my := ebiten.CursorPosition()
	in := FrameInput{X: float64(mx), Y: float64(my)}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		in.Pressed, in.Button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		in.Pressed, in.Button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		in.Pressed, in.Button = true, MouseButtonMiddle
	}
	_, wy := ebiten.Wheel()
	in.WheelY = -wy * wheelStep

	sections := g.app.Config().Sections
	for i, key := range sectionKeys {
		if i < len(sections) && inpututil.IsKeyJustPressed(key) {
			in.JumpTo = sections[i].Name
		}
	}

	g.app.Update(in)
	if g.fps != nil {
		g.fps.update(1/float64(ebiten.TPS()), g.app.Sections().Current())
	}

	if g.exitDone {
		if sc := g.app.Script(); sc != nil && sc.Done() && len(g.app.Stage().screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.app)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	if err := g.app.Stage().FlushScreenshots(screen); err != nil {
		g.err = err
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		if err := g.app.Resize(outsideWidth, outsideHeight); err != nil {
			g.err = err
		}
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives app until the window is closed. The
// system cursor is hidden; the app draws its own. app is closed when Run
// returns.
func Run(app *App, cfg RunConfig) error {
	defer app.Close()

	w, h := app.Size()
	if cfg.Width > 0 && cfg.Height > 0 {
		w, h = cfg.Width, cfg.Height
	}
	title := cfg.Title
	if title == "" {
		title = app.Config().Title
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(app.tps)

	g := &game{app: app, renderer: NewRenderer(), exitDone: cfg.ExitWhenScriptDone}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
