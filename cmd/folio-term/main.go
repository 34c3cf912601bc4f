// Folio-term runs the portfolio in a terminal. Mouse motion and clicks
// drive the same stage and cursor tracker as the windowed host; the
// ambient field is projected onto character cells.
//
// Esc or Ctrl-C quits. The wheel scrolls; keys 1-5 jump to sections.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/phanxgames/folio"
)

// Each cell stands for a cellW x cellH block of page pixels.
const (
	cellW = 8
	cellH = 16
	tps   = 60
)

type termHost struct {
	screen tcell.Screen
	app    *folio.App
	cfg    folio.Config

	mouseX, mouseY float64
	pressed        bool
	button         folio.MouseButton
	wheel          float64
	jump           string
}

func newTermHost(cfg folio.Config) (*termHost, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	app, err := folio.NewApp(cfg, max(cols, 1)*cellW, max(rows, 1)*cellH, tps)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return &termHost{screen: screen, app: app, cfg: cfg}, nil
}

func (h *termHost) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			if i := int(ev.Rune() - '1'); i >= 0 && i < len(h.cfg.Sections) {
				h.jump = h.cfg.Sections[i].Name
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		h.mouseX = float64(x*cellW + cellW/2)
		h.mouseY = float64(y*cellH + cellH/2)
		b := ev.Buttons()
		h.pressed = b&(tcell.Button1|tcell.Button2|tcell.Button3) != 0
		switch {
		case b&tcell.Button1 != 0:
			h.button = folio.MouseButtonLeft
		case b&tcell.Button2 != 0:
			h.button = folio.MouseButtonRight
		case b&tcell.Button3 != 0:
			h.button = folio.MouseButtonMiddle
		}
		if b&tcell.WheelUp != 0 {
			h.wheel -= cellH * 3
		}
		if b&tcell.WheelDown != 0 {
			h.wheel += cellH * 3
		}

	case *tcell.EventResize:
		cols, rows := h.screen.Size()
		if err := h.app.Resize(max(cols, 1)*cellW, max(rows, 1)*cellH); err != nil {
			fmt.Fprintf(os.Stderr, "resize: %v\n", err)
		}
		h.screen.Sync()
	}
	return true
}

func (h *termHost) tick() {
	h.app.Update(folio.FrameInput{
		X: h.mouseX, Y: h.mouseY,
		Pressed: h.pressed, Button: h.button,
		WheelY: h.wheel,
		JumpTo: h.jump,
	})
	h.wheel = 0
	h.jump = ""
}

func cellColor(c folio.Color) tcell.Color {
	c8 := c.RGBA8()
	return tcell.NewRGBColor(int32(c8.R), int32(c8.G), int32(c8.B))
}

// putText writes text from column x and returns the column after it.
// Wide runes take two cells.
func (h *termHost) putText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		h.screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

func (h *termHost) draw() {
	colors := h.app.Colors()
	base := tcell.StyleDefault.Background(cellColor(colors.Background)).Foreground(cellColor(colors.Text))
	h.screen.Fill(' ', base)
	cols, rows := h.screen.Size()

	if !h.app.Mounted() {
		h.drawLoading(cols, rows, base)
		h.screen.Show()
		return
	}

	dim := cellColor(folio.GradientAt(colors.Background, colors.Accent, 0.25))
	fieldStyle := base.Foreground(cellColor(folio.GradientAt(colors.Background, colors.Accent, h.cfg.Field.Opacity)))
	for _, p := range h.app.ProjectedField() {
		h.screen.SetContent(int(p.X)/cellW, int(p.Y)/cellH, '·', nil, fieldStyle)
	}

	if h.app.HeaderScrolled() {
		header := base.Background(cellColor(folio.GradientAt(colors.Background, colors.Text, 0.08)))
		for x := 0; x < cols; x++ {
			h.screen.SetContent(x, 0, ' ', nil, header)
		}
	}

	scroll := h.app.Sections().ScrollOffset()
	var hoverOwner *folio.Node
	if hovered := h.app.Stage().Hovered(); hovered != nil {
		hoverOwner = folio.ClosestInteractive(hovered, folio.DefaultMaxDepth)
	}
	var walk func(n *folio.Node)
	walk = func(n *folio.Node) {
		if !n.Visible {
			return
		}
		b := n.Bounds
		cy := int(b.Y-scroll) / cellH
		if !b.Empty() && cy >= 0 && cy < rows {
			cx := int(b.X) / cellW
			style := base
			// Text inside a button or link takes the element's styling.
			if owner := folio.ClosestInteractive(n, folio.DefaultMaxDepth); owner != nil {
				style = base.Foreground(cellColor(colors.Accent)).Underline(owner.Kind == folio.NodeLink)
				if h.app.ActiveNav(owner) {
					style = style.Bold(true).Reverse(true)
				}
				if hoverOwner == owner {
					style = style.Background(dim).Bold(true)
				}
			}
			if n.Text != "" {
				h.putText(cx, cy, n.Text, style)
			}
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(h.app.Stage().Root())

	cur := h.app.Cursor()
	st := h.app.PointerState()
	px, py := int(st.Position.X)/cellW, int(st.Position.Y)/cellH
	dot := '•'
	switch {
	case st.Pressed:
		dot = '◦'
	case st.Hovering:
		dot = '●'
	}
	h.screen.SetContent(px, py, dot, nil, base.Foreground(cellColor(colors.Accent)))
	if cur.Label.Visible && cur.Text != "" && cur.Label.Opacity > 0.5 {
		label := base.Background(cellColor(colors.Accent)).Foreground(cellColor(colors.Text))
		h.putText(px+2, py-1, " "+cur.Text+" ", label)
	}
	h.screen.Show()
}

func (h *termHost) drawLoading(cols, rows int, base tcell.Style) {
	l := h.app.Loading()
	cfg := l.Config()
	colors := h.app.Colors()
	cy := rows / 2

	title := base.Foreground(cellColor(folio.GradientAt(colors.Background, colors.Text, l.LogoAlpha())))
	h.putText((cols-runewidth.StringWidth(cfg.Title))/2, cy-2, cfg.Title, title)

	const barW = 30
	filled := int(l.Progress() * barW)
	x0 := (cols - barW) / 2
	for i := 0; i < barW; i++ {
		r, style := '░', base
		if i < filled {
			r = '█'
			style = base.Foreground(cellColor(folio.GradientAt(colors.Accent, colors.AccentEnd, float64(i)/barW)))
		}
		h.screen.SetContent(x0+i, cy, r, nil, style)
	}

	msg := base.Foreground(cellColor(folio.GradientAt(colors.Background, colors.Text, l.MessageAlpha())))
	h.putText((cols-runewidth.StringWidth(cfg.Message))/2, cy+2, cfg.Message, msg)
}

func (h *termHost) run() {
	ticker := time.NewTicker(time.Second / tps)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleInput(ev) {
				return
			}
		case <-ticker.C:
			h.tick()
			h.draw()
		}
	}
}

func (h *termHost) cleanup() {
	h.app.Close()
	h.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", ".env", "dotenv file with FOLIO_* overrides")
	flag.Parse()

	cfg := folio.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = folio.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.ApplyEnv(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to apply env: %v\n", err)
		os.Exit(1)
	}
	// Debug lines would tear the terminal UI.
	cfg.Debug = false

	host, err := newTermHost(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer host.cleanup()

	host.run()
}
