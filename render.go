package folio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenutil's debug font cell.
const (
	glyphW = 6
	glyphH = 16
)

// Renderer draws an App onto an Ebitengine image. It keeps offscreen
// layers for the field and the page so each can be composited with its
// own opacity.
type Renderer struct {
	fieldLayer   *ebiten.Image
	contentLayer *ebiten.Image
	labelLayer   *ebiten.Image
	labelText    string
}

// NewRenderer creates a renderer. Layers are allocated on the first Draw.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders the loading screen, or the field, page, and cursor.
func (r *Renderer) Draw(screen *ebiten.Image, a *App) {
	colors := a.Colors()
	screen.Fill(colors.Background.RGBA8())

	if !a.Mounted() {
		r.drawLoading(screen, a)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	r.fieldLayer = ensureLayer(r.fieldLayer, w, h)
	r.contentLayer = ensureLayer(r.contentLayer, w, h)

	r.drawField(a)
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleAlpha(float32(a.Field().Config().Opacity))
	op.Blend = BlendAdd.EbitenBlend()
	screen.DrawImage(r.fieldLayer, &op)

	r.drawPage(a)
	op = ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(a.Loading().ContentAlpha()))
	op.Blend = BlendNormal.EbitenBlend()
	screen.DrawImage(r.contentLayer, &op)

	r.drawCursor(screen, a)
}

// ensureLayer returns img if it already has the requested size, or a new
// cleared image otherwise.
func ensureLayer(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			img.Clear()
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}

func (r *Renderer) drawField(a *App) {
	clr := a.Colors().Accent.RGBA8()
	for _, p := range a.ProjectedField() {
		s := float32(max(p.Size, 1))
		vector.DrawFilledRect(r.fieldLayer, float32(p.X)-s/2, float32(p.Y)-s/2, s, s, clr, false)
	}
}

func (r *Renderer) drawPage(a *App) {
	colors := a.Colors()
	scroll := a.Sections().ScrollOffset()
	_, vh := a.Size()
	dst := r.contentLayer

	walkVisible(a.Stage().Root(), func(n *Node) {
		b := n.Bounds
		if b.Empty() || b.Y+b.Height < scroll || b.Y > scroll+float64(vh) {
			return
		}
		x, y := float32(b.X), float32(b.Y-scroll)
		bw, bh := float32(b.Width), float32(b.Height)
		hovered := a.Stage().Hovered() != nil && ClosestInteractive(a.Stage().Hovered(), DefaultMaxDepth) == n

		switch {
		case n.Name == "header":
			vector.DrawFilledRect(dst, x, y, bw, bh, colors.Background.WithAlpha(a.HeaderAlpha()).RGBA8(), false)
			vector.StrokeRect(dst, x, y+bh-1, bw, 1, 1, colors.Text.WithAlpha(0.1).RGBA8(), false)
		case n.Parent != nil && n.Parent.Name == "header":
			if hovered {
				vector.DrawFilledRect(dst, x, y, bw, bh, colors.Text.WithAlpha(0.1).RGBA8(), true)
			}
			if a.ActiveNav(n) {
				vector.DrawFilledRect(dst, x+labelPadding, y+bh-4, bw-2*labelPadding, 2, colors.Accent.RGBA8(), false)
			}
		case n.Kind == NodeButton:
			t := 0.0
			if hovered {
				t = 1
			}
			vector.DrawFilledRect(dst, x, y, bw, bh, GradientAt(colors.Accent, colors.AccentEnd, t).RGBA8(), true)
		case n.Kind == NodeLink:
			vector.StrokeRect(dst, x, y+bh-2, bw, 1, 1, colors.Accent.RGBA8(), false)
		case n.Interactive:
			alpha := 0.05
			if hovered {
				alpha = 0.1
			}
			vector.DrawFilledRect(dst, x, y, bw, bh, colors.Text.WithAlpha(alpha).RGBA8(), true)
			vector.StrokeRect(dst, x, y, bw, bh, 1, colors.Text.WithAlpha(0.1).RGBA8(), true)
		}
		if n.Text != "" {
			ebitenutil.DebugPrintAt(dst, n.Text, int(x), int(y)+int(bh-glyphH)/2)
		}
	})
}

// walkVisible calls fn for every visible node in painter order.
func walkVisible(n *Node, fn func(*Node)) {
	if !n.Visible || n.disposed {
		return
	}
	fn(n)
	for _, c := range sortedByZ(n.children) {
		walkVisible(c, fn)
	}
}

func (r *Renderer) drawCursor(screen *ebiten.Image, a *App) {
	p := a.Cursor()
	g := a.Config().Cursor.Geometry
	colors := a.Colors()

	if p.Ring.Visible {
		cx := p.Ring.X + g.RingSize/2
		cy := p.Ring.Y + g.RingSize/2
		rad := g.RingSize / 2 * p.Ring.Scale
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(rad), 2,
			colors.Accent.WithAlpha(clamp01(p.Ring.Opacity)).RGBA8(), true)
	}
	if p.Dot.Visible {
		cx := p.Dot.X + g.DotSize/2
		cy := p.Dot.Y + g.DotSize/2
		rad := g.DotSize / 2 * p.Dot.Scale
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(rad),
			colors.Text.WithAlpha(clamp01(p.Dot.Opacity)).RGBA8(), true)
	}
	if p.Label.Visible && p.Text != "" {
		r.drawLabel(screen, p.Label, p.Text, colors)
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, t Target, text string, colors Colors) {
	w := len(text)*glyphW + labelPadding
	h := glyphH + 8
	if r.labelLayer == nil || r.labelText != text || r.labelLayer.Bounds().Dx() != w {
		if r.labelLayer != nil {
			r.labelLayer.Deallocate()
		}
		r.labelLayer = ebiten.NewImage(w, h)
		vector.DrawFilledRect(r.labelLayer, 0, 0, float32(w), float32(h), colors.Accent.RGBA8(), true)
		ebitenutil.DebugPrintAt(r.labelLayer, text, labelPadding/2, 4)
		r.labelText = text
	}

	// Scale about the label's centre.
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(t.Scale, t.Scale)
	op.GeoM.Translate(t.X+float64(w)/2, t.Y+float64(h)/2)
	op.ColorScale.ScaleAlpha(float32(clamp01(t.Opacity)))
	screen.DrawImage(r.labelLayer, &op)
}

func (r *Renderer) drawLoading(screen *ebiten.Image, a *App) {
	l := a.Loading()
	cfg := l.Config()
	colors := a.Colors()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float64(w)/2, float64(h)/2

	drawFadedText(screen, cfg.Title, cx, cy-40, l.LogoAlpha())

	const barW, barH = 200.0, 4.0
	bx, by := float32(cx-barW/2), float32(cy)
	vector.DrawFilledRect(screen, bx, by, barW, barH, colors.Text.WithAlpha(0.1).RGBA8(), false)
	fill := float32(barW * l.Progress())
	vector.DrawFilledRect(screen, bx, by, fill, barH,
		GradientAt(colors.Accent, colors.AccentEnd, l.Progress()).RGBA8(), false)

	drawFadedText(screen, cfg.Message, cx, cy+30, l.MessageAlpha())
}

// drawFadedText prints text centred on (cx, cy) at the given opacity.
func drawFadedText(dst *ebiten.Image, text string, cx, cy, alpha float64) {
	if text == "" || alpha <= 0 {
		return
	}
	w := len(text) * glyphW
	img := ebiten.NewImage(w, glyphH)
	defer img.Deallocate()
	ebitenutil.DebugPrint(img, text)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(math.Round(cx-float64(w)/2), math.Round(cy-glyphH/2))
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, &op)
}
