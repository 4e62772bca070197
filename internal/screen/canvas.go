package screen

import (
	"go-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type canvasState struct {
	geom  ebiten.GeoM
	alpha float32
}

// Canvas draws onto an ebiten image with canvas-style transforms and a
// save/restore stack. The zero value is ready once Begin is called.
type Canvas struct {
	dst   *ebiten.Image
	cur   canvasState
	stack []canvasState
}

var _ render.Surface = (*Canvas)(nil)

// Begin retargets the canvas at dst and resets its state.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.cur = canvasState{alpha: 1}
	c.stack = c.stack[:0]
}

func (c *Canvas) Width() float64 {
	return float64(c.dst.Bounds().Dx())
}

func (c *Canvas) Height() float64 {
	return float64(c.dst.Bounds().Dy())
}

// DrawImage stretches img to w×h at (x, y) in the current transform.
// Anything that is not a loaded ebiten image is skipped.
func (c *Canvas) DrawImage(img render.Image, x, y, w, h float64) {
	src, ok := img.(*ebiten.Image)
	if !ok || src == nil {
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.cur.geom)
	op.ColorScale.ScaleAlpha(c.cur.alpha)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(src, op)
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the last saved state. An unbalanced Restore is ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(c.cur.geom)
	c.cur.geom = m
}

func (c *Canvas) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(c.cur.geom)
	c.cur.geom = m
}

func (c *Canvas) SetAlpha(a float64) {
	c.cur.alpha = float32(a)
}
