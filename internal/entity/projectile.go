package entity

import (
	"go-shooter/internal/config"
	"go-shooter/pkg/render"
)

// Projectile is a pooled shot. Reviving a slot keeps whatever facing and
// angle it last held, so callers aim it after Spawn.
type Projectile struct {
	Base
	Speed float64
	Power int
}

var _ Actor = (*Projectile)(nil)

// NewProjectile creates an inactive shot slot facing straight up.
func NewProjectile(surface render.Surface, sprite Sprite, w, h float64) *Projectile {
	return &Projectile{
		Base:  NewBase(surface, sprite, 0, 0, w, h, 0),
		Speed: config.ShotSpeed,
		Power: config.ShotPower,
	}
}

// Spawn places the shot and revives it.
func (p *Projectile) Spawn(x, y float64) {
	p.Position.SetXY(x, y)
	p.Life = 1
}

// OffScreen reports whether the shot is fully above the top edge.
func (p *Projectile) OffScreen() bool {
	return p.Position.Y+p.Height < 0
}

func (p *Projectile) Update(f Frame) {
	if p.Life <= 0 {
		return
	}
	if p.OffScreen() {
		p.Life = 0
		return
	}
	p.move(p.Speed)
	p.Draw()
}

// Draw renders the shot rotated to its travel angle.
func (p *Projectile) Draw() {
	p.RotatedDraw()
}
