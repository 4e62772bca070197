package entity

import (
	"go-shooter/internal/config"
	"go-shooter/pkg/render"
)

// Enemy moves along a fixed vector set at spawn time.
type Enemy struct {
	Base
	Speed float64
}

var _ Actor = (*Enemy)(nil)

// NewEnemy creates an inactive enemy slot.
func NewEnemy(surface render.Surface, sprite Sprite, w, h float64) *Enemy {
	return &Enemy{
		Base:  NewBase(surface, sprite, 0, 0, w, h, 0),
		Speed: config.EnemySpeed,
	}
}

// Spawn places the enemy and activates it with one life.
func (e *Enemy) Spawn(x, y float64) {
	e.SpawnWithLife(x, y, 1)
}

// SpawnWithLife places the enemy and activates it with the given life.
func (e *Enemy) SpawnWithLife(x, y float64, life int) {
	e.Position.SetXY(x, y)
	e.Life = life
}

// Hit takes damage and reports whether the enemy died from it.
func (e *Enemy) Hit(damage int) bool {
	if e.Life <= 0 {
		return false
	}
	e.Life -= damage
	if e.Life < 0 {
		e.Life = 0
	}
	return e.Life == 0
}

// Escaped reports whether the enemy is fully below the bottom edge.
func (e *Enemy) Escaped() bool {
	return e.Position.Y-e.Height > e.surface.Height()
}

func (e *Enemy) Update(f Frame) {
	if e.Life <= 0 {
		return
	}
	if e.Escaped() {
		e.Life = 0
		return
	}
	e.move(e.Speed)
	e.Draw()
}
