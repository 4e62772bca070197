package entity

import (
	"math"
	"time"

	"go-shooter/internal/component"
	"go-shooter/internal/input"
	"go-shooter/internal/utils"
	"go-shooter/pkg/render"
)

// Sprite is the image handle an entity draws with. It becomes ready once,
// asynchronously, when the backing image finishes loading.
type Sprite interface {
	Image() render.Image
	Ready() bool
}

// Frame carries everything an entity reads from the outside world in one tick.
type Frame struct {
	Now  time.Time
	Keys input.State
}

// Actor is the per-tick contract shared by every entity kind.
type Actor interface {
	Update(f Frame)
	Draw()
	Alive() bool
}

// Base holds the fields common to all entities. Life doubles as the
// liveness flag: Life <= 0 means inactive, invisible and non-colliding.
type Base struct {
	Position component.Vector2
	Facing   component.Vector2
	Angle    float64
	Width    float64
	Height   float64
	Life     int

	surface render.Surface
	sprite  Sprite
}

// NewBase creates the shared part of an entity facing straight up.
func NewBase(surface render.Surface, sprite Sprite, x, y, w, h float64, life int) Base {
	return Base{
		Position: component.Vector2{X: x, Y: y},
		Facing:   component.Vector2{X: 0, Y: -1},
		Angle:    utils.DegToRad(270),
		Width:    w,
		Height:   h,
		Life:     life,
		surface:  surface,
		sprite:   sprite,
	}
}

// Alive reports whether the entity is active.
func (b *Base) Alive() bool {
	return b.Life > 0
}

// Ready reports whether the sprite has finished loading.
func (b *Base) Ready() bool {
	return b.sprite != nil && b.sprite.Ready()
}

// SetSprite swaps the sprite handle the entity draws with.
func (b *Base) SetSprite(sprite Sprite) {
	b.sprite = sprite
}

// SetFacing overwrites the direction of travel.
func (b *Base) SetFacing(x, y float64) {
	b.Facing.Set(component.F(x), component.F(y))
}

// SetFacingFromAngle stores the angle and derives the facing from it.
func (b *Base) SetFacingFromAngle(angle float64) {
	b.Angle = angle
	b.Facing.SetXY(math.Cos(angle), math.Sin(angle))
}

// Draw renders the sprite centered on Position without rotation.
func (b *Base) Draw() {
	offsetX := b.Width / 2
	offsetY := b.Height / 2
	b.surface.DrawImage(b.image(), b.Position.X-offsetX, b.Position.Y-offsetY, b.Width, b.Height)
}

// RotatedDraw renders the sprite centered on Position, rotated by Angle.
// Sprites are authored pointing up, so 270° maps to no rotation.
func (b *Base) RotatedDraw() {
	b.surface.Save()
	b.surface.Translate(b.Position.X, b.Position.Y)
	b.surface.Rotate(b.Angle - math.Pi*1.5)

	offsetX := b.Width / 2
	offsetY := b.Height / 2
	b.surface.DrawImage(b.image(), -offsetX, -offsetY, b.Width, b.Height)
	b.surface.Restore()
}

func (b *Base) move(speed float64) {
	b.Position.X += b.Facing.X * speed
	b.Position.Y += b.Facing.Y * speed
}

func (b *Base) image() render.Image {
	if b.sprite == nil {
		return nil
	}
	return b.sprite.Image()
}
