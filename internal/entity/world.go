// internal/entity/world.go
package entity

import (
	"go-shooter/internal/config"
	"go-shooter/pkg/render"
)

// Sprites supplies the sprite handle for each entity kind.
type Sprites interface {
	Sprite(id config.SpriteID) Sprite
}

// World holds every entity of a scene: the player and the fixed pools it
// shares with the per-tick driver.
type World struct {
	Player      *Player
	Enemies     *Pool[*Enemy]
	Shots       *Pool[*Projectile]
	SingleShots *Pool[*Projectile]
}

// NewWorld allocates the player and all pools once at scene setup.
func NewWorld(surface render.Surface, sprites Sprites) *World {
	w := &World{
		Player: NewPlayer(surface, sprites.Sprite(config.SpriteViper),
			surface.Width()/2, surface.Height()-config.EntryEndOffsetY,
			config.PlayerWidth, config.PlayerHeight),
		Enemies: NewPool(config.EnemyMaxCount, func() *Enemy {
			return NewEnemy(surface, sprites.Sprite(config.SpriteEnemy), config.EnemyWidth, config.EnemyHeight)
		}),
		Shots: NewPool(config.ShotMaxCount, func() *Projectile {
			return NewProjectile(surface, sprites.Sprite(config.SpriteShot), config.ShotWidth, config.ShotHeight)
		}),
		SingleShots: NewPool(config.SingleShotCount, func() *Projectile {
			return NewProjectile(surface, sprites.Sprite(config.SpriteSingleShot), config.ShotWidth, config.ShotHeight)
		}),
	}
	w.Player.SetShotPools(w.Shots, w.SingleShots)
	return w
}

// Rebind hands every entity a fresh sprite handle, live or not.
func (w *World) Rebind(sprites Sprites) {
	w.Player.SetSprite(sprites.Sprite(config.SpriteViper))
	for i := 0; i < w.Enemies.Len(); i++ {
		w.Enemies.At(i).SetSprite(sprites.Sprite(config.SpriteEnemy))
	}
	for i := 0; i < w.Shots.Len(); i++ {
		w.Shots.At(i).SetSprite(sprites.Sprite(config.SpriteShot))
	}
	for i := 0; i < w.SingleShots.Len(); i++ {
		w.SingleShots.At(i).SetSprite(sprites.Sprite(config.SpriteSingleShot))
	}
}

// Update ticks the player, then enemies, then both shot pools.
func (w *World) Update(f Frame) {
	w.Player.Update(f)
	w.Enemies.Update(f)
	w.Shots.Update(f)
	w.SingleShots.Update(f)
}

// LiveShots counts active shots across both pools.
func (w *World) LiveShots() int {
	return w.Shots.Alive() + w.SingleShots.Alive()
}
