package entity

import (
	"image"

	"go-shooter/internal/config"
	"go-shooter/pkg/render"
)

type stubImage struct{}

func (stubImage) Bounds() image.Rectangle { return image.Rect(0, 0, 16, 16) }

type stubSprite struct {
	ready bool
}

func (s *stubSprite) Image() render.Image {
	if !s.ready {
		return nil
	}
	return stubImage{}
}

func (s *stubSprite) Ready() bool { return s.ready }

type stubSprites struct{}

func (stubSprites) Sprite(config.SpriteID) Sprite { return &stubSprite{ready: true} }

func newShotPool(surface render.Surface, size int) *Pool[*Projectile] {
	return NewPool(size, func() *Projectile {
		return NewProjectile(surface, &stubSprite{ready: true}, 8, 8)
	})
}
