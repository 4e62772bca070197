// internal/system/hit.go
package system

import (
	"go-shooter/internal/entity"
	"go-shooter/internal/event"
	"go-shooter/internal/utils"
)

// HitSystem resolves shots against enemies. A shot that touches an enemy
// dies and deals its power as damage.
type HitSystem struct {
	enemies         *entity.Pool[*entity.Enemy]
	shotPools       []*entity.Pool[*entity.Projectile]
	eventDispatcher *event.Dispatcher
}

func NewHitSystem(world *entity.World, eventDispatcher *event.Dispatcher) *HitSystem {
	return &HitSystem{
		enemies:         world.Enemies,
		shotPools:       []*entity.Pool[*entity.Projectile]{world.Shots, world.SingleShots},
		eventDispatcher: eventDispatcher,
	}
}

// Update checks every live shot against every live enemy and returns the
// number of hits.
func (s *HitSystem) Update() int {
	hits := 0
	for _, pool := range s.shotPools {
		pool.Each(func(shot *entity.Projectile) {
			s.enemies.Each(func(enemy *entity.Enemy) {
				if !shot.Alive() || !enemy.Alive() {
					return
				}
				if !utils.Overlaps(
					shot.Position.X, shot.Position.Y, shot.Width, shot.Height,
					enemy.Position.X, enemy.Position.Y, enemy.Width, enemy.Height,
				) {
					return
				}
				shot.Life = 0
				hits++
				if enemy.Hit(shot.Power) {
					s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemy})
				}
			})
		})
	}
	return hits
}
