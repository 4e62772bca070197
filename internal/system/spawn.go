// internal/system/spawn.go
package system

import (
	"go-shooter/internal/config"
	"go-shooter/internal/defs"
	"go-shooter/internal/entity"
	"go-shooter/internal/event"
	"go-shooter/internal/utils"
)

// SpawnSystem plays a stage script: it drops enemies from the top edge at
// random x positions, one wave after another. It stays idle until the
// player has control.
type SpawnSystem struct {
	enemies         *entity.Pool[*entity.Enemy]
	stage           *defs.StageDefinition
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	width           float64

	active  bool
	wave    int
	spawned int
	timer   int
}

func NewSpawnSystem(world *entity.World, stage *defs.StageDefinition, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, width float64) *SpawnSystem {
	s := &SpawnSystem{
		enemies:         world.Enemies,
		stage:           stage,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		width:           width,
	}
	eventDispatcher.Subscribe(event.PlayerReady, s)
	return s
}

// OnEvent starts the script once the player entrance is over.
func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type == event.PlayerReady {
		s.active = true
	}
}

func (s *SpawnSystem) Active() bool { return s.active }

// Wave returns the index of the wave being played.
func (s *SpawnSystem) Wave() int { return s.wave }

func (s *SpawnSystem) Update() {
	if !s.active {
		return
	}
	if s.timer > 0 {
		s.timer--
		return
	}

	wave := s.stage.Waves[s.wave]
	if s.spawned == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.wave})
	}
	s.spawn(wave)
	s.spawned++

	s.timer = wave.SpawnInterval - 1
	if s.spawned >= wave.Count {
		s.timer += wave.Pause
		s.spawned = 0
		s.wave = (s.wave + 1) % len(s.stage.Waves)
	}
}

// spawn claims a free enemy slot. A full pool drops the request.
func (s *SpawnSystem) spawn(wave defs.WaveDefinition) bool {
	enemy, ok := s.enemies.Free()
	if !ok {
		return false
	}
	margin := s.stage.SpawnMargin
	x := s.rng.Range(margin, s.width-margin)
	speed := config.EnemySpeed
	if wave.EnemySpeed > 0 {
		speed = wave.EnemySpeed
	}
	enemy.Speed = speed
	enemy.SetFacing(0, 1)
	enemy.SpawnWithLife(x, -enemy.Height, wave.EnemyLife)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy})
	return true
}
