package system

import (
	"testing"

	"go-shooter/internal/config"
	"go-shooter/internal/defs"
	"go-shooter/internal/entity"
	"go-shooter/internal/event"
	"go-shooter/internal/utils"
	"go-shooter/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noSprites struct{}

func (noSprites) Sprite(config.SpriteID) entity.Sprite { return nil }

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }

func newTestWorld() *entity.World {
	return entity.NewWorld(render.NewCommandBuffer(config.ScreenWidth, config.ScreenHeight), noSprites{})
}

func TestHitKillsShotAndEnemy(t *testing.T) {
	world := newTestWorld()
	d := event.NewDispatcher()
	destroyed := &recorder{}
	d.Subscribe(event.EnemyDestroyed, destroyed)
	hits := NewHitSystem(world, d)

	enemy := world.Enemies.At(0)
	enemy.Spawn(100, 100)
	shot := world.Shots.At(0)
	shot.Spawn(105, 110)
	miss := world.SingleShots.At(0)
	miss.Spawn(400, 400)

	assert.Equal(t, 1, hits.Update())
	assert.False(t, shot.Alive())
	assert.False(t, enemy.Alive())
	assert.True(t, miss.Alive())
	require.Len(t, destroyed.got, 1)
	assert.Same(t, enemy, destroyed.got[0].Data)
}

func TestHitDamagesToughEnemy(t *testing.T) {
	world := newTestWorld()
	d := event.NewDispatcher()
	destroyed := &recorder{}
	d.Subscribe(event.EnemyDestroyed, destroyed)
	hits := NewHitSystem(world, d)

	enemy := world.Enemies.At(0)
	enemy.SpawnWithLife(100, 100, 3)
	world.Shots.At(0).Spawn(100, 100)
	world.Shots.At(1).Spawn(100, 100)

	assert.Equal(t, 2, hits.Update())
	assert.Equal(t, 1, enemy.Life)
	assert.Empty(t, destroyed.got)
}

func TestHitIgnoresDeadEntities(t *testing.T) {
	world := newTestWorld()
	hits := NewHitSystem(world, event.NewDispatcher())

	world.Shots.At(0).Spawn(100, 100)
	world.Enemies.At(0).Position.SetXY(100, 100)

	assert.Equal(t, 0, hits.Update())
	assert.True(t, world.Shots.At(0).Alive())
}

func testStage() *defs.StageDefinition {
	return &defs.StageDefinition{
		ID:          "test",
		SpawnMargin: 32,
		Waves: []defs.WaveDefinition{
			{Count: 2, SpawnInterval: 3, EnemyLife: 2, EnemySpeed: 1.5, Pause: 4},
			{Count: 1, SpawnInterval: 1, EnemyLife: 1},
		},
	}
}

func TestSpawnWaitsForPlayer(t *testing.T) {
	world := newTestWorld()
	d := event.NewDispatcher()
	spawner := NewSpawnSystem(world, testStage(), utils.NewPRNGService(1), d, config.ScreenWidth)

	for i := 0; i < 10; i++ {
		spawner.Update()
	}
	assert.Equal(t, 0, world.Enemies.Alive())

	d.Dispatch(event.Event{Type: event.PlayerReady})
	assert.True(t, spawner.Active())
	spawner.Update()
	assert.Equal(t, 1, world.Enemies.Alive())
}

func TestSpawnFollowsScript(t *testing.T) {
	world := newTestWorld()
	d := event.NewDispatcher()
	waves := &recorder{}
	d.Subscribe(event.WaveStarted, waves)
	spawner := NewSpawnSystem(world, testStage(), utils.NewPRNGService(1), d, config.ScreenWidth)
	d.Dispatch(event.Event{Type: event.PlayerReady})

	spawner.Update() // tick 0: first enemy
	enemy := world.Enemies.At(0)
	require.True(t, enemy.Alive())
	assert.Equal(t, 2, enemy.Life)
	assert.Equal(t, 1.5, enemy.Speed)
	assert.Equal(t, 1.0, enemy.Facing.Y)
	assert.Equal(t, -enemy.Height, enemy.Position.Y)
	assert.GreaterOrEqual(t, enemy.Position.X, 32.0)
	assert.LessOrEqual(t, enemy.Position.X, float64(config.ScreenWidth)-32)

	spawner.Update() // ticks 1, 2: waiting
	spawner.Update()
	assert.Equal(t, 1, world.Enemies.Alive())
	spawner.Update() // tick 3: second enemy ends wave 0
	assert.Equal(t, 2, world.Enemies.Alive())
	assert.Equal(t, 1, spawner.Wave())

	for i := 0; i < 6; i++ { // interval-1 plus the pause
		spawner.Update()
	}
	assert.Equal(t, 2, world.Enemies.Alive())
	spawner.Update()
	assert.Equal(t, 3, world.Enemies.Alive())
	assert.Equal(t, 0, spawner.Wave(), "waves loop")

	require.Len(t, waves.got, 2)
	assert.Equal(t, 0, waves.got[0].Data)
	assert.Equal(t, 1, waves.got[1].Data)
}

func TestSpawnResetsSpeedOnReusedSlot(t *testing.T) {
	world := newTestWorld()
	d := event.NewDispatcher()
	stage := &defs.StageDefinition{
		ID: "reuse",
		Waves: []defs.WaveDefinition{
			{Count: 1, SpawnInterval: 1, EnemyLife: 1, EnemySpeed: 0.5},
			{Count: 1, SpawnInterval: 1, EnemyLife: 1},
		},
	}
	spawner := NewSpawnSystem(world, stage, utils.NewPRNGService(1), d, config.ScreenWidth)
	d.Dispatch(event.Event{Type: event.PlayerReady})

	spawner.Update()
	enemy := world.Enemies.At(0)
	require.True(t, enemy.Alive())
	assert.Equal(t, 0.5, enemy.Speed)

	enemy.Life = 0
	spawner.Update()
	require.True(t, enemy.Alive(), "second wave reuses slot 0")
	assert.Equal(t, config.EnemySpeed, enemy.Speed)
	assert.Equal(t, 1, world.Enemies.Alive())
}

func TestSpawnDropsWhenPoolFull(t *testing.T) {
	world := newTestWorld()
	d := event.NewDispatcher()
	for i := 0; i < world.Enemies.Len(); i++ {
		world.Enemies.At(i).Spawn(0, 0)
	}
	spawner := NewSpawnSystem(world, testStage(), utils.NewPRNGService(1), d, config.ScreenWidth)
	d.Dispatch(event.Event{Type: event.PlayerReady})

	assert.NotPanics(t, spawner.Update)
	assert.Equal(t, world.Enemies.Len(), world.Enemies.Alive())
	assert.Equal(t, 0.0, world.Enemies.At(0).Position.Y)
}
