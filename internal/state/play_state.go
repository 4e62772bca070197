// internal/state/play_state.go
package state

import (
	"log"
	"time"

	"go-shooter/internal/assets"
	"go-shooter/internal/config"
	"go-shooter/internal/defs"
	"go-shooter/internal/entity"
	"go-shooter/internal/event"
	"go-shooter/internal/screen"
	"go-shooter/internal/system"
	"go-shooter/internal/ui"
	"go-shooter/internal/utils"
	"go-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// spriteSource hands entities their sprite handles from the asset cache.
type spriteSource struct {
	manager *assets.Manager
}

func (s spriteSource) Sprite(id config.SpriteID) entity.Sprite {
	return s.manager.Sprite(id)
}

// PlayState drives the world once per tick. Entities render into a command
// buffer during Update; Draw replays it onto the screen.
type PlayState struct {
	sm              *StateMachine
	world           *entity.World
	buffer          *render.CommandBuffer
	canvas          *screen.Canvas
	keyboard        *screen.Keyboard
	eventDispatcher *event.Dispatcher
	hitSystem       *system.HitSystem
	spawnSystem     *system.SpawnSystem
	hud             *ui.HUD
	sprites         *assets.Manager
	clock           *utils.Clock

	started     bool
	wasEntering bool
}

func NewPlayState(sm *StateMachine, sprites *assets.Manager, stage *defs.StageDefinition, seed int64) *PlayState {
	buffer := render.NewCommandBuffer(config.ScreenWidth, config.ScreenHeight)
	world := entity.NewWorld(buffer, spriteSource{manager: sprites})
	dispatcher := event.NewDispatcher()

	ps := &PlayState{
		sm:              sm,
		world:           world,
		buffer:          buffer,
		canvas:          new(screen.Canvas),
		keyboard:        screen.NewKeyboard(nil),
		eventDispatcher: dispatcher,
		hitSystem:       system.NewHitSystem(world, dispatcher),
		spawnSystem:     system.NewSpawnSystem(world, stage, utils.NewPRNGService(seed), dispatcher, config.ScreenWidth),
		hud:             ui.NewHUD(),
		sprites:         sprites,
		clock:           utils.NewClock(time.Now()),
	}

	dispatcher.Subscribe(event.PlayerReady, event.ListenerFunc(func(event.Event) {
		log.Println("Player ready")
	}))
	dispatcher.Subscribe(event.WaveStarted, event.ListenerFunc(func(e event.Event) {
		log.Printf("Wave %d started", e.Data.(int)+1)
	}))
	return ps
}

// Enter starts the entrance sequence the first time the scene is shown.
// Coming back from pause resumes where it was.
func (g *PlayState) Enter() {
	if g.started {
		return
	}
	g.started = true

	w, h := g.buffer.Width(), g.buffer.Height()
	g.world.Player.BeginEntry(g.clock.Now(), w/2, h+config.EntryStartOffsetY, w/2, h-config.EntryEndOffsetY)
	g.wasEntering = true
}

func (g *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reloadSprites()
	}

	g.buffer.Reset()
	frame := entity.Frame{Now: g.clock.Advance(deltaTime), Keys: g.keyboard.Poll()}

	g.world.Update(frame)
	if g.wasEntering && !g.world.Player.Entering() {
		g.wasEntering = false
		g.eventDispatcher.Dispatch(event.Event{Type: event.PlayerReady})
	}
	g.spawnSystem.Update()
	g.hitSystem.Update()
}

func (g *PlayState) Draw(dst *ebiten.Image) {
	dst.Fill(config.BackgroundColor)
	g.canvas.Begin(dst)
	g.buffer.Replay(g.canvas)

	wave := 0
	if g.spawnSystem.Active() {
		wave = g.spawnSystem.Wave() + 1
	}
	g.hud.Draw(dst, ui.HUDStats{
		TPS:           ebiten.ActualTPS(),
		Shots:         g.world.LiveShots(),
		ShotCapacity:  g.world.Shots.Len() + g.world.SingleShots.Len(),
		Enemies:       g.world.Enemies.Alive(),
		EnemyCapacity: g.world.Enemies.Len(),
		Entering:      g.world.Player.Entering(),
		Wave:          wave,
		Now:           g.clock.Now(),
	})
}

// reloadSprites drops the sprite cache and hands every entity a new handle.
// Entities draw nothing until the new images finish loading.
func (g *PlayState) reloadSprites() {
	log.Println("Reloading all sprites...")
	g.sprites.Cleanup()
	g.world.Rebind(spriteSource{manager: g.sprites})
}

func (g *PlayState) Exit() {}
