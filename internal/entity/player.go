package entity

import (
	"time"

	"go-shooter/internal/component"
	"go-shooter/internal/config"
	"go-shooter/internal/input"
	"go-shooter/internal/utils"
	"go-shooter/pkg/render"
)

// PlayerState is the phase of the player's update state machine.
type PlayerState int

const (
	Entering PlayerState = iota
	Controllable
)

func (s PlayerState) String() string {
	switch s {
	case Entering:
		return "entering"
	case Controllable:
		return "controllable"
	}
	return "unknown"
}

// Player is the ship steered by the keyboard. It borrows the shot pools it
// fires into; the scene owns and updates them.
type Player struct {
	Base
	Speed        float64
	ShotInterval int

	state       PlayerState
	entryStart  time.Time
	entryFrom   *component.Vector2
	entryTo     *component.Vector2
	sinceShot   int
	shots       *Pool[*Projectile]
	singleShots *Pool[*Projectile]
}

var _ Actor = (*Player)(nil)

// NewPlayer creates a controllable ship at (x, y).
func NewPlayer(surface render.Surface, sprite Sprite, x, y, w, h float64) *Player {
	return &Player{
		Base:         NewBase(surface, sprite, x, y, w, h, config.PlayerLife),
		Speed:        config.PlayerSpeed,
		ShotInterval: config.PlayerShotInterval,
		state:        Controllable,
		sinceShot:    config.PlayerShotInterval,
	}
}

// BeginEntry starts the entrance sequence: the ship snaps to the start
// anchor and rises until it reaches endY.
func (p *Player) BeginEntry(now time.Time, startX, startY, endX, endY float64) {
	p.state = Entering
	p.entryStart = now
	p.Position.SetXY(startX, startY)
	p.entryFrom = &component.Vector2{X: startX, Y: startY}
	p.entryTo = &component.Vector2{X: endX, Y: endY}
}

// SetShotPools hands the player the pools it fires into. Either may be nil.
func (p *Player) SetShotPools(shots, singleShots *Pool[*Projectile]) {
	p.shots = shots
	p.singleShots = singleShots
}

func (p *Player) State() PlayerState {
	return p.state
}

func (p *Player) Entering() bool {
	return p.state == Entering
}

func (p *Player) Update(f Frame) {
	if p.Life <= 0 {
		return
	}

	if p.state == Entering {
		p.updateEntry(f.Now)
	} else {
		p.updateControl(f.Keys)
	}

	p.Draw()
	p.surface.SetAlpha(1.0)
}

func (p *Player) updateEntry(now time.Time) {
	elapsed := now.Sub(p.entryStart).Seconds()
	y := p.entryFrom.Y - elapsed*config.EntryRisePerSecond
	if y <= p.entryTo.Y {
		p.state = Controllable
		y = p.entryTo.Y
	}
	p.Position.Set(component.F(p.entryFrom.X), component.F(y))

	if now.UnixMilli()%config.EntryBlinkPeriodMs < config.EntryBlinkOnMs {
		p.surface.SetAlpha(config.EntryAlpha)
	}
}

func (p *Player) updateControl(keys input.State) {
	if keys.Held(input.KeyArrowLeft) {
		p.Position.X -= p.Speed
	}
	if keys.Held(input.KeyArrowRight) {
		p.Position.X += p.Speed
	}
	if keys.Held(input.KeyArrowUp) {
		p.Position.Y -= p.Speed
	}
	if keys.Held(input.KeyArrowDown) {
		p.Position.Y += p.Speed
	}

	tx := utils.Clamp(p.Position.X, 0, p.surface.Width())
	ty := utils.Clamp(p.Position.Y, 0, p.surface.Height())
	p.Position.SetXY(tx, ty)

	if keys.Held(input.KeyFire) && p.sinceShot >= p.ShotInterval {
		fired := p.fireShot()
		if p.fireSingleShots() {
			fired = true
		}
		if fired {
			p.sinceShot = 0
		}
	}
	p.sinceShot++
}

// fireShot claims one slot in the primary pool. The slot keeps its facing.
func (p *Player) fireShot() bool {
	if p.shots == nil {
		return false
	}
	shot, ok := p.shots.Free()
	if !ok {
		return false
	}
	shot.Spawn(p.Position.X, p.Position.Y)
	return true
}

// fireSingleShots claims a pair of slots and fans them 10° either side of up.
func (p *Player) fireSingleShots() bool {
	if p.singleShots == nil {
		return false
	}
	right, left, ok := p.singleShots.FreePair()
	if !ok {
		return false
	}
	radCW := utils.DegToRad(config.DualShotAngleCW)
	radCCW := utils.DegToRad(config.DualShotAngleCCW)
	right.Spawn(p.Position.X, p.Position.Y)
	right.SetFacingFromAngle(radCW)
	left.Spawn(p.Position.X, p.Position.Y)
	left.SetFacingFromAngle(radCCW)
	return true
}
