package entity

import (
	"math"
	"testing"
	"time"

	"go-shooter/internal/input"
	"go-shooter/internal/utils"
	"go-shooter/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// epoch is a whole second, so its millisecond phase falls in the blink window.
var epoch = time.UnixMilli(1_700_000_000_000)

func newTestPlayer(buf *render.CommandBuffer) *Player {
	return NewPlayer(buf, &stubSprite{ready: true}, 100, 100, 64, 64)
}

func alphas(buf *render.CommandBuffer) []float64 {
	var out []float64
	for _, op := range buf.Ops() {
		if op.Kind == render.OpSetAlpha {
			out = append(out, op.Alpha)
		}
	}
	return out
}

func TestPlayerEntrySequence(t *testing.T) {
	buf := render.NewCommandBuffer(640, 800)
	p := newTestPlayer(buf)
	p.BeginEntry(epoch, 100, 600, 100, 400)
	assert.Equal(t, Entering, p.State())
	assert.Equal(t, 600.0, p.Position.Y)

	p.Update(Frame{Now: epoch.Add(2 * time.Second)})
	assert.Equal(t, 500.0, p.Position.Y)
	assert.Equal(t, 100.0, p.Position.X)
	assert.True(t, p.Entering())

	p.Update(Frame{Now: epoch.Add(4 * time.Second)})
	assert.Equal(t, 400.0, p.Position.Y)
	assert.Equal(t, Controllable, p.State())
}

func TestPlayerEntryFollowsSceneClock(t *testing.T) {
	buf := render.NewCommandBuffer(640, 800)
	p := newTestPlayer(buf)
	clock := utils.NewClock(epoch)
	p.BeginEntry(clock.Now(), 100, 600, 100, 400)

	for i := 0; i < 60; i++ {
		p.Update(Frame{Now: clock.Advance(1.0 / 60)})
	}
	assert.InDelta(t, 550.0, p.Position.Y, 1e-3)

	// Ticks stop while the scene is paused; the clock stops with them.
	p.Update(Frame{Now: clock.Advance(1.0 / 60)})
	assert.InDelta(t, 550.0-50.0/60, p.Position.Y, 1e-3)
	assert.True(t, p.Entering())
}

func TestPlayerEntryIgnoresKeys(t *testing.T) {
	buf := render.NewCommandBuffer(640, 800)
	p := newTestPlayer(buf)
	shots := newShotPool(buf, 2)
	p.SetShotPools(shots, nil)
	p.BeginEntry(epoch, 100, 600, 100, 400)

	p.Update(Frame{Now: epoch.Add(time.Second), Keys: input.Press(input.KeyArrowLeft, input.KeyFire)})
	assert.Equal(t, 100.0, p.Position.X)
	assert.Equal(t, 0, shots.Alive())
}

func TestPlayerEntryBlinks(t *testing.T) {
	buf := render.NewCommandBuffer(640, 800)
	p := newTestPlayer(buf)
	p.BeginEntry(epoch, 100, 600, 100, 400)

	p.Update(Frame{Now: epoch.Add(20 * time.Millisecond)})
	assert.Equal(t, []float64{0.5, 1.0}, alphas(buf))
	ops := buf.Ops()
	assert.Equal(t, render.OpDrawImage, ops[1].Kind, "draw happens while dimmed")

	buf.Reset()
	p.Update(Frame{Now: epoch.Add(70 * time.Millisecond)})
	assert.Equal(t, []float64{1.0}, alphas(buf))
}

func TestPlayerControllableRestoresAlpha(t *testing.T) {
	buf := render.NewCommandBuffer(640, 800)
	p := newTestPlayer(buf)

	p.Update(Frame{Now: epoch})
	ops := buf.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, render.OpDrawImage, ops[0].Kind)
	assert.Equal(t, render.OpSetAlpha, ops[1].Kind)
	assert.Equal(t, 1.0, ops[1].Alpha)
}

func TestPlayerMovesAndClamps(t *testing.T) {
	buf := render.NewCommandBuffer(300, 200)
	p := newTestPlayer(buf)
	p.Position.SetXY(10, 100)

	for i := 0; i < 10; i++ {
		p.Update(Frame{Keys: input.Press(input.KeyArrowLeft)})
		assert.GreaterOrEqual(t, p.Position.X, 0.0)
	}
	assert.Equal(t, 0.0, p.Position.X)

	for i := 0; i < 200; i++ {
		p.Update(Frame{Keys: input.Press(input.KeyArrowRight)})
		assert.LessOrEqual(t, p.Position.X, 300.0)
	}
	assert.Equal(t, 300.0, p.Position.X)

	for i := 0; i < 100; i++ {
		p.Update(Frame{Keys: input.Press(input.KeyArrowDown)})
	}
	assert.Equal(t, 200.0, p.Position.Y)

	for i := 0; i < 100; i++ {
		p.Update(Frame{Keys: input.Press(input.KeyArrowUp)})
	}
	assert.Equal(t, 0.0, p.Position.Y)
}

func TestPlayerDiagonalIsNotNormalized(t *testing.T) {
	buf := render.NewCommandBuffer(300, 300)
	p := newTestPlayer(buf)

	p.Update(Frame{Keys: input.Press(input.KeyArrowRight, input.KeyArrowDown)})
	assert.Equal(t, 103.0, p.Position.X)
	assert.Equal(t, 103.0, p.Position.Y)
}

func TestPlayerDualShotAngles(t *testing.T) {
	buf := render.NewCommandBuffer(300, 300)
	p := newTestPlayer(buf)
	singles := newShotPool(buf, 2)
	p.SetShotPools(nil, singles)

	p.Update(Frame{Keys: input.Press(input.KeyFire)})

	right, left := singles.At(0), singles.At(1)
	require.True(t, right.Alive())
	require.True(t, left.Alive())
	cw, ccw := 280*math.Pi/180, 260*math.Pi/180
	assert.InDelta(t, math.Cos(cw), right.Facing.X, 1e-9)
	assert.InDelta(t, math.Sin(cw), right.Facing.Y, 1e-9)
	assert.InDelta(t, math.Cos(ccw), left.Facing.X, 1e-9)
	assert.InDelta(t, math.Sin(ccw), left.Facing.Y, 1e-9)
	assert.Equal(t, 100.0, right.Position.X)
	assert.Equal(t, 100.0, left.Position.Y)

	right.Position.SetXY(1, 1)
	for i := 0; i < p.ShotInterval; i++ {
		p.Update(Frame{Keys: input.Press(input.KeyFire)})
	}
	assert.Equal(t, 1.0, right.Position.X, "an alive pair spawns nothing")
}

func TestPlayerFiresBothPoolsIndependently(t *testing.T) {
	buf := render.NewCommandBuffer(300, 300)
	p := newTestPlayer(buf)
	shots := newShotPool(buf, 1)
	singles := newShotPool(buf, 4)
	shots.At(0).Spawn(0, 0)
	p.SetShotPools(shots, singles)

	p.Update(Frame{Keys: input.Press(input.KeyFire)})

	assert.Equal(t, 2, singles.Alive(), "a full primary pool does not block the pair")
	assert.Equal(t, 0.0, shots.At(0).Position.X)
}

func TestPlayerPrimaryShotKeepsFacing(t *testing.T) {
	buf := render.NewCommandBuffer(300, 300)
	p := newTestPlayer(buf)
	shots := newShotPool(buf, 2)
	p.SetShotPools(shots, nil)

	p.Update(Frame{Keys: input.Press(input.KeyFire)})

	shot := shots.At(0)
	require.True(t, shot.Alive())
	assert.Equal(t, 0.0, shot.Facing.X)
	assert.Equal(t, -1.0, shot.Facing.Y)
	assert.False(t, shots.At(1).Alive(), "one spawn per eligible tick")
}

func TestPlayerFireRateGate(t *testing.T) {
	buf := render.NewCommandBuffer(300, 300)
	p := newTestPlayer(buf)
	shots := newShotPool(buf, 10)
	p.SetShotPools(shots, nil)

	for i := 0; i < 25; i++ {
		p.Update(Frame{Keys: input.Press(input.KeyFire)})
	}
	assert.Equal(t, 3, shots.Alive(), "ticks 0, 10 and 20 fire")
}

func TestPlayerFullPoolsDoNotResetGate(t *testing.T) {
	buf := render.NewCommandBuffer(300, 300)
	p := newTestPlayer(buf)
	shots := newShotPool(buf, 1)
	shots.At(0).Spawn(0, 0)
	p.SetShotPools(shots, nil)

	p.Update(Frame{Keys: input.Press(input.KeyFire)})
	shots.At(0).Life = 0
	p.Update(Frame{Keys: input.Press(input.KeyFire)})

	assert.True(t, shots.At(0).Alive(), "a dropped spawn leaves the gate open")
}

func TestPlayerDeadDoesNothing(t *testing.T) {
	buf := render.NewCommandBuffer(300, 300)
	p := newTestPlayer(buf)
	p.Life = 0

	p.Update(Frame{Keys: input.Press(input.KeyArrowLeft)})
	assert.Equal(t, 100.0, p.Position.X)
	assert.Empty(t, buf.Ops())
}
