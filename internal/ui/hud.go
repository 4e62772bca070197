package ui

import (
	"fmt"
	"image/color"
	"time"

	"go-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUDStats is the snapshot of the scene shown by the HUD.
type HUDStats struct {
	TPS           float64
	Shots         int
	ShotCapacity  int
	Enemies       int
	EnemyCapacity int
	Entering      bool
	Wave          int // 1-based, 0 hides the indicator
	Now           time.Time
}

// HUD is the debug overlay drawn on top of the play field.
type HUD struct {
	face      font.Face
	textColor color.Color
	warnColor color.Color
	waves     *WaveIndicator
}

func NewHUD() *HUD {
	face := basicfont.Face7x13
	return &HUD{
		face:      face,
		textColor: config.TextColor,
		warnColor: config.WarningColor,
		waves:     NewWaveIndicator(config.ScreenWidth-config.HUDMarginX*4, config.HUDMarginY, face),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDStats) {
	lines := []string{
		fmt.Sprintf("TPS: %0.1f", s.TPS),
		fmt.Sprintf("SHOTS: %d/%d", s.Shots, s.ShotCapacity),
		fmt.Sprintf("ENEMIES: %d/%d", s.Enemies, s.EnemyCapacity),
	}
	for i, line := range lines {
		text.Draw(screen, line, h.face, config.HUDMarginX, config.HUDMarginY+i*config.HUDLineHeight, h.textColor)
	}

	// The banner blinks in step with the ship while it is entering.
	if s.Entering && s.Now.UnixMilli()%config.EntryBlinkPeriodMs < config.EntryBlinkOnMs {
		h.drawCentered(screen, "READY", config.ScreenHeight/2, h.warnColor)
	}

	h.waves.Draw(screen, s.Wave)
}

func (h *HUD) drawCentered(screen *ebiten.Image, msg string, y int, clr color.Color) {
	bounds := text.BoundString(h.face, msg)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, msg, h.face, x, y, clr)
}
