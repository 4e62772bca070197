// internal/state/title_state.go
package state

import (
	"go-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const titlePrompt = "PRESS SPACE TO START"

// TitleState waits for Space or Enter and then switches to the state built by next.
type TitleState struct {
	sm   *StateMachine
	next func() State
}

func NewTitleState(sm *StateMachine, next func() State) *TitleState {
	return &TitleState{sm: sm, next: next}
}

func (m *TitleState) Enter() {}

func (m *TitleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next())
	}
}

func (m *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	bounds := text.BoundString(basicfont.Face7x13, titlePrompt)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, titlePrompt, basicfont.Face7x13, x, config.ScreenHeight/2, config.TextColor)
}

func (m *TitleState) Exit() {}
