package screen

import (
	"go-shooter/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultBindings maps game keys to physical keys.
var DefaultBindings = map[input.Key]ebiten.Key{
	input.KeyArrowLeft:  ebiten.KeyArrowLeft,
	input.KeyArrowRight: ebiten.KeyArrowRight,
	input.KeyArrowUp:    ebiten.KeyArrowUp,
	input.KeyArrowDown:  ebiten.KeyArrowDown,
	input.KeyFire:       ebiten.KeyZ,
}

// Keyboard polls ebiten once per tick and reports the bound keys.
type Keyboard struct {
	bindings map[input.Key]ebiten.Key
	state    input.State
}

func NewKeyboard(bindings map[input.Key]ebiten.Key) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{
		bindings: bindings,
		state:    make(input.State, len(bindings)),
	}
}

// Poll refreshes and returns the key state. The returned map is reused on
// the next Poll.
func (k *Keyboard) Poll() input.State {
	for key, physical := range k.bindings {
		k.state[key] = ebiten.IsKeyPressed(physical)
	}
	return k.state
}
