// internal/input/input.go
package input

// Key names a logical game key.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyFire       Key = "z"
)

// State maps keys to "is held". It is refreshed once per tick by the
// keyboard poller and handed to entities through their frame.
type State map[Key]bool

// Held reports whether k is held. A nil State holds nothing.
func (s State) Held(k Key) bool {
	return s[k]
}

// Press returns a State with the given keys held.
func Press(keys ...Key) State {
	s := make(State, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}
