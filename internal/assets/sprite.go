package assets

import (
	"sync/atomic"

	"go-shooter/internal/config"
	"go-shooter/pkg/render"
)

type imageBox struct {
	img render.Image
}

// Sprite is a handle to an image that loads in the background.
// Ready flips to true exactly once, when loading succeeds; a failed load
// leaves it false forever and Image keeps returning nil.
type Sprite struct {
	id    config.SpriteID
	path  string
	img   atomic.Pointer[imageBox]
	ready atomic.Bool
	done  chan struct{}
	err   error
}

func newSprite(id config.SpriteID, path string) *Sprite {
	return &Sprite{
		id:   id,
		path: path,
		done: make(chan struct{}),
	}
}

func (s *Sprite) ID() config.SpriteID { return s.id }

func (s *Sprite) Path() string { return s.path }

// Ready reports whether the image finished loading.
func (s *Sprite) Ready() bool {
	return s.ready.Load()
}

// Image returns the loaded image, or nil while loading or after a failure.
func (s *Sprite) Image() render.Image {
	box := s.img.Load()
	if box == nil {
		return nil
	}
	return box.img
}

// Done is closed when loading finishes, successfully or not.
func (s *Sprite) Done() <-chan struct{} {
	return s.done
}

// Err returns the load error. Only valid after Done is closed.
func (s *Sprite) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

func (s *Sprite) finish(img render.Image, err error) {
	s.err = err
	if err == nil && img != nil {
		s.img.Store(&imageBox{img: img})
		s.ready.Store(true)
	}
	close(s.done)
}
