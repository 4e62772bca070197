package assets

import (
	"context"
	"fmt"
	"log"
	"sync"

	"go-shooter/internal/config"
	"go-shooter/pkg/render"

	"github.com/kamstrup/intmap"
	"golang.org/x/sync/errgroup"
)

// LoadFunc reads and decodes the image at path.
type LoadFunc func(path string) (render.Image, error)

// Manager starts sprite loads, caches the handles by id and drops them on Cleanup.
type Manager struct {
	mu      sync.Mutex
	load    LoadFunc
	sprites *intmap.Map[config.SpriteID, *Sprite]
}

// NewManager creates an empty cache that loads images with load.
func NewManager(load LoadFunc) *Manager {
	return &Manager{
		load:    load,
		sprites: intmap.New[config.SpriteID, *Sprite](16),
	}
}

// Request returns the sprite for id, starting a background load on first use.
// It never blocks.
func (m *Manager) Request(id config.SpriteID, path string) *Sprite {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sprites.Get(id); ok {
		return s
	}
	s := newSprite(id, path)
	m.sprites.Put(id, s)

	go func() {
		img, err := m.load(path)
		if err != nil {
			log.Printf("WARNING: Failed to load sprite %d from %s: %v", id, path, err)
			err = fmt.Errorf("load sprite %d: %w", id, err)
		}
		s.finish(img, err)
	}()
	return s
}

// Get returns a cached sprite without starting a load.
func (m *Manager) Get(id config.SpriteID) (*Sprite, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sprites.Get(id)
}

// Sprite returns the sprite for id, requesting it from config.SpritePaths
// if it is not cached yet.
func (m *Manager) Sprite(id config.SpriteID) *Sprite {
	if s, ok := m.Get(id); ok {
		return s
	}
	return m.Request(id, config.SpritePaths[id])
}

// Len returns the number of cached sprites.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sprites.Len()
}

// Preload requests every sprite in table and waits until all of them
// finished loading. It returns the first load error; the other sprites are
// still loaded.
func (m *Manager) Preload(ctx context.Context, table map[config.SpriteID]string) error {
	g, ctx := errgroup.WithContext(ctx)
	for id, path := range table {
		s := m.Request(id, path)
		g.Go(func() error {
			select {
			case <-s.Done():
				return s.Err()
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	return g.Wait()
}

// Cleanup drops every cached sprite. Entities keep the handles they hold
// until they are rebound; the next Sprite call starts a fresh load.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sprites.Clear()
	log.Println("All sprites released.")
}
