package screen

import (
	"fmt"
	_ "image/png"

	"go-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage reads a PNG from disk into an ebiten image.
func LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return img, nil
}
