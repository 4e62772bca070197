package render

import "image"

// Image is anything a Surface can blit. A nil Image draws nothing.
type Image interface {
	Bounds() image.Rectangle
}

// Surface is the drawing context entities render onto.
// Transforms follow canvas semantics: each Translate/Rotate is applied to
// subsequent draws before the transforms already in effect.
type Surface interface {
	Width() float64
	Height() float64
	DrawImage(img Image, x, y, w, h float64)
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
	SetAlpha(a float64)
}
