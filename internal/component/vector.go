// internal/component/vector.go
package component

// Vector2 is a mutable 2D coordinate used for positions and facing vectors.
type Vector2 struct {
	X, Y float64
}

// F wraps a value so it can be passed to Set as a present coordinate.
func F(v float64) *float64 {
	return &v
}

// Set assigns each coordinate only when the argument is not nil.
// Set(nil, nil) leaves the vector untouched.
func (v *Vector2) Set(x, y *float64) {
	if x != nil {
		v.X = *x
	}
	if y != nil {
		v.Y = *y
	}
}

// SetXY assigns both coordinates.
func (v *Vector2) SetXY(x, y float64) {
	v.X = x
	v.Y = y
}
