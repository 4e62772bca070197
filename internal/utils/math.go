// internal/utils/math.go
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Overlaps reports whether two boxes given by center and size intersect.
// Touching edges do not count.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx)*2 < aw+bw && math.Abs(ay-by)*2 < ah+bh
}
