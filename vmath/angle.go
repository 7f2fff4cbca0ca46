package vmath

import "math"

const (
	// TwoPi is one full revolution in radians
	TwoPi = 2 * math.Pi
)

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapAngle normalizes an angle into [0, 2π)
func WrapAngle(rad float64) float64 {
	rad = math.Mod(rad, TwoPi)
	if rad < 0 {
		rad += TwoPi
	}
	return rad
}
