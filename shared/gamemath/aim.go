package gamemath

import (
	"image"
	"math"
)

// ComputeAngle returns the weapon angle in degrees for a wielder centered at
// (anchorX, anchorY) aiming at the pointer. The swing constant for the side is
// added so left and right swings mirror each other. When anchor and pointer
// coincide the pointer angle is atan2(0, 0) = 0.
func ComputeAngle(anchorX, anchorY, pointerX, pointerY float64, swingSide int, leftSwing, rightSwing float64) float64 {
	dx := pointerX - anchorX
	dy := pointerY - anchorY
	side := float64(swingSide)
	if swingSide == 1 {
		return Degrees(math.Atan2(-side*dy, dx)) + leftSwing
	}
	return Degrees(math.Atan2(side*dy, dx)) + rightSwing
}

// RotateOffset rotates (x, y) by -angleDeg in screen space, which keeps a
// pivot offset attached to a sprite rotated counter-clockwise by angleDeg.
func RotateOffset(x, y, angleDeg float64) (float64, float64) {
	sin, cos := math.Sincos(Radians(angleDeg))
	return x*cos + y*sin, -x*sin + y*cos
}

// FiringPosition picks the muzzle corner of bounds for a weapon angle:
// [0,90) top-left, [90,180) bottom-left, (-90,0) top-right, else bottom-right.
// bottomDrop is subtracted from y for the bottom corners.
func FiringPosition(angle float64, bounds image.Rectangle, bottomDrop int) (int, int) {
	switch {
	case angle >= 0 && angle < 90:
		return bounds.Min.X, bounds.Min.Y
	case angle >= 90 && angle < 180:
		return bounds.Min.X, bounds.Max.Y - bottomDrop
	case angle < 0 && angle > -90:
		return bounds.Max.X, bounds.Min.Y
	default:
		return bounds.Max.X, bounds.Max.Y - bottomDrop
	}
}

// Normalize returns the unit vector of (x, y), or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// CenteredRect returns a w*h rectangle whose center is (cx, cy), truncating
// toward the top-left the way integer rects do.
func CenteredRect(cx, cy float64, w, h int) image.Rectangle {
	x := int(math.Round(cx - float64(w)/2))
	y := int(math.Round(cy - float64(h)/2))
	return image.Rect(x, y, x+w, y+h)
}

// Center returns the center point of r.
func Center(r image.Rectangle) (float64, float64) {
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2
}
