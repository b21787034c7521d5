package gamemath

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

const (
	leftSwing  = 10.0
	rightSwing = -190.0
)

func TestComputeAngle(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		side     int
		expected float64
	}{
		{"right", 200, 100, 1, 10},
		{"up", 100, 0, 1, 100},
		{"down", 100, 200, 1, -80},
		{"left", 0, 100, 1, -170},
		{"right mirrored", 200, 100, -1, -190},
		{"up mirrored", 100, 0, -1, -100},
		{"down mirrored", 100, 200, -1, -280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAngle(100, 100, tt.px, tt.py, tt.side, leftSwing, rightSwing)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestComputeAngleDegenerate(t *testing.T) {
	a := ComputeAngle(50, 50, 50, 50, 1, leftSwing, rightSwing)
	b := ComputeAngle(50, 50, 50, 50, 1, leftSwing, rightSwing)
	assert.False(t, math.IsNaN(a))
	assert.Equal(t, a, b)
	assert.InDelta(t, leftSwing, a, 1e-9)
}

func TestComputeAngleContinuity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		theta := rapid.Float64Range(-179, 178).Draw(t, "theta")
		radius := rapid.Float64Range(5, 800).Draw(t, "radius")
		side := rapid.SampledFrom([]int{1, -1}).Draw(t, "side")
		ax := rapid.Float64Range(0, 1300).Draw(t, "ax")
		ay := rapid.Float64Range(0, 1000).Draw(t, "ay")

		at := func(deg float64) float64 {
			sin, cos := math.Sincos(Radians(deg))
			return ComputeAngle(ax, ay, ax+radius*cos, ay+radius*sin, side, leftSwing, rightSwing)
		}

		delta := math.Abs(at(theta+1) - at(theta))
		if delta > 1+1e-6 {
			t.Fatalf("1 degree pointer change moved angle by %v", delta)
		}
	})
}

func TestRotateOffset(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		ex, ey float64
	}{
		{"zero", 0, 0, -50},
		{"quarter turn", 90, -50, 0},
		{"half turn", 180, 0, 50},
		{"negative quarter", -90, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := RotateOffset(0, -50, tt.angle)
			assert.InDelta(t, tt.ex, x, 1e-9)
			assert.InDelta(t, tt.ey, y, 1e-9)
		})
	}
}

func TestRotateOffsetKeepsLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-100, 100).Draw(t, "x")
		y := rapid.Float64Range(-100, 100).Draw(t, "y")
		angle := rapid.Float64Range(-720, 720).Draw(t, "angle")
		rx, ry := RotateOffset(x, y, angle)
		if math.Abs(math.Hypot(rx, ry)-math.Hypot(x, y)) > 1e-9 {
			t.Fatalf("length changed: (%v,%v) -> (%v,%v)", x, y, rx, ry)
		}
	})
}

func TestFiringPosition(t *testing.T) {
	bounds := image.Rect(100, 200, 130, 296)
	tests := []struct {
		name   string
		angle  float64
		drop   int
		ex, ey int
	}{
		{"top-left", 45, 15, 100, 200},
		{"top-left at zero", 0, 15, 100, 200},
		{"bottom-left", 120, 15, 100, 281},
		{"bottom-left no drop", 120, 0, 100, 296},
		{"top-right", -45, 15, 130, 200},
		{"bottom-right wide angle", 200, 15, 130, 281},
		{"bottom-right negative", -120, 0, 130, 296},
		{"bottom-right at -90", -90, 0, 130, 296},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := FiringPosition(tt.angle, bounds, tt.drop)
			assert.Equal(t, tt.ex, x)
			assert.Equal(t, tt.ey, y)
		})
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-12)
	assert.InDelta(t, 0.8, y, 1e-12)

	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(50, 50, 10, 20)
	assert.Equal(t, image.Rect(45, 40, 55, 60), r)
	cx, cy := Center(r)
	assert.Equal(t, 50.0, cx)
	assert.Equal(t, 50.0, cy)
}
