package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// view maps world units (Y up) to screen pixels (Y down) around a fixed origin.
type view struct {
	origin rl.Vector2
	scale  float32
}

func (v view) toScreen(p rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: v.origin.X + p.X*v.scale, Y: v.origin.Y - p.Y*v.scale}
}

func (v view) toWorld(p rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: (p.X - v.origin.X) / v.scale, Y: (v.origin.Y - p.Y) / v.scale}
}

func (v view) length(d float32) float32 {
	return d * v.scale
}

// zoom scales by factor while keeping the world point under anchor fixed.
func (v view) zoom(anchor rl.Vector2, factor float32) view {
	world := v.toWorld(anchor)
	v.scale *= factor
	if v.scale < 1 {
		v.scale = 1
	}
	screen := v.toScreen(world)
	v.origin = rl.Vector2Add(v.origin, rl.Vector2Subtract(anchor, screen))
	return v
}

// directionFromDegrees is the unit vector at angle degrees counter-clockwise from +X.
func directionFromDegrees(angle float32) rl.Vector2 {
	rad := float64(angle) * math.Pi / 180
	return rl.Vector2{X: float32(math.Cos(rad)), Y: float32(math.Sin(rad))}
}

// degreesOf is the inverse of directionFromDegrees, in [0, 360).
func degreesOf(dir rl.Vector2) float32 {
	deg := float32(math.Atan2(float64(dir.Y), float64(dir.X)) * 180 / math.Pi)
	if deg < 0 {
		deg += 360
	}
	return deg
}
