package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollisionResult2D carries the minimum translation vector for an overlapping
// pair. Moving the second shape by MTV (or the first by -MTV) separates them.
type CollisionResult2D struct {
	DidImpact bool
	MTV       rl.Vector2
}

type CollisionResult3D struct {
	DidImpact bool
	MTV       rl.Vector3
}

// OBBCollisionWithOBB2D runs the same axes as DoOBBsOverlap2D while tracking
// the one with the least penetration.
func OBBCollisionWithOBB2D(a, b OBB2) CollisionResult2D {
	t := rl.Vector2Subtract(b.Center, a.Center)
	minPenetration := float32(math.MaxFloat32)
	var best rl.Vector2
	for _, axis := range obb2Axes(a, b) {
		penetration := obb2Penetration(a, b, axis, t)
		if penetration <= 0 {
			return CollisionResult2D{}
		}
		if penetration < minPenetration {
			minPenetration = penetration
			best = axis
		}
	}
	// Orient from A toward B
	if rl.Vector2DotProduct(best, t) < 0 {
		best = rl.Vector2Negate(best)
	}
	return CollisionResult2D{DidImpact: true, MTV: rl.Vector2Scale(best, minPenetration)}
}

// OBBCollisionWithOBB3D returns the minimum translation vector over all 15 axes.
func OBBCollisionWithOBB3D(a, b OBB3) CollisionResult3D {
	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := float32(math.MaxFloat32)
	var best rl.Vector3

	axes, count := obb3Axes(a, b)
	for _, axis := range axes[:count] {
		penetration := obb3Penetration(a, b, axis, t)
		if penetration <= 0 {
			return CollisionResult3D{}
		}
		if penetration < minPenetration {
			minPenetration = penetration
			best = axis
		}
	}
	if rl.Vector3DotProduct(best, t) < 0 {
		best = rl.Vector3Negate(best)
	}
	return CollisionResult3D{DidImpact: true, MTV: rl.Vector3Scale(best, minPenetration)}
}

// AABBCollisionWithAABB3D picks the axis-aligned push with the least depth.
func AABBCollisionWithAABB3D(a, b AABB3) CollisionResult3D {
	if !DoAABBsOverlap3D(a, b) {
		return CollisionResult3D{}
	}

	// Penetration depth in each direction, as a push applied to b
	pushes := [6]rl.Vector3{
		{X: a.Max.X - b.Min.X},
		{X: -(b.Max.X - a.Min.X)},
		{Y: a.Max.Y - b.Min.Y},
		{Y: -(b.Max.Y - a.Min.Y)},
		{Z: a.Max.Z - b.Min.Z},
		{Z: -(b.Max.Z - a.Min.Z)},
	}
	best := pushes[0]
	for _, push := range pushes[1:] {
		if lengthSq3(push) < lengthSq3(best) {
			best = push
		}
	}
	return CollisionResult3D{DidImpact: true, MTV: best}
}
