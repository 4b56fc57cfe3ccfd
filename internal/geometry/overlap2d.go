package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlap tests treat touching shapes as not overlapping.

func DoDiscsOverlap2D(a, b Disc2) bool {
	radii := a.Radius + b.Radius
	return lengthSq2(rl.Vector2Subtract(b.Center, a.Center)) < radii*radii
}

func DoDiscAndAABBOverlap2D(disc Disc2, box AABB2) bool {
	return IsPointInsideDisc2D(NearestPointOnAABB2D(disc.Center, box), disc)
}

func DoDiscAndOBBOverlap2D(disc Disc2, box OBB2) bool {
	return IsPointInsideDisc2D(NearestPointOnOBB2D(disc.Center, box), disc)
}

func DoDiscAndCapsuleOverlap2D(disc Disc2, capsule Capsule2) bool {
	bone := NearestPointOnLineSegment2D(disc.Center, LineSegment2{Start: capsule.Start, End: capsule.End})
	return DoDiscsOverlap2D(disc, Disc2{Center: bone, Radius: capsule.Radius})
}

func DoAABBsOverlap2D(a, b AABB2) bool {
	return rangesOverlap(a.Min.X, a.Max.X, b.Min.X, b.Max.X) &&
		rangesOverlap(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y)
}

// DoOBBsOverlap2D tests the two face normals of each box as separating axes.
func DoOBBsOverlap2D(a, b OBB2) bool {
	t := rl.Vector2Subtract(b.Center, a.Center)
	for _, axis := range obb2Axes(a, b) {
		if obb2Penetration(a, b, axis, t) <= 0 {
			return false
		}
	}
	return true
}

func obb2Axes(a, b OBB2) [4]rl.Vector2 {
	return [4]rl.Vector2{a.IBasis, a.JBasis(), b.IBasis, b.JBasis()}
}

func (o OBB2) projectedRadius(axis rl.Vector2) float32 {
	return o.HalfSize.X*abs(rl.Vector2DotProduct(o.IBasis, axis)) +
		o.HalfSize.Y*abs(rl.Vector2DotProduct(o.JBasis(), axis))
}

// obb2Penetration is how far the two boxes' shadows on axis overlap; zero or
// negative means the axis separates them. t is b.Center - a.Center.
func obb2Penetration(a, b OBB2, axis, t rl.Vector2) float32 {
	return a.projectedRadius(axis) + b.projectedRadius(axis) - abs(rl.Vector2DotProduct(t, axis))
}
