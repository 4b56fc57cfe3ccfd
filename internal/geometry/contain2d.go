package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Containment is strict throughout: a point on the boundary is not inside.

func IsPointInsideDisc2D(point rl.Vector2, disc Disc2) bool {
	return lengthSq2(rl.Vector2Subtract(point, disc.Center)) < disc.Radius*disc.Radius
}

func IsPointInsideAABB2D(point rl.Vector2, box AABB2) bool {
	return point.X > box.Min.X && point.X < box.Max.X &&
		point.Y > box.Min.Y && point.Y < box.Max.Y
}

func IsPointInsideOBB2D(point rl.Vector2, box OBB2) bool {
	local := box.ToLocal(point)
	return abs(local.X) < box.HalfSize.X && abs(local.Y) < box.HalfSize.Y
}

// IsPointInsideCapsule2D tests the two end discs and the bone rectangle between them.
func IsPointInsideCapsule2D(point rl.Vector2, capsule Capsule2) bool {
	return IsPointInsideDisc2D(point, Disc2{Center: capsule.Start, Radius: capsule.Radius}) ||
		IsPointInsideDisc2D(point, Disc2{Center: capsule.End, Radius: capsule.Radius}) ||
		IsPointInsideOBB2D(point, capsule.Bone())
}

// IsPointInsideTriangle2D accepts either winding.
func IsPointInsideTriangle2D(point rl.Vector2, tri Triangle2) bool {
	a, b, c := tri.Points[0], tri.Points[1], tri.Points[2]
	c0 := cross2(rl.Vector2Subtract(b, a), rl.Vector2Subtract(point, a))
	c1 := cross2(rl.Vector2Subtract(c, b), rl.Vector2Subtract(point, b))
	c2 := cross2(rl.Vector2Subtract(a, c), rl.Vector2Subtract(point, c))
	return (c0 > 0 && c1 > 0 && c2 > 0) || (c0 < 0 && c1 < 0 && c2 < 0)
}

// IsPointInsideConvexPoly2D walks the edges in winding order and rejects on
// the first edge the point is not strictly to the left of.
func IsPointInsideConvexPoly2D(point rl.Vector2, poly ConvexPoly2) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i, a := range poly.Points {
		b := poly.Points[(i+1)%n]
		if cross2(rl.Vector2Subtract(b, a), rl.Vector2Subtract(point, a)) <= 0 {
			return false
		}
	}
	return true
}

func IsPointInsideConvexHull2D(point rl.Vector2, hull ConvexHull2) bool {
	if len(hull.Planes) == 0 {
		return false
	}
	for _, plane := range hull.Planes {
		if plane.SignedDistance(point) >= 0 {
			return false
		}
	}
	return true
}

// IsPointInsideDirectedSector2D reports whether point lies within the sector's
// radius and within half the aperture of its forward direction. The apex
// itself counts as inside.
func IsPointInsideDirectedSector2D(point rl.Vector2, sector DirectedSector2) bool {
	disp := rl.Vector2Subtract(point, sector.Center)
	distSq := lengthSq2(disp)
	if distSq >= sector.Radius*sector.Radius {
		return false
	}
	if distSq == 0 {
		return true
	}
	dir := rl.Vector2Scale(disp, 1/sqrt(distSq))
	halfAperture := float64(sector.ApertureDeg) * math.Pi / 360
	return rl.Vector2DotProduct(dir, sector.Forward) > float32(math.Cos(halfAperture))
}

// IsPointInsideOrientedSector2D is the degrees-based variant: forwardDeg is
// measured counter-clockwise from +X.
func IsPointInsideOrientedSector2D(point, center rl.Vector2, forwardDeg, apertureDeg, radius float32) bool {
	rad := float64(forwardDeg) * math.Pi / 180
	return IsPointInsideDirectedSector2D(point, DirectedSector2{
		Center:      center,
		Forward:     rl.Vector2{X: float32(math.Cos(rad)), Y: float32(math.Sin(rad))},
		ApertureDeg: apertureDeg,
		Radius:      radius,
	})
}

// For solids, a point inside the shape is its own nearest point.

func NearestPointOnDisc2D(point rl.Vector2, disc Disc2) rl.Vector2 {
	disp := rl.Vector2Subtract(point, disc.Center)
	if lengthSq2(disp) <= disc.Radius*disc.Radius {
		return point
	}
	dir, _ := normalize2(disp)
	return rl.Vector2Add(disc.Center, rl.Vector2Scale(dir, disc.Radius))
}

func NearestPointOnAABB2D(point rl.Vector2, box AABB2) rl.Vector2 {
	return rl.Vector2{
		X: clamp(point.X, box.Min.X, box.Max.X),
		Y: clamp(point.Y, box.Min.Y, box.Max.Y),
	}
}

func NearestPointOnOBB2D(point rl.Vector2, box OBB2) rl.Vector2 {
	local := box.ToLocal(point)
	local.X = clamp(local.X, -box.HalfSize.X, box.HalfSize.X)
	local.Y = clamp(local.Y, -box.HalfSize.Y, box.HalfSize.Y)
	return box.ToWorld(local)
}

func NearestPointOnLineSegment2D(point rl.Vector2, seg LineSegment2) rl.Vector2 {
	return nearestOnLine2(point, seg.Start, seg.End, true)
}

// NearestPointOnInfiniteLine2D projects point onto the unbounded line through a and b.
func NearestPointOnInfiniteLine2D(point, a, b rl.Vector2) rl.Vector2 {
	return nearestOnLine2(point, a, b, false)
}

func nearestOnLine2(point, a, b rl.Vector2, bounded bool) rl.Vector2 {
	ab := rl.Vector2Subtract(b, a)
	lenSq := lengthSq2(ab)
	if lenSq == 0 {
		return a
	}
	t := rl.Vector2DotProduct(rl.Vector2Subtract(point, a), ab) / lenSq
	if bounded {
		t = clamp(t, 0, 1)
	}
	return rl.Vector2Add(a, rl.Vector2Scale(ab, t))
}

func NearestPointOnCapsule2D(point rl.Vector2, capsule Capsule2) rl.Vector2 {
	bone := NearestPointOnLineSegment2D(point, LineSegment2{Start: capsule.Start, End: capsule.End})
	return NearestPointOnDisc2D(point, Disc2{Center: bone, Radius: capsule.Radius})
}

func NearestPointOnTriangle2D(point rl.Vector2, tri Triangle2) rl.Vector2 {
	nearest := NearestPointOnTriangle3D(lift(point), Triangle3{Points: [3]rl.Vector3{
		lift(tri.Points[0]), lift(tri.Points[1]), lift(tri.Points[2]),
	}})
	return xy(nearest)
}

func NearestPointOnConvexPoly2D(point rl.Vector2, poly ConvexPoly2) rl.Vector2 {
	if len(poly.Points) == 0 || IsPointInsideConvexPoly2D(point, poly) {
		return point
	}
	best := poly.Points[0]
	bestDistSq := float32(math.MaxFloat32)
	for i, a := range poly.Points {
		b := poly.Points[(i+1)%len(poly.Points)]
		candidate := NearestPointOnLineSegment2D(point, LineSegment2{Start: a, End: b})
		if distSq := lengthSq2(rl.Vector2Subtract(point, candidate)); distSq < bestDistSq {
			bestDistSq = distSq
			best = candidate
		}
	}
	return best
}
