package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastVsDisc2D splits the start-to-center displacement into components
// along and across the ray and derives the entry point from the chord.
func RaycastVsDisc2D(start, forward rl.Vector2, maxDist float32, disc Disc2) RaycastResult2D {
	disp := rl.Vector2Subtract(disc.Center, start)
	along := rl.Vector2DotProduct(disp, forward)
	across := rl.Vector2DotProduct(disp, rotate90(forward))

	if across >= disc.Radius || across <= -disc.Radius {
		return miss2(start, forward, maxDist)
	}
	if along >= maxDist+disc.Radius || along <= -disc.Radius {
		return miss2(start, forward, maxDist)
	}
	if IsPointInsideDisc2D(start, disc) {
		return insideHit2(start, forward, maxDist)
	}

	halfChord := sqrt(disc.Radius*disc.Radius - across*across)
	dist := along - halfChord
	if dist < 0 {
		// Starting on the rim. Rounding can put the entry just behind the start.
		if along <= 0 {
			return miss2(start, forward, maxDist)
		}
		dist = 0
	}
	if dist > maxDist {
		return miss2(start, forward, maxDist)
	}

	result := hit2(start, forward, maxDist, dist, rl.Vector2{})
	result.ImpactNormal, _ = normalize2(rl.Vector2Subtract(result.ImpactPos, disc.Center))
	return result
}

// RaycastVsLineSegment2D reports where the ray crosses the segment. The normal
// faces back toward the ray.
func RaycastVsLineSegment2D(start, forward rl.Vector2, maxDist float32, seg LineSegment2) RaycastResult2D {
	left := rotate90(forward)
	sStart := rl.Vector2DotProduct(rl.Vector2Subtract(seg.Start, start), left)
	sEnd := rl.Vector2DotProduct(rl.Vector2Subtract(seg.End, start), left)
	if sStart*sEnd >= 0 {
		return miss2(start, forward, maxDist)
	}

	fraction := sStart / (sStart - sEnd)
	impact := rl.Vector2Lerp(seg.Start, seg.End, fraction)
	dist := rl.Vector2DotProduct(rl.Vector2Subtract(impact, start), forward)
	if dist < 0 || dist > maxDist {
		return miss2(start, forward, maxDist)
	}

	normal, _ := normalize2(rotate90(rl.Vector2Subtract(seg.End, seg.Start)))
	if rl.Vector2DotProduct(normal, forward) > 0 {
		normal = rl.Vector2Negate(normal)
	}
	return hit2(start, forward, maxDist, dist, normal)
}

// RaycastVsAABB2D uses the slab method.
func RaycastVsAABB2D(start, forward rl.Vector2, maxDist float32, box AABB2) RaycastResult2D {
	if IsPointInsideAABB2D(start, box) {
		return insideHit2(start, forward, maxDist)
	}

	tMin, tMax := float32(-math.MaxFloat32), float32(math.MaxFloat32)
	tMin, tMax, xEntry, ok := slab(start.X, forward.X, box.Min.X, box.Max.X, tMin, tMax)
	if !ok {
		return miss2(start, forward, maxDist)
	}
	tMin, tMax, yEntry, ok := slab(start.Y, forward.Y, box.Min.Y, box.Max.Y, tMin, tMax)
	if !ok || tMin < 0 || tMin > maxDist {
		return miss2(start, forward, maxDist)
	}

	// The last axis to move the entry bound owns the face the ray enters through.
	var normal rl.Vector2
	switch {
	case yEntry:
		normal = rl.Vector2{Y: -sign(forward.Y)}
	case xEntry:
		normal = rl.Vector2{X: -sign(forward.X)}
	default:
		return miss2(start, forward, maxDist)
	}
	return hit2(start, forward, maxDist, tMin, normal)
}

// RaycastVsOBB2D casts in the box's local frame and maps the result back.
func RaycastVsOBB2D(start, forward rl.Vector2, maxDist float32, box OBB2) RaycastResult2D {
	localStart := box.ToLocal(start)
	localForward := rl.Vector2{
		X: rl.Vector2DotProduct(forward, box.IBasis),
		Y: rl.Vector2DotProduct(forward, box.JBasis()),
	}
	local := RaycastVsAABB2D(localStart, localForward, maxDist, AABB2{
		Min: rl.Vector2Negate(box.HalfSize),
		Max: box.HalfSize,
	})
	if !local.DidImpact {
		return miss2(start, forward, maxDist)
	}
	return hit2(start, forward, maxDist, local.ImpactDist, box.dirToWorld(local.ImpactNormal))
}

// RaycastVsPlane2D compares the signed distances of the ray's two ends.
func RaycastVsPlane2D(start, forward rl.Vector2, maxDist float32, plane Plane2) RaycastResult2D {
	end := rl.Vector2Add(start, rl.Vector2Scale(forward, maxDist))
	startDist := plane.SignedDistance(start)
	endDist := plane.SignedDistance(end)
	if startDist*endDist > 0 || startDist == endDist {
		return miss2(start, forward, maxDist)
	}

	dist := maxDist * startDist / (startDist - endDist)
	normal := plane.Normal
	if startDist < 0 {
		normal = rl.Vector2Negate(normal)
	}
	return hit2(start, forward, maxDist, dist, normal)
}

// RaycastVsConvexHull2D clips the ray window [0, maxDist] against every
// half-plane. Planes facing the ray push the entry forward, planes facing away
// pull the exit back.
func RaycastVsConvexHull2D(start, forward rl.Vector2, maxDist float32, hull ConvexHull2) RaycastResult2D {
	if IsPointInsideConvexHull2D(start, hull) {
		return insideHit2(start, forward, maxDist)
	}

	tEnter, tExit := float32(0), maxDist
	var enterNormal rl.Vector2
	entered := false
	for _, plane := range hull.Planes {
		startDist := plane.SignedDistance(start)
		facing := rl.Vector2DotProduct(forward, plane.Normal)
		if abs(facing) < ParallelRayEpsilon {
			if startDist > 0 {
				return miss2(start, forward, maxDist)
			}
			continue
		}

		t := -startDist / facing
		if facing < 0 {
			if t >= tEnter {
				tEnter = t
				enterNormal = plane.Normal
				entered = true
			}
		} else if t < tExit {
			tExit = t
		}
		if tEnter > tExit {
			return miss2(start, forward, maxDist)
		}
	}
	if !entered {
		return miss2(start, forward, maxDist)
	}
	return hit2(start, forward, maxDist, tEnter, enterNormal)
}

func RaycastVsConvexPoly2D(start, forward rl.Vector2, maxDist float32, poly ConvexPoly2) RaycastResult2D {
	return RaycastVsConvexHull2D(start, forward, maxDist, poly.Hull())
}

// RaycastVsCapsule2D takes the nearest of the bone rectangle and the two end discs.
func RaycastVsCapsule2D(start, forward rl.Vector2, maxDist float32, capsule Capsule2) RaycastResult2D {
	if IsPointInsideCapsule2D(start, capsule) {
		return insideHit2(start, forward, maxDist)
	}
	candidates := [3]RaycastResult2D{
		RaycastVsOBB2D(start, forward, maxDist, capsule.Bone()),
		RaycastVsDisc2D(start, forward, maxDist, Disc2{Center: capsule.Start, Radius: capsule.Radius}),
		RaycastVsDisc2D(start, forward, maxDist, Disc2{Center: capsule.End, Radius: capsule.Radius}),
	}
	best := miss2(start, forward, maxDist)
	for _, c := range candidates {
		if c.DidImpact && (!best.DidImpact || c.ImpactDist < best.ImpactDist) {
			best = c
		}
	}
	return best
}
