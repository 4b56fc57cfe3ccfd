package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TriangleSides selects whether a triangle can be hit from behind.
type TriangleSides int

const (
	TriangleSingleSided TriangleSides = iota
	TriangleDoubleSided
)

func RaycastVsSphere3D(start, forward rl.Vector3, maxDist float32, sphere Sphere3) RaycastResult3D {
	disp := rl.Vector3Subtract(sphere.Center, start)
	along := rl.Vector3DotProduct(disp, forward)
	acrossSq := lengthSq3(disp) - along*along
	radiusSq := sphere.Radius * sphere.Radius

	if acrossSq >= radiusSq {
		return miss3(start, forward, maxDist)
	}
	if along >= maxDist+sphere.Radius || along <= -sphere.Radius {
		return miss3(start, forward, maxDist)
	}
	if IsPointInsideSphere3D(start, sphere) {
		return insideHit3(start, forward, maxDist)
	}

	dist := along - sqrt(radiusSq-acrossSq)
	if dist < 0 || dist > maxDist {
		return miss3(start, forward, maxDist)
	}
	result := hit3(start, forward, maxDist, dist, rl.Vector3{})
	result.ImpactNormal, _ = normalize3(rl.Vector3Subtract(result.ImpactPos, sphere.Center))
	return result
}

// RaycastVsAABB3D intersects the per-axis slabs, then picks the face the
// impact point sits on.
func RaycastVsAABB3D(start, forward rl.Vector3, maxDist float32, box AABB3) RaycastResult3D {
	if IsPointInsideAABB3D(start, box) {
		return insideHit3(start, forward, maxDist)
	}

	tMin, tMax := float32(-math.MaxFloat32), float32(math.MaxFloat32)
	var ok bool
	if tMin, tMax, _, ok = slab(start.X, forward.X, box.Min.X, box.Max.X, tMin, tMax); !ok {
		return miss3(start, forward, maxDist)
	}
	if tMin, tMax, _, ok = slab(start.Y, forward.Y, box.Min.Y, box.Max.Y, tMin, tMax); !ok {
		return miss3(start, forward, maxDist)
	}
	if tMin, _, _, ok = slab(start.Z, forward.Z, box.Min.Z, box.Max.Z, tMin, tMax); !ok {
		return miss3(start, forward, maxDist)
	}
	if tMin < 0 || tMin > maxDist {
		return miss3(start, forward, maxDist)
	}

	result := hit3(start, forward, maxDist, tMin, rl.Vector3{})
	result.ImpactNormal = entryFaceNormal(result.ImpactPos, forward, box)
	return result
}

// entryFaceNormal finds the face, among those the ray is moving into, that
// point lies on within FaceTouchEpsilon.
func entryFaceNormal(point, forward rl.Vector3, box AABB3) rl.Vector3 {
	switch {
	case forward.X > 0 && abs(point.X-box.Min.X) < FaceTouchEpsilon:
		return rl.Vector3{X: -1}
	case forward.X < 0 && abs(point.X-box.Max.X) < FaceTouchEpsilon:
		return rl.Vector3{X: 1}
	case forward.Y > 0 && abs(point.Y-box.Min.Y) < FaceTouchEpsilon:
		return rl.Vector3{Y: -1}
	case forward.Y < 0 && abs(point.Y-box.Max.Y) < FaceTouchEpsilon:
		return rl.Vector3{Y: 1}
	case forward.Z > 0 && abs(point.Z-box.Min.Z) < FaceTouchEpsilon:
		return rl.Vector3{Z: -1}
	case forward.Z < 0 && abs(point.Z-box.Max.Z) < FaceTouchEpsilon:
		return rl.Vector3{Z: 1}
	}
	return rl.Vector3Negate(forward)
}

// RaycastVsOBB3D moves the ray into box space with the inverse model matrix,
// casts against the local AABB and maps the impact back to world space.
func RaycastVsOBB3D(start, forward rl.Vector3, maxDist float32, box OBB3) RaycastResult3D {
	model := box.ModelMatrix()
	inverse := rl.MatrixInvert(model)
	localStart := rl.Vector3Transform(start, inverse)
	localForward := rl.Vector3Subtract(rl.Vector3Transform(rl.Vector3Add(start, forward), inverse), localStart)

	local := RaycastVsAABB3D(localStart, localForward, maxDist, AABB3{
		Min: rl.Vector3Negate(box.HalfSize),
		Max: box.HalfSize,
	})
	if !local.DidImpact {
		return miss3(start, forward, maxDist)
	}
	return RaycastResult3D{
		DidImpact:    true,
		ImpactDist:   local.ImpactDist,
		ImpactPos:    rl.Vector3Transform(local.ImpactPos, model),
		ImpactNormal: box.dirToWorld(local.ImpactNormal),
		RayStart:     start,
		RayForward:   forward,
		RayMaxLength: maxDist,
	}
}

func RaycastVsPlane3D(start, forward rl.Vector3, maxDist float32, plane Plane3) RaycastResult3D {
	end := rl.Vector3Add(start, rl.Vector3Scale(forward, maxDist))
	startDist := plane.SignedDistance(start)
	endDist := plane.SignedDistance(end)
	if startDist*endDist > 0 || startDist == endDist {
		return miss3(start, forward, maxDist)
	}

	dist := maxDist * startDist / (startDist - endDist)
	normal := plane.Normal
	if startDist < 0 {
		normal = rl.Vector3Negate(normal)
	}
	return hit3(start, forward, maxDist, dist, normal)
}

// RaycastVsTriangle3D computes the signed volumes of the tetrahedra formed by
// the ray segment and each triangle edge. Their normalized values are the
// barycentric weights of the pierce point.
func RaycastVsTriangle3D(start, forward rl.Vector3, maxDist float32, tri Triangle3, sides TriangleSides) RaycastResult3D {
	a, b, c := tri.Points[0], tri.Points[1], tri.Points[2]
	pq := rl.Vector3Scale(forward, maxDist)
	pa := rl.Vector3Subtract(a, start)
	pb := rl.Vector3Subtract(b, start)
	pc := rl.Vector3Subtract(c, start)

	u := scalarTriple(pq, pc, pb)
	if sides == TriangleSingleSided && u < 0 {
		return miss3(start, forward, maxDist)
	}
	v := scalarTriple(pq, pa, pc)
	if sides == TriangleSingleSided && v < 0 {
		return miss3(start, forward, maxDist)
	}
	w := scalarTriple(pq, pb, pa)
	if sides == TriangleSingleSided && w < 0 {
		return miss3(start, forward, maxDist)
	}
	if sides == TriangleDoubleSided && !((u >= 0 && v >= 0 && w >= 0) || (u <= 0 && v <= 0 && w <= 0)) {
		return miss3(start, forward, maxDist)
	}

	sum := u + v + w
	if sum == 0 {
		return miss3(start, forward, maxDist)
	}
	impact := rl.Vector3Add(rl.Vector3Add(rl.Vector3Scale(a, u/sum), rl.Vector3Scale(b, v/sum)), rl.Vector3Scale(c, w/sum))
	dist := rl.Vector3DotProduct(rl.Vector3Subtract(impact, start), forward)
	if dist < 0 || dist > maxDist {
		return miss3(start, forward, maxDist)
	}

	normal := tri.Normal()
	if sum < 0 {
		normal = rl.Vector3Negate(normal)
	}
	return hit3(start, forward, maxDist, dist, normal)
}

// RaycastVsCylinder3D intersects the side surface and both caps of a cylinder
// of any orientation and keeps the nearest valid impact.
func RaycastVsCylinder3D(start, forward rl.Vector3, maxDist float32, cyl Cylinder3) RaycastResult3D {
	axis, length := normalize3(rl.Vector3Subtract(cyl.End, cyl.Start))
	if length == 0 {
		return miss3(start, forward, maxDist)
	}
	if IsPointInsideCylinder3D(start, cyl) {
		return insideHit3(start, forward, maxDist)
	}

	best := miss3(start, forward, maxDist)
	consider := func(t float32, normal rl.Vector3) {
		if t < 0 || t > maxDist || (best.DidImpact && t >= best.ImpactDist) {
			return
		}
		best = hit3(start, forward, maxDist, t, normal)
	}
	radiusSq := cyl.Radius * cyl.Radius

	// Side: |a + t*b| == radius, where a and b are the start offset and the
	// direction with their axial parts removed by the cross product.
	a := cross(rl.Vector3Subtract(start, cyl.Start), axis)
	b := cross(forward, axis)
	bb := rl.Vector3DotProduct(b, b)
	if bb > ParallelRayEpsilon {
		ab := rl.Vector3DotProduct(a, b)
		aa := rl.Vector3DotProduct(a, a)
		discriminant := ab*ab - bb*(aa-radiusSq)
		if discriminant >= 0 {
			t := (-ab - sqrt(discriminant)) / bb
			point := rl.Vector3Add(start, rl.Vector3Scale(forward, t))
			h := rl.Vector3DotProduct(rl.Vector3Subtract(point, cyl.Start), axis)
			if h >= 0 && h <= length {
				onAxis := rl.Vector3Add(cyl.Start, rl.Vector3Scale(axis, h))
				normal, _ := normalize3(rl.Vector3Subtract(point, onAxis))
				consider(t, normal)
			}
		}
	}

	// Caps.
	facing := rl.Vector3DotProduct(forward, axis)
	if abs(facing) > ParallelRayEpsilon {
		caps := [2]struct {
			center rl.Vector3
			normal rl.Vector3
		}{
			{cyl.Start, rl.Vector3Negate(axis)},
			{cyl.End, axis},
		}
		for _, cp := range caps {
			t := rl.Vector3DotProduct(rl.Vector3Subtract(cp.center, start), axis) / facing
			point := rl.Vector3Add(start, rl.Vector3Scale(forward, t))
			if lengthSq3(rl.Vector3Subtract(point, cp.center)) <= radiusSq {
				consider(t, cp.normal)
			}
		}
	}
	return best
}

// RaycastVsZCylinder3D separates the Z-aligned case: a disc chord in XY and a
// slab in Z, intersected as two parameter ranges.
func RaycastVsZCylinder3D(start, forward rl.Vector3, maxDist float32, cyl ZCylinder3) RaycastResult3D {
	if IsPointInsideZCylinder3D(start, cyl) {
		return insideHit3(start, forward, maxDist)
	}

	zEnter, zExit, zMoved, ok := slab(start.Z, forward.Z, cyl.MinZ, cyl.MaxZ, float32(-math.MaxFloat32), float32(math.MaxFloat32))
	if !ok {
		return miss3(start, forward, maxDist)
	}

	disc := Disc2{Center: cyl.Center, Radius: cyl.Radius}
	discEnter, discExit, ok := discChord2D(xy(start), xy(forward), disc)
	if !ok {
		return miss3(start, forward, maxDist)
	}

	enter := maxf(zEnter, discEnter)
	exit := minf(zExit, discExit)
	if enter > exit || enter < 0 || enter > maxDist {
		return miss3(start, forward, maxDist)
	}

	result := hit3(start, forward, maxDist, enter, rl.Vector3{})
	if zMoved && zEnter >= discEnter {
		result.ImpactNormal = rl.Vector3{Z: -sign(forward.Z)}
	} else {
		radial, _ := normalize2(rl.Vector2Subtract(xy(result.ImpactPos), cyl.Center))
		result.ImpactNormal = lift(radial)
	}
	return result
}

// discChord2D returns the parameter range over which start+dir*t is inside the
// disc. dir need not be unit length; a zero dir yields an unbounded range
// when start is inside and no range otherwise.
func discChord2D(start, dir rl.Vector2, disc Disc2) (float32, float32, bool) {
	unit, speed := normalize2(dir)
	if speed < ParallelRayEpsilon {
		if !IsPointInsideDisc2D(start, disc) {
			return 0, 0, false
		}
		return float32(-math.MaxFloat32), float32(math.MaxFloat32), true
	}
	disp := rl.Vector2Subtract(disc.Center, start)
	along := rl.Vector2DotProduct(disp, unit)
	across := rl.Vector2DotProduct(disp, rotate90(unit))
	if abs(across) >= disc.Radius {
		return 0, 0, false
	}
	halfChord := sqrt(disc.Radius*disc.Radius - across*across)
	return (along - halfChord) / speed, (along + halfChord) / speed, true
}
