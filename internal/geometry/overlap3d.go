package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

func DoSpheresOverlap3D(a, b Sphere3) bool {
	radii := a.Radius + b.Radius
	return lengthSq3(rl.Vector3Subtract(b.Center, a.Center)) < radii*radii
}

func DoAABBsOverlap3D(a, b AABB3) bool {
	return rangesOverlap(a.Min.X, a.Max.X, b.Min.X, b.Max.X) &&
		rangesOverlap(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y) &&
		rangesOverlap(a.Min.Z, a.Max.Z, b.Min.Z, b.Max.Z)
}

func DoAABBAndSphereOverlap3D(box AABB3, sphere Sphere3) bool {
	return IsPointInsideSphere3D(NearestPointOnAABB3D(sphere.Center, box), sphere)
}

// DoOBBsOverlap3D tests two OBBs with the Separating Axis Theorem.
func DoOBBsOverlap3D(a, b OBB3) bool {
	// Vector from A's center to B's center
	t := rl.Vector3Subtract(b.Center, a.Center)

	// 3 face normals from A, 3 from B and the usable edge cross products
	axes, count := obb3Axes(a, b)
	for _, axis := range axes[:count] {
		if obb3Penetration(a, b, axis, t) <= 0 {
			return false
		}
	}
	return true
}

// obb3Axes collects the candidate separating axes for a box pair, normalized.
// Cross products of near-parallel edges are dropped: their direction is noise.
func obb3Axes(a, b OBB3) ([15]rl.Vector3, int) {
	var axes [15]rl.Vector3
	count := 0
	for i := 0; i < 3; i++ {
		axes[count] = a.Axes[i]
		count++
	}
	for i := 0; i < 3; i++ {
		axes[count] = b.Axes[i]
		count++
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if axis, ok := edgeCrossAxis(a.Axes[i], b.Axes[j]); ok {
				axes[count] = axis
				count++
			}
		}
	}
	return axes, count
}

// edgeCrossAxis returns the normalized cross product of two edge directions,
// or false when its squared length is under ParallelAxisEpsilonSq.
func edgeCrossAxis(u, v rl.Vector3) (rl.Vector3, bool) {
	axis := cross(u, v)
	lenSq := lengthSq3(axis)
	if lenSq < ParallelAxisEpsilonSq {
		return rl.Vector3{}, false
	}
	return rl.Vector3Scale(axis, 1/sqrt(lenSq)), true
}

// obb3Penetration projects both boxes onto axis and returns their overlap
// depth; t is b.Center - a.Center.
func obb3Penetration(a, b OBB3, axis, t rl.Vector3) float32 {
	return a.projectedRadius(axis) + b.projectedRadius(axis) - abs(rl.Vector3DotProduct(t, axis))
}

func DoOBBAndAABBOverlap3D(obb OBB3, box AABB3) bool {
	return DoOBBsOverlap3D(obb, box.AsOBB3())
}

func DoOBBAndSphereOverlap3D(obb OBB3, sphere Sphere3) bool {
	return IsPointInsideSphere3D(NearestPointOnOBB3D(sphere.Center, obb), sphere)
}

// DoOBBAndTriangleOverlap3D runs SAT over the box faces, the triangle face and
// the nine box-axis x triangle-edge cross products.
func DoOBBAndTriangleOverlap3D(obb OBB3, tri Triangle3) bool {
	edges := [3]rl.Vector3{
		rl.Vector3Subtract(tri.Points[1], tri.Points[0]),
		rl.Vector3Subtract(tri.Points[2], tri.Points[1]),
		rl.Vector3Subtract(tri.Points[0], tri.Points[2]),
	}

	var axes [13]rl.Vector3
	count := 0
	for _, axis := range obb.Axes {
		axes[count] = axis
		count++
	}
	if normal := tri.Normal(); lengthSq3(normal) > 0 {
		axes[count] = normal
		count++
	}
	for _, boxAxis := range obb.Axes {
		for _, edge := range edges {
			dir, length := normalize3(edge)
			if length == 0 {
				continue
			}
			if axis, ok := edgeCrossAxis(boxAxis, dir); ok {
				axes[count] = axis
				count++
			}
		}
	}

	for _, axis := range axes[:count] {
		center := rl.Vector3DotProduct(obb.Center, axis)
		radius := obb.projectedRadius(axis)
		triMin, triMax := projectTriangle(tri, axis)
		if !rangesOverlap(center-radius, center+radius, triMin, triMax) {
			return false
		}
	}
	return true
}

func projectTriangle(tri Triangle3, axis rl.Vector3) (float32, float32) {
	p0 := rl.Vector3DotProduct(tri.Points[0], axis)
	p1 := rl.Vector3DotProduct(tri.Points[1], axis)
	p2 := rl.Vector3DotProduct(tri.Points[2], axis)
	return minf(p0, minf(p1, p2)), maxf(p0, maxf(p1, p2))
}

func DoPlaneAndAABBOverlap3D(plane Plane3, box AABB3) bool {
	half := box.HalfSize()
	radius := half.X*abs(plane.Normal.X) + half.Y*abs(plane.Normal.Y) + half.Z*abs(plane.Normal.Z)
	return abs(plane.SignedDistance(box.Center())) < radius
}

func DoPlaneAndOBBOverlap3D(plane Plane3, obb OBB3) bool {
	return abs(plane.SignedDistance(obb.Center)) < obb.projectedRadius(plane.Normal)
}

func DoPlaneAndSphereOverlap3D(plane Plane3, sphere Sphere3) bool {
	return abs(plane.SignedDistance(sphere.Center)) < sphere.Radius
}

func DoZCylindersOverlap3D(a, b ZCylinder3) bool {
	return rangesOverlap(a.MinZ, a.MaxZ, b.MinZ, b.MaxZ) &&
		DoDiscsOverlap2D(Disc2{Center: a.Center, Radius: a.Radius}, Disc2{Center: b.Center, Radius: b.Radius})
}

func DoZCylinderAndAABBOverlap3D(cyl ZCylinder3, box AABB3) bool {
	return rangesOverlap(cyl.MinZ, cyl.MaxZ, box.Min.Z, box.Max.Z) &&
		DoDiscAndAABBOverlap2D(Disc2{Center: cyl.Center, Radius: cyl.Radius}, AABB2{Min: xy(box.Min), Max: xy(box.Max)})
}

func DoZCylinderAndSphereOverlap3D(cyl ZCylinder3, sphere Sphere3) bool {
	return IsPointInsideSphere3D(NearestPointOnZCylinder3D(sphere.Center, cyl), sphere)
}
