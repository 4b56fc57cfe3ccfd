package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

func IsPointInsideSphere3D(point rl.Vector3, sphere Sphere3) bool {
	return lengthSq3(rl.Vector3Subtract(point, sphere.Center)) < sphere.Radius*sphere.Radius
}

func IsPointInsideAABB3D(point rl.Vector3, box AABB3) bool {
	return point.X > box.Min.X && point.X < box.Max.X &&
		point.Y > box.Min.Y && point.Y < box.Max.Y &&
		point.Z > box.Min.Z && point.Z < box.Max.Z
}

func IsPointInsideOBB3D(point rl.Vector3, box OBB3) bool {
	local := box.ToLocal(point)
	return abs(local.X) < box.HalfSize.X &&
		abs(local.Y) < box.HalfSize.Y &&
		abs(local.Z) < box.HalfSize.Z
}

func IsPointInsideZCylinder3D(point rl.Vector3, cyl ZCylinder3) bool {
	if point.Z <= cyl.MinZ || point.Z >= cyl.MaxZ {
		return false
	}
	return IsPointInsideDisc2D(xy(point), Disc2{Center: cyl.Center, Radius: cyl.Radius})
}

func IsPointInsideCylinder3D(point rl.Vector3, cyl Cylinder3) bool {
	axis, length := normalize3(rl.Vector3Subtract(cyl.End, cyl.Start))
	if length == 0 {
		return false
	}
	disp := rl.Vector3Subtract(point, cyl.Start)
	h := rl.Vector3DotProduct(disp, axis)
	if h <= 0 || h >= length {
		return false
	}
	radial := rl.Vector3Subtract(disp, rl.Vector3Scale(axis, h))
	return lengthSq3(radial) < cyl.Radius*cyl.Radius
}

// IsPointInsideTetrahedron3D requires the point to sit strictly on the inner
// side of all four faces, whatever the vertex order.
func IsPointInsideTetrahedron3D(point rl.Vector3, tet Tetrahedron3) bool {
	total := signedVolume(tet.Points)
	if total == 0 {
		return false
	}
	for i := range tet.Points {
		sub := tet.Points
		sub[i] = point
		if v := signedVolume(sub); v*total <= 0 {
			return false
		}
	}
	return true
}

func scalarTriple(u, v, w rl.Vector3) float32 {
	return rl.Vector3DotProduct(cross(u, v), w)
}

func signedVolume(p [4]rl.Vector3) float32 {
	return scalarTriple(
		rl.Vector3Subtract(p[1], p[0]),
		rl.Vector3Subtract(p[2], p[0]),
		rl.Vector3Subtract(p[3], p[0]),
	) / 6
}

func NearestPointOnSphere3D(point rl.Vector3, sphere Sphere3) rl.Vector3 {
	disp := rl.Vector3Subtract(point, sphere.Center)
	if lengthSq3(disp) <= sphere.Radius*sphere.Radius {
		return point
	}
	dir, _ := normalize3(disp)
	return rl.Vector3Add(sphere.Center, rl.Vector3Scale(dir, sphere.Radius))
}

func NearestPointOnAABB3D(point rl.Vector3, box AABB3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(point.X, box.Min.X, box.Max.X),
		Y: clamp(point.Y, box.Min.Y, box.Max.Y),
		Z: clamp(point.Z, box.Min.Z, box.Max.Z),
	}
}

// NearestPointOnOBB3D clamps the point's box-local coordinates to the half size.
func NearestPointOnOBB3D(point rl.Vector3, box OBB3) rl.Vector3 {
	local := box.ToLocal(point)
	local.X = clamp(local.X, -box.HalfSize.X, box.HalfSize.X)
	local.Y = clamp(local.Y, -box.HalfSize.Y, box.HalfSize.Y)
	local.Z = clamp(local.Z, -box.HalfSize.Z, box.HalfSize.Z)
	return box.ToWorld(local)
}

func NearestPointOnLineSegment3D(point rl.Vector3, seg LineSegment3) rl.Vector3 {
	ab := rl.Vector3Subtract(seg.End, seg.Start)
	lenSq := lengthSq3(ab)
	if lenSq == 0 {
		return seg.Start
	}
	t := clamp(rl.Vector3DotProduct(rl.Vector3Subtract(point, seg.Start), ab)/lenSq, 0, 1)
	return rl.Vector3Add(seg.Start, rl.Vector3Scale(ab, t))
}

func NearestPointOnPlane3D(point rl.Vector3, plane Plane3) rl.Vector3 {
	return rl.Vector3Subtract(point, rl.Vector3Scale(plane.Normal, plane.SignedDistance(point)))
}

// NearestPointOnTriangle3D classifies the point against the triangle's Voronoi
// regions: the three vertex regions first, then the three edge regions, and
// the face region last.
func NearestPointOnTriangle3D(point rl.Vector3, tri Triangle3) rl.Vector3 {
	a, b, c := tri.Points[0], tri.Points[1], tri.Points[2]
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)
	bc := rl.Vector3Subtract(c, b)

	// Parametric positions of the point's projection along each edge.
	sNom := rl.Vector3DotProduct(rl.Vector3Subtract(point, a), ab)
	sDenom := rl.Vector3DotProduct(rl.Vector3Subtract(point, b), rl.Vector3Subtract(a, b))
	tNom := rl.Vector3DotProduct(rl.Vector3Subtract(point, a), ac)
	tDenom := rl.Vector3DotProduct(rl.Vector3Subtract(point, c), rl.Vector3Subtract(a, c))
	uNom := rl.Vector3DotProduct(rl.Vector3Subtract(point, b), bc)
	uDenom := rl.Vector3DotProduct(rl.Vector3Subtract(point, c), rl.Vector3Subtract(b, c))

	// Vertex regions.
	if sNom <= 0 && tNom <= 0 {
		return a
	}
	if sDenom <= 0 && uNom <= 0 {
		return b
	}
	if tDenom <= 0 && uDenom <= 0 {
		return c
	}

	// Edge regions: the point projects onto the edge and lies outside the
	// triangle on that edge's side.
	n := cross(ab, ac)
	vc := rl.Vector3DotProduct(n, cross(rl.Vector3Subtract(a, point), rl.Vector3Subtract(b, point)))
	if vc <= 0 && sNom >= 0 && sDenom >= 0 {
		return rl.Vector3Add(a, rl.Vector3Scale(ab, sNom/(sNom+sDenom)))
	}
	va := rl.Vector3DotProduct(n, cross(rl.Vector3Subtract(b, point), rl.Vector3Subtract(c, point)))
	if va <= 0 && uNom >= 0 && uDenom >= 0 {
		return rl.Vector3Add(b, rl.Vector3Scale(bc, uNom/(uNom+uDenom)))
	}
	vb := rl.Vector3DotProduct(n, cross(rl.Vector3Subtract(c, point), rl.Vector3Subtract(a, point)))
	if vb <= 0 && tNom >= 0 && tDenom >= 0 {
		return rl.Vector3Add(a, rl.Vector3Scale(ac, tNom/(tNom+tDenom)))
	}

	// Face region: barycentric weights from the three sub-areas.
	sum := va + vb + vc
	if sum == 0 {
		return a
	}
	u := va / sum
	v := vb / sum
	w := 1 - u - v
	return rl.Vector3Add(rl.Vector3Add(rl.Vector3Scale(a, u), rl.Vector3Scale(b, v)), rl.Vector3Scale(c, w))
}

func NearestPointOnZCylinder3D(point rl.Vector3, cyl ZCylinder3) rl.Vector3 {
	flat := NearestPointOnDisc2D(xy(point), Disc2{Center: cyl.Center, Radius: cyl.Radius})
	return rl.Vector3{X: flat.X, Y: flat.Y, Z: clamp(point.Z, cyl.MinZ, cyl.MaxZ)}
}

func NearestPointOnCylinder3D(point rl.Vector3, cyl Cylinder3) rl.Vector3 {
	axis, length := normalize3(rl.Vector3Subtract(cyl.End, cyl.Start))
	if length == 0 {
		return NearestPointOnSphere3D(point, Sphere3{Center: cyl.Start, Radius: cyl.Radius})
	}
	disp := rl.Vector3Subtract(point, cyl.Start)
	h := rl.Vector3DotProduct(disp, axis)
	radial := rl.Vector3Subtract(disp, rl.Vector3Scale(axis, h))
	if lengthSq3(radial) > cyl.Radius*cyl.Radius {
		dir, _ := normalize3(radial)
		radial = rl.Vector3Scale(dir, cyl.Radius)
	}
	h = clamp(h, 0, length)
	return rl.Vector3Add(cyl.Start, rl.Vector3Add(rl.Vector3Scale(axis, h), radial))
}
