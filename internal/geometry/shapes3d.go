package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Sphere3 struct {
	Center rl.Vector3
	Radius float32
}

type AABB3 struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABB3FromCenter creates an AABB3 from a center point and full size dimensions.
func NewAABB3FromCenter(center, size rl.Vector3) AABB3 {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB3{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB3) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB3) HalfSize() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Subtract(a.Max, a.Min), 0.5)
}

// AsOBB3 returns the same box as an axis-aligned OBB3 (no rotation).
func (a AABB3) AsOBB3() OBB3 {
	return OBB3{
		Center:   a.Center(),
		HalfSize: a.HalfSize(),
		Axes: [3]rl.Vector3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
	}
}

// OBB3 represents an Oriented Bounding Box
type OBB3 struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB3 creates an OBB3 from center, full size, and euler rotation (degrees),
// applied in X, Y, Z order.
func NewOBB3(center, size, rotation rl.Vector3) OBB3 {
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	// Extract rotated axes
	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB3{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes:     axes,
	}
}

// ModelMatrix maps box-local coordinates to world space.
func (o OBB3) ModelMatrix() rl.Matrix {
	i, j, k := o.Axes[0], o.Axes[1], o.Axes[2]
	return rl.Matrix{
		M0: i.X, M4: j.X, M8: k.X, M12: o.Center.X,
		M1: i.Y, M5: j.Y, M9: k.Y, M13: o.Center.Y,
		M2: i.Z, M6: j.Z, M10: k.Z, M14: o.Center.Z,
		M3: 0, M7: 0, M11: 0, M15: 1,
	}
}

// ToLocal expresses a world point in the box frame.
func (o OBB3) ToLocal(point rl.Vector3) rl.Vector3 {
	disp := rl.Vector3Subtract(point, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(disp, o.Axes[0]),
		Y: rl.Vector3DotProduct(disp, o.Axes[1]),
		Z: rl.Vector3DotProduct(disp, o.Axes[2]),
	}
}

func (o OBB3) dirToWorld(local rl.Vector3) rl.Vector3 {
	result := rl.Vector3Scale(o.Axes[0], local.X)
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], local.Y))
	return rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], local.Z))
}

// ToWorld is the inverse of ToLocal.
func (o OBB3) ToWorld(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(o.Center, o.dirToWorld(local))
}

// CornerPoints returns the eight corners; bit 0 of the index picks +I, bit 1
// picks +J and bit 2 picks +K.
func (o OBB3) CornerPoints() [8]rl.Vector3 {
	var corners [8]rl.Vector3
	for n := range corners {
		local := rl.Vector3{X: -o.HalfSize.X, Y: -o.HalfSize.Y, Z: -o.HalfSize.Z}
		if n&1 != 0 {
			local.X = o.HalfSize.X
		}
		if n&2 != 0 {
			local.Y = o.HalfSize.Y
		}
		if n&4 != 0 {
			local.Z = o.HalfSize.Z
		}
		corners[n] = o.ToWorld(local)
	}
	return corners
}

// projectedRadius is the half-length of the box's shadow on a unit axis.
func (o OBB3) projectedRadius(axis rl.Vector3) float32 {
	return o.HalfSize.X*abs(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*abs(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*abs(rl.Vector3DotProduct(o.Axes[2], axis))
}

type LineSegment3 struct {
	Start rl.Vector3
	End   rl.Vector3
}

// Plane3 is the set of points p with dot(p, Normal) == Distance.
type Plane3 struct {
	Normal   rl.Vector3
	Distance float32
}

// NewPlane3FromTriangle builds the plane through a counter-clockwise triangle,
// normal facing the side the winding is seen counter-clockwise from.
func NewPlane3FromTriangle(t Triangle3) Plane3 {
	normal := t.Normal()
	return Plane3{Normal: normal, Distance: rl.Vector3DotProduct(normal, t.Points[0])}
}

// SignedDistance is positive on the side the normal points to.
func (p Plane3) SignedDistance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(point, p.Normal) - p.Distance
}

type Triangle3 struct {
	Points [3]rl.Vector3
}

// Normal is the unit face normal, zero for a degenerate triangle.
func (t Triangle3) Normal() rl.Vector3 {
	n, _ := normalize3(cross(
		rl.Vector3Subtract(t.Points[1], t.Points[0]),
		rl.Vector3Subtract(t.Points[2], t.Points[0]),
	))
	return n
}

// Cylinder3 is a capped cylinder of arbitrary orientation around Start->End.
type Cylinder3 struct {
	Start  rl.Vector3
	End    rl.Vector3
	Radius float32
}

// ZCylinder3 is a capped cylinder whose axis is parallel to world Z.
type ZCylinder3 struct {
	Center rl.Vector2 // XY of the axis
	MinZ   float32
	MaxZ   float32
	Radius float32
}

// AsCylinder3 returns the same solid in the general representation.
func (z ZCylinder3) AsCylinder3() Cylinder3 {
	return Cylinder3{
		Start:  rl.Vector3{X: z.Center.X, Y: z.Center.Y, Z: z.MinZ},
		End:    rl.Vector3{X: z.Center.X, Y: z.Center.Y, Z: z.MaxZ},
		Radius: z.Radius,
	}
}

type Tetrahedron3 struct {
	Points [4]rl.Vector3
}
