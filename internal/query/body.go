package query

import (
	"fmt"

	"geomkit/internal/geometry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape2D is any of the 2D shapes a World accepts: geometry.Disc2, AABB2,
// OBB2, Capsule2, LineSegment2, ConvexPoly2 or Plane2.
type Shape2D interface {
	Validate() error
}

// Shape3D is any of geometry.Sphere3, AABB3, OBB3, Cylinder3, ZCylinder3,
// Plane3 or Triangle.
type Shape3D interface {
	Validate() error
}

// Triangle is a 3D triangle body together with its face culling mode.
type Triangle struct {
	geometry.Triangle3
	Sides geometry.TriangleSides
}

type Body2D struct {
	ID    string
	Shape Shape2D
}

type Body3D struct {
	ID    string
	Shape Shape3D
}

func checkShape2D(shape Shape2D) error {
	switch shape.(type) {
	case geometry.Disc2, geometry.AABB2, geometry.OBB2, geometry.Capsule2,
		geometry.LineSegment2, geometry.ConvexPoly2, geometry.Plane2:
		return shape.Validate()
	case nil:
		return fmt.Errorf("nil shape: %w", ErrUnsupportedShape)
	default:
		return fmt.Errorf("%T: %w", shape, ErrUnsupportedShape)
	}
}

func checkShape3D(shape Shape3D) error {
	switch shape.(type) {
	case geometry.Sphere3, geometry.AABB3, geometry.OBB3, geometry.Cylinder3,
		geometry.ZCylinder3, geometry.Plane3, Triangle:
		return shape.Validate()
	case nil:
		return fmt.Errorf("nil shape: %w", ErrUnsupportedShape)
	default:
		return fmt.Errorf("%T: %w", shape, ErrUnsupportedShape)
	}
}

func raycastShape2D(shape Shape2D, ray Ray2D) geometry.RaycastResult2D {
	switch s := shape.(type) {
	case geometry.Disc2:
		return geometry.RaycastVsDisc2D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.AABB2:
		return geometry.RaycastVsAABB2D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.OBB2:
		return geometry.RaycastVsOBB2D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.Capsule2:
		return geometry.RaycastVsCapsule2D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.LineSegment2:
		return geometry.RaycastVsLineSegment2D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.ConvexPoly2:
		return geometry.RaycastVsConvexPoly2D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.Plane2:
		return geometry.RaycastVsPlane2D(ray.Start, ray.Forward, ray.MaxDist, s)
	}
	return ray.miss()
}

func raycastShape3D(shape Shape3D, ray Ray3D) geometry.RaycastResult3D {
	switch s := shape.(type) {
	case geometry.Sphere3:
		return geometry.RaycastVsSphere3D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.AABB3:
		return geometry.RaycastVsAABB3D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.OBB3:
		return geometry.RaycastVsOBB3D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.Cylinder3:
		return geometry.RaycastVsCylinder3D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.ZCylinder3:
		return geometry.RaycastVsZCylinder3D(ray.Start, ray.Forward, ray.MaxDist, s)
	case geometry.Plane3:
		return geometry.RaycastVsPlane3D(ray.Start, ray.Forward, ray.MaxDist, s)
	case Triangle:
		return geometry.RaycastVsTriangle3D(ray.Start, ray.Forward, ray.MaxDist, s.Triangle3, s.Sides)
	}
	return ray.miss()
}

// contains2D reports containment for solid shapes. Segments and planes
// enclose nothing.
func contains2D(shape Shape2D, point rl.Vector2) bool {
	switch s := shape.(type) {
	case geometry.Disc2:
		return geometry.IsPointInsideDisc2D(point, s)
	case geometry.AABB2:
		return geometry.IsPointInsideAABB2D(point, s)
	case geometry.OBB2:
		return geometry.IsPointInsideOBB2D(point, s)
	case geometry.Capsule2:
		return geometry.IsPointInsideCapsule2D(point, s)
	case geometry.ConvexPoly2:
		return geometry.IsPointInsideConvexPoly2D(point, s)
	}
	return false
}

func contains3D(shape Shape3D, point rl.Vector3) bool {
	switch s := shape.(type) {
	case geometry.Sphere3:
		return geometry.IsPointInsideSphere3D(point, s)
	case geometry.AABB3:
		return geometry.IsPointInsideAABB3D(point, s)
	case geometry.OBB3:
		return geometry.IsPointInsideOBB3D(point, s)
	case geometry.Cylinder3:
		return geometry.IsPointInsideCylinder3D(point, s)
	case geometry.ZCylinder3:
		return geometry.IsPointInsideZCylinder3D(point, s)
	}
	return false
}

// bounds2D returns false for shapes without finite extent.
func bounds2D(shape Shape2D) (geometry.AABB2, bool) {
	switch s := shape.(type) {
	case geometry.Disc2:
		return s.Bounds(), true
	case geometry.AABB2:
		return s.Bounds(), true
	case geometry.OBB2:
		return s.Bounds(), true
	case geometry.Capsule2:
		return s.Bounds(), true
	case geometry.LineSegment2:
		return s.Bounds(), true
	case geometry.ConvexPoly2:
		return s.Bounds(), true
	}
	return geometry.AABB2{}, false
}

func bounds3D(shape Shape3D) (geometry.AABB3, bool) {
	switch s := shape.(type) {
	case geometry.Sphere3:
		return s.Bounds(), true
	case geometry.AABB3:
		return s.Bounds(), true
	case geometry.OBB3:
		return s.Bounds(), true
	case geometry.Cylinder3:
		return s.Bounds(), true
	case geometry.ZCylinder3:
		return s.Bounds(), true
	case Triangle:
		return s.Bounds(), true
	}
	return geometry.AABB3{}, false
}

// overlap2D runs the narrow-phase test for a pair. The second result is false
// when no test exists for the pairing.
func overlap2D(a, b Shape2D) (bool, bool) {
	if hit, ok := overlapOrdered2D(a, b); ok {
		return hit, true
	}
	return overlapOrdered2D(b, a)
}

func overlapOrdered2D(a, b Shape2D) (bool, bool) {
	switch sa := a.(type) {
	case geometry.Disc2:
		switch sb := b.(type) {
		case geometry.Disc2:
			return geometry.DoDiscsOverlap2D(sa, sb), true
		case geometry.AABB2:
			return geometry.DoDiscAndAABBOverlap2D(sa, sb), true
		case geometry.OBB2:
			return geometry.DoDiscAndOBBOverlap2D(sa, sb), true
		case geometry.Capsule2:
			return geometry.DoDiscAndCapsuleOverlap2D(sa, sb), true
		}
	case geometry.AABB2:
		switch sb := b.(type) {
		case geometry.AABB2:
			return geometry.DoAABBsOverlap2D(sa, sb), true
		case geometry.OBB2:
			return geometry.DoOBBsOverlap2D(sa.AsOBB2(), sb), true
		}
	case geometry.OBB2:
		if sb, ok := b.(geometry.OBB2); ok {
			return geometry.DoOBBsOverlap2D(sa, sb), true
		}
	}
	return false, false
}

func overlap3D(a, b Shape3D) (bool, bool) {
	if hit, ok := overlapOrdered3D(a, b); ok {
		return hit, true
	}
	return overlapOrdered3D(b, a)
}

func overlapOrdered3D(a, b Shape3D) (bool, bool) {
	switch sa := a.(type) {
	case geometry.Sphere3:
		switch sb := b.(type) {
		case geometry.Sphere3:
			return geometry.DoSpheresOverlap3D(sa, sb), true
		case geometry.AABB3:
			return geometry.DoAABBAndSphereOverlap3D(sb, sa), true
		case geometry.OBB3:
			return geometry.DoOBBAndSphereOverlap3D(sb, sa), true
		}
	case geometry.AABB3:
		switch sb := b.(type) {
		case geometry.AABB3:
			return geometry.DoAABBsOverlap3D(sa, sb), true
		case geometry.OBB3:
			return geometry.DoOBBAndAABBOverlap3D(sb, sa), true
		}
	case geometry.OBB3:
		switch sb := b.(type) {
		case geometry.OBB3:
			return geometry.DoOBBsOverlap3D(sa, sb), true
		case Triangle:
			return geometry.DoOBBAndTriangleOverlap3D(sa, sb.Triangle3), true
		}
	case Triangle:
		if sb, ok := b.(geometry.AABB3); ok {
			return geometry.DoOBBAndTriangleOverlap3D(sb.AsOBB3(), sa.Triangle3), true
		}
	case geometry.Plane3:
		switch sb := b.(type) {
		case geometry.AABB3:
			return geometry.DoPlaneAndAABBOverlap3D(sa, sb), true
		case geometry.OBB3:
			return geometry.DoPlaneAndOBBOverlap3D(sa, sb), true
		case geometry.Sphere3:
			return geometry.DoPlaneAndSphereOverlap3D(sa, sb), true
		}
	case geometry.ZCylinder3:
		switch sb := b.(type) {
		case geometry.ZCylinder3:
			return geometry.DoZCylindersOverlap3D(sa, sb), true
		case geometry.AABB3:
			return geometry.DoZCylinderAndAABBOverlap3D(sa, sb), true
		case geometry.Sphere3:
			return geometry.DoZCylinderAndSphereOverlap3D(sa, sb), true
		}
	}
	return false, false
}
