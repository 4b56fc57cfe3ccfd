package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MobileDisc2 is a disc that can be pushed and bounced.
type MobileDisc2 struct {
	Center     rl.Vector2
	Velocity   rl.Vector2
	Radius     float32
	Elasticity float32
}

// Push functions move the mobile center so it ends up exactly touching the
// fixed obstacle. They report whether the center moved. This is a positional
// correction only; velocities are left to the Bounce functions.

func PushDiscOutOfFixedPoint2D(center *rl.Vector2, radius float32, point rl.Vector2) bool {
	disp := rl.Vector2Subtract(*center, point)
	if lengthSq2(disp) >= radius*radius {
		return false
	}
	dir, dist := normalize2(disp)
	if dist < NormalizeEpsilon {
		return false
	}
	*center = rl.Vector2Add(point, rl.Vector2Scale(dir, radius))
	return true
}

func PushDiscOutOfFixedDisc2D(center *rl.Vector2, radius float32, fixed Disc2) bool {
	disp := rl.Vector2Subtract(*center, fixed.Center)
	radii := radius + fixed.Radius
	if lengthSq2(disp) >= radii*radii {
		return false
	}
	dir, dist := normalize2(disp)
	if dist < NormalizeEpsilon {
		return false
	}
	*center = rl.Vector2Add(fixed.Center, rl.Vector2Scale(dir, radii))
	return true
}

// PushDiscOutOfFixedAABB2D also handles a center that is already inside the
// box by leaving through the nearest face.
func PushDiscOutOfFixedAABB2D(center *rl.Vector2, radius float32, box AABB2) bool {
	nearest := NearestPointOnAABB2D(*center, box)
	if nearest != *center {
		return PushDiscOutOfFixedPoint2D(center, radius, nearest)
	}
	boxCenter := box.Center()
	local := escapeBox2(rl.Vector2Subtract(*center, boxCenter), box.HalfSize(), radius)
	*center = rl.Vector2Add(boxCenter, local)
	return true
}

func PushDiscOutOfFixedOBB2D(center *rl.Vector2, radius float32, box OBB2) bool {
	nearest := NearestPointOnOBB2D(*center, box)
	if lengthSq2(rl.Vector2Subtract(nearest, *center)) > NormalizeEpsilon*NormalizeEpsilon {
		return PushDiscOutOfFixedPoint2D(center, radius, nearest)
	}
	*center = box.ToWorld(escapeBox2(box.ToLocal(*center), box.HalfSize, radius))
	return true
}

// escapeBox2 moves a box-local point out through the closest face of a box
// centered at the origin, leaving it radius beyond that face.
func escapeBox2(local, half rl.Vector2, radius float32) rl.Vector2 {
	if half.X-abs(local.X) <= half.Y-abs(local.Y) {
		local.X = sign(local.X) * (half.X + radius)
	} else {
		local.Y = sign(local.Y) * (half.Y + radius)
	}
	return local
}

// PushDiscOutOfFixedCapsule2D treats the capsule as a disc sliding along its
// bone. A center exactly on the bone leaves along the bone's left normal.
func PushDiscOutOfFixedCapsule2D(center *rl.Vector2, radius float32, capsule Capsule2) bool {
	bone := NearestPointOnLineSegment2D(*center, LineSegment2{Start: capsule.Start, End: capsule.End})
	if *center == bone {
		dir, length := normalize2(rl.Vector2Subtract(capsule.End, capsule.Start))
		if length < NormalizeEpsilon || capsule.Radius+radius <= 0 {
			return false
		}
		*center = rl.Vector2Add(bone, rl.Vector2Scale(rotate90(dir), capsule.Radius+radius))
		return true
	}
	return PushDiscOutOfFixedDisc2D(center, radius, Disc2{Center: bone, Radius: capsule.Radius})
}

// PushDiscsOutOfEachOther2D moves both discs half the overlap apart along the
// line between their centers.
func PushDiscsOutOfEachOther2D(a *rl.Vector2, radiusA float32, b *rl.Vector2, radiusB float32) bool {
	disp := rl.Vector2Subtract(*b, *a)
	radii := radiusA + radiusB
	if lengthSq2(disp) >= radii*radii {
		return false
	}
	dir, dist := normalize2(disp)
	if dist < NormalizeEpsilon {
		return false
	}
	half := rl.Vector2Scale(dir, (radii-dist)/2)
	*a = rl.Vector2Subtract(*a, half)
	*b = rl.Vector2Add(*b, half)
	return true
}

func PushSphereOutOfFixedAABB3D(center *rl.Vector3, radius float32, box AABB3) bool {
	nearest := NearestPointOnAABB3D(*center, box)
	if nearest != *center {
		disp := rl.Vector3Subtract(*center, nearest)
		if lengthSq3(disp) >= radius*radius {
			return false
		}
		dir, _ := normalize3(disp)
		*center = rl.Vector3Add(nearest, rl.Vector3Scale(dir, radius))
		return true
	}

	boxCenter := box.Center()
	half := box.HalfSize()
	local := rl.Vector3Subtract(*center, boxCenter)
	gapX := half.X - abs(local.X)
	gapY := half.Y - abs(local.Y)
	gapZ := half.Z - abs(local.Z)
	switch {
	case gapX <= gapY && gapX <= gapZ:
		local.X = sign(local.X) * (half.X + radius)
	case gapY <= gapZ:
		local.Y = sign(local.Y) * (half.Y + radius)
	default:
		local.Z = sign(local.Z) * (half.Z + radius)
	}
	*center = rl.Vector3Add(boxCenter, local)
	return true
}

// Bounce functions push the disc out, then reflect the normal component of its
// velocity scaled by the product of both elasticities. A disc already moving
// away from the contact keeps its velocity.

func BounceDiscOffFixedPoint2D(disc *MobileDisc2, point rl.Vector2, elasticity float32) bool {
	if !PushDiscOutOfFixedPoint2D(&disc.Center, disc.Radius, point) {
		return false
	}
	disc.bounceFrom(point, elasticity)
	return true
}

func BounceDiscOffFixedDisc2D(disc *MobileDisc2, fixed Disc2, elasticity float32) bool {
	if !PushDiscOutOfFixedDisc2D(&disc.Center, disc.Radius, fixed) {
		return false
	}
	disc.bounceFrom(NearestPointOnDisc2D(disc.Center, fixed), elasticity)
	return true
}

func BounceDiscOffFixedAABB2D(disc *MobileDisc2, box AABB2, elasticity float32) bool {
	if !PushDiscOutOfFixedAABB2D(&disc.Center, disc.Radius, box) {
		return false
	}
	disc.bounceFrom(NearestPointOnAABB2D(disc.Center, box), elasticity)
	return true
}

func BounceDiscOffFixedOBB2D(disc *MobileDisc2, box OBB2, elasticity float32) bool {
	if !PushDiscOutOfFixedOBB2D(&disc.Center, disc.Radius, box) {
		return false
	}
	disc.bounceFrom(NearestPointOnOBB2D(disc.Center, box), elasticity)
	return true
}

func BounceDiscOffFixedCapsule2D(disc *MobileDisc2, capsule Capsule2, elasticity float32) bool {
	if !PushDiscOutOfFixedCapsule2D(&disc.Center, disc.Radius, capsule) {
		return false
	}
	disc.bounceFrom(NearestPointOnCapsule2D(disc.Center, capsule), elasticity)
	return true
}

// BounceDiscsOffEachOther2D separates two mobile discs and, if they were
// closing, swaps their normal velocity components scaled by both elasticities.
func BounceDiscsOffEachOther2D(a, b *MobileDisc2) bool {
	if !PushDiscsOutOfEachOther2D(&a.Center, a.Radius, &b.Center, b.Radius) {
		return false
	}
	normal, _ := normalize2(rl.Vector2Subtract(b.Center, a.Center))
	speedA := rl.Vector2DotProduct(a.Velocity, normal)
	speedB := rl.Vector2DotProduct(b.Velocity, normal)
	if speedA-speedB <= 0 {
		return true
	}
	elasticity := a.Elasticity * b.Elasticity
	tangentA := rl.Vector2Subtract(a.Velocity, rl.Vector2Scale(normal, speedA))
	tangentB := rl.Vector2Subtract(b.Velocity, rl.Vector2Scale(normal, speedB))
	a.Velocity = rl.Vector2Add(tangentA, rl.Vector2Scale(normal, speedB*elasticity))
	b.Velocity = rl.Vector2Add(tangentB, rl.Vector2Scale(normal, speedA*elasticity))
	return true
}

func (d *MobileDisc2) bounceFrom(contact rl.Vector2, elasticity float32) {
	normal, length := normalize2(rl.Vector2Subtract(d.Center, contact))
	if length < NormalizeEpsilon {
		return
	}
	d.Velocity = reflectVelocity(d.Velocity, normal, d.Elasticity*elasticity)
}

// reflectVelocity negates the component of v along normal, scaled by
// elasticity, when v points into the surface.
func reflectVelocity(v, normal rl.Vector2, elasticity float32) rl.Vector2 {
	speed := rl.Vector2DotProduct(v, normal)
	if speed >= 0 {
		return v
	}
	normalPart := rl.Vector2Scale(normal, speed)
	tangent := rl.Vector2Subtract(v, normalPart)
	return rl.Vector2Subtract(tangent, rl.Vector2Scale(normalPart, elasticity))
}
