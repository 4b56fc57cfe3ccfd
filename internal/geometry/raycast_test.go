package geometry

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastVsDisc2D(t *testing.T) {
	disc := Disc2{Center: v2(5, 0), Radius: 1}

	result := RaycastVsDisc2D(v2(0, 0), v2(1, 0), 10, disc)
	require.True(t, result.DidImpact)
	assert.InDelta(t, 4, result.ImpactDist, tolerance)
	assertVec2Near(t, v2(4, 0), result.ImpactPos)
	assertVec2Near(t, v2(-1, 0), result.ImpactNormal)
	assert.Equal(t, v2(0, 0), result.RayStart)
	assert.Equal(t, float32(10), result.RayMaxLength)

	tests := []struct {
		name    string
		start   rl.Vector2
		maxDist float32
	}{
		{"passes beside", v2(0, 1.5), 10},
		{"too short", v2(0, 0), 3},
		{"disc behind", v2(7, 0), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			miss := RaycastVsDisc2D(tt.start, v2(1, 0), tt.maxDist, disc)
			assert.False(t, miss.DidImpact)
			assert.Equal(t, tt.start, miss.RayStart)
		})
	}
}

func TestRaycastVsDisc2DFromRim(t *testing.T) {
	disc := Disc2{Radius: 3}
	for deg := 0; deg < 360; deg++ {
		rad := float64(deg) * math.Pi / 180
		out := v2(float32(math.Cos(rad)), float32(math.Sin(rad)))
		start := rl.Vector2Scale(out, 3)

		inward := RaycastVsDisc2D(start, rl.Vector2Negate(out), 10, disc)
		require.True(t, inward.DidImpact, "angle %d", deg)
		assert.InDelta(t, 0, inward.ImpactDist, tolerance, "angle %d", deg)
		assertVec2Near(t, out, inward.ImpactNormal, "angle %d", deg)
	}

	assert.False(t, RaycastVsDisc2D(v2(3, 0), v2(1, 0), 10, disc).DidImpact, "leaving from the rim")
}

func TestRaycastStartingInsideFacesBackward(t *testing.T) {
	forward := v2(0, 1)

	disc := RaycastVsDisc2D(v2(5, 0.5), forward, 10, Disc2{Center: v2(5, 0), Radius: 1})
	box := RaycastVsAABB2D(v2(1, 1), forward, 10, AABB2{Min: v2(0, 0), Max: v2(2, 2)})
	poly := RaycastVsConvexPoly2D(v2(1, 1), forward, 10, ConvexPoly2{Points: []rl.Vector2{v2(0, 0), v2(2, 0), v2(2, 2), v2(0, 2)}})

	for _, result := range []RaycastResult2D{disc, box, poly} {
		require.True(t, result.DidImpact)
		assert.Zero(t, result.ImpactDist)
		assert.Equal(t, result.RayStart, result.ImpactPos)
		assertVec2Near(t, v2(0, -1), result.ImpactNormal)
	}

	sphere := RaycastVsSphere3D(v3(0, 0, 0), v3(1, 0, 0), 10, Sphere3{Radius: 1})
	require.True(t, sphere.DidImpact)
	assert.Zero(t, sphere.ImpactDist)
	assertVec3Near(t, v3(-1, 0, 0), sphere.ImpactNormal)
}

func TestRaycastVsLineSegment2D(t *testing.T) {
	result := RaycastVsLineSegment2D(v2(0, 0), v2(1, 0), 10, LineSegment2{Start: v2(3, -1), End: v2(3, 1)})
	require.True(t, result.DidImpact)
	assert.InDelta(t, 3, result.ImpactDist, tolerance)
	assertVec2Near(t, v2(3, 0), result.ImpactPos)
	assertVec2Near(t, v2(-1, 0), result.ImpactNormal)

	reversed := RaycastVsLineSegment2D(v2(0, 0), v2(1, 0), 10, LineSegment2{Start: v2(3, 1), End: v2(3, -1)})
	require.True(t, reversed.DidImpact)
	assertVec2Near(t, v2(-1, 0), reversed.ImpactNormal)

	assert.False(t, RaycastVsLineSegment2D(v2(0, 0), v2(1, 0), 10, LineSegment2{Start: v2(1, 1), End: v2(3, 1)}).DidImpact)
	assert.False(t, RaycastVsLineSegment2D(v2(0, 0), v2(1, 0), 2, LineSegment2{Start: v2(3, -1), End: v2(3, 1)}).DidImpact)
	assert.False(t, RaycastVsLineSegment2D(v2(0, 0), v2(1, 0), 10, LineSegment2{Start: v2(-3, -1), End: v2(-3, 1)}).DidImpact)
}

func TestRaycastVsAABB2D(t *testing.T) {
	box := AABB2{Min: v2(0, 0), Max: v2(2, 2)}

	result := RaycastVsAABB2D(v2(-5, 1), v2(1, 0), 10, box)
	require.True(t, result.DidImpact)
	assert.InDelta(t, 5, result.ImpactDist, tolerance)
	assertVec2Near(t, v2(0, 1), result.ImpactPos)
	assertVec2Near(t, v2(-1, 0), result.ImpactNormal)

	fromAbove := RaycastVsAABB2D(v2(1, 6), v2(0, -1), 10, box)
	require.True(t, fromAbove.DidImpact)
	assert.InDelta(t, 4, fromAbove.ImpactDist, tolerance)
	assertVec2Near(t, v2(0, 1), fromAbove.ImpactNormal)

	diagonal := RaycastVsAABB2D(v2(-1, -2), v2(float32(math.Sqrt2)/2, float32(math.Sqrt2)/2), 10, box)
	require.True(t, diagonal.DidImpact)
	assertVec2Near(t, v2(1, 0), diagonal.ImpactPos)
	assertVec2Near(t, v2(0, -1), diagonal.ImpactNormal)

	assert.False(t, RaycastVsAABB2D(v2(-5, 3), v2(1, 0), 10, box).DidImpact)
	assert.False(t, RaycastVsAABB2D(v2(-5, 1), v2(1, 0), 4, box).DidImpact)
	assert.False(t, RaycastVsAABB2D(v2(5, 1), v2(1, 0), 10, box).DidImpact)
}

func TestRaycastVsOBB2D(t *testing.T) {
	box := NewOBB2(v2(5, 0), v2(1, 2), 90)

	result := RaycastVsOBB2D(v2(0, 0), v2(1, 0), 10, box)
	require.True(t, result.DidImpact)
	assert.InDelta(t, 3, result.ImpactDist, tolerance)
	assertVec2Near(t, v2(3, 0), result.ImpactPos)
	assertVec2Near(t, v2(-1, 0), result.ImpactNormal)

	assert.False(t, RaycastVsOBB2D(v2(0, 1.5), v2(1, 0), 10, box).DidImpact)
}

func TestRaycastVsConvexPoly2D(t *testing.T) {
	square := ConvexPoly2{Points: []rl.Vector2{v2(0, 0), v2(2, 0), v2(2, 2), v2(0, 2)}}

	result := RaycastVsConvexPoly2D(v2(-5, 1), v2(1, 0), 10, square)
	require.True(t, result.DidImpact)
	assert.InDelta(t, 5, result.ImpactDist, tolerance)
	assertVec2Near(t, v2(-1, 0), result.ImpactNormal)

	assert.False(t, RaycastVsConvexPoly2D(v2(-5, 5), v2(1, 0), 10, square).DidImpact)
	assert.False(t, RaycastVsConvexPoly2D(v2(-5, 1), v2(-1, 0), 10, square).DidImpact)
	assert.False(t, RaycastVsConvexPoly2D(v2(-5, 1), v2(1, 0), 4, square).DidImpact)

	triangle := ConvexPoly2{Points: []rl.Vector2{v2(0, 0), v2(4, 0), v2(0, 4)}}
	slanted := RaycastVsConvexPoly2D(v2(3, 3), v2(0, -1), 10, triangle)
	require.True(t, slanted.DidImpact)
	assert.InDelta(t, 2, slanted.ImpactDist, tolerance)
	assertVec2Near(t, v2(float32(math.Sqrt2)/2, float32(math.Sqrt2)/2), slanted.ImpactNormal)
}

func TestRaycastVsPlane2D(t *testing.T) {
	ground := Plane2{Normal: v2(0, 1), Distance: 0}

	down := RaycastVsPlane2D(v2(0, 5), v2(0, -1), 10, ground)
	require.True(t, down.DidImpact)
	assert.InDelta(t, 5, down.ImpactDist, tolerance)
	assertVec2Near(t, v2(0, 1), down.ImpactNormal)

	up := RaycastVsPlane2D(v2(0, -5), v2(0, 1), 10, ground)
	require.True(t, up.DidImpact)
	assertVec2Near(t, v2(0, -1), up.ImpactNormal)

	assert.False(t, RaycastVsPlane2D(v2(0, 5), v2(0, -1), 4, ground).DidImpact)
	assert.False(t, RaycastVsPlane2D(v2(0, 5), v2(1, 0), 10, ground).DidImpact)
}

func TestRaycastVsCapsule2D(t *testing.T) {
	capsule := Capsule2{Start: v2(0, 0), End: v2(4, 0), Radius: 1}

	side := RaycastVsCapsule2D(v2(2, 5), v2(0, -1), 10, capsule)
	require.True(t, side.DidImpact)
	assert.InDelta(t, 4, side.ImpactDist, tolerance)
	assertVec2Near(t, v2(0, 1), side.ImpactNormal)

	end := RaycastVsCapsule2D(v2(-5, 0), v2(1, 0), 10, capsule)
	require.True(t, end.DidImpact)
	assert.InDelta(t, 4, end.ImpactDist, tolerance)
	assertVec2Near(t, v2(-1, 0), end.ImpactNormal)
}

func TestRaycastVsSphere3D(t *testing.T) {
	sphere := Sphere3{Center: v3(5, 0, 0), Radius: 1}

	result := RaycastVsSphere3D(v3(0, 0, 0), v3(1, 0, 0), 10, sphere)
	require.True(t, result.DidImpact)
	assert.InDelta(t, 4, result.ImpactDist, tolerance)
	assertVec3Near(t, v3(-1, 0, 0), result.ImpactNormal)

	assert.False(t, RaycastVsSphere3D(v3(0, 0, 1.2), v3(1, 0, 0), 10, sphere).DidImpact)
	assert.False(t, RaycastVsSphere3D(v3(0, 0, 0), v3(-1, 0, 0), 10, sphere).DidImpact)
}

func TestRaycastVsAABB3D(t *testing.T) {
	box := AABB3{Min: v3(0, 0, 0), Max: v3(2, 2, 2)}

	result := RaycastVsAABB3D(v3(-5, 1, 1), v3(1, 0, 0), 10, box)
	require.True(t, result.DidImpact)
	assert.InDelta(t, 5, result.ImpactDist, tolerance)
	assertVec3Near(t, v3(0, 1, 1), result.ImpactPos)
	assertVec3Near(t, v3(-1, 0, 0), result.ImpactNormal)

	fromAbove := RaycastVsAABB3D(v3(1, 5, 1), v3(0, -1, 0), 10, box)
	require.True(t, fromAbove.DidImpact)
	assert.InDelta(t, 3, fromAbove.ImpactDist, tolerance)
	assertVec3Near(t, v3(0, 1, 0), fromAbove.ImpactNormal)

	fromBehind := RaycastVsAABB3D(v3(1, 1, 9), v3(0, 0, -1), 10, box)
	require.True(t, fromBehind.DidImpact)
	assertVec3Near(t, v3(0, 0, 1), fromBehind.ImpactNormal)

	assert.False(t, RaycastVsAABB3D(v3(-5, 3, 1), v3(1, 0, 0), 10, box).DidImpact)
	assert.False(t, RaycastVsAABB3D(v3(-5, 1, 1), v3(1, 0, 0), 4, box).DidImpact)
}

func TestRaycastVsOBB3D(t *testing.T) {
	// Rolled about the ray's own axis: the X extents do not change.
	rolled := NewOBB3(v3(5, 0, 0), v3(2, 2, 2), v3(45, 0, 0))
	result := RaycastVsOBB3D(v3(0, 0, 0), v3(1, 0, 0), 10, rolled)
	require.True(t, result.DidImpact)
	assert.InDelta(t, 4, result.ImpactDist, tolerance)
	assertVec3Near(t, v3(4, 0, 0), result.ImpactPos)
	assertVec3Near(t, v3(-1, 0, 0), result.ImpactNormal)

	yawed := NewOBB3(v3(5, 0, 0), v3(2, 2, 2), v3(0, 0, 30))
	axis := yawed.Axes[0]
	start := rl.Vector3Subtract(yawed.Center, rl.Vector3Scale(axis, 5))
	face := RaycastVsOBB3D(start, axis, 10, yawed)
	require.True(t, face.DidImpact)
	assert.InDelta(t, 4, face.ImpactDist, tolerance)
	assertVec3Near(t, rl.Vector3Subtract(yawed.Center, axis), face.ImpactPos)
	assertVec3Near(t, rl.Vector3Negate(axis), face.ImpactNormal)

	assert.False(t, RaycastVsOBB3D(v3(0, 3, 0), v3(1, 0, 0), 10, rolled).DidImpact)
}

func TestRaycastVsPlane3D(t *testing.T) {
	ground := Plane3{Normal: v3(0, 0, 1), Distance: 0}

	down := RaycastVsPlane3D(v3(0, 0, 5), v3(0, 0, -1), 10, ground)
	require.True(t, down.DidImpact)
	assert.InDelta(t, 5, down.ImpactDist, tolerance)
	assertVec3Near(t, v3(0, 0, 1), down.ImpactNormal)

	up := RaycastVsPlane3D(v3(0, 0, -5), v3(0, 0, 1), 10, ground)
	require.True(t, up.DidImpact)
	assertVec3Near(t, v3(0, 0, -1), up.ImpactNormal)

	assert.False(t, RaycastVsPlane3D(v3(0, 0, 5), v3(0, 0, 1), 10, ground).DidImpact)
}

func TestRaycastVsTriangle3D(t *testing.T) {
	tri := Triangle3{Points: [3]rl.Vector3{v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, 0)}}

	front := RaycastVsTriangle3D(v3(0.2, 0.2, 5), v3(0, 0, -1), 10, tri, TriangleSingleSided)
	require.True(t, front.DidImpact)
	assert.InDelta(t, 5, front.ImpactDist, tolerance)
	assertVec3Near(t, v3(0.2, 0.2, 0), front.ImpactPos)
	assertVec3Near(t, v3(0, 0, 1), front.ImpactNormal)

	assert.False(t, RaycastVsTriangle3D(v3(0.2, 0.2, -5), v3(0, 0, 1), 10, tri, TriangleSingleSided).DidImpact)

	back := RaycastVsTriangle3D(v3(0.2, 0.2, -5), v3(0, 0, 1), 10, tri, TriangleDoubleSided)
	require.True(t, back.DidImpact)
	assert.InDelta(t, 5, back.ImpactDist, tolerance)
	assertVec3Near(t, v3(0, 0, -1), back.ImpactNormal)

	assert.False(t, RaycastVsTriangle3D(v3(2, 2, 5), v3(0, 0, -1), 10, tri, TriangleDoubleSided).DidImpact)
	assert.False(t, RaycastVsTriangle3D(v3(0.2, 0.2, 5), v3(0, 0, -1), 4, tri, TriangleDoubleSided).DidImpact)
	assert.False(t, RaycastVsTriangle3D(v3(0.2, 0.2, 5), v3(0, 0, 1), 10, tri, TriangleDoubleSided).DidImpact)
}

func TestRaycastVsCylinder3D(t *testing.T) {
	cyl := Cylinder3{Start: v3(0, 0, 0), End: v3(0, 0, 4), Radius: 1}

	side := RaycastVsCylinder3D(v3(-5, 0, 2), v3(1, 0, 0), 10, cyl)
	require.True(t, side.DidImpact)
	assert.InDelta(t, 4, side.ImpactDist, tolerance)
	assertVec3Near(t, v3(-1, 0, 0), side.ImpactNormal)

	top := RaycastVsCylinder3D(v3(0.5, 0, 10), v3(0, 0, -1), 10, cyl)
	require.True(t, top.DidImpact)
	assert.InDelta(t, 6, top.ImpactDist, tolerance)
	assertVec3Near(t, v3(0, 0, 1), top.ImpactNormal)

	bottom := RaycastVsCylinder3D(v3(0.5, 0, -3), v3(0, 0, 1), 10, cyl)
	require.True(t, bottom.DidImpact)
	assert.InDelta(t, 3, bottom.ImpactDist, tolerance)
	assertVec3Near(t, v3(0, 0, -1), bottom.ImpactNormal)

	assert.False(t, RaycastVsCylinder3D(v3(-5, 0, 5), v3(1, 0, 0), 10, cyl).DidImpact)
	assert.False(t, RaycastVsCylinder3D(v3(1.5, 0, 10), v3(0, 0, -1), 20, cyl).DidImpact)
}

func TestZCylinderRaycastMatchesGeneralCylinder(t *testing.T) {
	zcyl := ZCylinder3{Center: v2(0, 0), MinZ: 0, MaxZ: 4, Radius: 1}
	general := zcyl.AsCylinder3()
	diag := float32(math.Sqrt2) / 2

	rays := []struct {
		name    string
		start   rl.Vector3
		forward rl.Vector3
	}{
		{"side", v3(-5, 0, 2), v3(1, 0, 0)},
		{"top cap", v3(0.5, 0, 10), v3(0, 0, -1)},
		{"bottom cap", v3(0.5, 0.2, -3), v3(0, 0, 1)},
		{"diagonal side", v3(-3, 0, 5), v3(diag, 0, -diag)},
		{"diagonal cap", v3(-1.5, 0, 6), v3(diag, 0, -diag)},
		{"miss over the top", v3(-5, 0, 5), v3(1, 0, 0)},
		{"miss beside", v3(-5, 2, 2), v3(1, 0, 0)},
	}
	for _, ray := range rays {
		t.Run(ray.name, func(t *testing.T) {
			a := RaycastVsZCylinder3D(ray.start, ray.forward, 20, zcyl)
			b := RaycastVsCylinder3D(ray.start, ray.forward, 20, general)
			require.Equal(t, b.DidImpact, a.DidImpact)
			if !a.DidImpact {
				return
			}
			assert.InDelta(t, b.ImpactDist, a.ImpactDist, tolerance)
			assertVec3Near(t, b.ImpactPos, a.ImpactPos)
			assertVec3Near(t, b.ImpactNormal, a.ImpactNormal)
		})
	}
}

func TestRaycastImpactRoundTrip(t *testing.T) {
	const nudge = 1e-3
	diag := float32(math.Sqrt2) / 2

	disc := Disc2{Center: v2(4, 1), Radius: 1.5}
	box2 := AABB2{Min: v2(2, -1), Max: v2(5, 3)}
	obb2 := NewOBB2(v2(6, 2), v2(2, 1), 30)
	starts2 := []rl.Vector2{v2(-3, 0), v2(0, 5), v2(-1, -1)}
	forwards2 := []rl.Vector2{v2(1, 0), v2(diag, -diag), v2(diag, diag)}

	for i, start := range starts2 {
		forward := forwards2[i]
		for _, result := range []RaycastResult2D{
			RaycastVsDisc2D(start, forward, 20, disc),
			RaycastVsAABB2D(start, forward, 20, box2),
			RaycastVsOBB2D(start, forward, 20, obb2),
		} {
			if !result.DidImpact {
				continue
			}
			assertVec2Near(t, rl.Vector2Add(start, rl.Vector2Scale(forward, result.ImpactDist)), result.ImpactPos)
		}
		if r := RaycastVsDisc2D(start, forward, 20, disc); r.DidImpact {
			assert.True(t, IsPointInsideDisc2D(rl.Vector2Add(r.ImpactPos, rl.Vector2Scale(forward, nudge)), disc))
		}
		if r := RaycastVsAABB2D(start, forward, 20, box2); r.DidImpact {
			assert.True(t, IsPointInsideAABB2D(rl.Vector2Add(r.ImpactPos, rl.Vector2Scale(forward, nudge)), box2))
		}
		if r := RaycastVsOBB2D(start, forward, 20, obb2); r.DidImpact {
			assert.True(t, IsPointInsideOBB2D(rl.Vector2Add(r.ImpactPos, rl.Vector2Scale(forward, nudge)), obb2))
		}
	}

	obb3 := NewOBB3(v3(5, 0, 0), v3(2, 3, 2), v3(10, 20, 30))
	sphere := Sphere3{Center: v3(5, 0, 0), Radius: 1.5}
	for _, forward := range []rl.Vector3{v3(1, 0, 0), v3(diag, diag, 0), v3(diag, 0, diag)} {
		start := rl.Vector3Subtract(v3(5, 0, 0), rl.Vector3Scale(forward, 6))
		o := RaycastVsOBB3D(start, forward, 20, obb3)
		require.True(t, o.DidImpact)
		assertVec3Near(t, rl.Vector3Add(start, rl.Vector3Scale(forward, o.ImpactDist)), o.ImpactPos)
		assert.True(t, IsPointInsideOBB3D(rl.Vector3Add(o.ImpactPos, rl.Vector3Scale(forward, nudge)), obb3))

		s := RaycastVsSphere3D(start, forward, 20, sphere)
		require.True(t, s.DidImpact)
		assert.InDelta(t, 4.5, s.ImpactDist, tolerance)
		assert.True(t, IsPointInsideSphere3D(rl.Vector3Add(s.ImpactPos, rl.Vector3Scale(forward, nudge)), sphere))
	}
}

func TestRaysMissingShapesReportNoImpact(t *testing.T) {
	// Offsets larger than each shape's bounding radius.
	for _, offset := range []float32{3, -3, 10} {
		start := v2(-10, offset)
		assert.False(t, RaycastVsDisc2D(start, v2(1, 0), 50, Disc2{Radius: 1}).DidImpact)
		assert.False(t, RaycastVsAABB2D(start, v2(1, 0), 50, AABB2{Min: v2(-1, -1), Max: v2(1, 1)}).DidImpact)
		assert.False(t, RaycastVsOBB2D(start, v2(1, 0), 50, NewOBB2(v2(0, 0), v2(1, 1), 45)).DidImpact)
		assert.False(t, RaycastVsCapsule2D(start, v2(1, 0), 50, Capsule2{Start: v2(-1, 0), End: v2(1, 0), Radius: 0.5}).DidImpact)

		start3 := v3(-10, offset, 0)
		assert.False(t, RaycastVsSphere3D(start3, v3(1, 0, 0), 50, Sphere3{Radius: 1}).DidImpact)
		assert.False(t, RaycastVsOBB3D(start3, v3(1, 0, 0), 50, NewOBB3(v3(0, 0, 0), v3(2, 2, 2), v3(0, 45, 45))).DidImpact)
		assert.False(t, RaycastVsZCylinder3D(start3, v3(1, 0, 0), 50, ZCylinder3{MinZ: -1, MaxZ: 1, Radius: 1}).DidImpact)
	}
}
