package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastResult2D describes the first impact of a ray. When DidImpact is
// false only the echoed ray fields are meaningful.
type RaycastResult2D struct {
	DidImpact    bool
	ImpactDist   float32
	ImpactPos    rl.Vector2
	ImpactNormal rl.Vector2

	RayStart     rl.Vector2
	RayForward   rl.Vector2
	RayMaxLength float32
}

type RaycastResult3D struct {
	DidImpact    bool
	ImpactDist   float32
	ImpactPos    rl.Vector3
	ImpactNormal rl.Vector3

	RayStart     rl.Vector3
	RayForward   rl.Vector3
	RayMaxLength float32
}

func miss2(start, forward rl.Vector2, maxDist float32) RaycastResult2D {
	return RaycastResult2D{RayStart: start, RayForward: forward, RayMaxLength: maxDist}
}

func hit2(start, forward rl.Vector2, maxDist, dist float32, normal rl.Vector2) RaycastResult2D {
	return RaycastResult2D{
		DidImpact:    true,
		ImpactDist:   dist,
		ImpactPos:    rl.Vector2Add(start, rl.Vector2Scale(forward, dist)),
		ImpactNormal: normal,
		RayStart:     start,
		RayForward:   forward,
		RayMaxLength: maxDist,
	}
}

// insideHit2 is the result for a ray that starts inside a solid: zero
// distance, normal facing back along the ray.
func insideHit2(start, forward rl.Vector2, maxDist float32) RaycastResult2D {
	return hit2(start, forward, maxDist, 0, rl.Vector2Negate(forward))
}

func miss3(start, forward rl.Vector3, maxDist float32) RaycastResult3D {
	return RaycastResult3D{RayStart: start, RayForward: forward, RayMaxLength: maxDist}
}

func hit3(start, forward rl.Vector3, maxDist, dist float32, normal rl.Vector3) RaycastResult3D {
	return RaycastResult3D{
		DidImpact:    true,
		ImpactDist:   dist,
		ImpactPos:    rl.Vector3Add(start, rl.Vector3Scale(forward, dist)),
		ImpactNormal: normal,
		RayStart:     start,
		RayForward:   forward,
		RayMaxLength: maxDist,
	}
}

func insideHit3(start, forward rl.Vector3, maxDist float32) RaycastResult3D {
	return hit3(start, forward, maxDist, 0, rl.Vector3Negate(forward))
}

// slab intersects the ray parameter window [tMin, tMax] with the range over
// which start+forward*t lies between lo and hi on one axis. entry reports
// whether this axis moved tMin.
func slab(start, forward, lo, hi, tMin, tMax float32) (float32, float32, bool, bool) {
	if abs(forward) < ParallelRayEpsilon {
		if start < lo || start > hi {
			return tMin, tMax, false, false
		}
		return tMin, tMax, false, true
	}
	t1 := (lo - start) / forward
	t2 := (hi - start) / forward
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	entry := false
	if t1 > tMin {
		tMin = t1
		entry = true
	}
	if t2 < tMax {
		tMax = t2
	}
	return tMin, tMax, entry, tMin <= tMax
}

// sign returns -1 for negative values and 1 otherwise.
func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
