package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cross computes the cross product of two vectors
func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// cross2 is the z component of the 3D cross product of two XY vectors.
func cross2(a, b rl.Vector2) float32 {
	return a.X*b.Y - a.Y*b.X
}

// rotate90 turns v a quarter turn counter-clockwise.
func rotate90(v rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: -v.Y, Y: v.X}
}

// rotateMinus90 turns v a quarter turn clockwise.
func rotateMinus90(v rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: v.Y, Y: -v.X}
}

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// normalize2 returns the unit vector of v and its original length. A vector
// shorter than NormalizeEpsilon comes back as zero.
func normalize2(v rl.Vector2) (rl.Vector2, float32) {
	length := rl.Vector2Length(v)
	if length < NormalizeEpsilon {
		return rl.Vector2{}, length
	}
	return rl.Vector2Scale(v, 1/length), length
}

func normalize3(v rl.Vector3) (rl.Vector3, float32) {
	length := rl.Vector3Length(v)
	if length < NormalizeEpsilon {
		return rl.Vector3{}, length
	}
	return rl.Vector3Scale(v, 1/length), length
}

func lengthSq2(v rl.Vector2) float32 {
	return v.X*v.X + v.Y*v.Y
}

func lengthSq3(v rl.Vector3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func xy(v rl.Vector3) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Y}
}

func lift(v rl.Vector2) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y}
}

// rangesOverlap reports whether the open intervals (minA, maxA) and
// (minB, maxB) share any point. Touching ranges do not overlap.
func rangesOverlap(minA, maxA, minB, maxB float32) bool {
	return minA < maxB && minB < maxA
}

func isUnit2(v rl.Vector2) bool {
	return abs(rl.Vector2Length(v)-1) <= UnitLengthTolerance
}

func isUnit3(v rl.Vector3) bool {
	return abs(rl.Vector3Length(v)-1) <= UnitLengthTolerance
}
