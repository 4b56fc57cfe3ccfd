package geometry

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-4

func assertVec2Near(t *testing.T, expected, actual rl.Vector2, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
}

func assertVec3Near(t *testing.T, expected, actual rl.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, tolerance, msgAndArgs...)
}

func v2(x, y float32) rl.Vector2 {
	return rl.Vector2{X: x, Y: y}
}

func v3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}
