package geometry

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestDiscOverlaps2D(t *testing.T) {
	disc := Disc2{Center: v2(0, 0), Radius: 1}

	assert.True(t, DoDiscsOverlap2D(disc, Disc2{Center: v2(1.5, 0), Radius: 1}))
	assert.False(t, DoDiscsOverlap2D(disc, Disc2{Center: v2(2, 0), Radius: 1}), "touching")
	assert.False(t, DoDiscsOverlap2D(disc, Disc2{Center: v2(3, 0), Radius: 1}))

	box := AABB2{Min: v2(0.5, -1), Max: v2(3, 1)}
	assert.True(t, DoDiscAndAABBOverlap2D(disc, box))
	assert.False(t, DoDiscAndAABBOverlap2D(Disc2{Center: v2(-1, 0), Radius: 1}, box))
	assert.False(t, DoDiscAndAABBOverlap2D(Disc2{Center: v2(-0.5, 0), Radius: 1}, box), "touching")
	// Off the corner at (0.5, 1): within one radius on each axis, 1.13 away diagonally.
	assert.False(t, DoDiscAndAABBOverlap2D(Disc2{Center: v2(-0.3, 1.8), Radius: 1}, box))
	assert.True(t, DoDiscAndAABBOverlap2D(Disc2{Center: v2(0, 1.5), Radius: 1}, box))

	obb := NewOBB2(v2(3, 0), v2(1, 1), 45)
	assert.True(t, DoDiscAndOBBOverlap2D(Disc2{Center: v2(0.8, 0), Radius: 1}, obb))
	assert.False(t, DoDiscAndOBBOverlap2D(Disc2{Center: v2(0.4, 0), Radius: 1}, obb))

	capsule := Capsule2{Start: v2(0, 3), End: v2(4, 3), Radius: 1}
	assert.True(t, DoDiscAndCapsuleOverlap2D(Disc2{Center: v2(2, 1.5), Radius: 1}, capsule))
	assert.False(t, DoDiscAndCapsuleOverlap2D(Disc2{Center: v2(2, 0.5), Radius: 1}, capsule))
	assert.True(t, DoDiscAndCapsuleOverlap2D(Disc2{Center: v2(5.5, 3), Radius: 1}, capsule))
}

func TestDoAABBsOverlap2D(t *testing.T) {
	a := AABB2{Min: v2(0, 0), Max: v2(2, 2)}

	tests := []struct {
		name string
		b    AABB2
		want bool
	}{
		{"overlapping", AABB2{Min: v2(1, 1), Max: v2(3, 3)}, true},
		{"contained", AABB2{Min: v2(0.5, 0.5), Max: v2(1, 1)}, true},
		{"sharing an edge", AABB2{Min: v2(2, 0), Max: v2(4, 2)}, false},
		{"apart on y", AABB2{Min: v2(0, 3), Max: v2(2, 4)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DoAABBsOverlap2D(a, tt.b))
			assert.Equal(t, tt.want, DoAABBsOverlap2D(tt.b, a))
		})
	}
}

func TestDoOBBsOverlap2D(t *testing.T) {
	tests := []struct {
		name string
		a, b OBB2
		want bool
	}{
		{
			name: "same center rotated 45",
			a:    NewOBB2(v2(0, 0), v2(1, 1), 0),
			b:    NewOBB2(v2(0, 0), v2(1, 1), 45),
			want: true,
		},
		{
			name: "diamond tip reaches the face",
			a:    NewOBB2(v2(0, 0), v2(1, 1), 0),
			b:    NewOBB2(v2(2.3, 0), v2(1, 1), 45),
			want: true,
		},
		{
			name: "diamond tip short of the face",
			a:    NewOBB2(v2(0, 0), v2(1, 1), 0),
			b:    NewOBB2(v2(2.5, 0), v2(1, 1), 45),
			want: false,
		},
		{
			name: "separated only by the rotated axis",
			a:    NewOBB2(v2(0, 0), v2(2, 0.25), 45),
			b:    NewOBB2(v2(1, -1), v2(0.5, 0.5), 45),
			want: false,
		},
		{
			name: "touching faces",
			a:    NewOBB2(v2(0, 0), v2(1, 1), 0),
			b:    NewOBB2(v2(2, 0), v2(1, 1), 0),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DoOBBsOverlap2D(tt.a, tt.b))
			assert.Equal(t, tt.want, DoOBBsOverlap2D(tt.b, tt.a), "symmetric")
		})
	}
}

func TestDoOBBsOverlap3D(t *testing.T) {
	a := NewOBB3(v3(0, 0, 0), v3(2, 2, 2), v3(0, 0, 0))

	tests := []struct {
		name string
		b    OBB3
		want bool
	}{
		{"rotated corner reaches", NewOBB3(v3(2.2, 0, 0), v3(2, 2, 2), v3(0, 0, 45)), true},
		{"rotated corner short", NewOBB3(v3(2.5, 0, 0), v3(2, 2, 2), v3(0, 0, 45)), false},
		{"aligned and parallel", NewOBB3(v3(0, 1.5, 0), v3(2, 2, 2), v3(0, 0, 0)), true},
		{"touching faces", NewOBB3(v3(0, 0, 2), v3(2, 2, 2), v3(0, 0, 0)), false},
		{"tilted on two axes", NewOBB3(v3(1.2, 1.2, 0), v3(2, 2, 2), v3(30, 0, 45)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DoOBBsOverlap3D(a, tt.b))
			assert.Equal(t, tt.want, DoOBBsOverlap3D(tt.b, a), "symmetric")
		})
	}
}

func TestOverlaps3D(t *testing.T) {
	sphere := Sphere3{Center: v3(0, 0, 0), Radius: 1}
	assert.True(t, DoSpheresOverlap3D(sphere, Sphere3{Center: v3(1, 1, 0), Radius: 1}))
	assert.False(t, DoSpheresOverlap3D(sphere, Sphere3{Center: v3(0, 0, 2), Radius: 1}))

	box := AABB3{Min: v3(0, 0, 0), Max: v3(2, 2, 2)}
	assert.True(t, DoAABBsOverlap3D(box, AABB3{Min: v3(1, 1, 1), Max: v3(3, 3, 3)}))
	assert.False(t, DoAABBsOverlap3D(box, AABB3{Min: v3(1, 1, 2), Max: v3(3, 3, 3)}))
	assert.True(t, DoAABBAndSphereOverlap3D(box, Sphere3{Center: v3(2.5, 1, 1), Radius: 1}))
	assert.False(t, DoAABBAndSphereOverlap3D(box, Sphere3{Center: v3(2.8, 2.8, 2.8), Radius: 1}))

	obb := NewOBB3(v3(0, 0, 0), v3(2, 2, 2), v3(0, 0, 45))
	assert.True(t, DoOBBAndSphereOverlap3D(obb, Sphere3{Center: v3(2.2, 0, 0), Radius: 1}))
	assert.False(t, DoOBBAndSphereOverlap3D(obb, Sphere3{Center: v3(1.6, 1.6, 0), Radius: 1}))
	assert.True(t, DoOBBAndAABBOverlap3D(obb, AABB3{Min: v3(1.2, -0.5, -0.5), Max: v3(3, 0.5, 0.5)}))
	assert.False(t, DoOBBAndAABBOverlap3D(obb, AABB3{Min: v3(1.5, -0.5, -0.5), Max: v3(3, 0.5, 0.5)}))
}

func TestDoOBBAndTriangleOverlap3D(t *testing.T) {
	box := NewOBB3(v3(0, 0, 0), v3(2, 2, 2), v3(0, 0, 0))
	flat := func(z float32) Triangle3 {
		return Triangle3{Points: [3]rl.Vector3{v3(-3, -3, z), v3(3, -3, z), v3(0, 3, z)}}
	}

	assert.True(t, DoOBBAndTriangleOverlap3D(box, flat(0.5)))
	assert.False(t, DoOBBAndTriangleOverlap3D(box, flat(1.5)))

	// Only touches the box corner at (1,1,1).
	slanted := Triangle3{Points: [3]rl.Vector3{v3(3, 0, 0), v3(0, 3, 0), v3(0, 0, 3)}}
	assert.False(t, DoOBBAndTriangleOverlap3D(box, slanted))
	near := Triangle3{Points: [3]rl.Vector3{v3(2, 0, 0), v3(0, 2, 0), v3(0, 0, 2)}}
	assert.True(t, DoOBBAndTriangleOverlap3D(box, near))

	wedge := Triangle3{Points: [3]rl.Vector3{v3(1.2, -0.1, 0), v3(3, -1, 0), v3(3, 1, 0)}}
	rotated := NewOBB3(v3(0, 0, 0), v3(2, 2, 2), v3(0, 0, 45))
	assert.True(t, DoOBBAndTriangleOverlap3D(rotated, wedge))
	assert.False(t, DoOBBAndTriangleOverlap3D(box, wedge))
}

func TestPlaneOverlaps3D(t *testing.T) {
	ground := Plane3{Normal: v3(0, 0, 1), Distance: 1}

	assert.True(t, DoPlaneAndAABBOverlap3D(ground, AABB3{Min: v3(0, 0, 0), Max: v3(2, 2, 2)}))
	assert.False(t, DoPlaneAndAABBOverlap3D(ground, AABB3{Min: v3(0, 0, 1), Max: v3(2, 2, 2)}))
	assert.True(t, DoPlaneAndSphereOverlap3D(ground, Sphere3{Center: v3(5, 5, 1.5), Radius: 1}))
	assert.False(t, DoPlaneAndSphereOverlap3D(ground, Sphere3{Center: v3(5, 5, -0.5), Radius: 1}))

	tilted := NewOBB3(v3(0, 0, 2), v3(2, 2, 2), v3(45, 0, 0))
	assert.True(t, DoPlaneAndOBBOverlap3D(ground, tilted))
	assert.False(t, DoPlaneAndOBBOverlap3D(ground, NewOBB3(v3(0, 0, 2.5), v3(2, 2, 2), v3(45, 0, 0))))
}

func TestZCylinderOverlaps3D(t *testing.T) {
	cyl := ZCylinder3{Center: v2(0, 0), MinZ: 0, MaxZ: 2, Radius: 1}

	assert.True(t, DoZCylindersOverlap3D(cyl, ZCylinder3{Center: v2(1.5, 0), MinZ: 1, MaxZ: 3, Radius: 1}))
	assert.False(t, DoZCylindersOverlap3D(cyl, ZCylinder3{Center: v2(1.5, 0), MinZ: 2, MaxZ: 3, Radius: 1}))
	assert.False(t, DoZCylindersOverlap3D(cyl, ZCylinder3{Center: v2(2.5, 0), MinZ: 0, MaxZ: 2, Radius: 1}))

	assert.True(t, DoZCylinderAndAABBOverlap3D(cyl, AABB3{Min: v3(0.5, -0.5, 1), Max: v3(2, 0.5, 4)}))
	assert.False(t, DoZCylinderAndAABBOverlap3D(cyl, AABB3{Min: v3(0.8, 0.8, 0), Max: v3(2, 2, 2)}))

	assert.True(t, DoZCylinderAndSphereOverlap3D(cyl, Sphere3{Center: v3(0, 0, 2.5), Radius: 1}))
	assert.False(t, DoZCylinderAndSphereOverlap3D(cyl, Sphere3{Center: v3(1.8, 0, 2.8), Radius: 1}))
}
