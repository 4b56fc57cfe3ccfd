package geometry

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bounds methods return the tightest world-aligned box around a finite shape.
// Planes have no bounds.

func (d Disc2) Bounds() AABB2 {
	r := rl.Vector2{X: d.Radius, Y: d.Radius}
	return AABB2{Min: rl.Vector2Subtract(d.Center, r), Max: rl.Vector2Add(d.Center, r)}
}

func (a AABB2) Bounds() AABB2 {
	return a
}

func (o OBB2) Bounds() AABB2 {
	half := rl.Vector2{
		X: o.projectedRadius(rl.Vector2{X: 1}),
		Y: o.projectedRadius(rl.Vector2{Y: 1}),
	}
	return AABB2{Min: rl.Vector2Subtract(o.Center, half), Max: rl.Vector2Add(o.Center, half)}
}

func (c Capsule2) Bounds() AABB2 {
	box := pointBounds2(c.Start, c.End)
	r := rl.Vector2{X: c.Radius, Y: c.Radius}
	return AABB2{Min: rl.Vector2Subtract(box.Min, r), Max: rl.Vector2Add(box.Max, r)}
}

func (s LineSegment2) Bounds() AABB2 {
	return pointBounds2(s.Start, s.End)
}

func (t Triangle2) Bounds() AABB2 {
	return pointBounds2(t.Points[:]...)
}

func (p ConvexPoly2) Bounds() AABB2 {
	return pointBounds2(p.Points...)
}

func pointBounds2(points ...rl.Vector2) AABB2 {
	if len(points) == 0 {
		return AABB2{}
	}
	box := AABB2{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = rl.Vector2{X: minf(box.Min.X, p.X), Y: minf(box.Min.Y, p.Y)}
		box.Max = rl.Vector2{X: maxf(box.Max.X, p.X), Y: maxf(box.Max.Y, p.Y)}
	}
	return box
}

func (s Sphere3) Bounds() AABB3 {
	r := rl.Vector3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return AABB3{Min: rl.Vector3Subtract(s.Center, r), Max: rl.Vector3Add(s.Center, r)}
}

func (a AABB3) Bounds() AABB3 {
	return a
}

func (o OBB3) Bounds() AABB3 {
	half := rl.Vector3{
		X: o.projectedRadius(rl.Vector3{X: 1}),
		Y: o.projectedRadius(rl.Vector3{Y: 1}),
		Z: o.projectedRadius(rl.Vector3{Z: 1}),
	}
	return AABB3{Min: rl.Vector3Subtract(o.Center, half), Max: rl.Vector3Add(o.Center, half)}
}

// Bounds of a cylinder pad each end cap by radius on the axes the cap's disc
// actually spans.
func (c Cylinder3) Bounds() AABB3 {
	axis, length := normalize3(rl.Vector3Subtract(c.End, c.Start))
	if length == 0 {
		return Sphere3{Center: c.Start, Radius: c.Radius}.Bounds()
	}
	pad := rl.Vector3{
		X: c.Radius * sqrt(maxf(0, 1-axis.X*axis.X)),
		Y: c.Radius * sqrt(maxf(0, 1-axis.Y*axis.Y)),
		Z: c.Radius * sqrt(maxf(0, 1-axis.Z*axis.Z)),
	}
	box := pointBounds3(c.Start, c.End)
	return AABB3{Min: rl.Vector3Subtract(box.Min, pad), Max: rl.Vector3Add(box.Max, pad)}
}

func (z ZCylinder3) Bounds() AABB3 {
	return AABB3{
		Min: rl.Vector3{X: z.Center.X - z.Radius, Y: z.Center.Y - z.Radius, Z: z.MinZ},
		Max: rl.Vector3{X: z.Center.X + z.Radius, Y: z.Center.Y + z.Radius, Z: z.MaxZ},
	}
}

func (s LineSegment3) Bounds() AABB3 {
	return pointBounds3(s.Start, s.End)
}

func (t Triangle3) Bounds() AABB3 {
	return pointBounds3(t.Points[:]...)
}

func (t Tetrahedron3) Bounds() AABB3 {
	return pointBounds3(t.Points[:]...)
}

func pointBounds3(points ...rl.Vector3) AABB3 {
	if len(points) == 0 {
		return AABB3{}
	}
	box := AABB3{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = rl.Vector3{X: minf(box.Min.X, p.X), Y: minf(box.Min.Y, p.Y), Z: minf(box.Min.Z, p.Z)}
		box.Max = rl.Vector3{X: maxf(box.Max.X, p.X), Y: maxf(box.Max.Y, p.Y), Z: maxf(box.Max.Z, p.Z)}
	}
	return box
}
