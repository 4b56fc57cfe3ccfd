package main

import (
	"geomkit/internal/geometry"
	"geomkit/internal/query"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const lineThick = 2

func drawShape(v view, shape query.Shape2D, col rl.Color) {
	switch s := shape.(type) {
	case geometry.Disc2:
		drawCircle(v, s.Center, s.Radius, col)
	case geometry.AABB2:
		drawLoop(v, []rl.Vector2{
			s.Min,
			{X: s.Max.X, Y: s.Min.Y},
			s.Max,
			{X: s.Min.X, Y: s.Max.Y},
		}, col)
	case geometry.OBB2:
		corners := s.CornerPoints()
		drawLoop(v, corners[:], col)
	case geometry.Capsule2:
		drawCircle(v, s.Start, s.Radius, col)
		drawCircle(v, s.End, s.Radius, col)
		corners := s.Bone().CornerPoints()
		drawLoop(v, corners[:], col)
	case geometry.LineSegment2:
		rl.DrawLineEx(v.toScreen(s.Start), v.toScreen(s.End), lineThick, col)
	case geometry.ConvexPoly2:
		drawLoop(v, s.Points, col)
	case geometry.Plane2:
		// Long enough to leave any reasonable window.
		const reach = 1e4
		base := rl.Vector2Scale(s.Normal, s.Distance)
		along := rl.Vector2{X: -s.Normal.Y, Y: s.Normal.X}
		a := rl.Vector2Add(base, rl.Vector2Scale(along, reach))
		b := rl.Vector2Subtract(base, rl.Vector2Scale(along, reach))
		rl.DrawLineEx(v.toScreen(a), v.toScreen(b), lineThick, col)
		drawArrow(v, base, rl.Vector2Add(base, s.Normal), rl.Fade(col, 0.6))
	}
}

func drawCircle(v view, center rl.Vector2, radius float32, col rl.Color) {
	c := v.toScreen(center)
	rl.DrawCircleLines(int32(c.X), int32(c.Y), v.length(radius), col)
}

func drawLoop(v view, points []rl.Vector2, col rl.Color) {
	for i := range points {
		next := points[(i+1)%len(points)]
		rl.DrawLineEx(v.toScreen(points[i]), v.toScreen(next), lineThick, col)
	}
}

func drawArrow(v view, from, to rl.Vector2, col rl.Color) {
	rl.DrawLineEx(v.toScreen(from), v.toScreen(to), lineThick, col)
	tip := v.toScreen(to)
	rl.DrawCircle(int32(tip.X), int32(tip.Y), 3, col)
}

func drawBounds(v view, box geometry.AABB2, col rl.Color) {
	drawLoop(v, []rl.Vector2{
		box.Min,
		{X: box.Max.X, Y: box.Min.Y},
		box.Max,
		{X: box.Min.X, Y: box.Max.Y},
	}, col)
}

// drawRay draws the probe and, on impact, the hit point with its normal.
func drawRay(v view, ray query.Ray2D, hit query.Hit2D) {
	end := rl.Vector2Add(ray.Start, rl.Vector2Scale(ray.Forward, ray.MaxDist))
	if !hit.DidImpact {
		rl.DrawLineEx(v.toScreen(ray.Start), v.toScreen(end), 1, rl.LightGray)
		return
	}
	rl.DrawLineEx(v.toScreen(ray.Start), v.toScreen(hit.ImpactPos), 1, rl.Yellow)
	rl.DrawLineEx(v.toScreen(hit.ImpactPos), v.toScreen(end), 1, rl.Fade(rl.LightGray, 0.3))
	drawArrow(v, hit.ImpactPos, rl.Vector2Add(hit.ImpactPos, hit.ImpactNormal), rl.Orange)
}
