package scene

import (
	"errors"
	"fmt"

	"geomkit/internal/geometry"
	"geomkit/internal/log"
	"geomkit/internal/query"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var ErrUnknownType = errors.New("unknown body type")

// Build validates every body and registers it in a new query.World.
func (f *File) Build(logger *zap.Logger) (*query.World, error) {
	logger = log.OrNop(logger)
	f.AssignIDs()

	world := query.NewWorld(
		query.WithLogger(logger),
		query.WithWorkers(f.Workers),
		query.WithCellSize(f.CellSize),
	)
	for i, def := range f.Bodies2D {
		shape, err := def.Shape()
		if err != nil {
			return nil, fmt.Errorf("bodies2d[%d] %q: %w", i, def.ID, err)
		}
		if _, err := ParseColor(def.Color); err != nil {
			return nil, fmt.Errorf("bodies2d[%d] %q: %w", i, def.ID, err)
		}
		if err := world.AddBody2D(def.ID, shape); err != nil {
			return nil, fmt.Errorf("bodies2d[%d]: %w", i, err)
		}
	}
	for i, def := range f.Bodies3D {
		shape, err := def.Shape()
		if err != nil {
			return nil, fmt.Errorf("bodies3d[%d] %q: %w", i, def.ID, err)
		}
		if _, err := ParseColor(def.Color); err != nil {
			return nil, fmt.Errorf("bodies3d[%d] %q: %w", i, def.ID, err)
		}
		if err := world.AddBody3D(def.ID, shape); err != nil {
			return nil, fmt.Errorf("bodies3d[%d]: %w", i, err)
		}
	}

	digest, err := f.Digest()
	if err != nil {
		return nil, err
	}
	logger.Info("scene built",
		zap.String("digest", digest),
		zap.Int("bodies2d", len(f.Bodies2D)),
		zap.Int("bodies3d", len(f.Bodies3D)),
		zap.Int("workers", world.Workers()))
	return world, nil
}

// Shape converts the definition into its geometry shape and validates it.
func (d BodyDef2D) Shape() (query.Shape2D, error) {
	var shape query.Shape2D
	var err error
	switch d.Type {
	case "disc":
		var center rl.Vector2
		if center, err = vec2("center", d.Center); err == nil {
			shape = geometry.Disc2{Center: center, Radius: d.Radius}
		}
	case "aabb":
		var lo, hi rl.Vector2
		if lo, err = vec2("min", d.Min); err != nil {
			break
		}
		if hi, err = vec2("max", d.Max); err == nil {
			shape = geometry.AABB2{Min: lo, Max: hi}
		}
	case "obb":
		var center, half rl.Vector2
		if center, err = vec2("center", d.Center); err != nil {
			break
		}
		if half, err = vec2("halfSize", d.HalfSize); err == nil {
			shape = geometry.NewOBB2(center, half, d.Rotation)
		}
	case "capsule", "segment":
		var start, end rl.Vector2
		if start, err = vec2("start", d.Start); err != nil {
			break
		}
		if end, err = vec2("end", d.End); err != nil {
			break
		}
		if d.Type == "capsule" {
			shape = geometry.Capsule2{Start: start, End: end, Radius: d.Radius}
		} else {
			shape = geometry.LineSegment2{Start: start, End: end}
		}
	case "polygon":
		points := make([]rl.Vector2, len(d.Points))
		for i, p := range d.Points {
			if points[i], err = vec2(fmt.Sprintf("points[%d]", i), p); err != nil {
				break
			}
		}
		if err == nil {
			shape = geometry.ConvexPoly2{Points: points}
		}
	case "plane":
		var normal rl.Vector2
		if normal, err = vec2("normal", d.Normal); err == nil {
			shape = geometry.Plane2{Normal: normal, Distance: d.Distance}
		}
	default:
		return nil, fmt.Errorf("%q: %w", d.Type, ErrUnknownType)
	}
	if err != nil {
		return nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

func (d BodyDef3D) Shape() (query.Shape3D, error) {
	var shape query.Shape3D
	var err error
	switch d.Type {
	case "sphere":
		var center rl.Vector3
		if center, err = vec3("center", d.Center); err == nil {
			shape = geometry.Sphere3{Center: center, Radius: d.Radius}
		}
	case "aabb":
		var lo, hi rl.Vector3
		if lo, err = vec3("min", d.Min); err != nil {
			break
		}
		if hi, err = vec3("max", d.Max); err == nil {
			shape = geometry.AABB3{Min: lo, Max: hi}
		}
	case "obb":
		var center, size, rotation rl.Vector3
		if center, err = vec3("center", d.Center); err != nil {
			break
		}
		if size, err = vec3("size", d.Size); err != nil {
			break
		}
		if len(d.Rotation) > 0 {
			if rotation, err = vec3("rotation", d.Rotation); err != nil {
				break
			}
		}
		shape = geometry.NewOBB3(center, size, rotation)
	case "cylinder":
		var start, end rl.Vector3
		if start, err = vec3("start", d.Start); err != nil {
			break
		}
		if end, err = vec3("end", d.End); err == nil {
			shape = geometry.Cylinder3{Start: start, End: end, Radius: d.Radius}
		}
	case "zcylinder":
		var center rl.Vector2
		if center, err = vec2("center", d.Center); err == nil {
			shape = geometry.ZCylinder3{Center: center, MinZ: d.MinZ, MaxZ: d.MaxZ, Radius: d.Radius}
		}
	case "plane":
		var normal rl.Vector3
		if normal, err = vec3("normal", d.Normal); err == nil {
			shape = geometry.Plane3{Normal: normal, Distance: d.Distance}
		}
	case "triangle":
		if len(d.Points) != 3 {
			err = fmt.Errorf("points: want 3, got %d", len(d.Points))
			break
		}
		tri := query.Triangle{Sides: geometry.TriangleSingleSided}
		if d.DoubleSided {
			tri.Sides = geometry.TriangleDoubleSided
		}
		for i, p := range d.Points {
			if tri.Points[i], err = vec3(fmt.Sprintf("points[%d]", i), p); err != nil {
				break
			}
		}
		if err == nil {
			shape = tri
		}
	default:
		return nil, fmt.Errorf("%q: %w", d.Type, ErrUnknownType)
	}
	if err != nil {
		return nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// QueryRays2D converts and validates the 2D probe rays.
func (f *File) QueryRays2D() ([]query.Ray2D, error) {
	rays := make([]query.Ray2D, len(f.Rays2D))
	for i, def := range f.Rays2D {
		start, err := vec2("start", def.Start)
		if err != nil {
			return nil, fmt.Errorf("rays2d[%d]: %w", i, err)
		}
		forward, err := vec2("forward", def.Forward)
		if err != nil {
			return nil, fmt.Errorf("rays2d[%d]: %w", i, err)
		}
		if err := geometry.ValidateRay2D(forward, def.MaxDist); err != nil {
			return nil, fmt.Errorf("rays2d[%d]: %w", i, err)
		}
		rays[i] = query.Ray2D{Start: start, Forward: forward, MaxDist: def.MaxDist}
	}
	return rays, nil
}

func (f *File) QueryRays3D() ([]query.Ray3D, error) {
	rays := make([]query.Ray3D, len(f.Rays3D))
	for i, def := range f.Rays3D {
		start, err := vec3("start", def.Start)
		if err != nil {
			return nil, fmt.Errorf("rays3d[%d]: %w", i, err)
		}
		forward, err := vec3("forward", def.Forward)
		if err != nil {
			return nil, fmt.Errorf("rays3d[%d]: %w", i, err)
		}
		if err := geometry.ValidateRay3D(forward, def.MaxDist); err != nil {
			return nil, fmt.Errorf("rays3d[%d]: %w", i, err)
		}
		rays[i] = query.Ray3D{Start: start, Forward: forward, MaxDist: def.MaxDist}
	}
	return rays, nil
}

func vec2(field string, v []float32) (rl.Vector2, error) {
	if len(v) != 2 {
		return rl.Vector2{}, fmt.Errorf("%s: want 2 components, got %d", field, len(v))
	}
	return rl.Vector2{X: v[0], Y: v[1]}, nil
}

func vec3(field string, v []float32) (rl.Vector3, error) {
	if len(v) != 3 {
		return rl.Vector3{}, fmt.Errorf("%s: want 3 components, got %d", field, len(v))
	}
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
}
