package geometry

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contract violations reported by Validate and the ray checks. The query
// functions themselves never validate; callers that accept outside input
// check once at their boundary.
var (
	ErrNegativeRadius    = errors.New("radius is negative")
	ErrInvertedBounds    = errors.New("min exceeds max")
	ErrNegativeHalfSize  = errors.New("half size is negative")
	ErrNonUnitVector     = errors.New("vector is not unit length")
	ErrNonOrthogonalAxes = errors.New("axes are not mutually orthogonal")
	ErrDegenerate        = errors.New("shape is degenerate")
	ErrTooFewPoints      = errors.New("polygon needs at least 3 points")
	ErrNotConvex         = errors.New("polygon is not convex with counter-clockwise winding")
	ErrNegativeDistance  = errors.New("max distance is negative")
)

// ValidateRay2D checks the forward normal and max distance a raycast expects.
func ValidateRay2D(forward rl.Vector2, maxDist float32) error {
	if !isUnit2(forward) {
		return fmt.Errorf("ray forward %v: %w", forward, ErrNonUnitVector)
	}
	if maxDist < 0 {
		return fmt.Errorf("ray max distance %v: %w", maxDist, ErrNegativeDistance)
	}
	return nil
}

func ValidateRay3D(forward rl.Vector3, maxDist float32) error {
	if !isUnit3(forward) {
		return fmt.Errorf("ray forward %v: %w", forward, ErrNonUnitVector)
	}
	if maxDist < 0 {
		return fmt.Errorf("ray max distance %v: %w", maxDist, ErrNegativeDistance)
	}
	return nil
}

func (d Disc2) Validate() error {
	if d.Radius < 0 {
		return fmt.Errorf("disc: %w", ErrNegativeRadius)
	}
	return nil
}

func (a AABB2) Validate() error {
	if a.Min.X > a.Max.X || a.Min.Y > a.Max.Y {
		return fmt.Errorf("aabb2 %v..%v: %w", a.Min, a.Max, ErrInvertedBounds)
	}
	return nil
}

func (o OBB2) Validate() error {
	if !isUnit2(o.IBasis) {
		return fmt.Errorf("obb2 basis: %w", ErrNonUnitVector)
	}
	if o.HalfSize.X < 0 || o.HalfSize.Y < 0 {
		return fmt.Errorf("obb2: %w", ErrNegativeHalfSize)
	}
	return nil
}

func (c Capsule2) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("capsule: %w", ErrNegativeRadius)
	}
	return nil
}

func (s LineSegment2) Validate() error {
	if rl.Vector2Distance(s.Start, s.End) < NormalizeEpsilon {
		return fmt.Errorf("segment2: %w", ErrDegenerate)
	}
	return nil
}

func (p Plane2) Validate() error {
	if !isUnit2(p.Normal) {
		return fmt.Errorf("plane2 normal: %w", ErrNonUnitVector)
	}
	return nil
}

func (t Triangle2) Validate() error {
	ab := rl.Vector2Subtract(t.Points[1], t.Points[0])
	ac := rl.Vector2Subtract(t.Points[2], t.Points[0])
	if abs(cross2(ab, ac)) < NormalizeEpsilon {
		return fmt.Errorf("triangle2: %w", ErrDegenerate)
	}
	return nil
}

func (p ConvexPoly2) Validate() error {
	n := len(p.Points)
	if n < 3 {
		return fmt.Errorf("convex poly with %d points: %w", n, ErrTooFewPoints)
	}
	// Every vertex must sit on or left of every edge. Checking consecutive
	// turns alone lets self-intersecting stars through.
	for i := 0; i < n; i++ {
		a := p.Points[i]
		edge := rl.Vector2Subtract(p.Points[(i+1)%n], a)
		for j, q := range p.Points {
			if cross2(edge, rl.Vector2Subtract(q, a)) < 0 {
				return fmt.Errorf("convex poly vertex %d right of edge %d: %w", j, i, ErrNotConvex)
			}
		}
	}
	return nil
}

func (s Sphere3) Validate() error {
	if s.Radius < 0 {
		return fmt.Errorf("sphere: %w", ErrNegativeRadius)
	}
	return nil
}

func (a AABB3) Validate() error {
	if a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z {
		return fmt.Errorf("aabb3 %v..%v: %w", a.Min, a.Max, ErrInvertedBounds)
	}
	return nil
}

func (o OBB3) Validate() error {
	for i, axis := range o.Axes {
		if !isUnit3(axis) {
			return fmt.Errorf("obb3 axis %d: %w", i, ErrNonUnitVector)
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if abs(rl.Vector3DotProduct(o.Axes[i], o.Axes[j])) > UnitLengthTolerance {
				return fmt.Errorf("obb3 axes %d and %d: %w", i, j, ErrNonOrthogonalAxes)
			}
		}
	}
	if o.HalfSize.X < 0 || o.HalfSize.Y < 0 || o.HalfSize.Z < 0 {
		return fmt.Errorf("obb3: %w", ErrNegativeHalfSize)
	}
	return nil
}

func (s LineSegment3) Validate() error {
	if rl.Vector3Distance(s.Start, s.End) < NormalizeEpsilon {
		return fmt.Errorf("segment3: %w", ErrDegenerate)
	}
	return nil
}

func (p Plane3) Validate() error {
	if !isUnit3(p.Normal) {
		return fmt.Errorf("plane3 normal: %w", ErrNonUnitVector)
	}
	return nil
}

func (t Triangle3) Validate() error {
	if lengthSq3(t.Normal()) == 0 {
		return fmt.Errorf("triangle3: %w", ErrDegenerate)
	}
	return nil
}

func (c Cylinder3) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("cylinder: %w", ErrNegativeRadius)
	}
	if rl.Vector3Length(rl.Vector3Subtract(c.End, c.Start)) < NormalizeEpsilon {
		return fmt.Errorf("cylinder axis: %w", ErrDegenerate)
	}
	return nil
}

func (z ZCylinder3) Validate() error {
	if z.Radius < 0 {
		return fmt.Errorf("z cylinder: %w", ErrNegativeRadius)
	}
	if z.MinZ > z.MaxZ {
		return fmt.Errorf("z cylinder %v..%v: %w", z.MinZ, z.MaxZ, ErrInvertedBounds)
	}
	return nil
}

func (t Tetrahedron3) Validate() error {
	if abs(signedVolume(t.Points)) < NormalizeEpsilon {
		return fmt.Errorf("tetrahedron: %w", ErrDegenerate)
	}
	return nil
}
