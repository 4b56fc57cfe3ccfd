package geometry

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Disc2 struct {
	Center rl.Vector2
	Radius float32
}

type AABB2 struct {
	Min rl.Vector2
	Max rl.Vector2
}

// NewAABB2FromCenter creates an AABB2 from a center point and full size dimensions.
func NewAABB2FromCenter(center, size rl.Vector2) AABB2 {
	half := rl.Vector2{X: size.X / 2, Y: size.Y / 2}
	return AABB2{
		Min: rl.Vector2Subtract(center, half),
		Max: rl.Vector2Add(center, half),
	}
}

func (a AABB2) Center() rl.Vector2 {
	return rl.Vector2{X: (a.Min.X + a.Max.X) / 2, Y: (a.Min.Y + a.Max.Y) / 2}
}

func (a AABB2) HalfSize() rl.Vector2 {
	return rl.Vector2{X: (a.Max.X - a.Min.X) / 2, Y: (a.Max.Y - a.Min.Y) / 2}
}

func (a AABB2) AsOBB2() OBB2 {
	return OBB2{Center: a.Center(), IBasis: rl.Vector2{X: 1}, HalfSize: a.HalfSize()}
}

// OBB2 is an oriented rectangle. The J axis is IBasis turned a quarter turn
// counter-clockwise, so a single unit vector fully describes the orientation.
type OBB2 struct {
	Center   rl.Vector2
	IBasis   rl.Vector2
	HalfSize rl.Vector2
}

// NewOBB2 creates an OBB2 rotated counter-clockwise by the given angle in degrees.
func NewOBB2(center, halfSize rl.Vector2, degrees float32) OBB2 {
	rad := float64(degrees) * math.Pi / 180
	return OBB2{
		Center:   center,
		IBasis:   rl.Vector2{X: float32(math.Cos(rad)), Y: float32(math.Sin(rad))},
		HalfSize: halfSize,
	}
}

func (o OBB2) JBasis() rl.Vector2 {
	return rotate90(o.IBasis)
}

// ToLocal expresses a world point in the box's (I, J) frame, origin at Center.
func (o OBB2) ToLocal(point rl.Vector2) rl.Vector2 {
	disp := rl.Vector2Subtract(point, o.Center)
	return rl.Vector2{X: rl.Vector2DotProduct(disp, o.IBasis), Y: rl.Vector2DotProduct(disp, o.JBasis())}
}

// ToWorld is the inverse of ToLocal.
func (o OBB2) ToWorld(local rl.Vector2) rl.Vector2 {
	return rl.Vector2Add(o.Center, o.dirToWorld(local))
}

func (o OBB2) dirToWorld(local rl.Vector2) rl.Vector2 {
	return rl.Vector2Add(rl.Vector2Scale(o.IBasis, local.X), rl.Vector2Scale(o.JBasis(), local.Y))
}

// CornerPoints returns the corners in counter-clockwise order, starting at -I -J.
func (o OBB2) CornerPoints() [4]rl.Vector2 {
	hx, hy := o.HalfSize.X, o.HalfSize.Y
	return [4]rl.Vector2{
		o.ToWorld(rl.Vector2{X: -hx, Y: -hy}),
		o.ToWorld(rl.Vector2{X: hx, Y: -hy}),
		o.ToWorld(rl.Vector2{X: hx, Y: hy}),
		o.ToWorld(rl.Vector2{X: -hx, Y: hy}),
	}
}

type Capsule2 struct {
	Start  rl.Vector2
	End    rl.Vector2
	Radius float32
}

// Bone returns the oriented rectangle spanning the capsule between its two end
// discs. For a zero-length capsule the rectangle has zero width.
func (c Capsule2) Bone() OBB2 {
	dir, length := normalize2(rl.Vector2Subtract(c.End, c.Start))
	if length < NormalizeEpsilon {
		dir = rl.Vector2{X: 1}
	}
	return OBB2{
		Center:   rl.Vector2Lerp(c.Start, c.End, 0.5),
		IBasis:   dir,
		HalfSize: rl.Vector2{X: length / 2, Y: c.Radius},
	}
}

type LineSegment2 struct {
	Start rl.Vector2
	End   rl.Vector2
}

// Plane2 is the line of points p with dot(p, Normal) == Distance.
type Plane2 struct {
	Normal   rl.Vector2
	Distance float32
}

// NewPlane2FromPoints builds the line through a and b whose normal points to
// the right of a->b (outward for counter-clockwise winding).
func NewPlane2FromPoints(a, b rl.Vector2) Plane2 {
	dir, _ := normalize2(rl.Vector2Subtract(b, a))
	normal := rotateMinus90(dir)
	return Plane2{Normal: normal, Distance: rl.Vector2DotProduct(normal, a)}
}

// SignedDistance is positive on the side the normal points to.
func (p Plane2) SignedDistance(point rl.Vector2) float32 {
	return rl.Vector2DotProduct(point, p.Normal) - p.Distance
}

type Triangle2 struct {
	Points [3]rl.Vector2
}

// ConvexPoly2 holds counter-clockwise wound vertices of a convex polygon.
type ConvexPoly2 struct {
	Points []rl.Vector2
}

// Hull converts the polygon into one outward half-plane per edge.
func (p ConvexPoly2) Hull() ConvexHull2 {
	planes := make([]Plane2, len(p.Points))
	for i, a := range p.Points {
		b := p.Points[(i+1)%len(p.Points)]
		planes[i] = NewPlane2FromPoints(a, b)
	}
	return ConvexHull2{Planes: planes}
}

// ConvexHull2 is a convex region expressed as the intersection of the inner
// sides of its planes. Build one with ConvexPoly2.Hull.
type ConvexHull2 struct {
	Planes []Plane2
}

// DirectedSector2 is a pie slice of a disc opening symmetrically around the
// unit vector Forward.
type DirectedSector2 struct {
	Center      rl.Vector2
	Forward     rl.Vector2
	ApertureDeg float32
	Radius      float32
}
