package query

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"geomkit/internal/geometry"
	"geomkit/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateID      = errors.New("body id already registered")
	ErrEmptyID          = errors.New("body id is empty")
	ErrUnsupportedShape = errors.New("shape type is not supported")
)

type Ray2D struct {
	Start   rl.Vector2
	Forward rl.Vector2
	MaxDist float32
}

type Ray3D struct {
	Start   rl.Vector3
	Forward rl.Vector3
	MaxDist float32
}

func (r Ray2D) miss() geometry.RaycastResult2D {
	return geometry.RaycastResult2D{RayStart: r.Start, RayForward: r.Forward, RayMaxLength: r.MaxDist}
}

func (r Ray3D) miss() geometry.RaycastResult3D {
	return geometry.RaycastResult3D{RayStart: r.Start, RayForward: r.Forward, RayMaxLength: r.MaxDist}
}

// Hit2D is the closest impact of a ray against the world. BodyID is empty
// when nothing was hit.
type Hit2D struct {
	BodyID string
	geometry.RaycastResult2D
}

type Hit3D struct {
	BodyID string
	geometry.RaycastResult3D
}

// Pair names two overlapping bodies with A < B.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// World holds identified bodies and answers spatial queries against them. It
// is safe for concurrent use.
type World struct {
	mu       sync.RWMutex
	bodies2D []Body2D
	bodies3D []Body3D
	ids      map[string]struct{}

	logger   *zap.Logger
	workers  int
	cellSize float32
}

type Option func(*World)

func WithLogger(logger *zap.Logger) Option {
	return func(w *World) { w.logger = log.OrNop(logger) }
}

// WithWorkers bounds how many rays a batch casts at once. Values below one
// fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.workers = n
		}
	}
}

func WithCellSize(size float32) Option {
	return func(w *World) {
		if size > 0 {
			w.cellSize = size
		}
	}
}

func NewWorld(opts ...Option) *World {
	w := &World{
		ids:      make(map[string]struct{}),
		logger:   zap.NewNop(),
		workers:  runtime.GOMAXPROCS(0),
		cellSize: DefaultCellSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) Workers() int {
	return w.workers
}

func (w *World) AddBody2D(id string, shape Shape2D) error {
	if err := checkShape2D(shape); err != nil {
		return fmt.Errorf("body %q: %w", id, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.claimID(id); err != nil {
		return err
	}
	w.bodies2D = append(w.bodies2D, Body2D{ID: id, Shape: shape})
	w.logger.Debug("body added", zap.String("id", id), zap.String("shape", fmt.Sprintf("%T", shape)))
	return nil
}

func (w *World) AddBody3D(id string, shape Shape3D) error {
	if err := checkShape3D(shape); err != nil {
		return fmt.Errorf("body %q: %w", id, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.claimID(id); err != nil {
		return err
	}
	w.bodies3D = append(w.bodies3D, Body3D{ID: id, Shape: shape})
	w.logger.Debug("body added", zap.String("id", id), zap.String("shape", fmt.Sprintf("%T", shape)))
	return nil
}

func (w *World) claimID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := w.ids[id]; ok {
		return fmt.Errorf("body %q: %w", id, ErrDuplicateID)
	}
	w.ids[id] = struct{}{}
	return nil
}

// RemoveBody deletes the 2D or 3D body with the given id and reports whether
// it existed.
func (w *World) RemoveBody(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.ids[id]; !ok {
		return false
	}
	delete(w.ids, id)
	for i, b := range w.bodies2D {
		if b.ID == id {
			w.bodies2D = append(w.bodies2D[:i], w.bodies2D[i+1:]...)
			return true
		}
	}
	for i, b := range w.bodies3D {
		if b.ID == id {
			w.bodies3D = append(w.bodies3D[:i], w.bodies3D[i+1:]...)
			return true
		}
	}
	return true
}

// Bodies2D returns a copy of the 2D bodies in insertion order.
func (w *World) Bodies2D() []Body2D {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Body2D(nil), w.bodies2D...)
}

func (w *World) Bodies3D() []Body3D {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Body3D(nil), w.bodies3D...)
}

// Raycast2D returns the closest hit among all 2D bodies. Ties go to the body
// added first.
func (w *World) Raycast2D(ray Ray2D) (Hit2D, error) {
	if err := geometry.ValidateRay2D(ray.Forward, ray.MaxDist); err != nil {
		return Hit2D{}, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.raycast2D(ray), nil
}

func (w *World) raycast2D(ray Ray2D) Hit2D {
	closest := Hit2D{RaycastResult2D: ray.miss()}
	for _, body := range w.bodies2D {
		result := raycastShape2D(body.Shape, ray)
		if !result.DidImpact {
			continue
		}
		if !closest.DidImpact || result.ImpactDist < closest.ImpactDist {
			closest = Hit2D{BodyID: body.ID, RaycastResult2D: result}
		}
	}
	return closest
}

func (w *World) Raycast3D(ray Ray3D) (Hit3D, error) {
	if err := geometry.ValidateRay3D(ray.Forward, ray.MaxDist); err != nil {
		return Hit3D{}, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.raycast3D(ray), nil
}

func (w *World) raycast3D(ray Ray3D) Hit3D {
	closest := Hit3D{RaycastResult3D: ray.miss()}
	for _, body := range w.bodies3D {
		result := raycastShape3D(body.Shape, ray)
		if !result.DidImpact {
			continue
		}
		if !closest.DidImpact || result.ImpactDist < closest.ImpactDist {
			closest = Hit3D{BodyID: body.ID, RaycastResult3D: result}
		}
	}
	return closest
}

// RaycastBatch2D casts every ray concurrently, at most Workers at a time, and
// returns the hits in ray order. All rays are validated before any is cast.
func (w *World) RaycastBatch2D(ctx context.Context, rays []Ray2D) ([]Hit2D, error) {
	for i, ray := range rays {
		if err := geometry.ValidateRay2D(ray.Forward, ray.MaxDist); err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	started := time.Now()
	hits := make([]Hit2D, len(rays))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)
	for i, ray := range rays {
		i, ray := i, ray
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hits[i] = w.raycast2D(ray)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	w.logger.Info("raycast batch",
		zap.Int("rays", len(rays)),
		zap.Int("hits", countHits2D(hits)),
		zap.Int("bodies", len(w.bodies2D)),
		zap.Duration("elapsed", time.Since(started)))
	return hits, nil
}

func (w *World) RaycastBatch3D(ctx context.Context, rays []Ray3D) ([]Hit3D, error) {
	for i, ray := range rays {
		if err := geometry.ValidateRay3D(ray.Forward, ray.MaxDist); err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	started := time.Now()
	hits := make([]Hit3D, len(rays))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)
	for i, ray := range rays {
		i, ray := i, ray
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hits[i] = w.raycast3D(ray)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	w.logger.Info("raycast batch",
		zap.Int("rays", len(rays)),
		zap.Int("hits", countHits3D(hits)),
		zap.Int("bodies", len(w.bodies3D)),
		zap.Duration("elapsed", time.Since(started)))
	return hits, nil
}

func countHits2D(hits []Hit2D) int {
	n := 0
	for _, h := range hits {
		if h.DidImpact {
			n++
		}
	}
	return n
}

func countHits3D(hits []Hit3D) int {
	n := 0
	for _, h := range hits {
		if h.DidImpact {
			n++
		}
	}
	return n
}

// BodiesContaining2D lists, in insertion order, the solid bodies whose
// interior holds point.
func (w *World) BodiesContaining2D(point rl.Vector2) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var ids []string
	for _, body := range w.bodies2D {
		if contains2D(body.Shape, point) {
			ids = append(ids, body.ID)
		}
	}
	return ids
}

func (w *World) BodiesContaining3D(point rl.Vector3) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var ids []string
	for _, body := range w.bodies3D {
		if contains3D(body.Shape, point) {
			ids = append(ids, body.ID)
		}
	}
	return ids
}

// OverlapPairs2D finds every pair of 2D bodies that overlap. Pairings with no
// overlap test, such as two polygons, are skipped.
func (w *World) OverlapPairs2D() []Pair {
	w.mu.RLock()
	defer w.mu.RUnlock()

	extents := make([]extent, len(w.bodies2D))
	for i, body := range w.bodies2D {
		if box, ok := bounds2D(body.Shape); ok {
			extents[i] = extent{min: lift(box.Min), max: lift(box.Max), finite: true}
		}
	}

	var pairs []Pair
	candidates := candidatePairs(extents, w.cellSize)
	for _, c := range candidates {
		a, b := w.bodies2D[c.a], w.bodies2D[c.b]
		if hit, ok := overlap2D(a.Shape, b.Shape); ok && hit {
			pairs = append(pairs, makePair(a.ID, b.ID))
		}
	}
	sortPairs(pairs)
	w.logger.Debug("overlap pairs", zap.Int("candidates", len(candidates)), zap.Int("pairs", len(pairs)))
	return pairs
}

func (w *World) OverlapPairs3D() []Pair {
	w.mu.RLock()
	defer w.mu.RUnlock()

	extents := make([]extent, len(w.bodies3D))
	for i, body := range w.bodies3D {
		if box, ok := bounds3D(body.Shape); ok {
			extents[i] = extent{min: box.Min, max: box.Max, finite: true}
		}
	}

	var pairs []Pair
	candidates := candidatePairs(extents, w.cellSize)
	for _, c := range candidates {
		a, b := w.bodies3D[c.a], w.bodies3D[c.b]
		if hit, ok := overlap3D(a.Shape, b.Shape); ok && hit {
			pairs = append(pairs, makePair(a.ID, b.ID))
		}
	}
	sortPairs(pairs)
	w.logger.Debug("overlap pairs", zap.Int("candidates", len(candidates)), zap.Int("pairs", len(pairs)))
	return pairs
}

// makePair creates a consistent pair (smaller id first)
func makePair(a, b string) Pair {
	if a > b {
		return Pair{A: b, B: a}
	}
	return Pair{A: a, B: b}
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
}

func lift(v rl.Vector2) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y}
}
