package main

import (
	"context"
	"fmt"
	"io"

	"geomkit/internal/query"
	"geomkit/internal/scene"
)

type report struct {
	Digest     string       `json:"digest"`
	Rays2D     []rayResult  `json:"rays2d"`
	Rays3D     []rayResult  `json:"rays3d"`
	Overlaps2D []query.Pair `json:"overlaps2d"`
	Overlaps3D []query.Pair `json:"overlaps3d"`
}

type rayResult struct {
	Name     string    `json:"name"`
	Hit      bool      `json:"hit"`
	BodyID   string    `json:"body,omitempty"`
	Distance float32   `json:"distance,omitempty"`
	Position []float32 `json:"position,omitempty"`
	Normal   []float32 `json:"normal,omitempty"`
}

func buildReport(ctx context.Context, file *scene.File, world *query.World) (report, error) {
	rays2D, err := file.QueryRays2D()
	if err != nil {
		return report{}, err
	}
	rays3D, err := file.QueryRays3D()
	if err != nil {
		return report{}, err
	}
	hits2D, err := world.RaycastBatch2D(ctx, rays2D)
	if err != nil {
		return report{}, err
	}
	hits3D, err := world.RaycastBatch3D(ctx, rays3D)
	if err != nil {
		return report{}, err
	}

	digest, err := file.Digest()
	if err != nil {
		return report{}, err
	}
	rep := report{
		Digest:     digest,
		Rays2D:     make([]rayResult, len(hits2D)),
		Rays3D:     make([]rayResult, len(hits3D)),
		Overlaps2D: world.OverlapPairs2D(),
		Overlaps3D: world.OverlapPairs3D(),
	}
	for i, hit := range hits2D {
		r := rayResult{Name: rayName(file.Rays2D[i].Name, i), Hit: hit.DidImpact}
		if hit.DidImpact {
			r.BodyID = hit.BodyID
			r.Distance = hit.ImpactDist
			r.Position = []float32{hit.ImpactPos.X, hit.ImpactPos.Y}
			r.Normal = []float32{hit.ImpactNormal.X, hit.ImpactNormal.Y}
		}
		rep.Rays2D[i] = r
	}
	for i, hit := range hits3D {
		r := rayResult{Name: rayName(file.Rays3D[i].Name, i), Hit: hit.DidImpact}
		if hit.DidImpact {
			r.BodyID = hit.BodyID
			r.Distance = hit.ImpactDist
			r.Position = []float32{hit.ImpactPos.X, hit.ImpactPos.Y, hit.ImpactPos.Z}
			r.Normal = []float32{hit.ImpactNormal.X, hit.ImpactNormal.Y, hit.ImpactNormal.Z}
		}
		rep.Rays3D[i] = r
	}
	return rep, nil
}

func rayName(name string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", i)
}

func (r report) writeText(w io.Writer) {
	fmt.Fprintf(w, "scene %s\n", r.Digest)
	writeRays(w, "2D", r.Rays2D)
	writeRays(w, "3D", r.Rays3D)
	writePairs(w, "2D", r.Overlaps2D)
	writePairs(w, "3D", r.Overlaps3D)
}

func writeRays(w io.Writer, dim string, rays []rayResult) {
	if len(rays) == 0 {
		return
	}
	fmt.Fprintf(w, "%s rays:\n", dim)
	for _, r := range rays {
		if !r.Hit {
			fmt.Fprintf(w, "  %-12s miss\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "  %-12s %s at %.3f pos %v normal %v\n", r.Name, r.BodyID, r.Distance, r.Position, r.Normal)
	}
}

func writePairs(w io.Writer, dim string, pairs []query.Pair) {
	if len(pairs) == 0 {
		return
	}
	fmt.Fprintf(w, "%s overlaps:\n", dim)
	for _, p := range pairs {
		fmt.Fprintf(w, "  %s <-> %s\n", p.A, p.B)
	}
}
