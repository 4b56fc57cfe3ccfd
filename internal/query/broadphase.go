package query

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultCellSize is the edge length of a spatial hash cell.
const DefaultCellSize = 5.0

// maxCellsPerBody caps how many cells one body is hashed into. Larger bodies
// are paired against everything instead.
const maxCellsPerBody = 4096

// CellKey identifies one cell of the spatial hash. 2D bodies use Z == 0.
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3, cellSize float32) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / cellSize))),
		Y: int(math.Floor(float64(pos.Y / cellSize))),
		Z: int(math.Floor(float64(pos.Z / cellSize))),
	}
}

// extent is a body's world-aligned bounds; finite is false for planes.
type extent struct {
	min, max rl.Vector3
	finite   bool
}

// candidatePair holds body indices with a < b.
type candidatePair struct {
	a, b int
}

func makeCandidate(i, j int) candidatePair {
	if i > j {
		return candidatePair{a: j, b: i}
	}
	return candidatePair{a: i, b: j}
}

// candidatePairs hashes every finite extent into the cells it covers and
// returns each pair of bodies that share a cell, plus every pair involving an
// unbounded or oversized body. Bodies whose interiors intersect always share
// a cell, so no overlapping pair is missed.
func candidatePairs(extents []extent, cellSize float32) []candidatePair {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	grid := make(map[CellKey][]int)
	var wide []int

	for i, e := range extents {
		if !e.finite {
			wide = append(wide, i)
			continue
		}
		lo := posToCell(e.min, cellSize)
		hi := posToCell(e.max, cellSize)
		cells := (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1) * (hi.Z - lo.Z + 1)
		if cells > maxCellsPerBody || cells <= 0 {
			wide = append(wide, i)
			continue
		}
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				for z := lo.Z; z <= hi.Z; z++ {
					key := CellKey{x, y, z}
					grid[key] = append(grid[key], i)
				}
			}
		}
	}

	seen := make(map[candidatePair]bool)
	var pairs []candidatePair
	add := func(i, j int) {
		if i == j {
			return
		}
		pair := makeCandidate(i, j)
		if seen[pair] {
			return
		}
		seen[pair] = true
		pairs = append(pairs, pair)
	}

	for _, members := range grid {
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				add(members[i], members[j])
			}
		}
	}
	for _, w := range wide {
		for j := range extents {
			add(w, j)
		}
	}
	return pairs
}
