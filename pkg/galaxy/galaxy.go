// Package galaxy implements the Galaxy value type: a set of grid cells with
// queries for symmetry, connectedness, bounding geometry, rectangle
// decomposition, and the "swirl" aesthetic metric used by the generator's
// scoring function.
package galaxy

import (
	"math"

	"github.com/stellargrid/tentai-show/pkg/geom"
)

// Galaxy is an unordered set of cells. A valid galaxy is non-empty,
// edge-connected, contains its own geometric center, and is point-symmetric
// about that center.
type Galaxy struct {
	positions map[geom.Position]struct{}
}

// New returns an empty galaxy.
func New() *Galaxy {
	return &Galaxy{positions: make(map[geom.Position]struct{})}
}

// FromPositions builds a galaxy from an explicit list of cells.
func FromPositions(positions []geom.Position) *Galaxy {
	g := New()
	for _, p := range positions {
		g.positions[p] = struct{}{}
	}
	return g
}

// FromRectangle builds a galaxy covering every cell of a rectangle.
func FromRectangle(r geom.Rectangle) *Galaxy {
	return FromPositions(r.Positions())
}

// Size returns the number of cells in the galaxy.
func (g *Galaxy) Size() int {
	return len(g.positions)
}

// IsEmpty reports whether the galaxy has no cells.
func (g *Galaxy) IsEmpty() bool {
	return len(g.positions) == 0
}

// ContainsPosition reports whether p belongs to the galaxy.
func (g *Galaxy) ContainsPosition(p geom.Position) bool {
	_, ok := g.positions[p]
	return ok
}

// Positions returns the galaxy's cells, in no particular order.
func (g *Galaxy) Positions() []geom.Position {
	out := make([]geom.Position, 0, len(g.positions))
	for p := range g.positions {
		out = append(out, p)
	}
	return out
}

// AddPosition inserts p, leaving the galaxy in a potentially invalid state
// until the caller restores its invariants.
func (g *Galaxy) AddPosition(p geom.Position) {
	g.positions[p] = struct{}{}
}

// RemovePosition removes p, leaving the galaxy in a potentially invalid state
// until the caller restores its invariants.
func (g *Galaxy) RemovePosition(p geom.Position) {
	delete(g.positions, p)
}

// WithPosition returns a copy of g with p added.
func (g *Galaxy) WithPosition(p geom.Position) *Galaxy {
	clone := g.clone()
	clone.AddPosition(p)
	return clone
}

// WithoutPosition returns a copy of g with p removed.
func (g *Galaxy) WithoutPosition(p geom.Position) *Galaxy {
	clone := g.clone()
	clone.RemovePosition(p)
	return clone
}

func (g *Galaxy) clone() *Galaxy {
	clone := New()
	for p := range g.positions {
		clone.positions[p] = struct{}{}
	}
	return clone
}

// BoundingRectangle returns the galaxy's bounding box with inclusive bounds:
// MaxRow and MaxColumn are the last row and column holding a cell, unlike
// the half-open convention of Rectangle elsewhere. An empty galaxy yields
// the zero Rectangle.
func (g *Galaxy) BoundingRectangle() geom.Rectangle {
	first := true
	var r geom.Rectangle
	for p := range g.positions {
		if first {
			r = geom.NewRectangle(p.Row, p.Row, p.Column, p.Column)
			first = false
			continue
		}
		if p.Row < r.MinRow {
			r.MinRow = p.Row
		}
		if p.Row > r.MaxRow {
			r.MaxRow = p.Row
		}
		if p.Column < r.MinColumn {
			r.MinColumn = p.Column
		}
		if p.Column > r.MaxColumn {
			r.MaxColumn = p.Column
		}
	}
	return r
}

// Center returns the galaxy's center in half-cell coordinates: the sum of
// the bounding box's min and max row (resp. column). An empty galaxy
// returns (0, 0) by convention; callers must not treat that as meaningful.
func (g *Galaxy) Center() geom.Position {
	r := g.BoundingRectangle()
	return geom.NewPosition(r.MinRow+r.MaxRow, r.MinColumn+r.MaxColumn)
}

// MirrorPosition reflects p through the galaxy's center.
func (g *Galaxy) MirrorPosition(p geom.Position) geom.Position {
	c := g.Center()
	return geom.NewPosition(c.Row-p.Row, c.Column-p.Column)
}

// IsSymmetric reports whether every cell's mirror image is also in the
// galaxy.
func (g *Galaxy) IsSymmetric() bool {
	for p := range g.positions {
		if !g.ContainsPosition(g.MirrorPosition(p)) {
			return false
		}
	}
	return true
}

// GetNeighbours returns the 4-adjacent cells of p that belong to the galaxy.
func (g *Galaxy) GetNeighbours(p geom.Position) []geom.Position {
	var out []geom.Position
	for _, adj := range p.Adjacent() {
		if g.ContainsPosition(adj) {
			out = append(out, adj)
		}
	}
	return out
}

// IsConnected reports whether the galaxy's induced 4-adjacency subgraph has
// exactly one component. An empty galaxy is vacuously connected.
func (g *Galaxy) IsConnected() bool {
	if g.IsEmpty() {
		return true
	}
	var start geom.Position
	for p := range g.positions {
		start = p
		break
	}
	visited := map[geom.Position]struct{}{start: {}}
	stack := []geom.Position{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.GetNeighbours(p) {
			if _, seen := visited[n]; !seen {
				visited[n] = struct{}{}
				stack = append(stack, n)
			}
		}
	}
	return len(visited) == len(g.positions)
}

// ContainsCenter reports whether the 1, 2, or 4 cells surrounding the
// galaxy's center (depending on parity) all belong to the galaxy.
func (g *Galaxy) ContainsCenter() bool {
	for _, p := range g.Center().GetCenterPlacement().Positions() {
		if !g.ContainsPosition(p) {
			return false
		}
	}
	return true
}

// IsValid reports whether the galaxy is non-empty, connected, contains its
// center, and is point-symmetric about it.
func (g *Galaxy) IsValid() bool {
	return !g.IsEmpty() && g.ContainsCenter() && g.IsConnected() && g.IsSymmetric()
}

// IsEmptyOrValid reports whether the galaxy is either empty or valid — the
// state every intermediate galaxy must satisfy during generation.
func (g *Galaxy) IsEmptyOrValid() bool {
	return g.IsEmpty() || g.IsValid()
}

// Borders returns the set of borders between this galaxy and cells outside
// it — useful for rendering and for validator diagnostics.
func (g *Galaxy) Borders() []geom.Border {
	seen := map[geom.Border]struct{}{}
	var out []geom.Border
	for p := range g.positions {
		for _, adj := range p.Adjacent() {
			if g.ContainsPosition(adj) {
				continue
			}
			b := geom.NewBorder(p, adj)
			if _, dup := seen[b]; !dup {
				seen[b] = struct{}{}
				out = append(out, b)
			}
		}
	}
	return out
}

// hammingDistances runs a BFS from the cells surrounding the center,
// assigning each cell its 4-adjacency distance from the nearest center cell.
func (g *Galaxy) hammingDistances() map[geom.Position]int {
	distances := make(map[geom.Position]int)
	queue := make([]geom.Position, 0)
	for _, p := range g.Center().GetCenterPlacement().Positions() {
		distances[p] = 0
		queue = append(queue, g.GetNeighbours(p)...)
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, ok := distances[p]; ok {
			continue
		}
		min := -1
		for _, n := range g.GetNeighbours(p) {
			if d, ok := distances[n]; ok && (min == -1 || d < min) {
				min = d
			}
		}
		distances[p] = min + 1
		for _, n := range g.GetNeighbours(p) {
			if _, ok := distances[n]; !ok {
				queue = append(queue, n)
			}
		}
	}
	return distances
}

// Swirl accumulates the signed angle, in the BFS-from-center tree, between
// each cell's radial vector and each of its closer neighbors' radial
// vectors. Rectangular and mirror-symmetric galaxies score 0; S-shaped
// galaxies score non-zero with a sign reflecting handedness.
func (g *Galaxy) Swirl() float64 {
	distances := g.hammingDistances()
	center := g.Center()
	centerX := float64(center.Column) / 2.0
	centerY := float64(center.Row) / 2.0

	vector := func(p geom.Position) (float64, float64) {
		return float64(p.Column) - centerX, float64(p.Row) - centerY
	}

	var swirl float64
	for p := range g.positions {
		d := distances[p]
		if d == 0 {
			continue
		}
		vx, vy := vector(p)
		for _, n := range g.GetNeighbours(p) {
			if distances[n] >= d {
				continue
			}
			nx, ny := vector(n)
			if nx == 0 && ny == 0 {
				continue
			}
			angle := math.Atan2(vy, vx) - math.Atan2(ny, nx)
			switch {
			case angle > math.Pi:
				angle -= 2 * math.Pi
			case angle <= -math.Pi:
				angle += 2 * math.Pi
			}
			swirl += angle
		}
	}
	return swirl
}
