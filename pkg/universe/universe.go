// Package universe implements the Universe partition: an undirected
// same-galaxy adjacency graph over every cell of a W x H grid, plus the
// mutation primitives and scoring function the beam-search generator drives.
package universe

import (
	"sort"
	"strings"

	"github.com/stellargrid/tentai-show/pkg/common"
	"github.com/stellargrid/tentai-show/pkg/galaxy"
	"github.com/stellargrid/tentai-show/pkg/geom"
)

// Universe is a partition of a W x H grid into galaxies, represented as an
// undirected graph whose nodes are every cell and whose edges mean "these
// two cells are in the same galaxy". Every connected component is
// maintained as a valid Galaxy by the exported mutation methods.
type Universe struct {
	width, height int
	edges         map[geom.Position]map[geom.Position]struct{}
}

// New returns the singleton universe: every cell is its own galaxy.
func New(width, height int) *Universe {
	u := &Universe{
		width:  width,
		height: height,
		edges:  make(map[geom.Position]map[geom.Position]struct{}, width*height),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			u.edges[geom.NewPosition(row, col)] = make(map[geom.Position]struct{})
		}
	}
	return u
}

// Width and Height return the grid dimensions.
func (u *Universe) Width() int  { return u.width }
func (u *Universe) Height() int { return u.height }

// Clone returns an independent deep copy, used to fork beam-search branches.
func (u *Universe) Clone() *Universe {
	clone := &Universe{
		width:  u.width,
		height: u.height,
		edges:  make(map[geom.Position]map[geom.Position]struct{}, len(u.edges)),
	}
	for p, neighbours := range u.edges {
		copied := make(map[geom.Position]struct{}, len(neighbours))
		for n := range neighbours {
			copied[n] = struct{}{}
		}
		clone.edges[p] = copied
	}
	return clone
}

// IsInside reports whether p is a cell of this universe.
func (u *Universe) IsInside(p geom.Position) bool {
	_, ok := u.edges[p]
	return ok
}

// AreNeighbours reports whether p and q are in the same galaxy.
func (u *Universe) AreNeighbours(p, q geom.Position) bool {
	neighbours, ok := u.edges[p]
	if !ok {
		return false
	}
	_, same := neighbours[q]
	return same
}

// AdjacentPositions returns the 4-adjacent cells of p that lie inside the
// grid.
func (u *Universe) AdjacentPositions(p geom.Position) []geom.Position {
	var out []geom.Position
	for _, adj := range p.Adjacent() {
		if u.IsInside(adj) {
			out = append(out, adj)
		}
	}
	return out
}

// AdjacentNonNeighbours returns the 4-adjacent cells of p that are not
// currently in p's galaxy.
func (u *Universe) AdjacentNonNeighbours(p geom.Position) []geom.Position {
	var out []geom.Position
	for _, adj := range u.AdjacentPositions(p) {
		if !u.AreNeighbours(p, adj) {
			out = append(out, adj)
		}
	}
	return out
}

func (u *Universe) addEdge(p, q geom.Position) {
	u.edges[p][q] = struct{}{}
	u.edges[q][p] = struct{}{}
}

func (u *Universe) removeEdge(p, q geom.Position) {
	delete(u.edges[p], q)
	delete(u.edges[q], p)
}

// RemoveAllNeighbours detaches p from its galaxy, leaving it a singleton.
func (u *Universe) RemoveAllNeighbours(p geom.Position) {
	for adj := range u.edges[p] {
		delete(u.edges[adj], p)
	}
	u.edges[p] = make(map[geom.Position]struct{})
}

// GalaxyOf returns the galaxy containing p, computed by walking the
// same-galaxy graph.
func (u *Universe) GalaxyOf(p geom.Position) *galaxy.Galaxy {
	visited := map[geom.Position]struct{}{p: {}}
	stack := []geom.Position{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for n := range u.edges[cur] {
			if _, seen := visited[n]; !seen {
				visited[n] = struct{}{}
				stack = append(stack, n)
			}
		}
	}
	positions := make([]geom.Position, 0, len(visited))
	for p := range visited {
		positions = append(positions, p)
	}
	return galaxy.FromPositions(positions)
}

// Galaxies returns every galaxy in the universe, in ascending order of
// each galaxy's least cell (row-major). Within a galaxy, position order is
// unspecified.
func (u *Universe) Galaxies() []*galaxy.Galaxy {
	remaining := make([]geom.Position, 0, len(u.edges))
	for p := range u.edges {
		remaining = append(remaining, p)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].Less(remaining[j]) })

	seen := make(map[geom.Position]struct{}, len(u.edges))
	var galaxies []*galaxy.Galaxy
	for _, p := range remaining {
		if _, done := seen[p]; done {
			continue
		}
		g := u.GalaxyOf(p)
		for _, member := range g.Positions() {
			seen[member] = struct{}{}
		}
		galaxies = append(galaxies, g)
	}
	return galaxies
}

// AddGalaxy inserts every intra-g adjacency edge. The caller guarantees g is
// valid and that its cells are currently singletons.
func (u *Universe) AddGalaxy(g *galaxy.Galaxy) {
	for _, p := range g.Positions() {
		for _, adj := range u.AdjacentPositions(p) {
			if g.ContainsPosition(adj) {
				u.addEdge(p, adj)
			}
		}
	}
}

// MakeNeighbours joins q into p's galaxy: every edge from q to a cell
// outside p's galaxy is dropped first, then q is wired to every neighbour it
// shares with p's galaxy. The caller must have already ensured the
// resulting component is valid.
func (u *Universe) MakeNeighbours(p, q geom.Position) {
	g1 := u.GalaxyOf(p)
	for _, adj := range u.AdjacentPositions(q) {
		if g1.ContainsPosition(adj) {
			u.addEdge(q, adj)
		} else {
			u.removeEdge(q, adj)
		}
	}
}

// IsValid reports whether every galaxy in the universe is valid.
func (u *Universe) IsValid() bool {
	for _, g := range u.Galaxies() {
		if !g.IsValid() {
			return false
		}
	}
	return true
}

// GetScore computes the aesthetic metric the generator minimizes: it adds
// the squared length of every unbroken straight wall run (horizontal and
// vertical interior lines) plus the squared area of every rectangle in
// every galaxy's decomposition. Lower is better.
func (u *Universe) GetScore() int64 {
	var score int64

	for row := 1; row < u.height; row++ {
		var run int64
		for col := 0; col < u.width; col++ {
			up := geom.NewPosition(row-1, col)
			down := geom.NewPosition(row, col)
			if u.AreNeighbours(up, down) {
				score += run * run
				run = 0
			} else {
				run++
			}
		}
		score += run * run
	}

	for col := 1; col < u.width; col++ {
		var run int64
		for row := 0; row < u.height; row++ {
			left := geom.NewPosition(row, col-1)
			right := geom.NewPosition(row, col)
			if u.AreNeighbours(left, right) {
				score += run * run
				run = 0
			} else {
				run++
			}
		}
		score += run * run
	}

	for _, g := range u.Galaxies() {
		for _, rect := range g.Rectangles() {
			area := int64(rect.Area())
			score += area * area
		}
	}

	return score
}

// Render draws the universe as a Unicode box-drawing grid: an intersection
// has an edge wherever the two cells it separates are NOT in the same
// galaxy (are_neighbours == false means wall), with the outer frame always
// drawn.
func (u *Universe) Render() string {
	var sb strings.Builder
	for row := 0; row <= u.height; row++ {
		for col := 0; col <= u.width; col++ {
			bottomRight := geom.NewPosition(row, col)
			bottomLeft := bottomRight.Left()
			topLeft := bottomLeft.Up()
			topRight := bottomRight.Up()

			top := row != 0 && !u.AreNeighbours(topLeft, topRight)
			right := col != u.width && !u.AreNeighbours(topRight, bottomRight)
			bottom := row != u.height && !u.AreNeighbours(bottomLeft, bottomRight)
			left := col != 0 && !u.AreNeighbours(topLeft, bottomLeft)

			sb.WriteString(common.BoxGlyph[common.BoxGlyphIndex(top, right, bottom, left)])
		}
		if row != u.height {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
