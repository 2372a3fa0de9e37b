// Package board implements the player-facing dual of a universe: instead of
// recording which cells belong to the same galaxy, a Board records which
// borders have a wall drawn across them. A board's induced partition (no
// wall between two cells means they are in the same piece) is what a
// validator compares against an objective's galaxies.
package board

import (
	"github.com/stellargrid/tentai-show/pkg/galaxy"
	"github.com/stellargrid/tentai-show/pkg/geom"
)

// Board is a width x height grid with an explicit set of drawn walls.
type Board struct {
	width, height int
	walls         map[geom.Border]struct{}
}

// New returns an empty board (no walls drawn; every cell is one galaxy).
func New(width, height int) *Board {
	return &Board{width: width, height: height, walls: make(map[geom.Border]struct{})}
}

// Width and Height return the grid dimensions.
func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// IsInside reports whether p is a cell of this board.
func (b *Board) IsInside(p geom.Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Column >= 0 && p.Column < b.width
}

// AddWall draws a wall across border, if it isn't already drawn.
func (b *Board) AddWall(border geom.Border) {
	b.walls[border] = struct{}{}
}

// RemoveWall erases the wall across border, if one was drawn.
func (b *Board) RemoveWall(border geom.Border) {
	delete(b.walls, border)
}

// ToggleWall flips whether a wall is drawn across border.
func (b *Board) ToggleWall(border geom.Border) {
	if b.IsWall(border) {
		b.RemoveWall(border)
	} else {
		b.AddWall(border)
	}
}

// IsWall reports whether a wall is drawn across border.
func (b *Board) IsWall(border geom.Border) bool {
	_, ok := b.walls[border]
	return ok
}

// Borders returns every wall currently drawn on the board, in no particular
// order.
func (b *Board) Borders() []geom.Border {
	out := make([]geom.Border, 0, len(b.walls))
	for border := range b.walls {
		out = append(out, border)
	}
	return out
}

// AdjacentPositions returns the 4-adjacent cells of p that lie inside the
// grid.
func (b *Board) AdjacentPositions(p geom.Position) []geom.Position {
	var out []geom.Position
	for _, adj := range p.Adjacent() {
		if b.IsInside(adj) {
			out = append(out, adj)
		}
	}
	return out
}

// InducedGalaxies partitions the board's cells by walking the "no wall
// between them" relation: two 4-adjacent cells are in the same piece
// exactly when no wall is drawn on the border between them. The result is
// the player's candidate solution, read back as galaxies for comparison
// against an objective.
func (b *Board) InducedGalaxies() []*galaxy.Galaxy {
	visited := make(map[geom.Position]struct{}, b.width*b.height)
	var galaxies []*galaxy.Galaxy

	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			start := geom.NewPosition(row, col)
			if _, seen := visited[start]; seen {
				continue
			}

			var component []geom.Position
			stack := []geom.Position{start}
			visited[start] = struct{}{}
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				component = append(component, cur)

				for _, adj := range b.AdjacentPositions(cur) {
					if _, seen := visited[adj]; seen {
						continue
					}
					if b.IsWall(geom.NewBorder(cur, adj)) {
						continue
					}
					visited[adj] = struct{}{}
					stack = append(stack, adj)
				}
			}
			galaxies = append(galaxies, galaxy.FromPositions(component))
		}
	}
	return galaxies
}

// GalaxyAt returns the piece containing p under the induced partition.
func (b *Board) GalaxyAt(p geom.Position) *galaxy.Galaxy {
	visited := map[geom.Position]struct{}{p: {}}
	stack := []geom.Position{p}
	var component []geom.Position
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		component = append(component, cur)
		for _, adj := range b.AdjacentPositions(cur) {
			if _, seen := visited[adj]; seen {
				continue
			}
			if b.IsWall(geom.NewBorder(cur, adj)) {
				continue
			}
			visited[adj] = struct{}{}
			stack = append(stack, adj)
		}
	}
	return galaxy.FromPositions(component)
}

type neighbourChecker interface {
	AreNeighbours(p, q geom.Position) bool
}

// FromUniverse builds the board whose walls are exactly the borders between
// cells that are not in the same universe galaxy. Used to turn a generated
// universe into the solved board a puzzle's solution is checked against.
func FromUniverse(width, height int, u neighbourChecker) *Board {
	b := New(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := geom.NewPosition(row, col)
			if col+1 < width {
				q := geom.NewPosition(row, col+1)
				if !u.AreNeighbours(p, q) {
					b.AddWall(geom.NewBorder(p, q))
				}
			}
			if row+1 < height {
				q := geom.NewPosition(row+1, col)
				if !u.AreNeighbours(p, q) {
					b.AddWall(geom.NewBorder(p, q))
				}
			}
		}
	}
	return b
}
