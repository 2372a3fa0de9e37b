package galaxy

import (
	"strings"

	"github.com/stellargrid/tentai-show/pkg/common"
	"github.com/stellargrid/tentai-show/pkg/geom"
)

// Render draws the galaxy as a Unicode box-drawing grid, relative to its own
// bounding box. Walking intersection (row, col) for row in [0, height+1) and
// col in [0, width+1), each intersection's glyph is chosen from which of its
// four incident unit edges separate a galaxy cell from a non-galaxy cell.
func (g *Galaxy) Render() string {
	bounds := g.BoundingRectangle()
	shifted := make(map[geom.Position]struct{}, len(g.positions))
	for p := range g.positions {
		shifted[geom.NewPosition(p.Row-bounds.MinRow, p.Column-bounds.MinColumn)] = struct{}{}
	}
	has := func(p geom.Position) bool {
		_, ok := shifted[p]
		return ok
	}

	var sb strings.Builder
	for row := 0; row <= bounds.Height()+1; row++ {
		for col := 0; col <= bounds.Width()+1; col++ {
			bottomRight := geom.NewPosition(row, col)
			bottomLeft := bottomRight.Left()
			topLeft := bottomLeft.Up()
			topRight := bottomRight.Up()

			hasTopLeft := has(topLeft)
			hasTopRight := has(topRight)
			hasBottomLeft := has(bottomLeft)
			hasBottomRight := has(bottomRight)

			top := hasTopLeft != hasTopRight
			right := hasTopRight != hasBottomRight
			bottom := hasBottomLeft != hasBottomRight
			left := hasTopLeft != hasBottomLeft

			sb.WriteString(common.BoxGlyph[common.BoxGlyphIndex(top, right, bottom, left)])
		}
		if row != bounds.Height()+1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
