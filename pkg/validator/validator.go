// Package validator compares a player's board against a puzzle's objective
// and reports every structural defect found.
package validator

import (
	"github.com/stellargrid/tentai-show/pkg/board"
	"github.com/stellargrid/tentai-show/pkg/galaxy"
	"github.com/stellargrid/tentai-show/pkg/geom"
	"github.com/stellargrid/tentai-show/pkg/puzzle"
)

// ComputeError checks b against obj and returns every defect found. An
// empty report means the board is a correct solution.
func ComputeError(b *board.Board, obj *puzzle.Objective) puzzle.ErrorReport {
	var report puzzle.ErrorReport

	for _, border := range b.Borders() {
		if isDangling(b, border) {
			report.DanglingBorders = append(report.DanglingBorders, border.Record())
		}
	}

	induced := b.InducedGalaxies()
	covered := make(map[geom.Position]struct{}, obj.Width*obj.Height)

	for _, center := range obj.Centers {
		placement := center.Placement()

		if isCutCenter(b, placement) {
			report.CutCenters = append(report.CutCenters, center)
		}

		probe := placement.Positions()[0]
		g := galaxyContaining(induced, probe)

		if g.Center() != center.Position || !g.IsValid() {
			report.AsymmetricCenters = append(report.AsymmetricCenters, center)
		}

		if center.Size != nil && g.Size() != *center.Size {
			report.IncorrectGalaxySizes = append(report.IncorrectGalaxySizes, center)
		}

		for _, p := range g.Positions() {
			covered[p] = struct{}{}
		}
	}

	for row := 0; row < obj.Height; row++ {
		for col := 0; col < obj.Width; col++ {
			p := geom.NewPosition(row, col)
			if _, ok := covered[p]; !ok {
				report.CenterlessCells = append(report.CenterlessCells, p)
			}
		}
	}

	return report
}

// galaxyContaining returns the induced galaxy that contains p. Every cell
// of the board belongs to exactly one induced galaxy, so this always finds
// one.
func galaxyContaining(induced []*galaxy.Galaxy, p geom.Position) *galaxy.Galaxy {
	for _, g := range induced {
		if g.ContainsPosition(p) {
			return g
		}
	}
	return galaxy.New()
}

// isCutCenter reports whether a wall crosses the center point itself.
func isCutCenter(b *board.Board, placement geom.CenterPlacement) bool {
	switch placement.Kind {
	case geom.KindVerticalBorder, geom.KindHorizontalBorder:
		return b.IsWall(placement.Edge)
	case geom.KindIntersection:
		corners := placement.Block.Corners()
		topLeft, topRight, bottomLeft, bottomRight := corners[0], corners[1], corners[2], corners[3]
		edges := []geom.Border{
			geom.NewBorder(topLeft, topRight),
			geom.NewBorder(topLeft, bottomLeft),
			geom.NewBorder(topRight, bottomRight),
			geom.NewBorder(bottomLeft, bottomRight),
		}
		for _, e := range edges {
			if b.IsWall(e) {
				return true
			}
		}
		return false
	default: // KindCell
		return false
	}
}

// isDangling reports whether border has both outer tips free: a tip is free
// when none of the three wall segments that would form a junction there are
// present, and the tip does not lie on the outer frame.
func isDangling(b *board.Board, border geom.Border) bool {
	p, q := border.P1(), border.P2()

	if border.IsVertical() {
		return tipFree(b, p, q, geom.Position.Up, p.Row == 0) &&
			tipFree(b, p, q, geom.Position.Down, p.Row == b.Height()-1)
	}
	return tipFree(b, p, q, geom.Position.Left, p.Column == 0) &&
		tipFree(b, p, q, geom.Position.Right, p.Column == b.Width()-1)
}

func tipFree(b *board.Board, p, q geom.Position, shift func(geom.Position) geom.Position, onFrame bool) bool {
	if onFrame {
		return false
	}
	tipP, tipQ := shift(p), shift(q)
	return !b.IsWall(geom.NewBorder(p, tipP)) &&
		!b.IsWall(geom.NewBorder(tipP, tipQ)) &&
		!b.IsWall(geom.NewBorder(tipQ, q))
}
