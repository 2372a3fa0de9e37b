package validator

import (
	"testing"

	"github.com/stellargrid/tentai-show/pkg/board"
	"github.com/stellargrid/tentai-show/pkg/geom"
	"github.com/stellargrid/tentai-show/pkg/puzzle"
)

func solved2x2Objective() *puzzle.Objective {
	return &puzzle.Objective{
		Width:  2,
		Height: 2,
		Centers: []puzzle.GalaxyCenter{
			{Position: geom.NewPosition(1, 1)},
		},
	}
}

func TestSolvedTwoByTwoBoardIsEmptyReport(t *testing.T) {
	b := board.New(2, 2)
	report := ComputeError(b, solved2x2Objective())
	if !report.IsEmpty() {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestInteriorWallOnSolvedTwoByTwoFlagsDefect(t *testing.T) {
	b := board.New(2, 2)
	b.AddWall(geom.NewBorder(geom.NewPosition(0, 0), geom.NewPosition(0, 1)))
	report := ComputeError(b, solved2x2Objective())
	if report.IsEmpty() {
		t.Fatalf("expected a non-empty report after adding an interior wall")
	}
	if len(report.AsymmetricCenters) == 0 && len(report.CutCenters) == 0 {
		t.Errorf("expected either asymmetric or cut center, got %+v", report)
	}
}

func TestDanglingSegmentOnThreeByThreeBoard(t *testing.T) {
	b := board.New(3, 3)
	b.AddWall(geom.NewBorder(geom.NewPosition(1, 0), geom.NewPosition(1, 1)))

	obj := &puzzle.Objective{Width: 3, Height: 3}
	report := ComputeError(b, obj)
	if len(report.DanglingBorders) != 1 {
		t.Fatalf("DanglingBorders = %v, want exactly the one wall", report.DanglingBorders)
	}
}

func TestWallAlongFrameNeverDangles(t *testing.T) {
	b := board.New(1, 2)
	b.AddWall(geom.NewBorder(geom.NewPosition(0, 0), geom.NewPosition(1, 0)))

	obj := &puzzle.Objective{Width: 1, Height: 2}
	report := ComputeError(b, obj)
	if len(report.DanglingBorders) != 0 {
		t.Errorf("a 1-wide board's only wall has both tips on the frame, should not dangle: %v", report.DanglingBorders)
	}
}

func TestCenterlessCellsCoverUnclaimedArea(t *testing.T) {
	b := board.New(2, 1)
	obj := &puzzle.Objective{Width: 2, Height: 1}
	report := ComputeError(b, obj)
	if len(report.CenterlessCells) != 2 {
		t.Fatalf("CenterlessCells = %v, want both cells uncovered", report.CenterlessCells)
	}
}

func TestIncorrectGalaxySize(t *testing.T) {
	size := 2
	obj := &puzzle.Objective{
		Width:  2,
		Height: 2,
		Centers: []puzzle.GalaxyCenter{
			{Position: geom.NewPosition(1, 1), Size: &size},
		},
	}
	b := board.New(2, 2)
	report := ComputeError(b, obj)
	if len(report.IncorrectGalaxySizes) != 1 {
		t.Fatalf("expected the declared size of 2 to mismatch the actual galaxy of 4 cells: %+v", report)
	}
}
