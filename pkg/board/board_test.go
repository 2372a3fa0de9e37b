package board

import (
	"testing"

	"github.com/stellargrid/tentai-show/pkg/geom"
	"github.com/stellargrid/tentai-show/pkg/universe"
)

func TestEmptyBoardIsOneGalaxy(t *testing.T) {
	b := New(2, 2)
	galaxies := b.InducedGalaxies()
	if len(galaxies) != 1 {
		t.Fatalf("empty board has %d induced galaxies, want 1", len(galaxies))
	}
	if galaxies[0].Size() != 4 {
		t.Errorf("galaxy size = %d, want 4", galaxies[0].Size())
	}
}

func TestWallSplitsGalaxy(t *testing.T) {
	b := New(2, 1)
	p := geom.NewPosition(0, 0)
	q := geom.NewPosition(0, 1)
	b.AddWall(geom.NewBorder(p, q))

	galaxies := b.InducedGalaxies()
	if len(galaxies) != 2 {
		t.Fatalf("board with one wall has %d induced galaxies, want 2", len(galaxies))
	}
}

func TestToggleWall(t *testing.T) {
	b := New(2, 1)
	border := geom.NewBorder(geom.NewPosition(0, 0), geom.NewPosition(0, 1))
	if b.IsWall(border) {
		t.Fatalf("fresh board should have no walls")
	}
	b.ToggleWall(border)
	if !b.IsWall(border) {
		t.Errorf("wall should be drawn after first toggle")
	}
	b.ToggleWall(border)
	if b.IsWall(border) {
		t.Errorf("wall should be erased after second toggle")
	}
}

func TestFromUniverseMirrorsWalls(t *testing.T) {
	u := universe.New(2, 1)
	b := FromUniverse(2, 1, u)
	border := geom.NewBorder(geom.NewPosition(0, 0), geom.NewPosition(0, 1))
	if !b.IsWall(border) {
		t.Errorf("singleton universe should induce a wall between every adjacent pair")
	}

	u.MakeNeighbours(geom.NewPosition(0, 0), geom.NewPosition(0, 1))
	joined := FromUniverse(2, 1, u)
	if joined.IsWall(border) {
		t.Errorf("joined universe should have no wall between the merged cells")
	}
}

func TestGalaxyAtStopsAtWall(t *testing.T) {
	b := New(3, 1)
	b.AddWall(geom.NewBorder(geom.NewPosition(0, 1), geom.NewPosition(0, 2)))

	g := b.GalaxyAt(geom.NewPosition(0, 0))
	if g.Size() != 2 {
		t.Errorf("GalaxyAt((0,0)).Size() = %d, want 2", g.Size())
	}
	if !g.ContainsPosition(geom.NewPosition(0, 1)) {
		t.Errorf("galaxy should contain (0,1)")
	}
}
