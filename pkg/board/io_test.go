package board

import (
	"path/filepath"
	"testing"

	"github.com/stellargrid/tentai-show/pkg/geom"
)

func TestSaveLoadJSONRoundTrip(t *testing.T) {
	b := New(2, 1)
	b.AddWall(geom.NewBorder(geom.NewPosition(0, 0), geom.NewPosition(0, 1)))

	path := filepath.Join(t.TempDir(), "board.json")
	if err := SaveJSON(path, b); err != nil {
		t.Fatalf("SaveJSON() error = %v", err)
	}

	got, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if got.Width() != 2 || got.Height() != 1 {
		t.Fatalf("dims = %dx%d, want 2x1", got.Width(), got.Height())
	}
	if len(got.Borders()) != 1 {
		t.Fatalf("Borders() = %v, want exactly one wall", got.Borders())
	}
}

func TestLoadYAMLFixture(t *testing.T) {
	b, err := LoadYAML(filepath.Join("testdata", "two_by_two_split.yaml"))
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}
	galaxies := b.InducedGalaxies()
	if len(galaxies) != 2 {
		t.Fatalf("fixture should split the board into 2 pieces, got %d", len(galaxies))
	}
	for _, g := range galaxies {
		if g.Size() != 2 {
			t.Errorf("each piece should have 2 cells, got %d", g.Size())
		}
	}
}
