package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellargrid/tentai-show/pkg/galaxy"
	"github.com/stellargrid/tentai-show/pkg/geom"
	"github.com/stellargrid/tentai-show/pkg/universe"
)

func intPtr(n int) *int { return &n }

func TestErrorReportIsEmpty(t *testing.T) {
	var r ErrorReport
	if !r.IsEmpty() {
		t.Errorf("zero-value ErrorReport should be empty")
	}
	if r.Count() != 0 {
		t.Errorf("zero-value ErrorReport should count 0")
	}

	r.CenterlessCells = []geom.Position{geom.NewPosition(0, 0)}
	if r.IsEmpty() {
		t.Errorf("report with a centerless cell should not be empty")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestObjectiveJSONRoundTrip(t *testing.T) {
	obj := &Objective{
		Width:  2,
		Height: 2,
		Centers: []GalaxyCenter{
			{Position: geom.NewPosition(1, 1), Size: intPtr(4)},
		},
		Walls: []geom.BorderRecord{
			geom.NewBorder(geom.NewPosition(0, 0), geom.NewPosition(0, 1)).Record(),
		},
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "objective.json")
	require.NoError(t, SaveObjectiveJSON(path, obj))

	got, err := LoadObjectiveJSON(path)
	require.NoError(t, err)
	assert.Equal(t, obj.Width, got.Width)
	assert.Equal(t, obj.Height, got.Height)
	require.Len(t, got.Centers, 1)
	assert.Equal(t, obj.Centers[0].Position, got.Centers[0].Position)
	require.NotNil(t, got.Centers[0].Size)
	assert.Equal(t, 4, *got.Centers[0].Size)
}

func TestObjectiveJSONRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width":1,"height":1,"centers":[],"walls":[],"bogus":true}`), 0o644))
	_, err := LoadObjectiveJSON(path)
	assert.Error(t, err)
}

func TestObjectiveYAMLRoundTrip(t *testing.T) {
	obj := &Objective{
		Width:  1,
		Height: 1,
		Centers: []GalaxyCenter{
			{Position: geom.NewPosition(0, 0)},
		},
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "objective.yaml")
	require.NoError(t, SaveObjectiveYAML(path, obj))

	got, err := LoadObjectiveYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Width)
	assert.Equal(t, 1, got.Height)
	require.Len(t, got.Centers, 1)
	assert.Nil(t, got.Centers[0].Size)
}

func TestObjectiveFromUniverseOneGalaxyPerComponent(t *testing.T) {
	u := universe.New(2, 2)
	u.AddGalaxy(galaxy.FromPositions([]geom.Position{
		geom.NewPosition(0, 0), geom.NewPosition(0, 1),
		geom.NewPosition(1, 0), geom.NewPosition(1, 1),
	}))

	obj := ObjectiveFromUniverse(u)
	if obj.Width != 2 || obj.Height != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", obj.Width, obj.Height)
	}
	require.Len(t, obj.Centers, 1)
	assert.Equal(t, geom.NewPosition(1, 1), obj.Centers[0].Position)
	require.NotNil(t, obj.Centers[0].Size)
	assert.Equal(t, 4, *obj.Centers[0].Size)
}

func TestGalaxyCenterPlacementResolves(t *testing.T) {
	c := GalaxyCenter{Position: geom.NewPosition(2, 2)}
	placement := c.Placement()
	if placement.Kind != geom.KindCell {
		t.Errorf("Placement().Kind = %v, want KindCell", placement.Kind)
	}
}
