// Package puzzle holds the serializable objective a board is checked
// against: the galaxy centers a solver must recover, plus the ErrorReport a
// validator returns when a board falls short.
package puzzle

import (
	"github.com/stellargrid/tentai-show/pkg/geom"
	"github.com/stellargrid/tentai-show/pkg/universe"
)

// GalaxyCenter is one galaxy's placement, given as a half-cell Position
// (see Position.GetCenterPlacement), plus an optional expected size used
// when a puzzle wants to pin down more than just the center itself.
type GalaxyCenter struct {
	Position geom.Position `json:"position" yaml:"position"`
	Size     *int          `json:"size,omitempty" yaml:"size,omitempty"`
}

// Placement resolves the center's half-cell position into its surrounding
// cells.
func (c GalaxyCenter) Placement() geom.CenterPlacement {
	return c.Position.GetCenterPlacement()
}

// Objective is the puzzle a player must solve: a width x height grid and the
// galaxy centers that must be recovered. Walls is a list of given walls;
// ObjectiveFromUniverse leaves it empty and the validator does not read it.
type Objective struct {
	Width   int                 `json:"width" yaml:"width"`
	Height  int                 `json:"height" yaml:"height"`
	Centers []GalaxyCenter      `json:"centers" yaml:"centers"`
	Walls   []geom.BorderRecord `json:"walls" yaml:"walls"`
}

// ObjectiveFromUniverse derives the puzzle target for a generated universe:
// one declared center, with its actual size as a hint, per galaxy. The
// Walls field is left empty, matching the original's own "not populated at
// generation time" behavior.
func ObjectiveFromUniverse(u *universe.Universe) *Objective {
	obj := &Objective{Width: u.Width(), Height: u.Height()}
	for _, g := range u.Galaxies() {
		size := g.Size()
		obj.Centers = append(obj.Centers, GalaxyCenter{
			Position: g.Center(),
			Size:     &size,
		})
	}
	return obj
}

// ErrorReport buckets every defect a board has relative to an Objective.
// A board is a correct solution exactly when every bucket is empty.
type ErrorReport struct {
	DanglingBorders      []geom.BorderRecord `json:"danglingBorders" yaml:"danglingBorders"`
	CutCenters           []GalaxyCenter      `json:"cutCenters" yaml:"cutCenters"`
	AsymmetricCenters    []GalaxyCenter      `json:"asymmetricCenters" yaml:"asymmetricCenters"`
	IncorrectGalaxySizes []GalaxyCenter      `json:"incorrectGalaxySizes" yaml:"incorrectGalaxySizes"`
	CenterlessCells      []geom.Position     `json:"centerlessCells" yaml:"centerlessCells"`
}

// IsEmpty reports whether the report contains no defects, i.e. the board is
// a valid solution of the objective.
func (r ErrorReport) IsEmpty() bool {
	return len(r.DanglingBorders) == 0 &&
		len(r.CutCenters) == 0 &&
		len(r.AsymmetricCenters) == 0 &&
		len(r.IncorrectGalaxySizes) == 0 &&
		len(r.CenterlessCells) == 0
}

// Count returns the total number of individual defects across all buckets.
func (r ErrorReport) Count() int {
	return len(r.DanglingBorders) + len(r.CutCenters) + len(r.AsymmetricCenters) +
		len(r.IncorrectGalaxySizes) + len(r.CenterlessCells)
}
