// Package generator builds valid universes with a stochastic beam search:
// starting from the all-singletons partition, it repeatedly tries a handful
// of candidate mutations and keeps the one with the lowest aesthetic score
// (even when that score is higher than the current one), while never
// letting the partition become invalid along the way.
package generator

import (
	"math/rand"

	"github.com/stellargrid/tentai-show/pkg/common"
	"github.com/stellargrid/tentai-show/pkg/galaxy"
	"github.com/stellargrid/tentai-show/pkg/geom"
	"github.com/stellargrid/tentai-show/pkg/universe"
)

// Options configures a generation run. A zero value means "use the
// defaults": a fresh random seed, 10*width*height iterations, 5 branches
// per round.
type Options struct {
	Seed       int64
	Iterations int
	Branches   int
}

const (
	defaultIterationsFactor = 10
	defaultBranches         = 5
)

// Result is what a generation run hands back to its caller.
type Result struct {
	Universe *universe.Universe
	Seed     int64
}

// Generate runs the beam search and returns a valid universe. Deterministic
// for a given (width, height, seed). The seed actually used (a fresh one
// when opts.Seed is 0) is logged at verbose level and returned in
// Result.Seed, so a run can be reproduced later.
func Generate(width, height int, opts Options) Result {
	seed := common.ResolveSeed(opts.Seed)
	rng := common.NewRand(seed)
	common.Verbose("generating %dx%d universe with seed %d", width, height, seed)

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = defaultIterationsFactor * width * height
	}
	branches := opts.Branches
	if branches <= 0 {
		branches = defaultBranches
	}

	u := universe.New(width, height)

	for round := 0; round < iterations; round++ {
		var best *universe.Universe
		var bestScore int64

		for b := 0; b < branches; b++ {
			candidate := u.Clone()
			if !generateStep(candidate, rng) {
				continue
			}
			score := candidate.GetScore()
			if best == nil || score < bestScore {
				best = candidate
				bestScore = score
			}
		}

		if best != nil {
			u = best
		}
	}

	if !u.IsValid() {
		panic("generator produced an invalid universe")
	}

	return Result{Universe: u, Seed: seed}
}

// generateStep attempts one atomic mutation against u, in place. Returns
// false (leaving u untouched in effect, since the caller always operates on
// a throwaway clone) when no legal mutation was found.
func generateStep(u *universe.Universe, rng *rand.Rand) bool {
	p1 := geom.RandomPosition(u.Width(), u.Height(), rng)
	g1 := u.GalaxyOf(p1)

	candidates2 := u.AdjacentNonNeighbours(p1)
	if len(candidates2) == 0 {
		return false
	}
	p2 := candidates2[rng.Intn(len(candidates2))]

	if g1.WithPosition(p2).IsSymmetric() {
		demoteGalaxy(u, u.GalaxyOf(p2), []geom.Position{p2})
		u.MakeNeighbours(p1, p2)
		return true
	}

	p3, ok := pickThirdCell(u, g1, p1, p2, rng)
	if !ok {
		return false
	}

	g2 := u.GalaxyOf(p2)
	g3 := u.GalaxyOf(p3)
	if sameGalaxy(g2, p3) {
		demoteGalaxy(u, g2, []geom.Position{p2, p3})
	} else {
		demoteGalaxy(u, g2, []geom.Position{p2})
		demoteGalaxy(u, g3, []geom.Position{p3})
	}

	u.MakeNeighbours(p1, p2)
	u.MakeNeighbours(p1, p3)
	return true
}

// pickThirdCell builds the candidate set that would restore symmetry to
// g1 ∪ {p2, p3} and picks one uniformly at random.
func pickThirdCell(u *universe.Universe, g1 *galaxy.Galaxy, p1, p2 geom.Position, rng *rand.Rand) (geom.Position, bool) {
	extended := g1.WithPosition(p2)
	mirrorOfP2 := g1.MirrorPosition(p2)

	seen := map[geom.Position]struct{}{}
	var candidates []geom.Position

	addCandidate := func(p3 geom.Position) {
		if _, dup := seen[p3]; dup {
			return
		}
		seen[p3] = struct{}{}
		candidates = append(candidates, p3)
	}

	if u.IsInside(mirrorOfP2) && mirrorOfP2 != p1 && mirrorOfP2 != p2 {
		addCandidate(mirrorOfP2)
	}

	for _, adj := range u.AdjacentNonNeighbours(p2) {
		if adj == p1 || adj == p2 {
			continue
		}
		if extended.WithPosition(adj).IsSymmetric() {
			addCandidate(adj)
		}
	}

	if len(candidates) == 0 {
		return geom.Position{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// sameGalaxy reports whether p belongs to g.
func sameGalaxy(g *galaxy.Galaxy, p geom.Position) bool {
	return g.ContainsPosition(p)
}

// demoteGalaxy removes every cell of removed from g (and its mirror, if
// removing a cell alone would break symmetry), dissolving g into singletons
// entirely if the removal leaves it neither empty nor valid.
func demoteGalaxy(u *universe.Universe, g *galaxy.Galaxy, removed []geom.Position) {
	working := g
	detached := append([]geom.Position{}, removed...)
	for _, p := range removed {
		if !working.ContainsPosition(p) {
			continue
		}
		working = working.WithoutPosition(p)
		if !working.IsSymmetric() {
			mirror := working.MirrorPosition(p)
			if working.ContainsPosition(mirror) {
				working = working.WithoutPosition(mirror)
				detached = append(detached, mirror)
			}
		}
	}

	if working.IsEmptyOrValid() {
		for _, p := range detached {
			u.RemoveAllNeighbours(p)
		}
		return
	}

	for _, p := range g.Positions() {
		u.RemoveAllNeighbours(p)
	}
}
